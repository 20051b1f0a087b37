package models

// Employee is a roster record. TotalSalary is derived: the store recomputes
// hourlyRate * hoursWorked on every create and update, it is never written
// directly.
type Employee struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Role        string  `json:"role"`
	HourlyRate  float64 `json:"hourly_rate"`
	HoursWorked float64 `json:"hours_worked"`
	TotalSalary float64 `json:"total_salary"`
}
