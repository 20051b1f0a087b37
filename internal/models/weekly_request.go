package models

type WeeklyStatus string

const (
	WeeklyPending   WeeklyStatus = "pending"
	WeeklyReviewed  WeeklyStatus = "reviewed"
	WeeklyCompleted WeeklyStatus = "completed"
)

func (s WeeklyStatus) IsValid() bool {
	return s == WeeklyPending || s == WeeklyReviewed || s == WeeklyCompleted
}

// IsDecision reports whether the status is one an admin may set when
// triaging a request.
func (s WeeklyStatus) IsDecision() bool {
	return s == WeeklyReviewed || s == WeeklyCompleted
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// WeeklyRequest is a work request submitted by an employee for the week.
// EmployeeName is a snapshot captured at submission, like on LeaveRequest.
type WeeklyRequest struct {
	ID           int          `json:"id"`
	EmployeeID   int          `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Priority     Priority     `json:"priority"`
	Status       WeeklyStatus `json:"status"`
	RequestDate  string       `json:"request_date"`
}
