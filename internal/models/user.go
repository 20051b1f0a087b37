package models

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is a login account. EmployeeID is set only for employee accounts
// and points at the Employee record backing the account.
type User struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       UserRole `json:"role"`
	EmployeeID *int     `json:"employee_id,omitempty"`
}
