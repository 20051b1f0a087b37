package models

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) IsValid() bool {
	return s == LeavePending || s == LeaveApproved || s == LeaveRejected
}

// IsDecision reports whether the status is one an admin may set when
// triaging a request.
func (s LeaveStatus) IsDecision() bool {
	return s == LeaveApproved || s == LeaveRejected
}

// LeaveRequest carries a denormalized EmployeeName captured at submission;
// it is never re-resolved against the employee collection. Dates are plain
// calendar dates in 2006-01-02 form.
type LeaveRequest struct {
	ID           int         `json:"id"`
	EmployeeID   int         `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	StartDate    string      `json:"start_date"`
	EndDate      string      `json:"end_date"`
	Reason       string      `json:"reason"`
	Status       LeaveStatus `json:"status"`
	RequestDate  string      `json:"request_date"`
}
