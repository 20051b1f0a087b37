package store

import (
	"sync"
	"time"

	"softwify-backend/internal/models"
)

// Store owns the five entity collections and the current session. It is
// constructed once at startup and handed to the HTTP layer by reference;
// the mutex gives the single-writer discipline the handlers need.
//
// Mutations on a missing id never touch the collections and never raise an
// error; the returned found flag is the only signal, so callers can decide
// whether a stale id is worth reporting.
type Store struct {
	mu sync.RWMutex

	currentUser    *models.User
	users          []models.User
	employees      []models.Employee
	departments    []models.Department
	leaveRequests  []models.LeaveRequest
	weeklyRequests []models.WeeklyRequest
}

// New returns an empty store. Most callers want NewSeeded.
func New() *Store {
	return &Store{}
}

// NewSeeded returns a store loaded with the fixed company roster.
func NewSeeded() *Store {
	s := New()
	s.loadSeed()
	return s
}

// nextID assigns max(existing)+1, or 1 for an empty collection.
func nextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// ----------------------------------------
// Session
// ----------------------------------------

// Login matches a seed user by email and role. The password is accepted
// unconditionally, empty included: this is not a security boundary, the
// account table is fixed and the check only routes the UI.
func (s *Store) Login(email, password string, role models.UserRole) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Role == role {
			user := u
			s.currentUser = &user
			return u, true
		}
	}
	return models.User{}, false
}

// Logout clears the session. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

// CurrentUser returns the session user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}

// ----------------------------------------
// Snapshots
// ----------------------------------------

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Employee(nil), s.employees...)
}

func (s *Store) Departments() []models.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Department(nil), s.departments...)
}

func (s *Store) LeaveRequests() []models.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.LeaveRequest(nil), s.leaveRequests...)
}

func (s *Store) WeeklyRequests() []models.WeeklyRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WeeklyRequest(nil), s.weeklyRequests...)
}

func (s *Store) EmployeeByID(id int) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

func (s *Store) DepartmentByID(id int) (models.Department, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.departments {
		if d.ID == id {
			return d, true
		}
	}
	return models.Department{}, false
}

func (s *Store) UserByID(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// ----------------------------------------
// Employees
// ----------------------------------------

// NewEmployee carries every employee field except the store-assigned id and
// the derived total salary.
type NewEmployee struct {
	Name        string
	Department  string
	Email       string
	Phone       string
	Address     string
	Role        string
	HourlyRate  float64
	HoursWorked float64
}

// EmployeeUpdate is a partial update; nil fields are left untouched.
type EmployeeUpdate struct {
	Name        *string
	Department  *string
	Email       *string
	Phone       *string
	Address     *string
	Role        *string
	HourlyRate  *float64
	HoursWorked *float64
}

func (s *Store) AddEmployee(in NewEmployee) models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.employees))
	for _, e := range s.employees {
		ids = append(ids, e.ID)
	}

	emp := models.Employee{
		ID:          nextID(ids),
		Name:        in.Name,
		Department:  in.Department,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Role:        in.Role,
		HourlyRate:  in.HourlyRate,
		HoursWorked: in.HoursWorked,
		TotalSalary: in.HourlyRate * in.HoursWorked,
	}
	s.employees = append(s.employees, emp)
	return emp
}

// UpdateEmployee merges the given fields into the matching record and
// recomputes the total salary from the merged values.
func (s *Store) UpdateEmployee(id int, upd EmployeeUpdate) (models.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		emp := &s.employees[i]
		if upd.Name != nil {
			emp.Name = *upd.Name
		}
		if upd.Department != nil {
			emp.Department = *upd.Department
		}
		if upd.Email != nil {
			emp.Email = *upd.Email
		}
		if upd.Phone != nil {
			emp.Phone = *upd.Phone
		}
		if upd.Address != nil {
			emp.Address = *upd.Address
		}
		if upd.Role != nil {
			emp.Role = *upd.Role
		}
		if upd.HourlyRate != nil {
			emp.HourlyRate = *upd.HourlyRate
		}
		if upd.HoursWorked != nil {
			emp.HoursWorked = *upd.HoursWorked
		}
		emp.TotalSalary = emp.HourlyRate * emp.HoursWorked
		return *emp, true
	}
	return models.Employee{}, false
}

// DeleteEmployee removes the matching record. Leave and weekly requests
// referencing the employee are left in place; they carry their own name
// snapshot and are not joined back.
func (s *Store) DeleteEmployee(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return true
		}
	}
	return false
}

// ----------------------------------------
// Departments
// ----------------------------------------

type NewDepartment struct {
	Name        string
	Description string
	Employees   int
}

type DepartmentUpdate struct {
	Name        *string
	Description *string
	Employees   *int
}

func (s *Store) AddDepartment(in NewDepartment) models.Department {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.departments))
	for _, d := range s.departments {
		ids = append(ids, d.ID)
	}

	dept := models.Department{
		ID:          nextID(ids),
		Name:        in.Name,
		Description: in.Description,
		Employees:   in.Employees,
	}
	s.departments = append(s.departments, dept)
	return dept
}

func (s *Store) UpdateDepartment(id int, upd DepartmentUpdate) (models.Department, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.departments {
		if s.departments[i].ID != id {
			continue
		}
		dept := &s.departments[i]
		if upd.Name != nil {
			dept.Name = *upd.Name
		}
		if upd.Description != nil {
			dept.Description = *upd.Description
		}
		if upd.Employees != nil {
			dept.Employees = *upd.Employees
		}
		return *dept, true
	}
	return models.Department{}, false
}

func (s *Store) DeleteDepartment(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.departments {
		if s.departments[i].ID == id {
			s.departments = append(s.departments[:i], s.departments[i+1:]...)
			return true
		}
	}
	return false
}

// ----------------------------------------
// Leave requests
// ----------------------------------------

// SubmitLeaveRequest appends a new request with status pending and the
// submission date stamped as today. Date-range validation is the caller's
// job; the store records what it is given.
func (s *Store) SubmitLeaveRequest(employeeID int, employeeName, startDate, endDate, reason string) models.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.leaveRequests))
	for _, r := range s.leaveRequests {
		ids = append(ids, r.ID)
	}

	req := models.LeaveRequest{
		ID:           nextID(ids),
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       reason,
		Status:       models.LeavePending,
		RequestDate:  today(),
	}
	s.leaveRequests = append(s.leaveRequests, req)
	return req
}

// UpdateLeaveStatus overwrites the status unconditionally; there is no
// transition guard, re-deciding an already decided request just wins.
func (s *Store) UpdateLeaveStatus(id int, status models.LeaveStatus) (models.LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leaveRequests {
		if s.leaveRequests[i].ID == id {
			s.leaveRequests[i].Status = status
			return s.leaveRequests[i], true
		}
	}
	return models.LeaveRequest{}, false
}

// ----------------------------------------
// Weekly requests
// ----------------------------------------

func (s *Store) SubmitWeeklyRequest(employeeID int, employeeName, title, description string, priority models.Priority) models.WeeklyRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.weeklyRequests))
	for _, r := range s.weeklyRequests {
		ids = append(ids, r.ID)
	}

	req := models.WeeklyRequest{
		ID:           nextID(ids),
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Title:        title,
		Description:  description,
		Priority:     priority,
		Status:       models.WeeklyPending,
		RequestDate:  today(),
	}
	s.weeklyRequests = append(s.weeklyRequests, req)
	return req
}

// UpdateWeeklyStatus has the same unconditional overwrite semantics as
// UpdateLeaveStatus.
func (s *Store) UpdateWeeklyStatus(id int, status models.WeeklyStatus) (models.WeeklyRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.weeklyRequests {
		if s.weeklyRequests[i].ID == id {
			s.weeklyRequests[i].Status = status
			return s.weeklyRequests[i], true
		}
	}
	return models.WeeklyRequest{}, false
}
