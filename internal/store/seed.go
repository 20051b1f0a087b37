package store

import "softwify-backend/internal/models"

func intPtr(v int) *int { return &v }

// loadSeed installs the fixed company roster: 15 employees, 7 departments
// and 4 login accounts (1 admin, 3 employees). Request collections start
// empty.
func (s *Store) loadSeed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = []models.Employee{
		{ID: 1, Name: "John Smith", Department: "IT", Email: "john.smith@softwify.com", Phone: "+1-555-0101", Address: "123 Tech St, Silicon Valley, CA", Role: "Senior Developer", HourlyRate: 75, HoursWorked: 160, TotalSalary: 12000},
		{ID: 2, Name: "Sarah Johnson", Department: "HR", Email: "sarah.johnson@softwify.com", Phone: "+1-555-0102", Address: "456 Business Ave, New York, NY", Role: "HR Manager", HourlyRate: 65, HoursWorked: 160, TotalSalary: 10400},
		{ID: 3, Name: "Michael Chen", Department: "IT", Email: "michael.chen@softwify.com", Phone: "+1-555-0103", Address: "789 Code Lane, Austin, TX", Role: "Full Stack Developer", HourlyRate: 70, HoursWorked: 168, TotalSalary: 11760},
		{ID: 4, Name: "Emily Davis", Department: "Finance", Email: "emily.davis@softwify.com", Phone: "+1-555-0104", Address: "321 Money St, Chicago, IL", Role: "Financial Analyst", HourlyRate: 60, HoursWorked: 160, TotalSalary: 9600},
		{ID: 5, Name: "David Wilson", Department: "Marketing", Email: "david.wilson@softwify.com", Phone: "+1-555-0105", Address: "654 Brand Blvd, Los Angeles, CA", Role: "Marketing Manager", HourlyRate: 68, HoursWorked: 155, TotalSalary: 10540},
		{ID: 6, Name: "Lisa Anderson", Department: "Sales", Email: "lisa.anderson@softwify.com", Phone: "+1-555-0106", Address: "987 Sales Dr, Miami, FL", Role: "Sales Executive", HourlyRate: 55, HoursWorked: 170, TotalSalary: 9350},
		{ID: 7, Name: "James Taylor", Department: "IT", Email: "james.taylor@softwify.com", Phone: "+1-555-0107", Address: "147 DevOps Way, Seattle, WA", Role: "DevOps Engineer", HourlyRate: 80, HoursWorked: 160, TotalSalary: 12800},
		{ID: 8, Name: "Amanda Rodriguez", Department: "HR", Email: "amanda.rodriguez@softwify.com", Phone: "+1-555-0108", Address: "258 People St, Denver, CO", Role: "HR Specialist", HourlyRate: 50, HoursWorked: 160, TotalSalary: 8000},
		{ID: 9, Name: "Robert Brown", Department: "Finance", Email: "robert.brown@softwify.com", Phone: "+1-555-0109", Address: "369 Accounting Ave, Boston, MA", Role: "Senior Accountant", HourlyRate: 62, HoursWorked: 160, TotalSalary: 9920},
		{ID: 10, Name: "Jennifer Miller", Department: "Marketing", Email: "jennifer.miller@softwify.com", Phone: "+1-555-0110", Address: "741 Creative Ct, Portland, OR", Role: "Content Manager", HourlyRate: 58, HoursWorked: 160, TotalSalary: 9280},
		{ID: 11, Name: "Christopher Lee", Department: "Sales", Email: "christopher.lee@softwify.com", Phone: "+1-555-0111", Address: "852 Revenue Rd, Phoenix, AZ", Role: "Sales Manager", HourlyRate: 72, HoursWorked: 165, TotalSalary: 11880},
		{ID: 12, Name: "Michelle Garcia", Department: "Operations", Email: "michelle.garcia@softwify.com", Phone: "+1-555-0112", Address: "963 Process Pkwy, Dallas, TX", Role: "Operations Manager", HourlyRate: 66, HoursWorked: 160, TotalSalary: 10560},
		{ID: 13, Name: "Kevin Martinez", Department: "IT", Email: "kevin.martinez@softwify.com", Phone: "+1-555-0113", Address: "159 Backend Blvd, San Francisco, CA", Role: "Backend Developer", HourlyRate: 73, HoursWorked: 160, TotalSalary: 11680},
		{ID: 14, Name: "Rachel White", Department: "Design", Email: "rachel.white@softwify.com", Phone: "+1-555-0114", Address: "357 Design Dr, Nashville, TN", Role: "UI/UX Designer", HourlyRate: 64, HoursWorked: 160, TotalSalary: 10240},
		{ID: 15, Name: "Daniel Thompson", Department: "Sales", Email: "daniel.thompson@softwify.com", Phone: "+1-555-0115", Address: "468 Client Circle, Atlanta, GA", Role: "Account Executive", HourlyRate: 59, HoursWorked: 162, TotalSalary: 9558},
	}

	s.departments = []models.Department{
		{ID: 1, Name: "IT", Description: "Information Technology Department", Employees: 4},
		{ID: 2, Name: "HR", Description: "Human Resources Department", Employees: 2},
		{ID: 3, Name: "Finance", Description: "Financial Management Department", Employees: 2},
		{ID: 4, Name: "Marketing", Description: "Marketing and Brand Management", Employees: 2},
		{ID: 5, Name: "Sales", Description: "Sales and Customer Relations", Employees: 3},
		{ID: 6, Name: "Operations", Description: "Business Operations Management", Employees: 1},
		{ID: 7, Name: "Design", Description: "Creative Design Department", Employees: 1},
	}

	s.users = []models.User{
		{ID: 1, Name: "Admin User", Email: "admin@softwify.com", Role: models.RoleAdmin},
		{ID: 2, Name: "John Smith", Email: "john.smith@softwify.com", Role: models.RoleEmployee, EmployeeID: intPtr(1)},
		{ID: 3, Name: "Sarah Johnson", Email: "sarah.johnson@softwify.com", Role: models.RoleEmployee, EmployeeID: intPtr(2)},
		{ID: 4, Name: "Michael Chen", Email: "michael.chen@softwify.com", Role: models.RoleEmployee, EmployeeID: intPtr(3)},
	}
}
