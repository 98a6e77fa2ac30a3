package core

import "time"

const (
	EmploymentFullTime = "FT"
	EmploymentPartTime = "PT"
	EmploymentContract = "CT"
	EmploymentIntern   = "IN"
)

const (
	AttendancePresent = "PR"
	AttendanceAbsent  = "AB"
	AttendanceOnLeave = "LV"
	AttendanceHalfDay = "HD"
	AttendanceLate    = "LT"
)

var EmploymentTypes = []string{EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentIntern}

var AttendanceStatuses = []string{AttendancePresent, AttendanceAbsent, AttendanceOnLeave, AttendanceHalfDay, AttendanceLate}

type Department struct {
	ID               string    `json:"id"`
	Name             string    `json:"name" validate:"required,max=100"`
	Description      string    `json:"description"`
	Location         string    `json:"location" validate:"required,max=100"`
	Budget           Amount    `json:"budget"`
	EstablishedDate  Date      `json:"established_date"`
	HeadOfDepartment string    `json:"head_of_department" validate:"required,max=100"`
	Email            string    `json:"email" validate:"required,email,max=254"`
	EmployeeCount    int       `json:"employee_count"`
	CreatedAt        time.Time `json:"created_at"`
}

type Employee struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name" validate:"required,max=50"`
	LastName       string    `json:"last_name" validate:"required,max=50"`
	Email          string    `json:"email" validate:"required,email,max=254"`
	Phone          string    `json:"phone" validate:"required,max=15"`
	HireDate       Date      `json:"hire_date"`
	JobTitle       string    `json:"job_title" validate:"required,max=100"`
	Salary         Amount    `json:"salary"`
	DepartmentID   string    `json:"department" validate:"required,uuid"`
	DepartmentName string    `json:"department_name"`
	EmploymentType string    `json:"employment_type" validate:"omitempty,oneof=FT PT CT IN"`
	ManagerID      *string   `json:"manager" validate:"omitempty,uuid"`
	ManagerName    *string   `json:"manager_name"`
	DateOfBirth    *Date     `json:"date_of_birth"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
}

type Attendance struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee" validate:"required,uuid"`
	EmployeeName  string    `json:"employee_name"`
	Date          Date      `json:"date"`
	CheckIn       *string   `json:"check_in"`
	CheckOut      *string   `json:"check_out"`
	HoursWorked   *Amount   `json:"hours_worked"`
	Status        string    `json:"status" validate:"required,oneof=PR AB LV HD LT"`
	Notes         string    `json:"notes"`
	OvertimeHours Amount    `json:"overtime_hours"`
	LeaveType     string    `json:"leave_type" validate:"max=20"`
	CreatedAt     time.Time `json:"created_at"`
}

type PerformanceReview struct {
	ID                  string    `json:"id"`
	EmployeeID          string    `json:"employee" validate:"required,uuid"`
	EmployeeName        string    `json:"employee_name"`
	ReviewDate          Date      `json:"review_date"`
	Reviewer            string    `json:"reviewer" validate:"required,max=100"`
	Rating              int       `json:"rating" validate:"min=1,max=5"`
	Comments            string    `json:"comments"`
	Goals               string    `json:"goals"`
	Strengths           string    `json:"strengths"`
	AreasForImprovement string    `json:"areas_for_improvement"`
	NextReviewDate      *Date     `json:"next_review_date"`
	CreatedAt           time.Time `json:"created_at"`
}
