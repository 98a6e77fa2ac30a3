package analytics

import (
	"github.com/shopspring/decimal"

	"workforce/internal/domain/core"
)

// DepartmentTotals is the raw per-department aggregate read from the store.
type DepartmentTotals struct {
	DepartmentID  string
	Name          string
	EmployeeCount int
	TotalSalary   decimal.Decimal
	Budget        decimal.Decimal
}

type DepartmentAnalytics struct {
	DepartmentID      string      `json:"department_id"`
	Department        string      `json:"department"`
	EmployeeCount     int         `json:"employee_count"`
	AvgSalary         core.Amount `json:"avg_salary"`
	TotalSalary       core.Amount `json:"total_salary"`
	TotalBudget       core.Amount `json:"total_budget"`
	BudgetUtilization core.Amount `json:"budget_utilization"`
}

// DailyStatusCounts is one date of attendance grouped by status.
type DailyStatusCounts struct {
	Date    core.Date
	Present int
	Absent  int
	Late    int
	Total   int
}

type AttendanceAnalytics struct {
	Date           core.Date   `json:"date"`
	PresentCount   int         `json:"present_count"`
	AbsentCount    int         `json:"absent_count"`
	LateCount      int         `json:"late_count"`
	TotalCount     int         `json:"total_count"`
	AttendanceRate core.Amount `json:"attendance_rate"`
}

type Dashboard struct {
	TotalEmployees   int             `json:"total_employees"`
	TotalDepartments int             `json:"total_departments"`
	TodayAttendance  int             `json:"today_attendance"`
	RecentHires      []core.Employee `json:"recent_hires"`
}
