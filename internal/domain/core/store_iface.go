package core

import "context"

type StoreAPI interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	GetDepartment(ctx context.Context, id string) (Department, error)
	CreateDepartment(ctx context.Context, dep Department) (string, error)
	UpdateDepartment(ctx context.Context, id string, dep Department) error
	DeleteDepartment(ctx context.Context, id string) error
	DepartmentCount(ctx context.Context) (int, error)

	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	ListRecentHires(ctx context.Context, limit int) ([]Employee, error)
	GetEmployee(ctx context.Context, id string) (Employee, error)
	CreateEmployee(ctx context.Context, emp Employee) (string, error)
	UpdateEmployee(ctx context.Context, id string, emp Employee) error
	DeleteEmployee(ctx context.Context, id string) error
	EmployeeCount(ctx context.Context) (int, error)

	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
	GetAttendance(ctx context.Context, id string) (Attendance, error)
	CreateAttendance(ctx context.Context, att Attendance) (string, error)
	UpdateAttendance(ctx context.Context, id string, att Attendance) error
	DeleteAttendance(ctx context.Context, id string) error
	AttendanceCountOn(ctx context.Context, day Date) (int, error)

	ListPerformanceReviews(ctx context.Context, filter ReviewFilter) ([]PerformanceReview, error)
	GetPerformanceReview(ctx context.Context, id string) (PerformanceReview, error)
	CreatePerformanceReview(ctx context.Context, review PerformanceReview) (string, error)
	UpdatePerformanceReview(ctx context.Context, id string, review PerformanceReview) error
	DeletePerformanceReview(ctx context.Context, id string) error
}

var _ StoreAPI = (*Store)(nil)
