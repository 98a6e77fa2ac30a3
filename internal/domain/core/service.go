package core

import (
	"context"
	"log/slog"
)

const (
	EntityDepartment        = "department"
	EntityEmployee          = "employee"
	EntityAttendance        = "attendance"
	EntityPerformanceReview = "performance_review"
)

type Recorder interface {
	Record(ctx context.Context, action, entityType, entityID string, before, after any) error
}

type Service struct {
	Store StoreAPI
	Audit Recorder
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) record(ctx context.Context, action, entityType, entityID string, before, after any) {
	if s.Audit == nil {
		return
	}
	if err := s.Audit.Record(ctx, action, entityType, entityID, before, after); err != nil {
		slog.WarnContext(ctx, "audit record failed", "action", action, "entity_type", entityType, "entity_id", entityID, "err", err)
	}
}

func fetchBefore[T any](ctx context.Context, s *Service, get func(context.Context, string) (T, error), id string) (*T, error) {
	if s.Audit == nil {
		return nil, nil
	}
	current, err := get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &current, nil
}

func beforeState[T any](before *T) any {
	if before == nil {
		return nil
	}
	return *before
}

func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	return s.Store.ListDepartments(ctx)
}

func (s *Service) GetDepartment(ctx context.Context, id string) (Department, error) {
	return s.Store.GetDepartment(ctx, id)
}

func (s *Service) CreateDepartment(ctx context.Context, dep Department) (Department, error) {
	if err := ValidateDepartment(&dep); err != nil {
		return Department{}, err
	}
	id, err := s.Store.CreateDepartment(ctx, dep)
	if err != nil {
		return Department{}, err
	}
	created, err := s.Store.GetDepartment(ctx, id)
	if err != nil {
		return Department{}, err
	}
	s.record(ctx, "create", EntityDepartment, id, nil, created)
	return created, nil
}

func (s *Service) UpdateDepartment(ctx context.Context, id string, dep Department) (Department, error) {
	if err := ValidateDepartment(&dep); err != nil {
		return Department{}, err
	}
	before, err := fetchBefore(ctx, s, s.Store.GetDepartment, id)
	if err != nil {
		return Department{}, err
	}
	if err := s.Store.UpdateDepartment(ctx, id, dep); err != nil {
		return Department{}, err
	}
	updated, err := s.Store.GetDepartment(ctx, id)
	if err != nil {
		return Department{}, err
	}
	s.record(ctx, "update", EntityDepartment, id, beforeState(before), updated)
	return updated, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	before, err := fetchBefore(ctx, s, s.Store.GetDepartment, id)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteDepartment(ctx, id); err != nil {
		return err
	}
	s.record(ctx, "delete", EntityDepartment, id, beforeState(before), nil)
	return nil
}

func (s *Service) ListEmployees(ctx context.Context, filter EmployeeFilter) ([]Employee, error) {
	return s.Store.ListEmployees(ctx, filter)
}

func (s *Service) GetEmployee(ctx context.Context, id string) (Employee, error) {
	return s.Store.GetEmployee(ctx, id)
}

func (s *Service) CreateEmployee(ctx context.Context, emp Employee) (Employee, error) {
	if err := ValidateEmployee(&emp); err != nil {
		return Employee{}, err
	}
	id, err := s.Store.CreateEmployee(ctx, emp)
	if err != nil {
		return Employee{}, err
	}
	created, err := s.Store.GetEmployee(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	s.record(ctx, "create", EntityEmployee, id, nil, created)
	return created, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id string, emp Employee) (Employee, error) {
	if err := ValidateEmployee(&emp); err != nil {
		return Employee{}, err
	}
	before, err := fetchBefore(ctx, s, s.Store.GetEmployee, id)
	if err != nil {
		return Employee{}, err
	}
	if err := s.Store.UpdateEmployee(ctx, id, emp); err != nil {
		return Employee{}, err
	}
	updated, err := s.Store.GetEmployee(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	s.record(ctx, "update", EntityEmployee, id, beforeState(before), updated)
	return updated, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	before, err := fetchBefore(ctx, s, s.Store.GetEmployee, id)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.record(ctx, "delete", EntityEmployee, id, beforeState(before), nil)
	return nil
}

func (s *Service) ListAttendance(ctx context.Context, filter AttendanceFilter) ([]Attendance, error) {
	return s.Store.ListAttendance(ctx, filter)
}

func (s *Service) GetAttendance(ctx context.Context, id string) (Attendance, error) {
	return s.Store.GetAttendance(ctx, id)
}

func (s *Service) CreateAttendance(ctx context.Context, att Attendance) (Attendance, error) {
	if err := ValidateAttendance(&att); err != nil {
		return Attendance{}, err
	}
	id, err := s.Store.CreateAttendance(ctx, att)
	if err != nil {
		return Attendance{}, err
	}
	created, err := s.Store.GetAttendance(ctx, id)
	if err != nil {
		return Attendance{}, err
	}
	s.record(ctx, "create", EntityAttendance, id, nil, created)
	return created, nil
}

func (s *Service) UpdateAttendance(ctx context.Context, id string, att Attendance) (Attendance, error) {
	if err := ValidateAttendance(&att); err != nil {
		return Attendance{}, err
	}
	before, err := fetchBefore(ctx, s, s.Store.GetAttendance, id)
	if err != nil {
		return Attendance{}, err
	}
	if err := s.Store.UpdateAttendance(ctx, id, att); err != nil {
		return Attendance{}, err
	}
	updated, err := s.Store.GetAttendance(ctx, id)
	if err != nil {
		return Attendance{}, err
	}
	s.record(ctx, "update", EntityAttendance, id, beforeState(before), updated)
	return updated, nil
}

func (s *Service) DeleteAttendance(ctx context.Context, id string) error {
	before, err := fetchBefore(ctx, s, s.Store.GetAttendance, id)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteAttendance(ctx, id); err != nil {
		return err
	}
	s.record(ctx, "delete", EntityAttendance, id, beforeState(before), nil)
	return nil
}

func (s *Service) ListPerformanceReviews(ctx context.Context, filter ReviewFilter) ([]PerformanceReview, error) {
	return s.Store.ListPerformanceReviews(ctx, filter)
}

func (s *Service) GetPerformanceReview(ctx context.Context, id string) (PerformanceReview, error) {
	return s.Store.GetPerformanceReview(ctx, id)
}

func (s *Service) CreatePerformanceReview(ctx context.Context, review PerformanceReview) (PerformanceReview, error) {
	if err := ValidatePerformanceReview(&review); err != nil {
		return PerformanceReview{}, err
	}
	id, err := s.Store.CreatePerformanceReview(ctx, review)
	if err != nil {
		return PerformanceReview{}, err
	}
	created, err := s.Store.GetPerformanceReview(ctx, id)
	if err != nil {
		return PerformanceReview{}, err
	}
	s.record(ctx, "create", EntityPerformanceReview, id, nil, created)
	return created, nil
}

func (s *Service) UpdatePerformanceReview(ctx context.Context, id string, review PerformanceReview) (PerformanceReview, error) {
	if err := ValidatePerformanceReview(&review); err != nil {
		return PerformanceReview{}, err
	}
	before, err := fetchBefore(ctx, s, s.Store.GetPerformanceReview, id)
	if err != nil {
		return PerformanceReview{}, err
	}
	if err := s.Store.UpdatePerformanceReview(ctx, id, review); err != nil {
		return PerformanceReview{}, err
	}
	updated, err := s.Store.GetPerformanceReview(ctx, id)
	if err != nil {
		return PerformanceReview{}, err
	}
	s.record(ctx, "update", EntityPerformanceReview, id, beforeState(before), updated)
	return updated, nil
}

func (s *Service) DeletePerformanceReview(ctx context.Context, id string) error {
	before, err := fetchBefore(ctx, s, s.Store.GetPerformanceReview, id)
	if err != nil {
		return err
	}
	if err := s.Store.DeletePerformanceReview(ctx, id); err != nil {
		return err
	}
	s.record(ctx, "delete", EntityPerformanceReview, id, beforeState(before), nil)
	return nil
}
