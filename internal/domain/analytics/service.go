package analytics

import (
	"context"
	"fmt"
	"time"

	"workforce/internal/domain/core"
)

type StoreAPI interface {
	DepartmentTotals(ctx context.Context) ([]DepartmentTotals, error)
	DailyStatusCounts(ctx context.Context, from, to core.Date) ([]DailyStatusCounts, error)
}

// CountsAPI is the slice of the entity store the dashboard reads from.
type CountsAPI interface {
	EmployeeCount(ctx context.Context) (int, error)
	DepartmentCount(ctx context.Context) (int, error)
	AttendanceCountOn(ctx context.Context, day core.Date) (int, error)
	ListRecentHires(ctx context.Context, limit int) ([]core.Employee, error)
}

type Service struct {
	Store    StoreAPI
	Counts   CountsAPI
	Location *time.Location
	Now      func() time.Time
}

func NewService(store StoreAPI, counts CountsAPI, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{Store: store, Counts: counts, Location: loc, Now: time.Now}
}

// Today is the current calendar date in the service location.
func (s *Service) Today() core.Date {
	return core.DateOf(s.Now().In(s.Location))
}

func (s *Service) DepartmentAnalytics(ctx context.Context) ([]DepartmentAnalytics, error) {
	rows, err := s.Store.DepartmentTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("department totals: %w", err)
	}
	return BuildDepartmentAnalytics(rows), nil
}

func (s *Service) AttendanceAnalytics(ctx context.Context) ([]AttendanceAnalytics, error) {
	from, to := AttendanceWindow(s.Today())
	rows, err := s.Store.DailyStatusCounts(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily status counts: %w", err)
	}
	return BuildAttendanceAnalytics(from, to, rows), nil
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	var err error
	if out.TotalEmployees, err = s.Counts.EmployeeCount(ctx); err != nil {
		return Dashboard{}, fmt.Errorf("employee count: %w", err)
	}
	if out.TotalDepartments, err = s.Counts.DepartmentCount(ctx); err != nil {
		return Dashboard{}, fmt.Errorf("department count: %w", err)
	}
	if out.TodayAttendance, err = s.Counts.AttendanceCountOn(ctx, s.Today()); err != nil {
		return Dashboard{}, fmt.Errorf("today attendance: %w", err)
	}
	if out.RecentHires, err = s.Counts.ListRecentHires(ctx, RecentHiresLimit); err != nil {
		return Dashboard{}, fmt.Errorf("recent hires: %w", err)
	}
	if len(out.RecentHires) > RecentHiresLimit {
		out.RecentHires = out.RecentHires[:RecentHiresLimit]
	}
	return out, nil
}
