package reports

import (
	"context"
	"time"

	"workforce/internal/domain/analytics"
)

type AnalyticsSource interface {
	DepartmentAnalytics(ctx context.Context) ([]analytics.DepartmentAnalytics, error)
	AttendanceAnalytics(ctx context.Context) ([]analytics.AttendanceAnalytics, error)
}

// Service turns analytics rows into downloadable files.
type Service struct {
	Analytics AnalyticsSource
	Now       func() time.Time
}

func NewService(source AnalyticsSource) *Service {
	return &Service{Analytics: source, Now: time.Now}
}

func (s *Service) DepartmentPDF(ctx context.Context) ([]byte, error) {
	rows, err := s.Analytics.DepartmentAnalytics(ctx)
	if err != nil {
		return nil, err
	}
	return DepartmentAnalyticsPDF(rows, s.Now())
}

func (s *Service) AttendanceXLSX(ctx context.Context) ([]byte, error) {
	rows, err := s.Analytics.AttendanceAnalytics(ctx)
	if err != nil {
		return nil, err
	}
	return AttendanceAnalyticsXLSX(rows)
}
