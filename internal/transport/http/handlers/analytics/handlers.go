package analyticshandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/analytics"
	"workforce/internal/transport/http/api"
)

type Service interface {
	DepartmentAnalytics(ctx context.Context) ([]analytics.DepartmentAnalytics, error)
	AttendanceAnalytics(ctx context.Context) ([]analytics.AttendanceAnalytics, error)
	Dashboard(ctx context.Context) (analytics.Dashboard, error)
}

type Exporter interface {
	DepartmentPDF(ctx context.Context) ([]byte, error)
	AttendanceXLSX(ctx context.Context) ([]byte, error)
}

type Handler struct {
	Service  Service
	Exporter Exporter
}

func NewHandler(service Service, exporter Exporter) *Handler {
	return &Handler{Service: service, Exporter: exporter}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/departments/analytics", api.HandleList(h.handleDepartmentAnalytics))
	r.Get("/departments/analytics/pdf", api.HandleFile(h.handleDepartmentPDF))
	r.Get("/attendance/analytics", api.HandleList(h.handleAttendanceAnalytics))
	r.Get("/attendance/analytics/xlsx", api.HandleFile(h.handleAttendanceXLSX))
	r.Get("/dashboard", api.Handle(h.handleDashboard))
}

func (h *Handler) handleDepartmentAnalytics(r *http.Request) (api.Result, error) {
	rows, err := h.Service.DepartmentAnalytics(r.Context())
	if err != nil {
		return api.Result{}, err
	}
	return api.OK(rows), nil
}

func (h *Handler) handleAttendanceAnalytics(r *http.Request) (api.Result, error) {
	rows, err := h.Service.AttendanceAnalytics(r.Context())
	if err != nil {
		return api.Result{}, err
	}
	return api.OK(rows), nil
}

func (h *Handler) handleDashboard(r *http.Request) (api.Result, error) {
	summary, err := h.Service.Dashboard(r.Context())
	if err != nil {
		return api.Result{}, err
	}
	return api.OK(summary), nil
}

func (h *Handler) handleDepartmentPDF(r *http.Request) (api.File, error) {
	body, err := h.Exporter.DepartmentPDF(r.Context())
	if err != nil {
		return api.File{}, err
	}
	return api.File{Name: "department-analytics.pdf", ContentType: "application/pdf", Body: body}, nil
}

func (h *Handler) handleAttendanceXLSX(r *http.Request) (api.File, error) {
	body, err := h.Exporter.AttendanceXLSX(r.Context())
	if err != nil {
		return api.File{}, err
	}
	return api.File{
		Name:        "attendance-analytics.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        body,
	}, nil
}
