package corehandler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/core"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/shared"
)

// Service is the slice of core.Service the handlers call.
type Service interface {
	ListDepartments(ctx context.Context) ([]core.Department, error)
	GetDepartment(ctx context.Context, id string) (core.Department, error)
	CreateDepartment(ctx context.Context, dep core.Department) (core.Department, error)
	UpdateDepartment(ctx context.Context, id string, dep core.Department) (core.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	ListEmployees(ctx context.Context, filter core.EmployeeFilter) ([]core.Employee, error)
	GetEmployee(ctx context.Context, id string) (core.Employee, error)
	CreateEmployee(ctx context.Context, emp core.Employee) (core.Employee, error)
	UpdateEmployee(ctx context.Context, id string, emp core.Employee) (core.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	ListAttendance(ctx context.Context, filter core.AttendanceFilter) ([]core.Attendance, error)
	GetAttendance(ctx context.Context, id string) (core.Attendance, error)
	CreateAttendance(ctx context.Context, att core.Attendance) (core.Attendance, error)
	UpdateAttendance(ctx context.Context, id string, att core.Attendance) (core.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error

	ListPerformanceReviews(ctx context.Context, filter core.ReviewFilter) ([]core.PerformanceReview, error)
	GetPerformanceReview(ctx context.Context, id string) (core.PerformanceReview, error)
	CreatePerformanceReview(ctx context.Context, review core.PerformanceReview) (core.PerformanceReview, error)
	UpdatePerformanceReview(ctx context.Context, id string, review core.PerformanceReview) (core.PerformanceReview, error)
	DeletePerformanceReview(ctx context.Context, id string) error
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	mount(r, "/departments", resource[core.Department, struct{}]{
		parse: func(url.Values) (struct{}, error) { return struct{}{}, nil },
		list: func(ctx context.Context, _ struct{}) ([]core.Department, error) {
			return h.Service.ListDepartments(ctx)
		},
		get:    h.Service.GetDepartment,
		create: h.Service.CreateDepartment,
		update: h.Service.UpdateDepartment,
		remove: h.Service.DeleteDepartment,
	})
	mount(r, "/employees", resource[core.Employee, core.EmployeeFilter]{
		parse:  core.ParseEmployeeFilter,
		list:   h.Service.ListEmployees,
		get:    h.Service.GetEmployee,
		create: h.Service.CreateEmployee,
		update: h.Service.UpdateEmployee,
		remove: h.Service.DeleteEmployee,
	})
	mount(r, "/attendance", resource[core.Attendance, core.AttendanceFilter]{
		parse:  core.ParseAttendanceFilter,
		list:   h.Service.ListAttendance,
		get:    h.Service.GetAttendance,
		create: h.Service.CreateAttendance,
		update: h.Service.UpdateAttendance,
		remove: h.Service.DeleteAttendance,
	})
	mount(r, "/performance-reviews", resource[core.PerformanceReview, core.ReviewFilter]{
		parse:  core.ParseReviewFilter,
		list:   h.Service.ListPerformanceReviews,
		get:    h.Service.GetPerformanceReview,
		create: h.Service.CreatePerformanceReview,
		update: h.Service.UpdatePerformanceReview,
		remove: h.Service.DeletePerformanceReview,
	})
}

// resource binds the five CRUD operations of one record type to HTTP.
type resource[T any, F any] struct {
	parse  func(url.Values) (F, error)
	list   func(ctx context.Context, filter F) ([]T, error)
	get    func(ctx context.Context, id string) (T, error)
	create func(ctx context.Context, record T) (T, error)
	update func(ctx context.Context, id string, record T) (T, error)
	remove func(ctx context.Context, id string) error
}

func mount[T any, F any](r chi.Router, path string, res resource[T, F]) {
	r.Get(path, api.HandleList(res.handleList))
	r.Post(path, api.Handle(res.handleCreate))
	r.Get(path+"/{id}", api.Handle(res.handleGet))
	r.Put(path+"/{id}", api.Handle(res.handleReplace))
	r.Patch(path+"/{id}", api.Handle(res.handlePatch))
	r.Delete(path+"/{id}", api.Handle(res.handleDelete))
}

func (res resource[T, F]) handleList(r *http.Request) (api.Result, error) {
	filter, err := res.parse(r.URL.Query())
	if err != nil {
		return api.Result{}, err
	}
	records, err := res.list(r.Context(), filter)
	if err != nil {
		return api.Result{}, err
	}
	return api.OK(records), nil
}

func (res resource[T, F]) handleCreate(r *http.Request) (api.Result, error) {
	var record T
	if err := shared.DecodeJSON(r, &record); err != nil {
		return api.Result{}, err
	}
	created, err := res.create(r.Context(), record)
	if err != nil {
		return api.Result{}, err
	}
	return api.Created(created), nil
}

func (res resource[T, F]) handleGet(r *http.Request) (api.Result, error) {
	record, err := res.get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return api.Result{}, err
	}
	return api.OK(record), nil
}

// handleReplace requires the full representation; omitted fields are cleared.
func (res resource[T, F]) handleReplace(r *http.Request) (api.Result, error) {
	id := chi.URLParam(r, "id")
	if _, err := res.get(r.Context(), id); err != nil {
		return api.Result{}, err
	}
	var record T
	if err := shared.DecodeJSON(r, &record); err != nil {
		return api.Result{}, err
	}
	updated, err := res.update(r.Context(), id, record)
	if err != nil {
		return api.Result{}, err
	}
	return api.OK(updated), nil
}

// handlePatch applies the body on top of the stored record.
func (res resource[T, F]) handlePatch(r *http.Request) (api.Result, error) {
	id := chi.URLParam(r, "id")
	record, err := res.get(r.Context(), id)
	if err != nil {
		return api.Result{}, err
	}
	if err := shared.DecodeJSON(r, &record); err != nil {
		return api.Result{}, err
	}
	updated, err := res.update(r.Context(), id, record)
	if err != nil {
		return api.Result{}, err
	}
	return api.OK(updated), nil
}

func (res resource[T, F]) handleDelete(r *http.Request) (api.Result, error) {
	id := chi.URLParam(r, "id")
	if err := res.remove(r.Context(), id); err != nil {
		return api.Result{}, err
	}
	return api.OK(map[string]string{"id": id}), nil
}
