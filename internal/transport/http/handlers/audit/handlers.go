package audithandler

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"workforce/internal/apperror"
	"workforce/internal/domain/audit"
	"workforce/internal/transport/http/api"
)

type Service interface {
	List(ctx context.Context, filter audit.Filter) ([]audit.Event, error)
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/audit-events", api.Handle(h.handleList))
	r.Get("/audit-events/export", api.HandleFile(h.handleExport))
}

func (h *Handler) events(r *http.Request) ([]audit.Event, error) {
	filter, err := audit.ParseFilter(r.URL.Query())
	if err != nil {
		return nil, apperror.Validation(err.Error(), apperror.FieldIssue{Field: "limit", Reason: "must be a positive integer"})
	}
	return h.Service.List(r.Context(), filter)
}

func (h *Handler) handleList(r *http.Request) (api.Result, error) {
	events, err := h.events(r)
	if err != nil {
		return api.Result{}, err
	}
	return api.OK(events), nil
}

var csvHeader = []string{"id", "actor_user_id", "actor_username", "action", "entity_type", "entity_id", "request_id", "created_at"}

func (h *Handler) handleExport(r *http.Request) (api.File, error) {
	events, err := h.events(r)
	if err != nil {
		return api.File{}, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return api.File{}, err
	}
	for _, evt := range events {
		actorID := ""
		if evt.ActorID != nil {
			actorID = *evt.ActorID
		}
		row := []string{evt.ID, actorID, evt.ActorUsername, evt.Action, evt.EntityType, evt.EntityID, evt.RequestID, evt.CreatedAt.UTC().Format(time.RFC3339)}
		if err := writer.Write(row); err != nil {
			return api.File{}, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return api.File{}, err
	}
	return api.File{Name: "audit-events.csv", ContentType: "text/csv", Body: buf.Bytes()}, nil
}
