package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"workforce/internal/platform/querier"
	"workforce/internal/requestctx"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	DefaultLimit = 100
	MaxLimit     = 500
)

type Event struct {
	ID            string          `json:"id"`
	ActorID       *string         `json:"actor_id"`
	ActorUsername string          `json:"actor_username"`
	Action        string          `json:"action"`
	EntityType    string          `json:"entity_type"`
	EntityID      string          `json:"entity_id"`
	RequestID     string          `json:"request_id"`
	CreatedAt     time.Time       `json:"created_at"`
	Before        json.RawMessage `json:"before,omitempty"`
	After         json.RawMessage `json:"after,omitempty"`
}

type Filter struct {
	Action     string
	EntityType string
	EntityID   string
	Limit      int
}

func ParseFilter(values url.Values) (Filter, error) {
	filter := Filter{
		Action:     strings.TrimSpace(values.Get("action")),
		EntityType: strings.TrimSpace(values.Get("entity_type")),
		EntityID:   strings.TrimSpace(values.Get("entity_id")),
		Limit:      DefaultLimit,
	}
	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return Filter{}, fmt.Errorf("limit filter: invalid value %q", raw)
		}
		filter.Limit = min(limit, MaxLimit)
	}
	return filter, nil
}

type Service struct {
	DB querier.Querier
}

func New(db querier.Querier) *Service {
	return &Service{DB: db}
}

// Record stores one change, attributed to the actor and request found in ctx.
func (s *Service) Record(ctx context.Context, action, entityType, entityID string, before, after any) error {
	beforeJSON, err := marshalState(before)
	if err != nil {
		return err
	}
	afterJSON, err := marshalState(after)
	if err != nil {
		return err
	}

	var actorID *string
	var actorName string
	if actor, ok := requestctx.GetActor(ctx); ok {
		if actor.UserID != "" {
			actorID = &actor.UserID
		}
		actorName = actor.Username
	}

	_, err = s.DB.Exec(ctx, `
    INSERT INTO audit_events (actor_user_id, actor_username, action, entity_type, entity_id, before_json, after_json, request_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
  `, actorID, actorName, action, entityType, entityID, beforeJSON, afterJSON, requestctx.RequestID(ctx))
	return err
}

func marshalState(state any) ([]byte, error) {
	if state == nil {
		return nil, nil
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal audit state: %w", err)
	}
	return payload, nil
}

// List returns the newest events first.
func (s *Service) List(ctx context.Context, filter Filter) ([]Event, error) {
	query, args := buildQuery(filter)
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var evt Event
		if err := rows.Scan(&evt.ID, &evt.ActorID, &evt.ActorUsername, &evt.Action, &evt.EntityType, &evt.EntityID,
			&evt.RequestID, &evt.CreatedAt, &evt.Before, &evt.After); err != nil {
			return nil, err
		}
		out = append(out, evt)
	}
	return out, rows.Err()
}

func buildQuery(filter Filter) (string, []any) {
	query := `SELECT id::text, actor_user_id::text, actor_username, action, entity_type, entity_id,
    request_id, created_at, before_json, after_json
    FROM audit_events WHERE TRUE`
	var args []any
	if filter.Action != "" {
		args = append(args, filter.Action)
		query += fmt.Sprintf(" AND action = $%d", len(args))
	}
	if filter.EntityType != "" {
		args = append(args, filter.EntityType)
		query += fmt.Sprintf(" AND entity_type = $%d", len(args))
	}
	if filter.EntityID != "" {
		args = append(args, filter.EntityID)
		query += fmt.Sprintf(" AND entity_id = $%d", len(args))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d", len(args))
	return query, args
}
