package authhandler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
	"workforce/internal/transport/http/shared"
)

type TokenIssuer interface {
	IssueToken(ctx context.Context, username, password string) (string, error)
}

type Handler struct {
	Issuer     TokenIssuer
	RateLimit  int
	RateWindow time.Duration
}

func NewHandler(issuer TokenIssuer, rateLimit int, rateWindow time.Duration) *Handler {
	return &Handler{Issuer: issuer, RateLimit: rateLimit, RateWindow: rateWindow}
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.TokenRateLimit(h.RateLimit, h.RateWindow)).Post("/auth/token", api.Handle(h.handleToken))
}

func (h *Handler) handleToken(r *http.Request) (api.Result, error) {
	var payload tokenRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		return api.Result{}, err
	}
	token, err := h.Issuer.IssueToken(r.Context(), payload.Username, payload.Password)
	if err != nil {
		return api.Result{}, err
	}
	return api.OK(tokenResponse{Token: token}), nil
}
