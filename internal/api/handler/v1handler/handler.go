// Package v1handler implements the v1 REST handlers of the SafeScout API.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"safescout/internal/auth"
	"safescout/internal/jobs"
	"safescout/internal/payments"
	"safescout/pkg/controller"
	"safescout/pkg/domain"
	"safescout/pkg/logger"
	"safescout/pkg/serrors"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultPageSize bounds list responses when the client does not ask for a
// specific limit.
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Deps bundles the services the handlers dispatch to.
type Deps struct {
	Auth     auth.Service
	Jobs     jobs.Service
	Payments payments.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes builds the v1 router. Auth endpoints are open; everything else goes
// through the provided bearer-token middleware.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
	r.Post("/auth/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/me", h.Me)

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", h.CreateJob)
			r.Get("/", h.ListJobs)
			r.Get("/available", h.AvailableJobs)

			r.Route("/{jobID}", func(r chi.Router) {
				r.Get("/", h.GetJob)
				r.Post("/assign", h.AssignJob)
				r.Post("/start", h.StartJob)
				r.Post("/cancel", h.CancelJob)
				r.Post("/report", h.SubmitReport)
				r.Get("/report", h.GetReport)

				r.Route("/payment", func(r chi.Router) {
					r.Post("/intent", h.CreatePaymentIntent)
					r.Post("/release", h.ReleasePayment)
					r.Post("/void", h.VoidPayment)
					r.Get("/", h.GetPayment)
				})
			})
		})
	})

	return r
}

// writeJSON renders v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the uniform error body of the API.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps a service error to an HTTP status and a JSON error body.
// Internal errors are logged and masked.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrUpstream):
		status = http.StatusBadGateway
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "internal error handling request", zap.Error(err))
		msg = "internal server error"
	}

	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeBody parses the JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// identity returns the authenticated actor attached by the middleware.
func identity(r *http.Request) (domain.Identity, error) {
	actor, ok := controller.GetIdentity(r.Context())
	if !ok {
		return domain.Identity{}, serrors.With(serrors.ErrUnauthorized, "not authenticated")
	}

	return actor, nil
}

// jobIDParam parses the {jobID} URL parameter.
func jobIDParam(r *http.Request) (domain.JobID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		return domain.JobID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid job ID")
	}

	return domain.JobID(id), nil
}

// pageParams extracts cursor and limit query parameters.
func pageParams(r *http.Request) (string, uint, error) {
	cursor := r.URL.Query().Get("cursor")

	limit := uint(defaultPageSize)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			return "", 0, serrors.With(serrors.ErrBadRequest, "invalid limit")
		}
		limit = uint(parsed)
		if limit > maxPageSize {
			limit = maxPageSize
		}
	}

	return cursor, limit, nil
}
