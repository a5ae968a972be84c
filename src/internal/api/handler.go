package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/app"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/app/appErrors"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// Handler is the UI-facing boundary: it translates HTTP requests into
// container operations and serves state snapshots back. All validation and
// state logic lives in the container; the handlers only parse payloads and
// map errors.
type Handler struct {
	container *app.Container
	log       *zap.Logger
}

func NewHandler(container *app.Container, logger *zap.Logger) *Handler {
	return &Handler{container: container, log: logger}
}

func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Get("/state", withTimeout(h.getState))
	r.Post("/auth/login", withTimeout(h.login))
	r.Post("/auth/signup", withTimeout(h.signup))
	r.Post("/auth/logout", withTimeout(h.logout))
	r.Post("/issues/report", withTimeout(h.reportIssue))
	r.Post("/issues/vote", withTimeout(h.vote))
	r.Post("/politicians/message", withTimeout(h.messagePolitician))
	r.Post("/politicians/follow", withTimeout(h.followPolitician))
	r.Post("/profile/settings", withTimeout(h.updateSettings))
	r.Post("/filters", withTimeout(h.changeFilters))
	r.Post("/navigate", withTimeout(h.navigate))
	r.Post("/modals/open", withTimeout(h.openModal))
	r.Post("/modals/close", withTimeout(h.closeModal))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
}

func withTimeout(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.container.Snapshot())
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in model.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, appErrors.InternalError, "invalid body")
		return
	}
	if err := h.container.Login(r.Context(), in); err != nil {
		handleContainerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": h.container.Snapshot().CurrentUser})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var in model.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, appErrors.InternalError, "invalid body")
		return
	}
	if err := h.container.Signup(r.Context(), in); err != nil {
		handleContainerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"user": h.container.Snapshot().CurrentUser})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.container.Logout(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) reportIssue(w http.ResponseWriter, r *http.Request) {
	var in model.ReportIssueInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, appErrors.InternalError, "invalid body")
		return
	}
	if err := h.container.ReportIssue(r.Context(), in); err != nil {
		handleContainerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"status": "ok"})
}

func (h *Handler) vote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IssueID string `json:"issue_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IssueID == "" {
		writeError(w, http.StatusBadRequest, appErrors.InternalError, "issue_id required")
		return
	}
	if err := h.container.Vote(r.Context(), req.IssueID); err != nil {
		handleContainerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) messagePolitician(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PoliticianName string `json:"politician_name"`
		Text           string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PoliticianName == "" {
		writeError(w, http.StatusBadRequest, appErrors.InternalError, "politician_name required")
		return
	}
	if err := h.container.MessagePolitician(r.Context(), req.PoliticianName, req.Text); err != nil {
		handleContainerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) followPolitician(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PoliticianID string `json:"politician_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PoliticianID == "" {
		writeError(w, http.StatusBadRequest, appErrors.InternalError, "politician_id required")
		return
	}
	if err := h.container.FollowPolitician(r.Context(), req.PoliticianID); err != nil {
		handleContainerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var in model.SettingsInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, appErrors.InternalError, "invalid body")
		return
	}
	if err := h.container.UpdateSettings(r.Context(), in); err != nil {
		handleContainerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": h.container.Snapshot().CurrentUser})
}

func (h *Handler) changeFilters(w http.ResponseWriter, r *http.Request) {
	var patch model.FilterPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, appErrors.InternalError, "invalid body")
		return
	}
	h.container.ChangeFilters(patch)
	writeJSON(w, http.StatusOK, map[string]any{"filters": h.container.Snapshot().Filters})
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Section string `json:"section"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Section == "" {
		writeError(w, http.StatusBadRequest, appErrors.InternalError, "section required")
		return
	}
	h.container.Navigate(req.Section)
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) openModal(w http.ResponseWriter, r *http.Request) {
	h.toggleModal(w, r, true)
}

func (h *Handler) closeModal(w http.ResponseWriter, r *http.Request) {
	h.toggleModal(w, r, false)
}

func (h *Handler) toggleModal(w http.ResponseWriter, r *http.Request, open bool) {
	var req struct {
		Modal string `json:"modal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Modal == "" {
		writeError(w, http.StatusBadRequest, appErrors.InternalError, "modal required")
		return
	}
	if open {
		h.container.OpenModal(req.Modal)
	} else {
		h.container.CloseModal(req.Modal)
	}
	writeJSON(w, http.StatusOK, map[string]any{"modals": h.container.Snapshot().Modals})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, errCode appErrors.ErrorCode, message string) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{"code": errCode, "message": message},
	})
}

func handleContainerError(w http.ResponseWriter, err error) {
	var e appErrors.AppError
	switch {
	case errors.As(err, &e):
		switch e.Code {
		case appErrors.ValidationFailed:
			writeError(w, http.StatusBadRequest, e.Code, e.Message)
		case appErrors.LoginRequired:
			writeError(w, http.StatusUnauthorized, e.Code, e.Message)
		case appErrors.NotFound:
			writeError(w, http.StatusNotFound, e.Code, e.Message)
		default:
			writeError(w, http.StatusInternalServerError, appErrors.InternalError, e.Message)
		}
	default:
		writeError(w, http.StatusInternalServerError, appErrors.InternalError, err.Error())
	}
}
