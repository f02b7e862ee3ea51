package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/pkg/recorder"
)

// SessionStore is the part of the recorder the API exposes.
type SessionStore interface {
	Sessions(ctx context.Context) ([]recorder.SessionInfo, error)
	Session(ctx context.Context, id string) (recorder.SessionInfo, error)
	DeleteSession(ctx context.Context, id string) error
}

// SessionHandler serves recorded sessions.
type SessionHandler struct {
	store SessionStore
}

// NewSessionHandler returns a SessionHandler.
func NewSessionHandler(store SessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

// List handles GET /sessions.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.Sessions(r.Context())
	if err != nil {
		logger.ErrorCtx(r.Context(), "Failed to list sessions", logger.Err(err))
		InternalServerError(w, "Failed to list sessions")
		return
	}
	if sessions == nil {
		sessions = []recorder.SessionInfo{}
	}
	WriteJSONOK(w, sessions)
}

// Get handles GET /sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.store.Session(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSONOK(w, info)
}

// Delete handles DELETE /sessions/{id}.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteSession(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	logger.InfoCtx(r.Context(), "Session deleted", logger.Session(id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recorder.ErrSessionNotFound):
		NotFound(w, "Session not found")
	case errors.Is(err, recorder.ErrSessionActive):
		Conflict(w, "Session is still recording")
	default:
		logger.ErrorCtx(r.Context(), "Session request failed", logger.Err(err))
		InternalServerError(w, "Failed to access session")
	}
}
