package handler

import (
	"net/http"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
	"github.com/hollyoak/GrazeGarden_Go/internal/session"
)

// StartSessionRequest represents the request to start a timed session
type StartSessionRequest struct {
	UserID                 string `json:"user_id" validate:"required,max=100"`
	Kind                   string `json:"kind" validate:"required,sessionkind"`
	PlannedDurationSeconds int    `json:"planned_duration_seconds" validate:"gt=0"`
}

// CompleteSessionRequest identifies the session to complete or cancel
type CompleteSessionRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
}

// SessionHandler handles session lifecycle HTTP requests
type SessionHandler struct {
	sessionSvc session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc session.Service) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// HandleStart starts a new hunger or grass session
// @Summary Start a session
// @Description Opens a timed session; at most one open session per user per kind
// @Tags session
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "Start request"
// @Success 201 {object} domain.TimedSession
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "A session of this kind is already running"
// @Router /session/start [post]
func (h *SessionHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req StartSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start session"); err != nil {
		return
	}

	started, err := h.sessionSvc.Start(r.Context(), req.UserID, domain.SessionKind(req.Kind), req.PlannedDurationSeconds)
	if err != nil {
		respondServiceError(w, r, ErrMsgStartSessionFailed, err)
		return
	}

	log.Info("Session start handled", "user_id", req.UserID, "kind", req.Kind, "session_id", started.ID)
	respondJSON(w, http.StatusCreated, started)
}

// HandleGetActive returns the user's open session of a kind, if any
// @Summary Get the active session
// @Tags session
// @Produce json
// @Param user_id query string true "User ID"
// @Param kind query string true "Session kind (hunger or grass)"
// @Success 200 {object} domain.TimedSession
// @Success 204 "No open session"
// @Router /session/active [get]
func (h *SessionHandler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	kind, ok := GetQueryParam(r, w, "kind")
	if !ok {
		return
	}

	active, err := h.sessionSvc.GetActive(r.Context(), userID, domain.SessionKind(kind))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSessionFailed, err)
		return
	}
	if active == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusOK, active)
}

// HandleComplete completes an open session and grants its reward
// @Summary Complete a session
// @Description Idempotent: retries and race losers receive the terminal result with already_completed set
// @Tags session
// @Accept json
// @Produce json
// @Param request body CompleteSessionRequest true "Complete request"
// @Success 200 {object} domain.CompletionResult
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "Session was cancelled"
// @Router /session/complete [post]
func (h *SessionHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CompleteSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete session"); err != nil {
		return
	}

	result, err := h.sessionSvc.Complete(r.Context(), req.SessionID)
	if err != nil {
		respondServiceError(w, r, ErrMsgCompleteSessionFailed, err)
		return
	}

	log.Info("Session completion handled",
		"session_id", req.SessionID,
		"already_completed", result.AlreadyCompleted)
	respondJSON(w, http.StatusOK, result)
}

// HandleCancel cancels an open session without granting a reward
// @Summary Cancel a session
// @Tags session
// @Accept json
// @Produce json
// @Param request body CompleteSessionRequest true "Cancel request"
// @Success 200 {object} domain.TimedSession
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "Session already finished"
// @Router /session/cancel [post]
func (h *SessionHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CompleteSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Cancel session"); err != nil {
		return
	}

	cancelled, err := h.sessionSvc.Cancel(r.Context(), req.SessionID)
	if err != nil {
		respondServiceError(w, r, ErrMsgCancelSessionFailed, err)
		return
	}

	log.Info("Session cancel handled", "session_id", req.SessionID)
	respondJSON(w, http.StatusOK, cancelled)
}
