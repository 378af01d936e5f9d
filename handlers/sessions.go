// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/pointdeck/server/cliparse"
	"github.com/pointdeck/server/ident"
	"github.com/pointdeck/server/middleware"
	"github.com/pointdeck/server/models"
	"github.com/pointdeck/server/session"
)

type SessionHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *session.Registry
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config, sessions *session.Registry) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg, sessions: sessions}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.OwnerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "owner_id is required")
		return
	}

	owner, err := GetUserByID(h.db, req.OwnerID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Owner not found")
		return
	}
	if err != nil {
		slog.Error("failed to query owner", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Use the supplied session ID or generate one from the configured
	// character set and length
	sessionID := req.ID
	if sessionID == "" {
		sessionID, err = ident.Generate(h.cfg.SessionIDAlphabet, h.cfg.SessionIDLength)
		if err != nil {
			slog.Error("failed to generate session ID", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
			return
		}
	}

	if _, exists := h.sessions.Get(sessionID); exists {
		middleware.ErrorResponse(w, http.StatusConflict, "Session already exists")
		return
	}

	s, err := session.New(sessionID, &owner, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, session.ErrMissingOwner) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Session requires an owner")
			return
		}
		slog.Error("failed to construct session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	if req.CreatorCanEstimate {
		s.CreatorCanEstimate()
	}

	// Persist metadata and the owner's role grant together
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO session (id, name, description, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, sessionID, req.Name, req.Description, owner.ID, time.Now())

	if err != nil {
		slog.Error("failed to insert session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	_, err = tx.Exec(`
		UPDATE app_user SET role = $1 WHERE id = $2
	`, models.RoleCreator, owner.ID)

	if err != nil {
		slog.Error("failed to update owner role", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.sessions.Put(s)

	slog.Info("session created", "session_id", sessionID, "owner_id", owner.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: sessionID,
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s.State())
}

// CreatorEstimates handles POST /sessions/{id}/creator-estimates
// Adds the owner to the roster so the owner can vote like everyone else.
func (h *SessionHandler) CreatorEstimates(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	s.CreatorCanEstimate()

	slog.Info("creator joined roster", "session_id", s.ID(), "owner_id", s.Owner().ID)

	middleware.JSONResponse(w, http.StatusOK, s.State())
}

// SetStory handles PUT /sessions/{id}/story
func (h *SessionHandler) SetStory(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.SetStoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	storyID := req.ID
	if storyID == "" {
		var err error
		storyID, err = ident.Generate(h.cfg.SessionIDAlphabet, h.cfg.SessionIDLength)
		if err != nil {
			slog.Error("failed to generate story ID", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set story")
			return
		}
	}

	story := models.Story{ID: storyID, Title: req.Title}
	s.SetStory(&story)

	slog.Info("story set", "session_id", s.ID(), "story_id", storyID)

	middleware.JSONResponse(w, http.StatusOK, models.SetStoryResponse{
		Story: story,
	})
}

// JoinSession handles POST /sessions/{id}/users
// Adds an existing user to the roster. Re-joining resets the user's
// estimate (last write per ID wins).
func (h *SessionHandler) JoinSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.JoinSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	u, err := GetUserByID(h.db, req.UserID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	s.AddUser(&u)

	slog.Info("user joined session", "session_id", s.ID(), "user_id", u.ID)

	middleware.JSONResponse(w, http.StatusOK, s.State())
}

// RemoveUser handles DELETE /sessions/{id}/users/{userId}
func (h *SessionHandler) RemoveUser(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	userID := r.PathValue("userId")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	removed := s.RemoveUser(userID)
	if !removed {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not in session")
		return
	}

	slog.Info("user removed from session", "session_id", s.ID(), "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.RemoveUserResponse{
		Removed: true,
	})
}

// lookup resolves the {id} path parameter against the registry, writing
// the error response itself when the session cannot be found.
func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_id is required")
		return nil, false
	}

	s, ok := h.sessions.Get(sessionID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return s, true
}
