// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pointdeck/server/cliparse"
	"github.com/pointdeck/server/middleware"
	"github.com/pointdeck/server/models"
	"github.com/pointdeck/server/session"
)

type EstimateHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *session.Registry
}

func NewEstimateHandler(db *sql.DB, cfg cliparse.Config, sessions *session.Registry) *EstimateHandler {
	return &EstimateHandler{db: db, cfg: cfg, sessions: sessions}
}

// AddEstimate handles POST /sessions/{id}/estimates
// Point values are not validated against a deck; any value is stored and
// only positive values count as "has estimated".
func (h *EstimateHandler) AddEstimate(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.AddEstimateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := s.AddEstimate(req.UserID, req.Points); err != nil {
		if errors.Is(err, session.ErrUserNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "User not in session")
			return
		}
		slog.Error("failed to record estimate", "error", err, "session_id", s.ID())
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record estimate")
		return
	}

	slog.Info("estimate recorded", "session_id", s.ID(), "user_id", req.UserID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddEstimateResponse{
		UserID:  req.UserID,
		Points:  req.Points,
		Message: "Estimate recorded",
	})
}

// GetEstimations handles GET /sessions/{id}/estimations
// Returns who has estimated so far, without the values.
func (h *EstimateHandler) GetEstimations(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	users, err := s.UsersWithEstimations()
	if err != nil {
		switch {
		case errors.Is(err, session.ErrMissingStory):
			middleware.ErrorResponse(w, http.StatusConflict, "No story set")
		case errors.Is(err, session.ErrEmptyRoster):
			middleware.ErrorResponse(w, http.StatusConflict, "Session has no participants")
		default:
			slog.Error("failed to list estimators", "error", err, "session_id", s.ID())
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list estimators")
		}
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UsersWithEstimationsResponse{
		Users: users,
	})
}

// Reveal handles GET /sessions/{id}/reveal
// The estimates list is empty until every participant has voted; an
// incomplete round is not an error.
func (h *EstimateHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RevealEstimatesResponse{
		Estimates: s.RevealEstimates(),
	})
}

// GetAverage handles GET /sessions/{id}/average
// Participants who have not estimated count as zero.
func (h *EstimateHandler) GetAverage(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	average, err := s.EstimationAverage()
	if err != nil {
		if errors.Is(err, session.ErrEmptyRoster) {
			middleware.ErrorResponse(w, http.StatusConflict, "Session has no participants")
			return
		}
		slog.Error("failed to compute average", "error", err, "session_id", s.ID())
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute average")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EstimationAverageResponse{
		Average: average,
	})
}

func (h *EstimateHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
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
