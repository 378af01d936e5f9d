// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pointdeck/server/cliparse"
	"github.com/pointdeck/server/middleware"
	"github.com/pointdeck/server/models"
)

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.Name) < 2 || len(req.Name) > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be 2-50 characters")
		return
	}

	userID := uuid.NewString()

	_, err := h.db.Exec(`
		INSERT INTO app_user (id, name, role, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, req.Name, models.RoleEstimator, time.Now())

	if err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user created", "user_id", userID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateUserResponse{
		UserID: userID,
		Name:   req.Name,
		Role:   models.RoleEstimator,
	})
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	u, err := GetUserByID(h.db, userID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, u)
}

// GetUserSessions handles GET /users/{id}/sessions
// Returns the sessions this user created, newest first.
func (h *UserHandler) GetUserSessions(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if _, err := GetUserByID(h.db, userID); err != nil {
		if err == sql.ErrNoRows {
			middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, name, description, created_at
		FROM session
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, userID)

	if err != nil {
		slog.Error("failed to query sessions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	sessions := []models.SessionSummary{}
	for rows.Next() {
		var summary models.SessionSummary
		var description sql.NullString
		if err := rows.Scan(&summary.SessionID, &summary.Name, &description, &summary.CreatedAt); err != nil {
			slog.Error("failed to scan session", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if description.Valid {
			summary.Description = description.String
		}
		sessions = append(sessions, summary)
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserSessionsResponse{
		Sessions: sessions,
	})
}

// GetUserByID loads a user row. Callers translate sql.ErrNoRows into their
// own not-found responses.
func GetUserByID(db *sql.DB, userID string) (models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, name, role, created_at
		FROM app_user
		WHERE id = $1
	`, userID).Scan(&u.ID, &u.Name, &u.Role, &u.CreatedAt)
	return u, err
}
