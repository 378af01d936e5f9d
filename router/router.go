// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/pointdeck/server/cliparse"
	"github.com/pointdeck/server/handlers"
	"github.com/pointdeck/server/middleware"
	"github.com/pointdeck/server/session"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions *session.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler(db, cfg, sessions)
	estimateHandler := handlers.NewEstimateHandler(db, cfg, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Users
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.CreateUser))
	mux.HandleFunc("GET /users/{id}", middleware.WithLogging(userHandler.GetUser))
	mux.HandleFunc("GET /users/{id}/sessions", middleware.WithLogging(userHandler.GetUserSessions))

	// Session lifecycle and roster
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("POST /sessions/{id}/creator-estimates", middleware.WithLogging(sessionHandler.CreatorEstimates))
	mux.HandleFunc("PUT /sessions/{id}/story", middleware.WithLogging(sessionHandler.SetStory))
	mux.HandleFunc("POST /sessions/{id}/users", middleware.WithLogging(sessionHandler.JoinSession))
	mux.HandleFunc("DELETE /sessions/{id}/users/{userId}", middleware.WithLogging(sessionHandler.RemoveUser))

	// Voting
	mux.HandleFunc("POST /sessions/{id}/estimates", middleware.WithLogging(estimateHandler.AddEstimate))
	mux.HandleFunc("GET /sessions/{id}/estimations", middleware.WithLogging(estimateHandler.GetEstimations))
	mux.HandleFunc("GET /sessions/{id}/reveal", middleware.WithLogging(estimateHandler.Reveal))
	mux.HandleFunc("GET /sessions/{id}/average", middleware.WithLogging(estimateHandler.GetAverage))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pointdeck API v1"))
	})

	return mux
}
