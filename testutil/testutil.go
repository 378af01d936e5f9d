// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pointdeck/server/cliparse"
	"github.com/pointdeck/server/db"
	"github.com/pointdeck/server/ident"
	"github.com/pointdeck/server/models"
	"github.com/pointdeck/server/session"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Single connection: each test gets its own private database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3419,
		DatabaseURL:       ":memory:",
		DatabaseType:      "sqlite",
		SessionIDAlphabet: cliparse.DefaultIDAlphabet,
		SessionIDLength:   cliparse.DefaultIDLength,
	}
}

// CreateTestUser inserts a user row and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	userID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO app_user (id, name, role, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, name, models.RoleEstimator, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestSession creates a live session owned by the given user,
// registers it, and persists the metadata row. Returns the session.
func CreateTestSession(t *testing.T, conn *sql.DB, cfg cliparse.Config, sessions *session.Registry, ownerID, name string) *session.Session {
	t.Helper()

	var owner models.User
	err := conn.QueryRow(`
		SELECT id, name, role, created_at FROM app_user WHERE id = $1
	`, ownerID).Scan(&owner.ID, &owner.Name, &owner.Role, &owner.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to load test owner: %v", err)
	}

	sessionID, err := ident.Generate(cfg.SessionIDAlphabet, cfg.SessionIDLength)
	if err != nil {
		t.Fatalf("Failed to generate test session ID: %v", err)
	}

	s, err := session.New(sessionID, &owner, name, "test session")
	if err != nil {
		t.Fatalf("Failed to construct test session: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO session (id, name, description, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, sessionID, name, "test session", ownerID, time.Now())
	if err != nil {
		t.Fatalf("Failed to persist test session: %v", err)
	}

	sessions.Put(s)
	return s
}

// JoinTestUser creates a user row and adds it to the session's roster
func JoinTestUser(t *testing.T, conn *sql.DB, s *session.Session, name string) string {
	t.Helper()

	userID := CreateTestUser(t, conn, name)
	s.AddUser(&models.User{ID: userID, Name: name, Role: models.RoleEstimator})
	return userID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
