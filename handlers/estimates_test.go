// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pointdeck/server/models"
	"github.com/pointdeck/server/session"
	"github.com/pointdeck/server/testutil"
)

type estimateFixture struct {
	handler *EstimateHandler
	s       *session.Session
	alice   string
	bob     string
}

func setupEstimateFixture(t *testing.T) (*estimateFixture, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	sessions := session.NewRegistry()

	ownerID := testutil.CreateTestUser(t, db, "Olivia")
	s := testutil.CreateTestSession(t, db, cfg, sessions, ownerID, "Sprint 1")
	alice := testutil.JoinTestUser(t, db, s, "Alice")
	bob := testutil.JoinTestUser(t, db, s, "Bob")

	f := &estimateFixture{
		handler: NewEstimateHandler(db, cfg, sessions),
		s:       s,
		alice:   alice,
		bob:     bob,
	}
	return f, func() { db.Close() }
}

func (f *estimateFixture) addEstimate(t *testing.T, userID string, points float64) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("POST", "/sessions/"+f.s.ID()+"/estimates", models.AddEstimateRequest{
		UserID: userID,
		Points: points,
	}, nil)
	req.SetPathValue("id", f.s.ID())
	w := httptest.NewRecorder()
	f.handler.AddEstimate(w, req)
	return w
}

func (f *estimateFixture) get(t *testing.T, suffix string, handle http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("GET", "/sessions/"+f.s.ID()+"/"+suffix, nil, nil)
	req.SetPathValue("id", f.s.ID())
	w := httptest.NewRecorder()
	handle(w, req)
	return w
}

func TestAddEstimate(t *testing.T) {
	f, teardown := setupEstimateFixture(t)
	defer teardown()

	t.Run("records estimate for roster user", func(t *testing.T) {
		w := f.addEstimate(t, f.alice, 5)
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.AddEstimateResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.UserID != f.alice || resp.Points != 5 {
			t.Errorf("Unexpected response: %+v", resp)
		}
	})

	t.Run("unknown user is a 404", func(t *testing.T) {
		w := f.addEstimate(t, "ghost", 5)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("missing user_id is a 400", func(t *testing.T) {
		w := f.addEstimate(t, "", 5)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestGetEstimations(t *testing.T) {
	t.Run("no story set is a conflict", func(t *testing.T) {
		f, teardown := setupEstimateFixture(t)
		defer teardown()

		w := f.get(t, "estimations", f.handler.GetEstimations)
		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("empty roster is a conflict", func(t *testing.T) {
		f, teardown := setupEstimateFixture(t)
		defer teardown()

		f.s.SetStory(&models.Story{ID: "s1", Title: "Checkout"})
		f.s.RemoveUser(f.alice)
		f.s.RemoveUser(f.bob)

		w := f.get(t, "estimations", f.handler.GetEstimations)
		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("returns only users with positive estimates", func(t *testing.T) {
		f, teardown := setupEstimateFixture(t)
		defer teardown()

		f.s.SetStory(&models.Story{ID: "s1", Title: "Checkout"})
		f.addEstimate(t, f.bob, 5)

		w := f.get(t, "estimations", f.handler.GetEstimations)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.UsersWithEstimationsResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Users) != 1 {
			t.Fatalf("Expected 1 estimator, got %d", len(resp.Users))
		}
		if resp.Users[0].ID != f.bob || resp.Users[0].Name != "Bob" {
			t.Errorf("Expected {bob, Bob}, got %+v", resp.Users[0])
		}
	})
}

func TestReveal(t *testing.T) {
	t.Run("empty until everyone has estimated", func(t *testing.T) {
		f, teardown := setupEstimateFixture(t)
		defer teardown()

		f.s.SetStory(&models.Story{ID: "s1", Title: "Checkout"})
		f.addEstimate(t, f.alice, 3)

		w := f.get(t, "reveal", f.handler.Reveal)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.RevealEstimatesResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Estimates) != 0 {
			t.Errorf("Expected no estimates while voting incomplete, got %+v", resp.Estimates)
		}
	})

	t.Run("every participant once complete", func(t *testing.T) {
		f, teardown := setupEstimateFixture(t)
		defer teardown()

		f.s.SetStory(&models.Story{ID: "s1", Title: "Checkout"})
		f.addEstimate(t, f.alice, 3)
		f.addEstimate(t, f.bob, 5)

		w := f.get(t, "reveal", f.handler.Reveal)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.RevealEstimatesResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Estimates) != 2 {
			t.Fatalf("Expected 2 estimates, got %d", len(resp.Estimates))
		}
		points := map[string]float64{}
		for _, e := range resp.Estimates {
			points[e.ID] = e.Estimate
		}
		if points[f.alice] != 3 || points[f.bob] != 5 {
			t.Errorf("Unexpected estimates: %+v", resp.Estimates)
		}
	})
}

func TestGetAverage(t *testing.T) {
	t.Run("mean including unset as zero", func(t *testing.T) {
		f, teardown := setupEstimateFixture(t)
		defer teardown()

		f.addEstimate(t, f.alice, 8)

		w := f.get(t, "average", f.handler.GetAverage)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.EstimationAverageResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Average != 4 {
			t.Errorf("Expected average 4, got %v", resp.Average)
		}
	})

	t.Run("empty roster is a conflict", func(t *testing.T) {
		f, teardown := setupEstimateFixture(t)
		defer teardown()

		f.s.RemoveUser(f.alice)
		f.s.RemoveUser(f.bob)

		w := f.get(t, "average", f.handler.GetAverage)
		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("works without a story", func(t *testing.T) {
		f, teardown := setupEstimateFixture(t)
		defer teardown()

		w := f.get(t, "average", f.handler.GetAverage)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.EstimationAverageResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Average != 0 {
			t.Errorf("Expected average 0 with no votes, got %v", resp.Average)
		}
	})
}
