// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pointdeck/server/models"
	"github.com/pointdeck/server/session"
	"github.com/pointdeck/server/testutil"
)

// TestConcurrentEstimateSubmissions verifies that simultaneous estimate
// submissions from different participants don't corrupt the roster or
// lose votes.
func TestConcurrentEstimateSubmissions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	sessions := session.NewRegistry()
	estimateHandler := NewEstimateHandler(db, cfg, sessions)

	ownerID := testutil.CreateTestUser(t, db, "Olivia")
	s := testutil.CreateTestSession(t, db, cfg, sessions, ownerID, "Sprint 1")
	s.SetStory(&models.Story{ID: "s1", Title: "Checkout"})

	numUsers := 10
	userIDs := make([]string, numUsers)
	for i := 0; i < numUsers; i++ {
		userIDs[i] = testutil.JoinTestUser(t, db, s, "Voter"+strconv.Itoa(i))
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numUsers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/sessions/"+s.ID()+"/estimates", models.AddEstimateRequest{
				UserID: userIDs[idx],
				Points: float64(idx + 1),
			}, nil)
			req.SetPathValue("id", s.ID())
			w := httptest.NewRecorder()

			estimateHandler.AddEstimate(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if int(successCount.Load()) != numUsers {
		t.Errorf("Expected %d successful submissions, got %d", numUsers, successCount.Load())
	}

	// Every participant voted, so reveal must return all of them
	revealed := s.RevealEstimates()
	if len(revealed) != numUsers {
		t.Errorf("Expected %d revealed estimates, got %d", numUsers, len(revealed))
	}
}

// TestConcurrentRemoveAndReveal exercises removal racing against reveal;
// both must complete without panics and reveal must never return a
// partially-voted roster.
func TestConcurrentRemoveAndReveal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	sessions := session.NewRegistry()
	sessionHandler := NewSessionHandler(db, cfg, sessions)
	estimateHandler := NewEstimateHandler(db, cfg, sessions)

	ownerID := testutil.CreateTestUser(t, db, "Olivia")
	s := testutil.CreateTestSession(t, db, cfg, sessions, ownerID, "Sprint 1")
	s.SetStory(&models.Story{ID: "s1", Title: "Checkout"})

	numUsers := 8
	userIDs := make([]string, numUsers)
	for i := 0; i < numUsers; i++ {
		userIDs[i] = testutil.JoinTestUser(t, db, s, "Voter"+strconv.Itoa(i))
		if err := s.AddEstimate(userIDs[i], float64(i+1)); err != nil {
			t.Fatalf("AddEstimate failed: %v", err)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < numUsers/2; i++ {
		wg.Add(2)

		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("DELETE", "/sessions/"+s.ID()+"/users/"+userIDs[idx], nil, nil)
			req.SetPathValue("id", s.ID())
			req.SetPathValue("userId", userIDs[idx])
			w := httptest.NewRecorder()
			sessionHandler.RemoveUser(w, req)
		}(i)

		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("GET", "/sessions/"+s.ID()+"/reveal", nil, nil)
			req.SetPathValue("id", s.ID())
			w := httptest.NewRecorder()
			estimateHandler.Reveal(w, req)

			var resp models.RevealEstimatesResponse
			testutil.AssertJSON(t, w, &resp)
			// All remaining participants have voted, so the reveal is
			// either complete or empty, never partial in a wrong way;
			// the size can only shrink as users are removed.
			if len(resp.Estimates) > numUsers {
				t.Errorf("Reveal returned more estimates than participants: %d", len(resp.Estimates))
			}
		}()
	}
	wg.Wait()

	if got := len(s.Participants()); got != numUsers/2 {
		t.Errorf("Expected %d participants after removals, got %d", numUsers/2, got)
	}
}
