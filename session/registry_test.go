// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"strconv"
	"sync"
	"testing"

	"github.com/pointdeck/server/models"
)

func TestRegistry_PutGet(t *testing.T) {
	r := NewRegistry()

	s, err := New("sess1", &models.User{ID: "u1", Name: "Alice"}, "Sprint 1", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	r.Put(s)

	got, ok := r.Get("sess1")
	if !ok {
		t.Fatal("Expected session to be found")
	}
	if got != s {
		t.Error("Expected the same session instance")
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Expected missing session to not be found")
	}
}

func TestRegistry_PutReplaces(t *testing.T) {
	r := NewRegistry()

	first, _ := New("sess1", &models.User{ID: "u1", Name: "Alice"}, "Sprint 1", "")
	second, _ := New("sess1", &models.User{ID: "u2", Name: "Bob"}, "Sprint 2", "")

	r.Put(first)
	r.Put(second)

	if r.Len() != 1 {
		t.Errorf("Expected 1 session, got %d", r.Len())
	}
	got, _ := r.Get("sess1")
	if got != second {
		t.Error("Expected last put to win")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			id := "sess" + strconv.Itoa(n)
			s, err := New(id, &models.User{ID: "u" + strconv.Itoa(n), Name: "User"}, "Sprint", "")
			if err != nil {
				t.Errorf("New failed: %v", err)
				return
			}
			r.Put(s)

			if _, ok := r.Get(id); !ok {
				t.Errorf("Expected session %s after Put", id)
			}
		}(i)
	}
	wg.Wait()

	if r.Len() != 50 {
		t.Errorf("Expected 50 sessions, got %d", r.Len())
	}
}
