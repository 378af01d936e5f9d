// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/pointdeck/server/models"
)

var (
	ErrMissingOwner = errors.New("session requires an owner")
	ErrMissingStory = errors.New("no story set")
	ErrEmptyRoster  = errors.New("session has no participants")
	ErrUserNotFound = errors.New("user is not in the session")
)

// Session tracks a single estimation round: one owner, a roster of
// participants keyed by user ID, an optional story, and per-user estimates.
// Sessions are shared across HTTP requests, so all access goes through the
// internal mutex.
type Session struct {
	mu          sync.RWMutex
	id          string
	name        string
	description string
	owner       *models.User
	story       *models.Story
	users       map[string]*models.User
	createdAt   time.Time
}

// New constructs a session owned by the given user. The owner is granted
// the creator role but does not join the roster until CreatorCanEstimate
// is called.
func New(id string, owner *models.User, name, description string) (*Session, error) {
	if owner == nil {
		return nil, ErrMissingOwner
	}

	owner.GrantRole(models.RoleCreator)

	return &Session{
		id:          id,
		name:        name,
		description: description,
		owner:       owner,
		users:       make(map[string]*models.User),
		createdAt:   time.Now(),
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) Description() string {
	return s.description
}

func (s *Session) Owner() *models.User {
	return s.owner
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Story returns the story currently being estimated, or nil.
func (s *Session) Story() *models.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.story
}

// SetStory replaces the current story unconditionally. Existing estimates
// are left untouched; they are only meaningful relative to the new story
// once participants re-estimate.
func (s *Session) SetStory(story *models.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.story = story
}

// CreatorCanEstimate adds the owner to the roster so the owner can submit
// estimates. Owners are excluded from estimation by default.
func (s *Session) CreatorCanEstimate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[s.owner.ID] = s.owner
}

// AddUser inserts the user into the roster, replacing any previous entry
// with the same ID (last write wins).
func (s *Session) AddUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// RemoveUser deletes the user from the roster and reports whether the ID
// was present.
func (s *Session) RemoveUser(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.users[userID]
	if found {
		delete(s.users, userID)
	}
	return found
}

// AddEstimate records the user's estimate for the current story. Point
// values are not checked against any deck; only positive values count as
// "has estimated". Returns ErrUserNotFound when the user is not in the
// roster.
func (s *Session) AddEstimate(userID string, points float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.Estimate = points
	return nil
}

// UsersWithEstimations returns the participants that have submitted a
// positive estimate, projected to {id, name}. It fails with
// ErrMissingStory before a story is set and with ErrEmptyRoster when the
// roster has no entries.
func (s *Session) UsersWithEstimations() ([]models.EstimatorInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.story == nil {
		return nil, ErrMissingStory
	}
	if len(s.users) == 0 {
		return nil, ErrEmptyRoster
	}

	estimators := []models.EstimatorInfo{}
	for _, u := range s.users {
		if u.Estimate > 0 {
			estimators = append(estimators, models.EstimatorInfo{ID: u.ID, Name: u.Name})
		}
	}

	sort.Slice(estimators, func(i, j int) bool { return estimators[i].ID < estimators[j].ID })
	return estimators, nil
}

// RevealEstimates returns every participant's estimate once all of them
// have estimated. While any participant is still missing a positive
// estimate it returns an empty slice: "not ready yet" is not an error.
func (s *Session) RevealEstimates() []models.RevealedEstimate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	estimated := 0
	for _, u := range s.users {
		if u.Estimate > 0 {
			estimated++
		}
	}
	if estimated != len(s.users) {
		return []models.RevealedEstimate{}
	}

	revealed := make([]models.RevealedEstimate, 0, len(s.users))
	for _, u := range s.users {
		revealed = append(revealed, models.RevealedEstimate{
			ID:       u.ID,
			Name:     u.Name,
			Estimate: u.Estimate,
		})
	}

	sort.Slice(revealed, func(i, j int) bool { return revealed[i].ID < revealed[j].ID })
	return revealed
}

// EstimationAverage returns the arithmetic mean over all participants,
// counting participants without an estimate as zero. There is no story or
// completeness precondition; only an empty roster fails (division guard).
func (s *Session) EstimationAverage() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.users) == 0 {
		return 0, ErrEmptyRoster
	}

	var sum float64
	for _, u := range s.users {
		sum += u.Estimate
	}
	return sum / float64(len(s.users)), nil
}

// Participants returns the roster sorted by user ID. Estimate values stay
// sealed; only the estimated flag is exposed.
func (s *Session) Participants() []models.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.participantsLocked()
}

func (s *Session) participantsLocked() []models.Participant {
	participants := make([]models.Participant, 0, len(s.users))
	for _, u := range s.users {
		participants = append(participants, models.Participant{
			ID:        u.ID,
			Name:      u.Name,
			Role:      u.Role,
			Estimated: u.Estimate > 0,
		})
	}
	sort.Slice(participants, func(i, j int) bool { return participants[i].ID < participants[j].ID })
	return participants
}

// State returns a point-in-time snapshot of the session for API responses.
func (s *Session) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.SessionState{
		ID:          s.id,
		Name:        s.name,
		Description: s.description,
		Owner: models.Participant{
			ID:        s.owner.ID,
			Name:      s.owner.Name,
			Role:      s.owner.Role,
			Estimated: s.owner.Estimate > 0,
		},
		Story:     s.story,
		Users:     s.participantsLocked(),
		CreatedAt: s.createdAt,
	}
}
