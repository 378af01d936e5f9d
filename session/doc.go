// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the estimation round at the core of Pointdeck.

# Session

A Session has exactly one owner, a roster of participants keyed by user ID,
and at most one story under estimation:

	s, err := session.New(id, owner, "Sprint 42", "backlog grooming")

Construction fails with ErrMissingOwner when no owner is given and grants
the owner the creator role. The owner is not an estimator until
CreatorCanEstimate is called (or the creator_can_estimate flag is set at
the API level).

# Voting

	s.SetStory(&models.Story{ID: "s1", Title: "Checkout flow"})
	s.AddUser(alice)
	s.AddEstimate(alice.ID, 5)

UsersWithEstimations reports who has voted so far, RevealEstimates returns
all estimates once everyone has voted (and an empty slice before that), and
EstimationAverage computes the mean treating missing estimates as zero.

# Errors

All failures are synchronous sentinel errors:

	ErrMissingOwner: construction without an owner
	ErrMissingStory: querying estimators before a story is set
	ErrEmptyRoster:  querying estimators or the average with no participants
	ErrUserNotFound: estimating for a user that never joined

# Registry

Registry is the in-memory store for live sessions. Both Registry and
Session are safe for concurrent use; the HTTP layer serves many requests
against the same session.
*/
package session
