// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pointdeck API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - UserHandler: user creation and lookup (*sql.DB, Config)
  - SessionHandler: session lifecycle and roster (*sql.DB, Config, *Registry)
  - EstimateHandler: voting, reveal, and average (*sql.DB, Config, *Registry)

# Session Flow

	POST /users                              → CreateUser (returns user_id)
	POST /sessions                           → CreateSession (owner_id required)
	POST /sessions/{id}/users                → JoinSession
	PUT  /sessions/{id}/story                → SetStory
	POST /sessions/{id}/estimates            → AddEstimate
	GET  /sessions/{id}/estimations          → GetEstimations (who voted)
	GET  /sessions/{id}/reveal               → Reveal (empty until all voted)
	GET  /sessions/{id}/average              → GetAverage

The owner gets the creator role but is not an estimator unless the session
is created with creator_can_estimate or POST /sessions/{id}/creator-estimates
is called.

# Error Mapping

Domain errors from the session package map onto HTTP statuses:

	ErrMissingOwner → 400
	ErrUserNotFound → 404
	ErrMissingStory → 409
	ErrEmptyRoster  → 409

An incomplete round is not an error: Reveal returns 200 with an empty
estimates list until every participant has voted.
*/
package handlers
