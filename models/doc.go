// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: name
  - CreateSessionRequest: id?, name, description, owner_id, creator_can_estimate
  - JoinSessionRequest: user_id
  - SetStoryRequest: id?, title
  - AddEstimateRequest: user_id, points

# Response Types

Types for JSON responses:

  - CreateUserResponse: user_id, name, role
  - CreateSessionResponse: session_id
  - RemoveUserResponse: removed
  - SetStoryResponse: story
  - AddEstimateResponse: user_id, points, message
  - UsersWithEstimationsResponse: users ({id, name} only)
  - RevealEstimatesResponse: estimates ({id, name, estimate})
  - EstimationAverageResponse: average
  - UserSessionsResponse: sessions
  - ErrorResponse: error, message

# Domain Types

  - User: identity, role, and current estimate (the estimate never
    serializes; values only leave the server through reveal)
  - Story: the item being estimated
  - Participant: roster view of a user with a sealed estimated flag
  - SessionState: point-in-time snapshot of a session

# Constants

Roles:

	RoleCreator   = "creator"
	RoleEstimator = "estimator"
*/
package models
