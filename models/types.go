package models

import "time"

// User roles
const (
	RoleCreator   = "creator"
	RoleEstimator = "estimator"
)

// Request types

type CreateUserRequest struct {
	Name string `json:"name"`
}

type CreateSessionRequest struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	OwnerID            string `json:"owner_id"`
	CreatorCanEstimate bool   `json:"creator_can_estimate"`
}

type JoinSessionRequest struct {
	UserID string `json:"user_id"`
}

type SetStoryRequest struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
}

type AddEstimateRequest struct {
	UserID string  `json:"user_id"`
	Points float64 `json:"points"`
}

// Response types

type CreateUserResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type RemoveUserResponse struct {
	Removed bool `json:"removed"`
}

type SetStoryResponse struct {
	Story Story `json:"story"`
}

type AddEstimateResponse struct {
	UserID  string  `json:"user_id"`
	Points  float64 `json:"points"`
	Message string  `json:"message"`
}

type UsersWithEstimationsResponse struct {
	Users []EstimatorInfo `json:"users"`
}

type RevealEstimatesResponse struct {
	Estimates []RevealedEstimate `json:"estimates"`
}

type EstimationAverageResponse struct {
	Average float64 `json:"average"`
}

type UserSessionsResponse struct {
	Sessions []SessionSummary `json:"sessions"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Estimate  float64   `json:"-"` // Never expose in JSON; values surface only via reveal
	CreatedAt time.Time `json:"created_at"`
}

// GrantRole assigns a role to the user. Role changes are an explicit
// transition so callers (and tests) can observe them directly instead of
// having them buried inside session construction.
func (u *User) GrantRole(role string) {
	u.Role = role
}

type Story struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// EstimatorInfo is the {id, name} projection of a participant who has
// submitted a positive estimate.
type EstimatorInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RevealedEstimate carries a participant's estimate once voting is complete.
type RevealedEstimate struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Estimate float64 `json:"estimate"`
}

// Participant is the roster view of a user: whether they have estimated is
// visible, the value itself stays sealed until reveal.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Estimated bool   `json:"estimated"`
}

type SessionState struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Owner       Participant   `json:"owner"`
	Story       *Story        `json:"story,omitempty"`
	Users       []Participant `json:"users"`
	CreatedAt   time.Time     `json:"created_at"`
}

type SessionSummary struct {
	SessionID   string    `json:"session_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
