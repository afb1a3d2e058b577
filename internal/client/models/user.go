// Package models defines the client-side view of Life Mentor API resources.
package models

// UserProfile is the client's cached copy of the server-owned user record.
// Timestamps are kept as opaque server-formatted strings; the client only
// displays them.
type UserProfile struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	EmailVerified     bool   `json:"emailVerified"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	PhoneNumber       string `json:"phoneNumber,omitempty"`
	Bio               string `json:"bio,omitempty"`
	DateOfBirth       string `json:"dateOfBirth,omitempty"`
	Gender            string `json:"gender,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty"`
	LastLogin         string `json:"lastLogin,omitempty"`
}

// AuthPayload is the envelope data returned by register, login and
// reset-password.
type AuthPayload struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// RegisterRequest is the register endpoint payload. ConfirmPassword defaults
// to Password when the caller leaves it empty, so single-password callers
// still satisfy the API contract.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePasswordRequest is the change-password endpoint payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// DashboardStats is the summary block shown on the dashboard. Values are
// produced locally until the backend grows a stats endpoint.
type DashboardStats struct {
	DailyCheckins  int `json:"dailyCheckins"`
	Streak         int `json:"streak"`
	CompletedGoals int `json:"completedGoals"`
}
