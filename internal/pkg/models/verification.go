package models

import (
	"time"

	"github.com/google/uuid"
)

// Verification types. A record's type scopes what the verified target
// unlocks; the signup flow only issues onboarding verifications.
const (
	VerificationTypeOnboarding = "onboarding"
)

// Verification represents a pending email verification. The code itself is
// never stored: it is derived from Secret with the record's TOTP parameters.
type Verification struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Type      string     `json:"type" db:"type"`
	Target    string     `json:"target" db:"target"`
	Secret    string     `json:"-" db:"secret"`
	Algorithm string     `json:"algorithm" db:"algorithm"`
	Digits    int        `json:"digits" db:"digits"`
	Period    int        `json:"period" db:"period"`
	ExpiresAt *time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Expired reports whether the record's validity window has lapsed.
// A nil ExpiresAt means the record does not expire.
func (v *Verification) Expired(now time.Time) bool {
	return v.ExpiresAt != nil && v.ExpiresAt.Before(now)
}

// SignupRequest represents a request to start signup for an email address
type SignupRequest struct {
	Email string `form:"email" json:"email" validate:"required,email"`
}

// VerifyRequest represents a submitted email+code pair. Bound from POST form
// fields and from GET query parameters alike.
type VerifyRequest struct {
	Email string `form:"email" query:"email" json:"email" validate:"required,email"`
	Code  string `form:"code" query:"code" json:"code" validate:"required,len=6"`
}

// OnboardingRequest represents the profile submitted on the onboarding step.
// Email comes from the verification session, never from the form.
type OnboardingRequest struct {
	Email    string `json:"email"`
	Username string `form:"username" json:"username" validate:"required,min=3,max=32,alphanum"`
	Name     string `form:"name" json:"name" validate:"required,max=100"`
}

// AuthResponse represents the response after onboarding completes
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}

// EmailNotificationEvent is published for the mail consumer to deliver a
// verification code out of band.
type EmailNotificationEvent struct {
	To          string    `json:"to"`
	Template    string    `json:"template"`
	Code        string    `json:"code"`
	VerifyURL   string    `json:"verify_url"`
	RequestedAt time.Time `json:"requested_at"`
}
