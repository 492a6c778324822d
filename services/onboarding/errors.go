package onboarding

import "errors"

// Domain outcomes surfaced to handlers, which map them onto form fields.
var (
	// ErrInvalidCode covers every unsuccessful verification outcome that
	// must not leak detail to the caller: no matching record, expired
	// record, TOTP mismatch, or a record consumed by a concurrent submit.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrTooManyAttempts means the per-target failure budget is spent.
	ErrTooManyAttempts = errors.New("too many verification attempts")

	// ErrResendCooldown means a code was issued for the target too recently.
	ErrResendCooldown = errors.New("verification code requested too recently")

	// ErrVerificationNotFound is returned by the repository when no record
	// matches, or when a delete affected no rows.
	ErrVerificationNotFound = errors.New("verification not found")

	// ErrEmailTaken means a user already exists for the verified email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken means the requested username is in use.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)
