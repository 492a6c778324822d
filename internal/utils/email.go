package utils

import (
	"fmt"
	"net/mail"
	"strings"
)

// NormalizeEmail validates an email address and returns its canonical form:
// trimmed, lower-cased, no display name.
func NormalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", fmt.Errorf("email address is empty")
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid email address: %w", err)
	}

	// Reject display-name forms like `Name <a@b.c>`; only a bare address
	// is a valid verification target.
	if addr.Address != trimmed {
		return "", fmt.Errorf("invalid email address format")
	}

	return strings.ToLower(addr.Address), nil
}
