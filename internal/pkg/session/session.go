package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/adhikara/signon/internal/pkg/models"
)

// CookieName is the name of the session cookie
const CookieName = "signon-session"

// onboardingEmailKey is the single value this flow writes: the email address
// that passed verification, read by the onboarding step.
const onboardingEmailKey = "onboarding_email"

// Store wraps a cookie-backed session store
type Store struct {
	store sessions.Store
}

// NewStore creates a cookie session store from application config
func NewStore(cfg models.SessionConfig) *Store {
	cs := sessions.NewCookieStore([]byte(cfg.Secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{store: cs}
}

// Get returns the session for the request, creating one if none exists.
// A fresh session is returned alongside the error when the request carries
// a cookie that fails to decode, so callers can start over.
func (s *Store) Get(r *http.Request) (*Session, error) {
	base, err := s.store.Get(r, CookieName)
	return &Session{base: base}, err
}

// Session holds the per-request session values
type Session struct {
	base *sessions.Session
}

// OnboardingEmail returns the verified email, if one is set
func (s *Session) OnboardingEmail() (string, bool) {
	email, ok := s.base.Values[onboardingEmailKey].(string)
	return email, ok
}

// SetOnboardingEmail records the verified email for the onboarding step
func (s *Session) SetOnboardingEmail(email string) {
	s.base.Values[onboardingEmailKey] = email
}

// DeleteOnboardingEmail clears the verified email
func (s *Session) DeleteOnboardingEmail() {
	delete(s.base.Values, onboardingEmailKey)
}

// Save writes the session cookie to the response
func (s *Session) Save(r *http.Request, w http.ResponseWriter) error {
	return s.base.Save(r, w)
}
