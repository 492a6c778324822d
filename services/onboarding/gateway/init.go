package gateway

import (
	natspkg "github.com/adhikara/signon/internal/pkg/nats"
)

// OnboardingGW implements the onboarding gateway on top of NATS
type OnboardingGW struct {
	natsClient *natspkg.Client
}

// NewOnboardingGW creates a new onboarding gateway
func NewOnboardingGW(natsClient *natspkg.Client) *OnboardingGW {
	return &OnboardingGW{
		natsClient: natsClient,
	}
}
