package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/adhikara/signon/internal/pkg/logger"
	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/internal/pkg/validator"
	"github.com/adhikara/signon/services/onboarding"
)

// SignupHandler handles the signup entry step
type SignupHandler struct {
	onboardingUC onboarding.OnboardingUC
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(onboardingUC onboarding.OnboardingUC) *SignupHandler {
	return &SignupHandler{
		onboardingUC: onboardingUC,
	}
}

// ShowSignup renders the signup form
func (h *SignupHandler) ShowSignup(c echo.Context) error {
	return c.Render(http.StatusOK, "signup", newPageData())
}

// Signup handles a submitted email address: it issues a verification code
// and moves the visitor on to the verify step.
func (h *SignupHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid signup payload", logger.ErrorField(err))
		data := newPageData()
		data.Errors["form"] = "Invalid input"
		return c.Render(http.StatusBadRequest, "signup", data)
	}

	data := newPageData()
	data.Email = req.Email

	if err := c.Validate(&req); err != nil {
		data.Errors = validator.FieldErrors(err)
		return c.Render(http.StatusBadRequest, "signup", data)
	}

	if err := h.onboardingUC.RequestVerification(c.Request().Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, onboarding.ErrResendCooldown):
			data.Errors["form"] = "A code was sent recently. Please wait a moment before requesting another."
			return c.Render(http.StatusTooManyRequests, "signup", data)
		default:
			logger.Error("Failed to issue verification",
				logger.ErrorField(err),
				logger.String("email", req.Email))
			data.Errors["form"] = "Something went wrong. Please try again."
			return c.Render(http.StatusInternalServerError, "signup", data)
		}
	}

	return c.Redirect(http.StatusSeeOther, "/signup/verify?email="+url.QueryEscape(req.Email))
}
