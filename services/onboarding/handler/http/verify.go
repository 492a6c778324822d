package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adhikara/signon/internal/pkg/logger"
	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/internal/pkg/session"
	"github.com/adhikara/signon/internal/pkg/validator"
	"github.com/adhikara/signon/services/onboarding"
)

// VerifyHandler handles the email verification step
type VerifyHandler struct {
	onboardingUC onboarding.OnboardingUC
	sessions     *session.Store
}

// NewVerifyHandler creates a new verify handler
func NewVerifyHandler(onboardingUC onboarding.OnboardingUC, sessions *session.Store) *VerifyHandler {
	return &VerifyHandler{
		onboardingUC: onboardingUC,
		sessions:     sessions,
	}
}

// ShowVerify renders the verification form. When the request carries a code
// query parameter, the pair is checked immediately so that the link in the
// verification email completes the step in one click.
func (h *VerifyHandler) ShowVerify(c echo.Context) error {
	if c.QueryParam("code") == "" {
		data := newPageData()
		data.Email = c.QueryParam("email")
		return c.Render(http.StatusOK, "verify", data)
	}
	return h.Verify(c)
}

// Verify checks a submitted email+code pair. On success the email is
// recorded in the session and the visitor moves on to onboarding.
func (h *VerifyHandler) Verify(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid verify payload", logger.ErrorField(err))
		data := newPageData()
		data.Errors["form"] = "Invalid input"
		return c.Render(http.StatusBadRequest, "verify", data)
	}

	data := newPageData()
	data.Email = req.Email
	data.Code = req.Code

	if err := c.Validate(&req); err != nil {
		data.Errors = validator.FieldErrors(err)
		return c.Render(http.StatusBadRequest, "verify", data)
	}

	if err := h.onboardingUC.VerifyCode(c.Request().Context(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, onboarding.ErrInvalidCode):
			data.Errors["code"] = "That code is not valid. Check your email and try again."
			return c.Render(http.StatusBadRequest, "verify", data)
		case errors.Is(err, onboarding.ErrTooManyAttempts):
			data.Errors["code"] = "Too many attempts. Please request a new code."
			return c.Render(http.StatusTooManyRequests, "verify", data)
		default:
			logger.Error("Failed to verify code",
				logger.ErrorField(err),
				logger.String("email", req.Email))
			data.Errors["form"] = "Something went wrong. Please try again."
			return c.Render(http.StatusInternalServerError, "verify", data)
		}
	}

	sess, err := h.sessions.Get(c.Request())
	if err != nil {
		logger.Warn("Discarding unreadable session", logger.ErrorField(err))
	}
	sess.SetOnboardingEmail(req.Email)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logger.Error("Failed to save session", logger.ErrorField(err))
		data.Errors["form"] = "Something went wrong. Please try again."
		return c.Render(http.StatusInternalServerError, "verify", data)
	}

	return c.Redirect(http.StatusSeeOther, "/signup/onboarding")
}
