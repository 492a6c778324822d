package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adhikara/signon/internal/pkg/logger"
	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/internal/pkg/session"
	"github.com/adhikara/signon/internal/pkg/validator"
	"github.com/adhikara/signon/internal/utils"
	"github.com/adhikara/signon/services/onboarding"
)

// OnboardingHandler handles the post-verification onboarding step
type OnboardingHandler struct {
	onboardingUC onboarding.OnboardingUC
	sessions     *session.Store
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingUC onboarding.OnboardingUC, sessions *session.Store) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUC: onboardingUC,
		sessions:     sessions,
	}
}

// ShowOnboarding renders the onboarding form. Visitors without a verified
// email in their session are sent back to the start of the flow.
func (h *OnboardingHandler) ShowOnboarding(c echo.Context) error {
	email, ok := h.verifiedEmail(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	data := newPageData()
	data.Email = email
	return c.Render(http.StatusOK, "onboarding", data)
}

// CompleteOnboarding creates the account for the session's verified email
func (h *OnboardingHandler) CompleteOnboarding(c echo.Context) error {
	email, ok := h.verifiedEmail(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	var req models.OnboardingRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid onboarding payload", logger.ErrorField(err))
		data := newPageData()
		data.Email = email
		data.Errors["form"] = "Invalid input"
		return c.Render(http.StatusBadRequest, "onboarding", data)
	}
	req.Email = email

	data := newPageData()
	data.Email = email
	data.Username = req.Username
	data.Name = req.Name

	if err := c.Validate(&req); err != nil {
		data.Errors = validator.FieldErrors(err)
		return c.Render(http.StatusBadRequest, "onboarding", data)
	}

	auth, err := h.onboardingUC.CompleteOnboarding(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, onboarding.ErrEmailTaken):
			data.Errors["form"] = "An account already exists for this email address."
			return c.Render(http.StatusConflict, "onboarding", data)
		case errors.Is(err, onboarding.ErrUsernameTaken):
			data.Errors["username"] = "That username is taken."
			return c.Render(http.StatusConflict, "onboarding", data)
		default:
			logger.Error("Failed to complete onboarding",
				logger.ErrorField(err),
				logger.String("email", email))
			data.Errors["form"] = "Something went wrong. Please try again."
			return c.Render(http.StatusInternalServerError, "onboarding", data)
		}
	}

	// The flow is done: drop the verified email so the session cannot be
	// replayed to create another account.
	sess, _ := h.sessions.Get(c.Request())
	sess.DeleteOnboardingEmail()
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logger.Warn("Failed to clear onboarding session", logger.ErrorField(err))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", auth)
}

// GetProfile returns the authenticated user's profile
func (h *OnboardingHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		if raw := c.Get("user_id"); raw != nil {
			userID = fmt.Sprintf("%v", raw)
		}
	}
	if userID == "" {
		return utils.UnauthorizedResponse(c, "Missing user ID in token")
	}

	user, err := h.onboardingUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, onboarding.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to retrieve user",
			logger.ErrorField(err),
			logger.String("user_id", userID))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

func (h *OnboardingHandler) verifiedEmail(c echo.Context) (string, bool) {
	sess, err := h.sessions.Get(c.Request())
	if err != nil {
		return "", false
	}
	return sess.OnboardingEmail()
}
