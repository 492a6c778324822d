package handler

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/adhikara/signon/internal/pkg/database"
	"github.com/adhikara/signon/internal/pkg/middleware"
	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/services/onboarding/handler/http"
)

// Handler coordinates the HTTP handlers for the signup flow
type Handler struct {
	signupHandler     *http.SignupHandler
	verifyHandler     *http.VerifyHandler
	onboardingHandler *http.OnboardingHandler
	redisClient       *database.RedisClient
	cfg               *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	signupHandler *http.SignupHandler,
	verifyHandler *http.VerifyHandler,
	onboardingHandler *http.OnboardingHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		signupHandler:     signupHandler,
		verifyHandler:     verifyHandler,
		onboardingHandler: onboardingHandler,
		redisClient:       redisClient,
		cfg:               cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for API requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if userID, exists := claims["user_id"]; exists {
					c.Set("user_id", fmt.Sprintf("%v", userID))
				}
			}
		},
	})
}

// RegisterRoutes registers the signup flow routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Submission endpoints get a per-IP rate limit on top of the
	// per-target throttling inside the usecase.
	submitLimit := middleware.IPRateLimiter(30, time.Minute, h.redisClient.Client)

	signup := e.Group("/signup")
	signup.GET("", h.signupHandler.ShowSignup)
	signup.POST("", h.signupHandler.Signup, submitLimit)
	signup.GET("/verify", h.verifyHandler.ShowVerify)
	signup.POST("/verify", h.verifyHandler.Verify, submitLimit)
	signup.GET("/onboarding", h.onboardingHandler.ShowOnboarding)
	signup.POST("/onboarding", h.onboardingHandler.CompleteOnboarding, submitLimit)

	// Protected routes with JWT middleware
	protected := e.Group("", h.GetJWTMiddleware())
	protected.GET("/me", h.onboardingHandler.GetProfile)
}
