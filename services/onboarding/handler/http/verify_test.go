package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/internal/pkg/session"
	"github.com/adhikara/signon/internal/pkg/validator"
	"github.com/adhikara/signon/internal/pkg/view"
	"github.com/adhikara/signon/services/onboarding"
	"github.com/adhikara/signon/services/onboarding/mocks"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer
	e.Validator = validator.New()
	return e
}

func newTestSessions() *session.Store {
	return session.NewStore(models.SessionConfig{
		Secret: "test-session-secret",
		MaxAge: 600,
	})
}

func TestShowVerify_IdleForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOnboardingUC(ctrl)
	h := NewVerifyHandler(mockUC, newTestSessions())
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/signup/verify?email=alice%40example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ShowVerify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="code"`)
	assert.Contains(t, rec.Body.String(), `value="alice@example.com"`)
}

func TestShowVerify_CodeInQueryRunsVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOnboardingUC(ctrl)
	h := NewVerifyHandler(mockUC, newTestSessions())
	e := newTestEcho(t)

	mockUC.EXPECT().VerifyCode(gomock.Any(), "alice@example.com", "123456").Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/signup/verify?email=alice%40example.com&code=123456", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ShowVerify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/signup/onboarding", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), session.CookieName+"=")
}

func TestVerify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOnboardingUC(ctrl)
	h := NewVerifyHandler(mockUC, newTestSessions())
	e := newTestEcho(t)

	mockUC.EXPECT().VerifyCode(gomock.Any(), "alice@example.com", "123456").Return(nil)

	form := url.Values{}
	form.Set("email", "alice@example.com")
	form.Set("code", "123456")
	req := httptest.NewRequest(http.MethodPost, "/signup/verify", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/signup/onboarding", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), session.CookieName+"=")
}

func TestVerify_InvalidCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOnboardingUC(ctrl)
	h := NewVerifyHandler(mockUC, newTestSessions())
	e := newTestEcho(t)

	mockUC.EXPECT().VerifyCode(gomock.Any(), "alice@example.com", "654321").Return(onboarding.ErrInvalidCode)

	form := url.Values{}
	form.Set("email", "alice@example.com")
	form.Set("code", "654321")
	req := httptest.NewRequest(http.MethodPost, "/signup/verify", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "That code is not valid")
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestVerify_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOnboardingUC(ctrl)
	h := NewVerifyHandler(mockUC, newTestSessions())
	e := newTestEcho(t)

	// No usecase call expected: validation fails first.
	form := url.Values{}
	form.Set("email", "not-an-email")
	form.Set("code", "12")
	req := httptest.NewRequest(http.MethodPost, "/signup/verify", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Enter a valid email address")
	assert.Contains(t, rec.Body.String(), "Must be exactly 6 characters")
}

func TestVerify_TooManyAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOnboardingUC(ctrl)
	h := NewVerifyHandler(mockUC, newTestSessions())
	e := newTestEcho(t)

	mockUC.EXPECT().VerifyCode(gomock.Any(), "alice@example.com", "123456").Return(onboarding.ErrTooManyAttempts)

	form := url.Values{}
	form.Set("email", "alice@example.com")
	form.Set("code", "123456")
	req := httptest.NewRequest(http.MethodPost, "/signup/verify", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many attempts")
}
