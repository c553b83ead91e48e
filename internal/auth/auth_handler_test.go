package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"am-hris/internal/auth"
	autherrors "am-hris/internal/auth/errors"
	"am-hris/internal/domain"
	"am-hris/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	apperror.Init()
}

type fakeAuthService struct {
	auth.Service
	loginFn func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) CompleteOnboarding(context.Context, domain.Caller, auth.OnboardingRequest) error {
	return nil
}

func newContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets the access token cookie", func(t *testing.T) {
		svc := &fakeAuthService{loginFn: func(_ context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
			assert.Equal(t, "eve@example.com", req.Email)
			return auth.LoginResponse{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil
		}}

		c, w := newContext(http.MethodPost, "/auth/login", `{"email":"eve@example.com","password":"s3cret-pass"}`)
		auth.NewHandler(svc, true).Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.AccessTokenCookie, cookies[0].Name)
		assert.Equal(t, "tok", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := &fakeAuthService{loginFn: func(context.Context, auth.LoginRequest) (auth.LoginResponse, error) {
			return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
		}}

		c, w := newContext(http.MethodPost, "/auth/login", `{"email":"eve@example.com","password":"x"}`)
		auth.NewHandler(svc, false).Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("malformed body", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)
		auth.NewHandler(&fakeAuthService{}, false).Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Onboarding_RequiresCaller(t *testing.T) {
	c, w := newContext(http.MethodPost, "/auth/onboarding", `{"password":"brand-new-pass"}`)
	auth.NewHandler(&fakeAuthService{}, false).CompleteOnboarding(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	c, w := newContext(http.MethodPost, "/auth/logout", "")
	auth.NewHandler(&fakeAuthService{}, false).Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
