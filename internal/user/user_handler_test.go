package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"am-hris/internal/domain"
	"am-hris/internal/middleware"
	"am-hris/internal/user"
	usererrors "am-hris/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

type fakeUserService struct {
	user.Service
	addStaffFn func(ctx context.Context, caller domain.Caller, req user.AddStaffRequest) (user.AddStaffResponse, error)
	deleteFn   func(ctx context.Context, caller domain.Caller, id string) error
}

func (f *fakeUserService) AddStaff(ctx context.Context, caller domain.Caller, req user.AddStaffRequest) (user.AddStaffResponse, error) {
	return f.addStaffFn(ctx, caller, req)
}

func (f *fakeUserService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	return f.deleteFn(ctx, caller, id)
}

func newContext(method, path, body string, caller *domain.Caller) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if caller != nil {
		c.Set(middleware.CallerKey, *caller)
	}
	return c, w
}

func TestUserHandler_Create(t *testing.T) {
	admin := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("success returns temp password once", func(t *testing.T) {
		svc := &fakeUserService{
			addStaffFn: func(ctx context.Context, caller domain.Caller, req user.AddStaffRequest) (user.AddStaffResponse, error) {
				assert.Equal(t, admin, caller)
				assert.Equal(t, "LEADER", req.Role)
				return user.AddStaffResponse{Staff: user.StaffResponse{Email: req.Email}, TempPassword: "AmHRIS-abcd1234!"}, nil
			},
		}

		c, w := newContext(http.MethodPost, "/staff", `{"name":"Lee","email":"lee@example.com","role":"LEADER"}`, &admin)
		user.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got user.AddStaffResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "AmHRIS-abcd1234!", got.TempPassword)
	})

	t.Run("invalid role is a validation error", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/staff", `{"name":"Lee","email":"lee@example.com","role":"OWNER"}`, &admin)
		user.NewHandler(&fakeUserService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("no caller", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/staff", `{}`, nil)
		user.NewHandler(&fakeUserService{}).Create(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	admin := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleAdmin}
	svc := &fakeUserService{
		deleteFn: func(ctx context.Context, caller domain.Caller, id string) error {
			return usererrors.ErrCannotDeleteSelf
		},
	}

	c, w := newContext(http.MethodDelete, "/staff/"+admin.UserID.String(), "", &admin)
	c.Params = gin.Params{{Key: "id", Value: admin.UserID.String()}}
	user.NewHandler(svc).Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, usererrors.ErrCannotDeleteSelf.Message, env.Error.Message)
}
