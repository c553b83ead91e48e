package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"am-hris/internal/domain"
	"am-hris/internal/leave"
	leaveerrors "am-hris/internal/leave/errors"
	"am-hris/internal/leave/mock"
	"am-hris/internal/leavebalance"
	leavebalanceerrors "am-hris/internal/leavebalance/errors"
	"am-hris/internal/middleware"
	"am-hris/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	apperror.Init()
}

func newContext(method, target, body string, caller *domain.Caller) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if caller != nil {
		c.Set(middleware.CallerKey, *caller)
	}
	return c, w
}

type errorEnvelope struct {
	Ok    bool `json:"ok"`
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func TestLeaveHandler_Create(t *testing.T) {
	employee := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleEmployee}
	body := `{"type":"VACATION","start_date":"2026-03-16","end_date":"2026-03-18","reason":"Family trip"}`

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Request(gomock.Any(), employee, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.Caller, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, "VACATION", req.Type)
				assert.Equal(t, "2026-03-16", req.StartDate)
				return leave.LeaveResponse{ID: uuid.NewString(), Type: req.Type, NetDays: "3.0", Status: "PENDING"}, nil
			})

		c, w := newContext(http.MethodPost, "/leaves", body, &employee)
		leave.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"net_days":"3.0"`)
	})

	t.Run("unknown type fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newContext(http.MethodPost, "/leaves",
			`{"type":"SABBATICAL","start_date":"2026-03-16","end_date":"2026-03-18"}`, &employee)
		leave.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("insufficient balance carries the shortfall", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(leave.LeaveResponse{}, leavebalanceerrors.ErrInsufficientBalance.WithDetails(leavebalance.Shortfall{
				Type:      domain.LeaveVacation,
				Required:  "3.00",
				Available: "1.00",
				Shortfall: "2.00",
			}))

		c, w := newContext(http.MethodPost, "/leaves", body, &employee)
		leave.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var env errorEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, "INSUFFICIENT_BALANCE", env.Error.Code)

		var shortfall leavebalance.Shortfall
		require.NoError(t, json.Unmarshal(env.Error.Details, &shortfall))
		assert.Equal(t, "1.00", shortfall.Available)
		assert.Equal(t, "2.00", shortfall.Shortfall)
	})

	t.Run("overlap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap)

		c, w := newContext(http.MethodPost, "/leaves", body, &employee)
		leave.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newContext(http.MethodPost, "/leaves", body, nil)
		leave.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLeaveHandler_GetMine(t *testing.T) {
	employee := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleEmployee}
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().ListMine(gomock.Any(), employee).
		Return([]leave.LeaveResponse{{ID: uuid.NewString(), Status: "APPROVED"}}, nil)

	c, w := newContext(http.MethodGet, "/leaves", "", &employee)
	leave.NewHandler(svc).GetMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)
}

func TestLeaveHandler_Cancel(t *testing.T) {
	employee := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleEmployee}
	id := uuid.NewString()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", leaveerrors.ErrLeaveNotFound, http.StatusNotFound},
		{"already decided", leaveerrors.ErrNotCancellable, http.StatusConflict},
		{"malformed id", leaveerrors.ErrInvalidLeaveID, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mock.NewMockService(ctrl)
			svc.EXPECT().Cancel(gomock.Any(), employee, id).Return(leave.LeaveResponse{}, tc.err)

			c, w := newContext(http.MethodPost, "/leaves/"+id+"/cancel", "", &employee)
			c.Params = gin.Params{{Key: "id", Value: id}}
			leave.NewHandler(svc).Cancel(c)

			assert.Equal(t, tc.status, w.Code)
		})
	}

	t.Run("cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Cancel(gomock.Any(), employee, id).
			Return(leave.LeaveResponse{ID: id, Status: "CANCELLED"}, nil)

		c, w := newContext(http.MethodPost, "/leaves/"+id+"/cancel", "", &employee)
		c.Params = gin.Params{{Key: "id", Value: id}}
		leave.NewHandler(svc).Cancel(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
