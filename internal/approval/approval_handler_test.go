package approval_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"am-hris/internal/approval"
	approvalerrors "am-hris/internal/approval/errors"
	"am-hris/internal/approval/mock"
	"am-hris/internal/domain"
	"am-hris/internal/leavebalance"
	leavebalanceerrors "am-hris/internal/leavebalance/errors"
	"am-hris/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func newDecisionContext(kind, id string, caller *domain.Caller) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/approvals/"+kind+"/"+id+"/approve", nil)
	c.Params = gin.Params{{Key: "kind", Value: kind}, {Key: "id", Value: id}}
	if caller != nil {
		c.Set(middleware.CallerKey, *caller)
	}
	return c, w
}

func TestApprovalHandler_Approve(t *testing.T) {
	admin := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleAdmin}
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		before, after := "5.00", "2.00"
		svc.EXPECT().Approve(gomock.Any(), admin, approval.Ref{ID: id, Kind: approval.KindLeaveRequest}).
			Return(approval.DecisionResponse{
				ID:            id.String(),
				Kind:          approval.KindLeaveRequest,
				Status:        "APPROVED",
				BalanceBefore: &before,
				BalanceAfter:  &after,
				LogsCreated:   3,
			}, nil)

		c, w := newDecisionContext("leave-request", id.String(), &admin)
		approval.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"status":"APPROVED"`)
	})

	t.Run("unknown kind is rejected before the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newDecisionContext("overtime", id.String(), &admin)
		approval.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Ok)
		assert.Equal(t, approvalerrors.ErrInvalidKind.Code, env.Error.Code)
	})

	t.Run("malformed id is rejected before the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newDecisionContext("correction", "not-a-uuid", &admin)
		approval.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, approvalerrors.ErrInvalidRequestID.Message, decodeEnvelope(t, w).Error.Message)
	})

	t.Run("request not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(approval.DecisionResponse{}, approvalerrors.ErrRequestNotFound)

		c, w := newDecisionContext("correction", id.String(), &admin)
		approval.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("already processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(approval.DecisionResponse{}, approvalerrors.ErrAlreadyProcessed)

		c, w := newDecisionContext("manual-entry", id.String(), &admin)
		approval.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "ALREADY_PROCESSED", decodeEnvelope(t, w).Error.Code)
	})

	t.Run("serialization failure is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(approval.DecisionResponse{}, &pgconn.PgError{Code: "40001"})

		c, w := newDecisionContext("leave-request", id.String(), &admin)
		approval.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", decodeEnvelope(t, w).Error.Code)
	})

	t.Run("insufficient balance carries the shortfall", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(approval.DecisionResponse{}, leavebalanceerrors.ErrInsufficientBalance.WithDetails(leavebalance.Shortfall{
				Type:      domain.LeaveVacation,
				Required:  "3.00",
				Available: "2.50",
				Shortfall: "0.50",
			}))

		c, w := newDecisionContext("leave-request", id.String(), &admin)
		approval.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "INSUFFICIENT_BALANCE", env.Error.Code)

		var shortfall leavebalance.Shortfall
		require.NoError(t, json.Unmarshal(env.Error.Details, &shortfall))
		assert.Equal(t, domain.LeaveVacation, shortfall.Type)
		assert.Equal(t, "3.00", shortfall.Required)
		assert.Equal(t, "2.50", shortfall.Available)
		assert.Equal(t, "0.50", shortfall.Shortfall)
	})

	t.Run("own request is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(approval.DecisionResponse{}, approvalerrors.ErrSelfDecision)

		c, w := newDecisionContext("leave-request", id.String(), &admin)
		approval.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newDecisionContext("leave-request", id.String(), nil)
		approval.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestApprovalHandler_Reject(t *testing.T) {
	leader := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleLeader}
	id := uuid.New()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().Reject(gomock.Any(), leader, approval.Ref{ID: id, Kind: approval.KindCorrection}).
		Return(approval.DecisionResponse{ID: id.String(), Kind: approval.KindCorrection, Status: "REJECTED"}, nil)

	c, w := newDecisionContext("CORRECTION", id.String(), &leader)
	approval.NewHandler(svc).Reject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"REJECTED"`)
}

func TestApprovalHandler_GetPending(t *testing.T) {
	leader := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleLeader}

	t.Run("lists with single page meta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().ListPending(gomock.Any(), leader).
			Return([]approval.PendingItem{{ID: uuid.NewString(), Kind: approval.KindManualEntry}}, nil)

		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/approvals", nil)
		c.Set(middleware.CallerKey, leader)

		approval.NewHandler(svc).GetPending(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().ListPending(gomock.Any(), gomock.Any()).Return(nil, approvalerrors.ErrForbidden)

		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/approvals", nil)
		c.Set(middleware.CallerKey, domain.Caller{UserID: uuid.New(), Role: domain.RoleEmployee})

		approval.NewHandler(svc).GetPending(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
