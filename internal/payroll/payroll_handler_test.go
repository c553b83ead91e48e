package payroll_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"am-hris/internal/domain"
	"am-hris/internal/middleware"
	"am-hris/internal/payroll"
	payrollerrors "am-hris/internal/payroll/errors"
	"am-hris/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newContext(method, target string, caller *domain.Caller) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	if caller != nil {
		c.Set(middleware.CallerKey, *caller)
	}
	return c, w
}

func TestPayrollHandler_GetReport(t *testing.T) {
	admin := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Report(gomock.Any(), admin, "2026-03-01", "2026-03-31").
			Return(payroll.ReportResponse{Rows: []payroll.ReportRow{{Name: "Alice"}}}, nil)

		c, w := newContext(http.MethodGet, "/payroll?start=2026-03-01&end=2026-03-31", &admin)
		payroll.NewHandler(svc).GetReport(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Alice"`)
	})

	t.Run("missing query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newContext(http.MethodGet, "/payroll?start=2026-03-01", &admin)
		payroll.NewHandler(svc).GetReport(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(payroll.ReportResponse{}, payrollerrors.ErrForbidden)

		c, w := newContext(http.MethodGet, "/payroll?start=2026-03-01&end=2026-03-31", &admin)
		payroll.NewHandler(svc).GetReport(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newContext(http.MethodGet, "/payroll?start=2026-03-01&end=2026-03-31", nil)
		payroll.NewHandler(svc).GetReport(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPayrollHandler_Export(t *testing.T) {
	admin := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleAdmin}
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().Export(gomock.Any(), admin, "2026-03-01", "2026-03-31").
		Return(bytes.NewBufferString("xlsx"), "payroll_report_2026-03-01_to_2026-03-31.xlsx", nil)

	c, w := newContext(http.MethodGet, "/payroll/export?start=2026-03-01&end=2026-03-31", &admin)
	payroll.NewHandler(svc).Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="payroll_report_2026-03-01_to_2026-03-31.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx", w.Body.String())
}
