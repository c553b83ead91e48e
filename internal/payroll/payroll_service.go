package payroll

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"am-hris/internal/domain"
	payrollerrors "am-hris/internal/payroll/errors"
	"am-hris/internal/workday"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ReportKeyPrefix     = "payroll:report:"
	GenerationKeyPrefix = "payroll:gen:"
	reportTTL           = 10 * time.Minute
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Report(ctx context.Context, caller domain.Caller, start, end string) (ReportResponse, error)
	Export(ctx context.Context, caller domain.Caller, start, end string) (*bytes.Buffer, string, error)
	Invalidate(ctx context.Context, organizationID uuid.UUID) error
}

type service struct {
	repo     Repository
	rdb      redis.Cmdable
	sf       *singleflight.Group
	calendar workday.Calendar
	logger   *zap.Logger
}

// NewService builds the payroll report. rdb may be nil, which disables caching.
func NewService(repo Repository, rdb redis.Cmdable, calendar workday.Calendar, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		calendar: calendar,
		logger:   l,
	}
}

func GetGenerationKey(organizationID uuid.UUID) string {
	return GenerationKeyPrefix + organizationID.String()
}

func GetReportKey(organizationID uuid.UUID, generation, start, end string) string {
	return fmt.Sprintf("%s%s:%s:%s:%s", ReportKeyPrefix, organizationID, generation, start, end)
}

// Invalidate bumps the organization's cache generation so every cached report
// of that organization stops being addressed. Old entries expire on their TTL.
func (s *service) Invalidate(ctx context.Context, organizationID uuid.UUID) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Incr(ctx, GetGenerationKey(organizationID)).Err()
}

func (s *service) Report(ctx context.Context, caller domain.Caller, start, end string) (ReportResponse, error) {
	if !caller.IsAdmin() {
		return ReportResponse{}, payrollerrors.ErrForbidden
	}
	from, to, err := s.calendar.ParseRange(start, end)
	if err != nil {
		if errors.Is(err, workday.ErrInvalidRange) {
			return ReportResponse{}, payrollerrors.ErrInvalidDateRange
		}
		return ReportResponse{}, payrollerrors.ErrInvalidDateFormat
	}
	start, end = from.Format(workday.DateLayout), to.Format(workday.DateLayout)
	// end is inclusive through its last millisecond
	until := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, int(999*time.Millisecond), to.Location())

	cacheKey := ""
	if s.rdb != nil {
		cacheKey = s.reportKey(ctx, caller.OrganizationID, start, end)
	}
	if cacheKey != "" {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp ReportResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	sfKey := cacheKey
	if sfKey == "" {
		sfKey = GetReportKey(caller.OrganizationID, "-", start, end)
	}
	v, err, _ := s.sf.Do(sfKey, func() (interface{}, error) {
		members, err := s.repo.FindMembers(ctx, caller.OrganizationID)
		if err != nil {
			return nil, err
		}
		logs, err := s.repo.FindLogs(ctx, caller.OrganizationID, from, until)
		if err != nil {
			return nil, err
		}

		resp := ReportResponse{Start: start, End: end, Rows: Aggregate(members, logs)}

		if cacheKey != "" {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, reportTTL).Err(); err != nil {
					s.logger.Warn("cache payroll report failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("build payroll report failed",
			zap.String("organization_id", caller.OrganizationID.String()),
			zap.Error(err),
		)
		return ReportResponse{}, err
	}
	return v.(ReportResponse), nil
}

// reportKey resolves the current generation. An empty key means the cache is
// unreachable and the report is computed without it.
func (s *service) reportKey(ctx context.Context, organizationID uuid.UUID, start, end string) string {
	gen, err := s.rdb.Get(ctx, GetGenerationKey(organizationID)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		gen = "0"
	case err != nil:
		s.logger.Warn("read payroll cache generation failed", zap.Error(err))
		return ""
	}
	return GetReportKey(organizationID, gen, start, end)
}

func (s *service) Export(ctx context.Context, caller domain.Caller, start, end string) (*bytes.Buffer, string, error) {
	report, err := s.Report(ctx, caller, start, end)
	if err != nil {
		return nil, "", err
	}
	buf, err := BuildWorkbook(report)
	if err != nil {
		s.logger.Error("write payroll workbook failed", zap.Error(err))
		return nil, "", payrollerrors.ErrExportFailed
	}
	return buf, fmt.Sprintf("payroll_report_%s_to_%s.xlsx", report.Start, report.End), nil
}
