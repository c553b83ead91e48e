package approval

import (
	"context"
	"errors"
	"sort"
	"time"

	approvalerrors "am-hris/internal/approval/errors"
	"am-hris/internal/audit"
	"am-hris/internal/correction"
	"am-hris/internal/domain"
	"am-hris/internal/events"
	"am-hris/internal/leave"
	"am-hris/internal/leavebalance"
	"am-hris/internal/messaging/kafka"
	"am-hris/internal/shared/contextutil"
	"am-hris/internal/shared/uow"
	"am-hris/internal/timelog"
	"am-hris/internal/user"
	"am-hris/internal/workday"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// LeaveLogSeconds is the duration of every time log derived from an approved
// leave day.
const LeaveLogSeconds = int64(workday.HoursPerDay * 60 * 60)

//go:generate mockgen -source=approval_service.go -destination=mock/approval_service_mock.go -package=mock
type Service interface {
	ListPending(ctx context.Context, caller domain.Caller) ([]PendingItem, error)
	Approve(ctx context.Context, caller domain.Caller, ref Ref) (DecisionResponse, error)
	Reject(ctx context.Context, caller domain.Caller, ref Ref) (DecisionResponse, error)
}

// CacheInvalidator drops derived read models of an organization once a
// decision committed.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, organizationID uuid.UUID) error
}

type Dependencies struct {
	UnitOfWork  uow.UnitOfWork
	Corrections correction.Repository
	TimeLogs    timelog.Repository
	Leaves      leave.Repository
	Balances    leavebalance.Repository
	Audit       audit.Sink
	Outbox      kafka.OutboxRepository
	Invalidator CacheInvalidator
	Calendar    workday.Calendar
}

type service struct {
	deps   Dependencies
	now    func() time.Time
	logger *zap.Logger
}

// NewService builds the approval workflow. Outbox and Invalidator are optional.
func NewService(deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	return &service{deps: deps, now: time.Now, logger: l}
}

// ListPending merges the three request queues visible to the caller, newest
// first.
func (s *service) ListPending(ctx context.Context, caller domain.Caller) ([]PendingItem, error) {
	if !caller.IsApprover() {
		return nil, approvalerrors.ErrForbidden
	}

	var (
		corrections []correction.TimeCorrection
		manual      []timelog.TimeLog
		leaves      []leave.LeaveRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		corrections, err = s.deps.Corrections.FindPending(gctx, caller)
		return err
	})
	g.Go(func() error {
		var err error
		manual, err = s.deps.TimeLogs.FindPendingManual(gctx, caller)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.deps.Leaves.FindPending(gctx, caller)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("list pending approvals failed", zap.Error(err))
		return nil, err
	}

	items := make([]PendingItem, 0, len(corrections)+len(manual)+len(leaves))
	for _, c := range corrections {
		items = append(items, fromCorrection(c))
	}
	for _, t := range manual {
		items = append(items, fromManualEntry(t))
	}
	for _, l := range leaves {
		items = append(items, fromLeave(l))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *service) Approve(ctx context.Context, caller domain.Caller, ref Ref) (DecisionResponse, error) {
	return s.decide(ctx, caller, ref, Approve)
}

func (s *service) Reject(ctx context.Context, caller domain.Caller, ref Ref) (DecisionResponse, error) {
	return s.decide(ctx, caller, ref, Reject)
}

// outcome is what a per-kind handler reports back for the event and logs.
type outcome struct {
	resp   DecisionResponse
	userID uuid.UUID
}

func (s *service) decide(ctx context.Context, caller domain.Caller, ref Ref, decision Decision) (DecisionResponse, error) {
	if !caller.IsApprover() {
		return DecisionResponse{}, approvalerrors.ErrForbidden
	}

	var out outcome
	err := s.deps.UnitOfWork.Do(ctx, func(tx *gorm.DB) error {
		at := s.now()
		var err error
		switch ref.Kind {
		case KindCorrection:
			out, err = s.decideCorrection(ctx, tx, caller, ref.ID, decision, at)
		case KindManualEntry:
			out, err = s.decideManualEntry(ctx, tx, caller, ref.ID, decision, at)
		case KindLeaveRequest:
			out, err = s.decideLeave(ctx, tx, caller, ref.ID, decision, at)
		default:
			return approvalerrors.ErrInvalidKind
		}
		if err != nil {
			return err
		}
		return s.enqueueDecided(ctx, tx, caller, ref, decision, out, at)
	})
	if err != nil {
		s.logger.Warn("approval decision failed",
			zap.String("kind", string(ref.Kind)),
			zap.String("id", ref.ID.String()),
			zap.String("decision", string(decision)),
			zap.Error(err),
		)
		return DecisionResponse{}, err
	}

	if s.deps.Invalidator != nil {
		if err := s.deps.Invalidator.Invalidate(ctx, caller.OrganizationID); err != nil {
			s.logger.Error("invalidate payroll cache failed",
				zap.String("organization_id", caller.OrganizationID.String()),
				zap.Error(err),
			)
		}
	}
	s.logger.Info("approval decided",
		zap.String("kind", string(ref.Kind)),
		zap.String("id", ref.ID.String()),
		zap.String("decision", string(decision)),
		zap.String("decided_by", caller.UserID.String()),
	)
	return out.resp, nil
}

// inScope applies the hierarchy rule on the mutation path: leaders only act on
// their direct reports.
func inScope(caller domain.Caller, owner *user.Ref) bool {
	if caller.IsAdmin() {
		return true
	}
	return owner != nil && owner.ManagerID != nil && *owner.ManagerID == caller.UserID
}

// authorize gates a decision on a request owned by ownerID. Nobody decides
// their own request, admins included.
func authorize(caller domain.Caller, ownerID uuid.UUID, owner *user.Ref) error {
	if !inScope(caller, owner) {
		return approvalerrors.ErrRequestNotFound
	}
	if ownerID == caller.UserID {
		return approvalerrors.ErrSelfDecision
	}
	return nil
}

func (s *service) decideCorrection(ctx context.Context, tx *gorm.DB, caller domain.Caller, id uuid.UUID, decision Decision, at time.Time) (outcome, error) {
	repo := s.deps.Corrections.WithTx(tx)

	c, err := repo.FindByID(ctx, caller.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return outcome{}, approvalerrors.ErrRequestNotFound
		}
		return outcome{}, err
	}
	if c.TimeLog == nil {
		return outcome{}, approvalerrors.ErrRequestNotFound
	}
	if err := authorize(caller, c.TimeLog.UserID, c.TimeLog.User); err != nil {
		return outcome{}, err
	}
	if c.Status != domain.StatusPending {
		return outcome{}, approvalerrors.ErrAlreadyProcessed
	}

	rows, err := repo.TransitionStatus(ctx, id, domain.StatusPending, decision, caller.UserID, at)
	if err != nil {
		return outcome{}, err
	}
	if rows == 0 {
		return outcome{}, approvalerrors.ErrAlreadyProcessed
	}

	out := outcome{
		resp:   DecisionResponse{ID: id.String(), Kind: KindCorrection, Status: string(decision)},
		userID: c.TimeLog.UserID,
	}

	if decision == Reject {
		return out, s.deps.Audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionRejectCorrection,
			EntityType: "TimeCorrection",
			EntityID:   id.String(),
			Old:        map[string]any{"status": domain.StatusPending},
			New:        map[string]any{"status": domain.StatusRejected},
		})
	}

	target := *c.TimeLog
	before := timelog.MapToResponse(target)

	start := target.StartTime
	if c.RequestedStartTime != nil {
		start = *c.RequestedStartTime
	}
	end := target.EndTime
	if c.RequestedEndTime != nil {
		end = c.RequestedEndTime
	}
	duration := target.Duration
	if c.RequestedStartTime != nil && c.RequestedEndTime != nil {
		d := timelog.WholeSeconds(*c.RequestedStartTime, *c.RequestedEndTime)
		duration = &d
	}

	if err := s.deps.TimeLogs.WithTx(tx).ApplyCorrection(ctx, target.ID, start, end, duration); err != nil {
		return outcome{}, err
	}

	target.StartTime = start
	target.EndTime = end
	target.Duration = duration
	target.Status = domain.StatusApproved
	return out, s.deps.Audit.Record(ctx, tx, audit.Entry{
		Caller:     caller,
		Action:     audit.ActionApproveCorrection,
		EntityType: "TimeLog",
		EntityID:   target.ID.String(),
		Old:        before,
		New:        timelog.MapToResponse(target),
	})
}

func (s *service) decideManualEntry(ctx context.Context, tx *gorm.DB, caller domain.Caller, id uuid.UUID, decision Decision, at time.Time) (outcome, error) {
	repo := s.deps.TimeLogs.WithTx(tx)

	t, err := repo.FindByID(ctx, caller.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return outcome{}, approvalerrors.ErrRequestNotFound
		}
		return outcome{}, err
	}
	if !t.IsManual {
		return outcome{}, approvalerrors.ErrRequestNotFound
	}
	if err := authorize(caller, t.UserID, t.User); err != nil {
		return outcome{}, err
	}
	if t.Status != domain.StatusPending {
		return outcome{}, approvalerrors.ErrAlreadyProcessed
	}

	rows, err := repo.TransitionStatus(ctx, id, domain.StatusPending, decision, caller.UserID, at)
	if err != nil {
		return outcome{}, err
	}
	if rows == 0 {
		return outcome{}, approvalerrors.ErrAlreadyProcessed
	}

	action := audit.ActionApproveManualEntry
	if decision == Reject {
		action = audit.ActionRejectManualEntry
	}
	before := timelog.MapToResponse(*t)
	t.Status = decision
	t.ProcessedByID = &caller.UserID
	t.ProcessedAt = &at

	out := outcome{
		resp:   DecisionResponse{ID: id.String(), Kind: KindManualEntry, Status: string(decision)},
		userID: t.UserID,
	}
	return out, s.deps.Audit.Record(ctx, tx, audit.Entry{
		Caller:     caller,
		Action:     action,
		EntityType: "TimeLog",
		EntityID:   id.String(),
		Old:        before,
		New:        timelog.MapToResponse(*t),
	})
}

func (s *service) decideLeave(ctx context.Context, tx *gorm.DB, caller domain.Caller, id uuid.UUID, decision Decision, at time.Time) (outcome, error) {
	repo := s.deps.Leaves.WithTx(tx)

	l, err := repo.FindByID(ctx, caller.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return outcome{}, approvalerrors.ErrRequestNotFound
		}
		return outcome{}, err
	}
	if err := authorize(caller, l.UserID, l.User); err != nil {
		return outcome{}, err
	}
	if l.Status != domain.StatusPending {
		return outcome{}, approvalerrors.ErrAlreadyProcessed
	}

	out := outcome{
		resp:   DecisionResponse{ID: id.String(), Kind: KindLeaveRequest, Status: string(decision)},
		userID: l.UserID,
	}

	if decision == Reject {
		rows, err := repo.TransitionStatus(ctx, id, domain.StatusPending, domain.StatusRejected, &caller.UserID, &at)
		if err != nil {
			return outcome{}, err
		}
		if rows == 0 {
			return outcome{}, approvalerrors.ErrAlreadyProcessed
		}
		return out, s.deps.Audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionRejectLeaveRequest,
			EntityType: "LeaveRequest",
			EntityID:   id.String(),
			Old:        map[string]any{"status": domain.StatusPending},
			New:        map[string]any{"status": domain.StatusRejected},
		})
	}

	balances := s.deps.Balances.WithTx(tx)
	balance, err := balances.FindByUserAndType(ctx, l.UserID, l.Type, true)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return outcome{}, err
	}
	if err := leavebalance.EnsureSufficient(balance, l.Type, l.NetDays); err != nil {
		return outcome{}, err
	}

	rows, err := repo.TransitionStatus(ctx, id, domain.StatusPending, domain.StatusApproved, &caller.UserID, &at)
	if err != nil {
		return outcome{}, err
	}
	if rows == 0 {
		return outcome{}, approvalerrors.ErrAlreadyProcessed
	}

	if err := balances.Decrement(ctx, balance.ID, l.NetDays); err != nil {
		return outcome{}, err
	}

	logs := s.leaveLogs(*l, caller.UserID, at)
	if err := s.deps.TimeLogs.WithTx(tx).CreateBatch(ctx, logs); err != nil {
		return outcome{}, err
	}

	before := balance.Balance.StringFixed(2)
	after := balance.Balance.Sub(l.NetDays).StringFixed(2)
	out.resp.BalanceBefore = &before
	out.resp.BalanceAfter = &after
	out.resp.LogsCreated = len(logs)

	return out, s.deps.Audit.Record(ctx, tx, audit.Entry{
		Caller:     caller,
		Action:     audit.ActionApproveLeaveRequest,
		EntityType: "LeaveRequest",
		EntityID:   id.String(),
		Old:        map[string]any{"status": domain.StatusPending, "balance": before},
		New: map[string]any{
			"status":        domain.StatusApproved,
			"type":          l.Type,
			"netDays":       l.NetDays.String(),
			"balanceBefore": before,
			"balanceAfter":  after,
			"logsCreated":   len(logs),
		},
	})
}

// leaveLogs expands an approved request into one 8h LEAVE log per working
// day, each starting at local midnight.
func (s *service) leaveLogs(l leave.LeaveRequest, approver uuid.UUID, at time.Time) []timelog.TimeLog {
	cal := s.deps.Calendar
	days := cal.WorkingDays(cal.FromDate(l.StartDate), cal.FromDate(l.EndDate))

	logs := make([]timelog.TimeLog, 0, len(days))
	for _, day := range days {
		end := day.Add(time.Duration(LeaveLogSeconds) * time.Second)
		duration := LeaveLogSeconds
		processedBy := approver
		processedAt := at
		logs = append(logs, timelog.TimeLog{
			ID:             uuid.New(),
			UserID:         l.UserID,
			OrganizationID: l.OrganizationID,
			StartTime:      day,
			EndTime:        &end,
			Duration:       &duration,
			Type:           domain.TimeLogLeave,
			Status:         domain.StatusApproved,
			IsManual:       true,
			ProcessedByID:  &processedBy,
			ProcessedAt:    &processedAt,
			CreatedAt:      at,
			UpdatedAt:      at,
		})
	}
	return logs
}

func (s *service) enqueueDecided(ctx context.Context, tx *gorm.DB, caller domain.Caller, ref Ref, decision Decision, out outcome, at time.Time) error {
	if s.deps.Outbox == nil {
		return nil
	}
	event, err := kafka.NewOutboxEvent(ctx, events.ApprovalDecidedTopic, events.EventTypeApprovalDecided, string(ref.Kind), ref.ID.String(), events.ApprovalDecidedEvent{
		EventType:      events.EventTypeApprovalDecided,
		RequestID:      contextutil.GetRequestID(ctx),
		Kind:           string(ref.Kind),
		ReferenceID:    ref.ID.String(),
		Decision:       string(decision),
		OrganizationID: caller.OrganizationID.String(),
		UserID:         out.userID.String(),
		DecidedBy:      caller.UserID.String(),
		LogsCreated:    out.resp.LogsCreated,
		OccurredAt:     at.UTC(),
	})
	if err != nil {
		return err
	}
	return s.deps.Outbox.WithTx(tx).Create(ctx, event)
}
