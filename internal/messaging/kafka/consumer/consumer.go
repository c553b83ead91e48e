package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"am-hris/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// PayrollCache is invalidated whenever a decision may change payroll totals.
type PayrollCache interface {
	Invalidate(ctx context.Context, organizationID uuid.UUID) error
}

// errPoison marks a message that can never be processed; it is committed and
// skipped.
var errPoison = errors.New("poison message")

func ConsumeApprovalDecided(
	ctx context.Context,
	reader MessageReader,
	cache PayrollCache,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.approval_decided")
	log.Info("approval decided consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("approval decided consumer stopped")
				return
			}
			log.Error("fetch approval decided message failed", zap.Error(err))
			continue
		}

		event, handleErr := HandleApprovalDecided(ctx, msg, cache)
		if handleErr != nil {
			if !IsPoison(handleErr) {
				log.Error("invalidate payroll cache failed",
					zap.String("organization_id", event.OrganizationID),
					zap.Error(handleErr),
				)
				continue
			}
			log.Warn("skipping undecodable approval decided message",
				zap.Int64("offset", msg.Offset),
				zap.Error(handleErr),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit approval decided message failed", zap.Error(err))
			continue
		}

		if handleErr == nil {
			log.Info("payroll cache invalidated from approval decision",
				zap.String("organization_id", event.OrganizationID),
				zap.String("kind", event.Kind),
				zap.String("reference_id", event.ReferenceID),
				zap.String("decision", event.Decision),
			)
		}
	}
}

// HandleApprovalDecided decodes one message and bumps the organization's
// payroll cache generation. A poison error means the message should be
// committed without retry.
func HandleApprovalDecided(ctx context.Context, msg kafkago.Message, cache PayrollCache) (events.ApprovalDecidedEvent, error) {
	var event events.ApprovalDecidedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, errors.Join(errPoison, err)
	}
	orgID, err := uuid.Parse(event.OrganizationID)
	if err != nil {
		return event, errors.Join(errPoison, err)
	}
	return event, cache.Invalidate(ctx, orgID)
}

// IsPoison reports whether err came from a message that can never succeed.
func IsPoison(err error) bool {
	return errors.Is(err, errPoison)
}
