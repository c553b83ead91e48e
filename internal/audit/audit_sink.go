package audit

import (
	"context"
	"encoding/json"
	"time"

	"am-hris/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Entry describes one mutation. Old and New are marshalled to JSON as-is.
type Entry struct {
	Caller     domain.Caller
	Action     Action
	EntityType string
	EntityID   string
	Old        any
	New        any
}

// Sink writes audit rows inside the caller's transaction. A failed write is
// returned so the surrounding unit of work rolls back with it.
//
//go:generate mockgen -source=audit_sink.go -destination=mock/audit_sink_mock.go -package=mock
type Sink interface {
	Record(ctx context.Context, tx *gorm.DB, entry Entry) error
}

type sink struct {
	repo Repository
	now  func() time.Time
}

func NewSink(repo Repository) Sink {
	return &sink{repo: repo, now: time.Now}
}

func (s *sink) Record(ctx context.Context, tx *gorm.DB, entry Entry) error {
	log, err := s.build(entry)
	if err != nil {
		return err
	}
	repo := s.repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}
	return repo.Create(ctx, log)
}

func (s *sink) build(entry Entry) (*AuditLog, error) {
	oldValue, err := toJSON(entry.Old)
	if err != nil {
		return nil, err
	}
	newValue, err := toJSON(entry.New)
	if err != nil {
		return nil, err
	}

	var actorID *uuid.UUID
	if entry.Caller.UserID != uuid.Nil {
		id := entry.Caller.UserID
		actorID = &id
	}

	return &AuditLog{
		ID:             uuid.New(),
		OrganizationID: entry.Caller.OrganizationID,
		ActorID:        actorID,
		ActorName:      entry.Caller.Name,
		ActorEmail:     entry.Caller.Email,
		Action:         entry.Action,
		EntityType:     entry.EntityType,
		EntityID:       entry.EntityID,
		OldValue:       oldValue,
		NewValue:       newValue,
		IPAddress:      entry.Caller.IPAddress,
		UserAgent:      entry.Caller.UserAgent,
		CreatedAt:      s.now(),
	}, nil
}

func toJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
