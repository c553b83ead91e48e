package approval

import (
	"strings"

	approvalerrors "am-hris/internal/approval/errors"
	"am-hris/internal/domain"

	"github.com/google/uuid"
)

// Kind tags which table a Ref points into.
type Kind string

const (
	KindCorrection   Kind = "CORRECTION"
	KindManualEntry  Kind = "MANUAL_ENTRY"
	KindLeaveRequest Kind = "LEAVE_REQUEST"
)

// ParseKind accepts the canonical tag as well as the lower-case, dashed form
// used in URLs (manual-entry).
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "-", "_")))
	switch k {
	case KindCorrection, KindManualEntry, KindLeaveRequest:
		return k, nil
	}
	return "", approvalerrors.ErrInvalidKind
}

// Ref identifies one pending request.
type Ref struct {
	ID   uuid.UUID
	Kind Kind
}

func ParseRef(kind, id string) (Ref, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Ref{}, err
	}
	rid, err := uuid.Parse(id)
	if err != nil {
		return Ref{}, approvalerrors.ErrInvalidRequestID
	}
	return Ref{ID: rid, Kind: k}, nil
}

// Decision is the terminal status a request moves to.
type Decision = domain.Status

const (
	Approve Decision = domain.StatusApproved
	Reject  Decision = domain.StatusRejected
)
