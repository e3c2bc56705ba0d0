package shared

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"stay-admin/internal/pkg/clock"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditBookingSubmit     AuditAction = "booking.submit"
	AuditBlockedDateCreate AuditAction = "blocked_date.create"
	AuditBlockedDateUpdate AuditAction = "blocked_date.update"
	AuditBlockedDateDelete AuditAction = "blocked_date.delete"
)

const (
	AuditOutcomeApplied  = "applied"
	AuditOutcomeRejected = "rejected"
	AuditOutcomeFailed   = "failed"
)

type AuditEntry struct {
	ID              uuid.UUID
	Action          AuditAction
	ActorID         string
	AccommodationID string
	TargetID        string
	Payload         json.RawMessage
	Outcome         string
	Error           string
	CreatedAt       time.Time
}

type AuditRepository interface {
	Insert(ctx context.Context, entry AuditEntry) error
	Recent(ctx context.Context, limit int) ([]AuditEntry, error)
}

// Auditor records write attempts. A failing audit store is logged and
// otherwise ignored.
type Auditor struct {
	repo   AuditRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewAuditor(repo AuditRepository, clk clock.Clock, logger *slog.Logger) *Auditor {
	return &Auditor{repo: repo, clock: clk, logger: logger}
}

func (a *Auditor) Record(ctx context.Context, entry AuditEntry, payload any, opErr error) {
	entry.ID = uuid.New()
	entry.CreatedAt = a.clock.Now()
	if entry.Outcome == "" {
		entry.Outcome = AuditOutcomeApplied
		if opErr != nil {
			entry.Outcome = AuditOutcomeFailed
		}
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			a.logger.Warn("audit payload not encodable", "action", entry.Action, "error", err)
		} else {
			entry.Payload = raw
		}
	}

	// detached so a cancelled request still leaves its trace
	ctx = context.WithoutCancel(ctx)
	if err := a.repo.Insert(ctx, entry); err != nil {
		a.logger.Error("failed to write audit entry",
			"action", entry.Action,
			"accommodation_id", entry.AccommodationID,
			"error", err)
	}
}

func (a *Auditor) Recent(ctx context.Context, limit int) ([]AuditEntry, error) {
	return a.repo.Recent(ctx, limit)
}
