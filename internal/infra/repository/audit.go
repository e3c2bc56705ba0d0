package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"stay-admin/internal/infra"
	"stay-admin/internal/pkg/ptr"
	"stay-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgxpool.Pool the repositories need.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

const (
	insertAuditSQL = `INSERT INTO admin_actions
    (id, action, actor_id, accommodation_id, target_id, payload, outcome, error, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	recentAuditSQL = `SELECT id, action, actor_id, accommodation_id, target_id, payload, outcome, error, created_at
FROM admin_actions
ORDER BY created_at DESC
LIMIT $1`

	maxRecentAudit = 500
)

type AuditRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewAuditRepository(db DBTX, logger *slog.Logger) *AuditRepository {
	return &AuditRepository{db: db, logger: logger}
}

func (r *AuditRepository) Insert(ctx context.Context, e shared.AuditEntry) error {
	var payload []byte
	if len(e.Payload) > 0 {
		payload = e.Payload
	}
	_, err := r.db.Exec(ctx, insertAuditSQL,
		e.ID,
		string(e.Action),
		e.ActorID,
		ptr.TextToPgtype(ptr.NonZero(e.AccommodationID)),
		ptr.TextToPgtype(ptr.NonZero(e.TargetID)),
		payload,
		e.Outcome,
		ptr.TextToPgtype(ptr.NonZero(e.Error)),
		e.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert audit entry", err)
	}
	return nil
}

type auditRow struct {
	ID              uuid.UUID
	Action          string
	ActorID         string
	AccommodationID pgtype.Text
	TargetID        pgtype.Text
	Payload         []byte
	Outcome         string
	Error           pgtype.Text
	CreatedAt       pgtype.Timestamptz
}

func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]shared.AuditEntry, error) {
	if limit <= 0 || limit > maxRecentAudit {
		limit = maxRecentAudit
	}
	rows, err := r.db.Query(ctx, recentAuditSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query audit entries", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByPos[auditRow])
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan audit entries", err)
	}

	entries := make([]shared.AuditEntry, 0, len(collected))
	for _, row := range collected {
		entries = append(entries, toAuditEntry(row))
	}
	return entries, nil
}

func toAuditEntry(row auditRow) shared.AuditEntry {
	e := shared.AuditEntry{
		ID:              row.ID,
		Action:          shared.AuditAction(row.Action),
		ActorID:         row.ActorID,
		AccommodationID: ptr.Deref(ptr.StringFromPgtype(row.AccommodationID)),
		TargetID:        ptr.Deref(ptr.StringFromPgtype(row.TargetID)),
		Outcome:         row.Outcome,
		Error:           ptr.Deref(ptr.StringFromPgtype(row.Error)),
	}
	if len(row.Payload) > 0 {
		e.Payload = json.RawMessage(row.Payload)
	}
	if t := ptr.TimeFromPgtype(row.CreatedAt); t != nil {
		e.CreatedAt = *t
	}
	return e
}
