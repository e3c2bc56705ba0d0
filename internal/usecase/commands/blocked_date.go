package commands

import (
	"context"
	"log/slog"
	"time"

	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/infra"
	"stay-admin/internal/pkg/errs"
	"stay-admin/internal/pkg/money"
	"stay-admin/internal/usecase/queries"
	"stay-admin/internal/usecase/shared"
)

type SaveBlockedDatesRequest struct {
	AccommodationID string
	Dates           []time.Time
	Section         blockeddate.Section

	AdultPrice *money.Money
	ChildPrice *money.Money

	BlockAll      bool
	SelectedRooms int
	// AvailableAtLoad is the availability the editor showed. When nil it is
	// resolved per date at save time.
	AvailableAtLoad *int
	Reason          *string
}

type SavedBlockedDate struct {
	Date time.Time
	Op   blockeddate.Op
	ID   string
}

type BlockedDateCommands interface {
	// Save writes one record per date, updating the effective record when
	// one exists. It stops at the first failed write and returns what was
	// applied before it.
	Save(ctx context.Context, req SaveBlockedDatesRequest, actorID string) ([]SavedBlockedDate, error)
	Delete(ctx context.Context, id string, actorID string) error
}

type blockedDateUseCaseImpl struct {
	accommodations queries.AccommodationQueries
	availability   queries.AvailabilityQueries
	blocked        queries.BlockedDateQueries
	writer         shared.BlockedDateWriter
	rooms          blockeddate.Encoding
	auditor        *shared.Auditor
	logger         *slog.Logger
}

func NewBlockedDateUseCase(
	accommodations queries.AccommodationQueries,
	availability queries.AvailabilityQueries,
	blocked queries.BlockedDateQueries,
	writer shared.BlockedDateWriter,
	rooms blockeddate.Encoding,
	auditor *shared.Auditor,
	logger *slog.Logger,
) BlockedDateCommands {
	return &blockedDateUseCaseImpl{
		accommodations: accommodations,
		availability:   availability,
		blocked:        blocked,
		writer:         writer,
		rooms:          rooms,
		auditor:        auditor,
		logger:         logger,
	}
}

func (uc *blockedDateUseCaseImpl) Save(ctx context.Context, req SaveBlockedDatesRequest, actorID string) ([]SavedBlockedDate, error) {
	if req.AccommodationID == "" {
		return nil, errs.Mark(blockeddate.ErrNoAccommodation, ErrValidation)
	}
	if len(req.Dates) == 0 {
		return nil, ErrNoDates
	}
	acc, err := uc.accommodations.Get(ctx, req.AccommodationID)
	if err != nil {
		return nil, err
	}

	// an unreadable list could turn updates into duplicate creates
	records, err := uc.blocked.List(ctx, acc.ID())
	if err != nil {
		return nil, err
	}

	// build every payload before the first write so bad input sends nothing
	days := uniqueDays(req.Dates)
	mutations := make([]blockeddate.Mutation, 0, len(days))
	for _, date := range days {
		in := blockeddate.MutationInput{
			Accommodation: acc,
			Date:          date,
			Section:       req.Section,
			AdultPrice:    req.AdultPrice,
			ChildPrice:    req.ChildPrice,
			BlockAll:      req.BlockAll,
			SelectedRooms: req.SelectedRooms,
			Reason:        req.Reason,
			Existing:      blockeddate.Latest(records, acc.ID(), date),
			Encoding:      uc.rooms,
		}
		if req.Section == blockeddate.SectionInventory && !req.BlockAll {
			if req.AvailableAtLoad != nil {
				in.AvailableAtLoad = *req.AvailableAtLoad
			} else {
				in.AvailableAtLoad = uc.availability.Resolve(ctx, acc, date).Available
			}
		}
		m, merr := blockeddate.BuildPayload(in)
		if merr != nil {
			return nil, errs.Mark(merr, ErrValidation)
		}
		mutations = append(mutations, m)
	}

	saved := make([]SavedBlockedDate, 0, len(mutations))
	for _, m := range mutations {
		id, werr := uc.apply(ctx, m)
		entry := shared.AuditEntry{
			Action:          auditActionFor(m.Op),
			ActorID:         actorID,
			AccommodationID: acc.ID(),
			TargetID:        id,
		}
		uc.auditor.Record(ctx, entry, bodyAudit(m.Body), werr)
		if werr != nil {
			uc.logger.Error("blocked date write failed",
				"accommodation_id", acc.ID(),
				"date", stay.FormatDate(m.Body.Date),
				"op", m.Op,
				"error", werr)
			return saved, errs.Mark(werr, ErrUpstreamWrite)
		}
		saved = append(saved, SavedBlockedDate{Date: m.Body.Date, Op: m.Op, ID: id})
	}
	return saved, nil
}

// uniqueDays truncates to calendar days and drops repeats, keeping the
// first occurrence's position.
func uniqueDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := stay.Day(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	return out
}

func (uc *blockedDateUseCaseImpl) apply(ctx context.Context, m blockeddate.Mutation) (string, error) {
	if m.Op == blockeddate.OpUpdate {
		return m.TargetID, uc.writer.UpdateBlockedDate(ctx, m.TargetID, m.Body)
	}
	return uc.writer.CreateBlockedDate(ctx, m.Body)
}

func (uc *blockedDateUseCaseImpl) Delete(ctx context.Context, id string, actorID string) error {
	err := uc.writer.DeleteBlockedDate(ctx, id)
	uc.auditor.Record(ctx, shared.AuditEntry{
		Action:   shared.AuditBlockedDateDelete,
		ActorID:  actorID,
		TargetID: id,
	}, nil, err)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBlockedDateNotFound
		}
		uc.logger.Error("blocked date delete failed", "id", id, "error", err)
		return errs.Mark(err, ErrUpstreamWrite)
	}
	return nil
}

func auditActionFor(op blockeddate.Op) shared.AuditAction {
	if op == blockeddate.OpUpdate {
		return shared.AuditBlockedDateUpdate
	}
	return shared.AuditBlockedDateCreate
}

type blockedDatePayload struct {
	Date       string   `json:"date"`
	Rooms      string   `json:"rooms"`
	Reason     *string  `json:"reason,omitempty"`
	AdultPrice *float64 `json:"adult_price,omitempty"`
	ChildPrice *float64 `json:"child_price,omitempty"`
}

func bodyAudit(b blockeddate.Body) blockedDatePayload {
	p := blockedDatePayload{
		Date:   stay.FormatDate(b.Date),
		Rooms:  b.Rooms.String(),
		Reason: b.Reason,
	}
	if b.AdultPrice != nil {
		v := b.AdultPrice.Float()
		p.AdultPrice = &v
	}
	if b.ChildPrice != nil {
		v := b.ChildPrice.Float()
		p.ChildPrice = &v
	}
	return p
}
