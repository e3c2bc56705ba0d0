//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/availability"
	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/infra"
	"stay-admin/internal/pkg/clock"
	"stay-admin/internal/pkg/errs"
	"stay-admin/internal/pkg/money"
	"stay-admin/internal/pkg/ptr"
	"stay-admin/internal/usecase/commands"
	"stay-admin/internal/usecase/queries"
	"stay-admin/internal/usecase/shared"
	"stay-admin/tests/common/builder"
	queriesmock "stay-admin/tests/mock/queries"
	sharedmock "stay-admin/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BlockedDateCommandsTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	accommodations *queriesmock.MockAccommodationQueries
	availability   *queriesmock.MockAvailabilityQueries
	blocked        *queriesmock.MockBlockedDateQueries
	writer         *sharedmock.MockBlockedDateWriter
	audit          *sharedmock.MockAuditRepository
	uc             commands.BlockedDateCommands
	acc            *accommodation.Accommodation
}

func (s *BlockedDateCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accommodations = queriesmock.NewMockAccommodationQueries(s.ctrl)
	s.availability = queriesmock.NewMockAvailabilityQueries(s.ctrl)
	s.blocked = queriesmock.NewMockBlockedDateQueries(s.ctrl)
	s.writer = sharedmock.NewMockBlockedDateWriter(s.ctrl)
	s.audit = sharedmock.NewMockAuditRepository(s.ctrl)

	s.uc = s.newUseCase(blockeddate.EncodingDelta)

	acc, err := builder.NewAccommodationBuilder().BuildDomain()
	s.Require().NoError(err)
	s.acc = acc
}

func (s *BlockedDateCommandsTestSuite) newUseCase(enc blockeddate.Encoding) commands.BlockedDateCommands {
	auditor := shared.NewAuditor(s.audit, clock.NewMockClock(now), discardLogger())
	return commands.NewBlockedDateUseCase(s.accommodations, s.availability, s.blocked, s.writer, enc, auditor, discardLogger())
}

func TestBlockedDateCommandsSuite(t *testing.T) {
	suite.Run(t, new(BlockedDateCommandsTestSuite))
}

func (s *BlockedDateCommandsTestSuite) record(b *builder.BlockedDateBuilder) *blockeddate.Record {
	rec, err := b.BuildDomain()
	s.Require().NoError(err)
	return rec
}

func (s *BlockedDateCommandsTestSuite) expectLoad(records ...*blockeddate.Record) {
	s.accommodations.EXPECT().Get(gomock.Any(), "acc-1").Return(s.acc, nil)
	s.blocked.EXPECT().List(gomock.Any(), "acc-1").Return(records, nil)
}

func (s *BlockedDateCommandsTestSuite) TestSave_PriceSectionUpdatesOrCreatesPerDate() {
	existing := s.record(builder.NewBlockedDateBuilder().WithID("bd-7").Delta(-1))
	s.expectLoad(existing)
	adult := money.FromFloat(1800)

	s.writer.EXPECT().UpdateBlockedDate(gomock.Any(), "bd-7", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body blockeddate.Body) error {
			s.Equal(blockeddate.InventoryDelta(-1), body.Rooms)
			s.Equal(1800.0, body.AdultPrice.Float())
			return nil
		})
	s.writer.EXPECT().CreateBlockedDate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, body blockeddate.Body) (string, error) {
			s.Equal(jan11, body.Date)
			s.Equal(blockeddate.InventoryDelta(0), body.Rooms)
			return "bd-8", nil
		})
	s.audit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	saved, err := s.uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
		AccommodationID: "acc-1",
		Dates:           []time.Time{jan10, jan11.Add(9 * time.Hour)},
		Section:         blockeddate.SectionPrice,
		AdultPrice:      &adult,
	}, "admin-1")

	s.Require().NoError(err)
	s.Require().Len(saved, 2)
	s.Equal(commands.SavedBlockedDate{Date: jan10, Op: blockeddate.OpUpdate, ID: "bd-7"}, saved[0])
	s.Equal(commands.SavedBlockedDate{Date: jan11, Op: blockeddate.OpCreate, ID: "bd-8"}, saved[1])
}

func (s *BlockedDateCommandsTestSuite) TestSave_InventoryResolvesAvailabilityWhenNotGiven() {
	s.expectLoad()
	s.availability.EXPECT().Resolve(gomock.Any(), s.acc, jan10).
		Return(availability.NewSnapshot("acc-1", jan10, 5, 2, nil))

	s.writer.EXPECT().CreateBlockedDate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, body blockeddate.Body) (string, error) {
			// 1 selected out of 3 available releases -2
			s.Equal(blockeddate.InventoryDelta(-2), body.Rooms)
			s.Equal(1000.0, body.AdultPrice.Float())
			return "bd-1", nil
		})
	s.audit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
		AccommodationID: "acc-1",
		Dates:           []time.Time{jan10},
		Section:         blockeddate.SectionInventory,
		SelectedRooms:   1,
	}, "admin-1")

	s.Require().NoError(err)
}

func (s *BlockedDateCommandsTestSuite) TestSave_InventoryUsesAvailabilityAtLoad() {
	s.expectLoad()
	s.writer.EXPECT().CreateBlockedDate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, body blockeddate.Body) (string, error) {
			s.Equal(blockeddate.InventoryDelta(1), body.Rooms)
			return "bd-1", nil
		})
	s.audit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
		AccommodationID: "acc-1",
		Dates:           []time.Time{jan10},
		Section:         blockeddate.SectionInventory,
		SelectedRooms:   4,
		AvailableAtLoad: ptr.Of(3),
	}, "admin-1")

	s.Require().NoError(err)
}

func (s *BlockedDateCommandsTestSuite) TestSave_RepeatedDayIsWrittenOnce() {
	s.expectLoad()
	adult := money.FromFloat(1800)

	s.writer.EXPECT().CreateBlockedDate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, body blockeddate.Body) (string, error) {
			s.Equal(jan10, body.Date)
			return "bd-1", nil
		}).Times(1)
	s.audit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	saved, err := s.uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
		AccommodationID: "acc-1",
		Dates:           []time.Time{jan10, jan10.Add(5 * time.Hour), jan10},
		Section:         blockeddate.SectionPrice,
		AdultPrice:      &adult,
	}, "admin-1")

	s.Require().NoError(err)
	s.Equal([]commands.SavedBlockedDate{{Date: jan10, Op: blockeddate.OpCreate, ID: "bd-1"}}, saved)
}

func (s *BlockedDateCommandsTestSuite) TestSave_RepeatedDayResolvesAvailabilityOnce() {
	s.expectLoad()
	s.availability.EXPECT().Resolve(gomock.Any(), s.acc, jan10).
		Return(availability.NewSnapshot("acc-1", jan10, 5, 0, nil)).Times(1)
	s.writer.EXPECT().CreateBlockedDate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, body blockeddate.Body) (string, error) {
			s.Equal(blockeddate.InventoryDelta(-3), body.Rooms)
			return "bd-1", nil
		}).Times(1)
	s.audit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
		AccommodationID: "acc-1",
		Dates:           []time.Time{jan10, jan10.Add(5 * time.Hour)},
		Section:         blockeddate.SectionInventory,
		SelectedRooms:   2,
	}, "admin-1")

	s.Require().NoError(err)
}

func (s *BlockedDateCommandsTestSuite) TestSave_LegacyEncoding() {
	s.Run("inventory adjustment is rejected before any write", func() {
		uc := s.newUseCase(blockeddate.EncodingLegacy)
		s.expectLoad()

		_, err := uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
			AccommodationID: "acc-1",
			Dates:           []time.Time{jan10, jan11},
			Section:         blockeddate.SectionInventory,
			SelectedRooms:   2,
			AvailableAtLoad: ptr.Of(5),
		}, "admin-1")

		s.True(errs.Is(err, commands.ErrValidation))
		s.True(errs.Is(err, blockeddate.ErrDeltaUnsupported))
	})

	s.Run("price override and block all are still written", func() {
		uc := s.newUseCase(blockeddate.EncodingLegacy)
		adult := money.FromFloat(2000)

		s.expectLoad()
		s.writer.EXPECT().CreateBlockedDate(gomock.Any(), gomock.Any()).Return("bd-1", nil)
		s.audit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		_, err := uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
			AccommodationID: "acc-1",
			Dates:           []time.Time{jan10},
			Section:         blockeddate.SectionPrice,
			AdultPrice:      &adult,
		}, "admin-1")
		s.Require().NoError(err)

		s.expectLoad()
		s.writer.EXPECT().CreateBlockedDate(gomock.Any(), gomock.Any()).Return("bd-2", nil)
		s.audit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		_, err = uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
			AccommodationID: "acc-1",
			Dates:           []time.Time{jan11},
			Section:         blockeddate.SectionInventory,
			BlockAll:        true,
		}, "admin-1")
		s.Require().NoError(err)
	})
}

func (s *BlockedDateCommandsTestSuite) TestSave_ValidationSendsNothing() {
	_, err := s.uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
		Dates:   []time.Time{jan10},
		Section: blockeddate.SectionPrice,
	}, "admin-1")
	s.True(errs.Is(err, commands.ErrValidation))
	s.True(errs.Is(err, blockeddate.ErrNoAccommodation))

	_, err = s.uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
		AccommodationID: "acc-1",
		Section:         blockeddate.SectionPrice,
	}, "admin-1")
	s.True(errs.Is(err, commands.ErrNoDates))

	s.expectLoad()
	_, err = s.uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
		AccommodationID: "acc-1",
		Dates:           []time.Time{jan10},
		Section:         blockeddate.SectionPrice,
	}, "admin-1")
	s.True(errs.Is(err, commands.ErrValidation))
	s.True(errs.Is(err, blockeddate.ErrEmptyPrices))
}

func (s *BlockedDateCommandsTestSuite) TestSave_ListFailureSendsNothing() {
	s.accommodations.EXPECT().Get(gomock.Any(), "acc-1").Return(s.acc, nil)
	s.blocked.EXPECT().List(gomock.Any(), "acc-1").Return(nil, errs.Mark(errors.New("timeout"), queries.ErrUpstreamRead))

	_, err := s.uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
		AccommodationID: "acc-1",
		Dates:           []time.Time{jan10},
		Section:         blockeddate.SectionInventory,
		BlockAll:        true,
	}, "admin-1")

	s.True(errs.Is(err, queries.ErrUpstreamRead))
}

func (s *BlockedDateCommandsTestSuite) TestSave_StopsAtFirstFailedWrite() {
	s.expectLoad()
	gomock.InOrder(
		s.writer.EXPECT().CreateBlockedDate(gomock.Any(), gomock.Any()).Return("bd-1", nil),
		s.writer.EXPECT().CreateBlockedDate(gomock.Any(), gomock.Any()).Return("", errors.New("500")),
	)
	s.audit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	saved, err := s.uc.Save(context.Background(), commands.SaveBlockedDatesRequest{
		AccommodationID: "acc-1",
		Dates:           []time.Time{jan10, jan11, jan11.AddDate(0, 0, 1)},
		Section:         blockeddate.SectionInventory,
		BlockAll:        true,
	}, "admin-1")

	s.True(errs.Is(err, commands.ErrUpstreamWrite))
	s.Len(saved, 1)
}

func (s *BlockedDateCommandsTestSuite) TestDelete() {
	s.writer.EXPECT().DeleteBlockedDate(gomock.Any(), "bd-1").Return(nil)
	s.audit.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e shared.AuditEntry) error {
		s.Equal(shared.AuditBlockedDateDelete, e.Action)
		s.Equal("bd-1", e.TargetID)
		return nil
	})
	s.NoError(s.uc.Delete(context.Background(), "bd-1", "admin-1"))
}

func (s *BlockedDateCommandsTestSuite) TestDelete_NotFound() {
	s.writer.EXPECT().DeleteBlockedDate(gomock.Any(), "gone").Return(infra.RepositoryError{Kind: infra.KindNotFound})
	s.audit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	s.ErrorIs(s.uc.Delete(context.Background(), "gone", "admin-1"), commands.ErrBlockedDateNotFound)
}
