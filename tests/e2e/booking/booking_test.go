//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	"stay-admin/internal/domain/user"
	"stay-admin/internal/handler/dto/request"
	"stay-admin/internal/handler/dto/response"
	"stay-admin/internal/pkg/ptr"
	"stay-admin/internal/usecase/shared"
	"stay-admin/tests/common/dbtest"
	"stay-admin/tests/common/httptest"
	"stay-admin/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	quoteURL    = "/api/bookings/quote"
	bookingsURL = "/api/bookings"
	auditURL    = "/api/audit-log"

	accID = "acc-lakeside"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) seedLakeside() {
	s.Backend.AddAccommodation(e2e.StubAccommodation{
		ID:       accID,
		Name:     "Lakeside Deluxe",
		Type:     "Deluxe",
		Rooms:    5,
		Capacity: 2,
		Adult:    2000,
		Child:    500,
	})
}

func quoteRequest() request.QuoteRequest {
	return request.QuoteRequest{
		AccommodationID: accID,
		CheckIn:         "2031-03-10",
		CheckOut:        "2031-03-12",
		Adults:          2,
		Rooms:           1,
		FoodPreference:  request.FoodPreference{Veg: 2},
		GuestName:       "Asha Rao",
		Email:           "asha@example.com",
		Phone:           "+91-9800000000",
	}
}

// =============================================================================
// TestQuote - price quote API tests
// =============================================================================

func (s *BookingSuite) TestQuote() {
	s.Run("Normal case: price override and coupon are applied per night", func() {
		t := s.T()
		s.seedLakeside()
		s.Backend.AddBlockedDate(e2e.StubBlockedDate{
			AccommodationID: accID,
			Date:            "2031-03-11",
			Rooms:           ptr.Of(0),
			AdultPrice:      ptr.Of(2500.0),
			UpdatedAt:       "2031-01-01T00:00:00Z",
		})
		s.Backend.AddCoupon(e2e.StubCoupon{Code: "SAVE10", Discount: 10, DiscountType: "percentage", Active: true})

		req := quoteRequest()
		req.CouponCode = " SAVE10 "
		token := s.Token("ops-1", user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, req, token)
		var got response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := response.QuoteResponse{
			AccommodationID:  accID,
			Nights:           2,
			TotalAmount:      9000,
			DiscountedAmount: 8100,
			Discount:         900,
			CouponCode:       "SAVE10",
			Available:        5,
			Lines: []*response.NightLineResponse{
				{Date: "2031-03-10", Amount: 4000},
				{Date: "2031-03-11", Amount: 5000},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("quote mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: missing dates price as zero nights", func() {
		t := s.T()
		s.seedLakeside()

		req := quoteRequest()
		req.CheckOut = ""

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, req, s.Token("ops-1", user.RoleViewer))
		var got response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Zero(t, got.Nights)
		require.Zero(t, got.TotalAmount)
	})

	s.Run("Error case: unknown coupon", func() {
		t := s.T()
		s.seedLakeside()

		req := quoteRequest()
		req.CouponCode = "NOPE"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, req, s.Token("ops-1", user.RoleViewer))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Coupon not found")
	})

	s.Run("Error case: unknown accommodation", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, quoteRequest(), s.Token("ops-1", user.RoleViewer))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Accommodation not found")
	})

	s.Run("Auth test - Unauthorized without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, quoteRequest(), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestSubmit - offline booking submission tests
// =============================================================================

func (s *BookingSuite) TestSubmit() {
	s.Run("Normal case: booking is forwarded with its idempotency key and audited", func() {
		t := s.T()
		s.seedLakeside()
		key := uuid.New()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, quoteRequest(), map[string]string{
			"Authorization":   "Bearer " + s.Token("ops-2", user.RoleOperator),
			"Idempotency-Key": key.String(),
		})
		var got response.SubmitResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &got)
		httptest.AssertHeaders(t, w, map[string]string{"Idempotency-Key": key.String()})

		require.Equal(t, "bk-1", got.BookingID)
		require.Equal(t, key.String(), got.IdempotencyKey)
		require.Equal(t, 8000.0, got.Quote.TotalAmount)

		bookings := s.Backend.Bookings()
		require.Len(t, bookings, 1)
		require.Equal(t, key.String(), bookings[0].IdempotencyKey)
		require.Equal(t, "Asha Rao", bookings[0].Body["guestName"])
		require.Equal(t, "2031-03-10", bookings[0].Body["checkInDate"])

		rows := dbtest.AuditRowsByAction(t, s.DB, string(shared.AuditBookingSubmit))
		want := []dbtest.AuditRow{{
			Action:          string(shared.AuditBookingSubmit),
			ActorID:         "ops-2",
			AccommodationID: ptr.Of(accID),
			TargetID:        ptr.Of("bk-1"),
			Outcome:         shared.AuditOutcomeApplied,
		}}
		if diff := cmp.Diff(want, rows); diff != "" {
			t.Errorf("audit rows mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: retry with the same key does not create a second booking", func() {
		t := s.T()
		s.seedLakeside()
		headers := map[string]string{
			"Authorization":   "Bearer " + s.Token("ops-2", user.RoleOperator),
			"Idempotency-Key": uuid.NewString(),
		}

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, quoteRequest(), headers)
		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, quoteRequest(), headers)
		require.Equal(t, http.StatusCreated, first.Code)
		require.Equal(t, http.StatusCreated, second.Code)
		require.Len(t, s.Backend.Bookings(), 1)
	})

	s.Run("Error case: fully booked stay is rejected before reaching the backend", func() {
		t := s.T()
		s.seedLakeside()
		s.Backend.SetBookedRooms(accID, "2031-03-11", 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, quoteRequest(), s.Token("ops-2", user.RoleOperator))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "fully booked")
		require.Empty(t, s.Backend.Bookings())
		require.Zero(t, dbtest.CountAuditEntries(t, s.DB))
	})

	s.Run("Error case: guests exceed room capacity", func() {
		t := s.T()
		s.seedLakeside()
		req := quoteRequest()
		req.Adults = 3
		req.FoodPreference.Veg = 3

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.Token("ops-2", user.RoleOperator))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "exceed the capacity")
	})

	s.Run("Error case: backend failure is reported and audited as failed", func() {
		t := s.T()
		s.seedLakeside()
		s.Backend.FailWrites(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, quoteRequest(), s.Token("ops-2", user.RoleOperator))
		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "not applied")

		rows := dbtest.AuditRowsByAction(t, s.DB, string(shared.AuditBookingSubmit))
		require.Len(t, rows, 1)
		require.Equal(t, shared.AuditOutcomeFailed, rows[0].Outcome)
		require.NotNil(t, rows[0].Error)
		require.Nil(t, rows[0].TargetID)
	})

	s.Run("Auth test - viewer cannot submit", func() {
		t := s.T()
		s.seedLakeside()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, quoteRequest(), s.Token("viewer-1", user.RoleViewer))
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Empty(t, s.Backend.Bookings())
	})

	s.Run("Auth test - expired token is rejected", func() {
		t := s.T()
		s.seedLakeside()

		token := s.JWT.CreateExpiredToken(t, "ops-2", user.RoleOperator)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, quoteRequest(), token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestAuditLog - audit trail read tests
// =============================================================================

func (s *BookingSuite) TestAuditLog() {
	s.Run("Normal case: admin reads newest entries first", func() {
		t := s.T()
		s.seedLakeside()

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, quoteRequest(), s.Token("ops-2", user.RoleOperator))
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, auditURL+"?limit=1", nil, s.Token("root", user.RoleAdmin))
		var got []response.AuditEntryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := []response.AuditEntryResponse{{
			Action:          string(shared.AuditBookingSubmit),
			ActorID:         "ops-2",
			AccommodationID: accID,
			TargetID:        "bk-2",
			Outcome:         shared.AuditOutcomeApplied,
		}}
		opts := cmpopts.IgnoreFields(response.AuditEntryResponse{}, "ID", "Payload", "CreatedAt")
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("audit log mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Auth test - operator cannot read the audit log", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, auditURL, nil, s.Token("ops-2", user.RoleOperator))
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
