package api

import (
	"net/http"

	"stay-admin/internal/domain/booking"
	"stay-admin/internal/domain/stay"
	reqdto "stay-admin/internal/handler/dto/request"
	resdto "stay-admin/internal/handler/dto/response"
	"stay-admin/internal/handler/middleware"
	"stay-admin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Quote a stay
// @Description Prices the booking form without writing anything.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Booking form"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Quote(c.Request.Context(), toQuoteCommand(req))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteResult(result))
}

// @Summary Submit an offline booking
// @Description Re-quotes, validates and forwards the booking. Replays with the same Idempotency-Key are safe.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID; generated when absent"
// @Param request body reqdto.QuoteRequest true "Booking form"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	key := uuid.New()
	if raw := c.GetHeader(idempotencyKeyHeader); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			abortBadRequest(c, err, "Idempotency-Key must be a UUID")
			return
		}
		key = parsed
	}
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), toQuoteCommand(req), actorID, key)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header(idempotencyKeyHeader, result.IdempotencyKey.String())
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// toQuoteCommand leaves unparseable dates absent; the quote prices them as zero nights.
func toQuoteCommand(r reqdto.QuoteRequest) commands.QuoteRequest {
	return commands.QuoteRequest{
		AccommodationID: r.AccommodationID,
		CheckIn:         stay.ParseDateOrZero(r.CheckIn),
		CheckOut:        stay.ParseDateOrZero(r.CheckOut),
		Guests: booking.Guests{
			Adults:      r.Adults,
			Children:    r.Children,
			ExtraAdults: r.ExtraAdults,
			Veg:         r.FoodPreference.Veg,
			NonVeg:      r.FoodPreference.NonVeg,
			Jain:        r.FoodPreference.Jain,
		},
		Rooms:      r.Rooms,
		CouponCode: r.TrimmedCouponCode(),
		Contact: booking.Contact{
			Name:  r.GuestName,
			Email: r.Email,
			Phone: r.Phone,
		},
	}
}
