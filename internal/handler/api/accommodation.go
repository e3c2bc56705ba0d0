package api

import (
	"net/http"
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/stay"
	resdto "stay-admin/internal/handler/dto/response"
	"stay-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccommodationHandler struct {
	accommodations queries.AccommodationQueries
	coupons        queries.CouponQueries
	availability   queries.AvailabilityQueries
	rates          queries.RateQueries
	calendar       queries.CalendarQueries
}

func NewAccommodationHandler(
	accommodations queries.AccommodationQueries,
	coupons queries.CouponQueries,
	availability queries.AvailabilityQueries,
	rates queries.RateQueries,
	calendar queries.CalendarQueries,
) *AccommodationHandler {
	return &AccommodationHandler{
		accommodations: accommodations,
		coupons:        coupons,
		availability:   availability,
		rates:          rates,
		calendar:       calendar,
	}
}

// @Summary List accommodations
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AccommodationResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /accommodations [get]
func (h *AccommodationHandler) List(c *gin.Context) {
	list, err := h.accommodations.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccommodations(list))
}

// @Summary Get accommodation
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Accommodation ID"
// @Success 200 {object} resdto.AccommodationResponse
// @Failure 404 {object} httperr.Response
// @Router /accommodations/{id} [get]
func (h *AccommodationHandler) Get(c *gin.Context) {
	acc, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccommodation(acc))
}

// @Summary Eligible coupons
// @Description Active coupons that apply to the accommodation's type. An unreachable coupon list yields an empty array.
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Accommodation ID"
// @Success 200 {array} resdto.CouponResponse
// @Router /accommodations/{id}/coupons [get]
func (h *AccommodationHandler) Coupons(c *gin.Context) {
	acc, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupons(h.coupons.Eligible(c.Request.Context(), acc)))
}

// @Summary Room availability on a day
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Accommodation ID"
// @Param date query string true "Day (2006-01-02)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /accommodations/{id}/availability [get]
func (h *AccommodationHandler) Availability(c *gin.Context) {
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	acc, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(h.availability.Resolve(c.Request.Context(), acc, date)))
}

// @Summary Package rates on a day
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Accommodation ID"
// @Param date query string true "Day (2006-01-02)"
// @Success 200 {object} resdto.RateResponse
// @Failure 400 {object} httperr.Response
// @Router /accommodations/{id}/rates [get]
func (h *AccommodationHandler) Rates(c *gin.Context) {
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	acc, ok := h.load(c)
	if !ok {
		return
	}
	rate := h.rates.Resolve(c.Request.Context(), acc, date)
	c.JSON(http.StatusOK, resdto.FromRate(stay.FormatDate(date), rate))
}

// @Summary Calendar
// @Description One cell per day in [from, to), at most 62 days.
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Accommodation ID"
// @Param from query string true "First day (2006-01-02)"
// @Param to query string true "Day after the last (2006-01-02)"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /accommodations/{id}/calendar [get]
func (h *AccommodationHandler) Calendar(c *gin.Context) {
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}
	acc, ok := h.load(c)
	if !ok {
		return
	}
	days, err := h.calendar.Range(c.Request.Context(), acc, from, to)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(days))
}

func (h *AccommodationHandler) load(c *gin.Context) (*accommodation.Accommodation, bool) {
	acc, err := h.accommodations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return nil, false
	}
	return acc, true
}

func queryDate(c *gin.Context, name string) (time.Time, bool) {
	date, err := stay.ParseDate(c.Query(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name+" date")
		return time.Time{}, false
	}
	return date, true
}
