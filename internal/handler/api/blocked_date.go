package api

import (
	"errors"
	"net/http"
	"time"

	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/domain/stay"
	reqdto "stay-admin/internal/handler/dto/request"
	resdto "stay-admin/internal/handler/dto/response"
	"stay-admin/internal/handler/middleware"
	"stay-admin/internal/pkg/money"
	"stay-admin/internal/usecase/commands"
	"stay-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingAccommodation = errors.New("accommodation_id query parameter is required")

type BlockedDateHandler struct {
	cmds commands.BlockedDateCommands
	q    queries.BlockedDateQueries
}

func NewBlockedDateHandler(cmds commands.BlockedDateCommands, q queries.BlockedDateQueries) *BlockedDateHandler {
	return &BlockedDateHandler{cmds: cmds, q: q}
}

// @Summary List blocked dates
// @Tags blocked-dates
// @Produce json
// @Security BearerAuth
// @Param accommodation_id query string true "Accommodation ID"
// @Success 200 {array} resdto.BlockedDateResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /blocked-dates [get]
func (h *BlockedDateHandler) List(c *gin.Context) {
	accID := c.Query("accommodation_id")
	if accID == "" {
		abortBadRequest(c, errMissingAccommodation, "accommodation_id is required")
		return
	}
	records, err := h.q.List(c.Request.Context(), accID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlockedDates(records))
}

// @Summary Save blocked dates
// @Description Writes one record per selected date. The edited section is merged into an existing record; the other section is kept.
// @Tags blocked-dates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveBlockedDatesRequest true "Editor state"
// @Success 200 {object} resdto.SaveBlockedDatesResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /blocked-dates [post]
func (h *BlockedDateHandler) Save(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.SaveBlockedDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := toSaveCommand(req)
	if err != nil {
		abortBadRequest(c, err, "Invalid date")
		return
	}

	saved, err := h.cmds.Save(c.Request.Context(), cmd, actorID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaved(saved))
}

// @Summary Delete a blocked date
// @Tags blocked-dates
// @Security BearerAuth
// @Param id path string true "Blocked date ID"
// @Success 204 "No Content"
// @Failure 502 {object} httperr.Response
// @Router /blocked-dates/{id} [delete]
func (h *BlockedDateHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id"), actorID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toSaveCommand(r reqdto.SaveBlockedDatesRequest) (commands.SaveBlockedDatesRequest, error) {
	dates := make([]time.Time, 0, len(r.Dates))
	for _, raw := range r.Dates {
		d, err := stay.ParseDate(raw)
		if err != nil {
			return commands.SaveBlockedDatesRequest{}, err
		}
		dates = append(dates, d)
	}
	return commands.SaveBlockedDatesRequest{
		AccommodationID: r.AccommodationID,
		Dates:           dates,
		Section:         blockeddate.Section(r.Section),
		AdultPrice:      moneyFromFloat(r.AdultPrice),
		ChildPrice:      moneyFromFloat(r.ChildPrice),
		BlockAll:        r.BlockAll,
		SelectedRooms:   r.SelectedRooms,
		AvailableAtLoad: r.AvailableAtLoad,
		Reason:          r.Reason,
	}, nil
}

func moneyFromFloat(f *float64) *money.Money {
	if f == nil {
		return nil
	}
	m := money.FromFloat(*f)
	return &m
}
