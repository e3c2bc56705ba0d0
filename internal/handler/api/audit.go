package api

import (
	"net/http"
	"strconv"

	resdto "stay-admin/internal/handler/dto/response"
	"stay-admin/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const defaultAuditLimit = 50

type AuditHandler struct {
	auditor *shared.Auditor
}

func NewAuditHandler(auditor *shared.Auditor) *AuditHandler {
	return &AuditHandler{auditor: auditor}
}

// @Summary Recent admin actions
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 50, at most 500)"
// @Success 200 {array} resdto.AuditEntryResponse
// @Failure 400 {object} httperr.Response
// @Router /audit [get]
func (h *AuditHandler) Recent(c *gin.Context) {
	limit := defaultAuditLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			abortBadRequest(c, errInvalidLimit, "limit must be a positive integer")
			return
		}
		limit = n
	}
	entries, err := h.auditor.Recent(c.Request.Context(), limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuditEntries(entries))
}
