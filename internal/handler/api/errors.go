package api

import (
	"errors"
	"net/http"

	"stay-admin/internal/domain/booking"
	"stay-admin/internal/handler/httperr"
	"stay-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthenticated = errors.New("no authenticated admin in context")
	errInvalidLimit    = errors.New("invalid limit")
)

// classify maps the usecase error taxonomy onto HTTP. Validation failures
// carry the offending field when one is known.
func classify(err error) (status int, msg string, detail any) {
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, verr.Message, gin.H{"field": verr.Field}
	case errs.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error(), nil
	case errs.Is(err, errs.ErrAccommodationNotFound):
		return http.StatusNotFound, "Accommodation not found", nil
	case errs.Is(err, errs.ErrCouponNotFound):
		return http.StatusNotFound, "Coupon not found", nil
	case errs.Is(err, errs.ErrCouponIneligible):
		return http.StatusUnprocessableEntity, "Coupon does not apply to this accommodation", nil
	case errs.Is(err, errs.ErrBlockedDateNotFound):
		return http.StatusNotFound, "Blocked date not found", nil
	case errs.Is(err, errs.ErrUpstreamWrite):
		return http.StatusBadGateway, "Backend rejected the change; it was not applied", nil
	case errs.Is(err, errs.ErrUpstreamRead):
		return http.StatusBadGateway, "Backend is unavailable", nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}

func abortWithUsecaseError(c *gin.Context, err error) {
	status, msg, detail := classify(err)
	httperr.AbortWithError(c, status, err, msg, detail)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}
