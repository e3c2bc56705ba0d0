package queries

import (
	"stay-admin/internal/pkg/errs"
)

var (
	ErrAccommodationNotFound = errs.ErrAccommodationNotFound
	ErrCouponNotFound        = errs.ErrCouponNotFound
	ErrCouponIneligible      = errs.ErrCouponIneligible
	ErrUpstreamRead          = errs.ErrUpstreamRead
	ErrInvalidRange          = errs.Mark(errs.New("invalid date range"), errs.ErrValidation)
)
