package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Accommodation errors
	ErrAccommodationNotFound = errors.New("accommodation not found")

	// Coupon errors
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrCouponIneligible = errors.New("coupon not applicable to accommodation")

	// Blocked date errors
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Upstream errors
	ErrUpstreamRead  = errors.New("upstream read failed")
	ErrUpstreamWrite = errors.New("upstream write failed")
)
