package booking

import (
	"fmt"
	"strings"

	"stay-admin/internal/pkg/errs"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return errs.ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate runs the pre-submit checks in order and reports the first failure.
func Validate(ctx ComputationContext, q Quote) error {
	switch {
	case strings.TrimSpace(ctx.Contact.Name) == "":
		return invalid("guest_name", "guest name is required")
	case strings.TrimSpace(ctx.Contact.Email) == "":
		return invalid("email", "email is required")
	case ctx.Accommodation == nil:
		return invalid("accommodation_id", "accommodation is required")
	case ctx.CheckIn.IsZero():
		return invalid("check_in", "check-in date is required")
	case ctx.CheckOut.IsZero():
		return invalid("check_out", "check-out date is required")
	case q.TotalAmount.Cents() <= 0:
		return invalid("total_amount", "total amount could not be calculated")
	}

	if ctx.Available == 0 {
		return invalid("rooms", "accommodation is fully booked for the selected dates")
	}

	acc := ctx.Accommodation
	guests := ctx.Guests.Base()
	if ctx.IsVilla() {
		if guests > acc.Capacity() {
			return invalid("adults", "villa capacity is %d guests; add more guests as extra adults", acc.Capacity())
		}
	} else {
		if guests > ctx.Rooms*acc.Capacity() {
			return invalid("adults", "%d guests exceed the capacity of %d room(s)", guests, ctx.Rooms)
		}
		if ctx.Guests.FoodTotal() != guests {
			return invalid("food_preference", "food preferences (%d) must add up to the number of guests (%d)", ctx.Guests.FoodTotal(), guests)
		}
	}

	if !ctx.CheckOut.After(ctx.CheckIn) {
		return invalid("check_out", "check-out must be after check-in")
	}
	if ctx.Guests.Adults < 1 || ctx.Rooms < 1 {
		return invalid("adults", "at least one adult and one room are required")
	}
	if !ctx.IsVilla() && ctx.Rooms > ctx.Available {
		return invalid("rooms", "only %d room(s) available", ctx.Available)
	}
	return nil
}
