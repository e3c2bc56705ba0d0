package backend

import (
	"errors"
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/domain/booking"
	"stay-admin/internal/domain/coupon"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/pkg/config"
	"stay-admin/internal/pkg/money"
	"stay-admin/internal/pkg/patch"
)

var errRecordWithoutDate = errors.New("blocked date record has no date")

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func moneyPtr(f *float64) *money.Money {
	if f == nil {
		return nil
	}
	m := money.FromFloat(*f)
	return &m
}

func floatPtr(m *money.Money) *float64 {
	if m == nil {
		return nil
	}
	f := m.Float()
	return &f
}

func toAccommodation(d accommodationDTO) (*accommodation.Accommodation, error) {
	t, err := accommodation.NewType(d.Basic.Type)
	if err != nil {
		return nil, err
	}

	// packages.pricing wins over the legacy basicInfo.price
	adult := money.FromFloat(patch.Coalesce(d.Packages.Pricing.Adult, d.Basic.Price))
	child := money.FromFloat(patch.Coalesce(d.Packages.Pricing.Child, 0))

	capacity := d.Basic.Capacity
	if capacity == 0 && d.Packages.Pricing.MaxGuests != nil {
		capacity = *d.Packages.Pricing.MaxGuests
	}

	return accommodation.New(accommodation.Params{
		ID:              firstNonEmpty(d.ID, d.MongoID),
		Name:            d.Basic.Name,
		Type:            t,
		Rooms:           d.Basic.Rooms,
		Capacity:        capacity,
		Address:         d.Location.Address,
		OwnerID:         firstNonEmpty(d.OwnerID, d.UserID),
		AdultPrice:      adult,
		ChildPrice:      child,
		MaxPersonsVilla: d.Basic.MaxPersonVilla,
		ExtraPersonRate: moneyPtr(d.Basic.RatePersonVilla),
	})
}

func toCoupon(d couponDTO) (*coupon.Coupon, error) {
	return coupon.NewCoupon(coupon.Params{
		ID:                firstNonEmpty(d.ID, d.MongoID),
		Code:              d.Code,
		DiscountType:      d.DiscountType,
		Discount:          d.Discount,
		MinAmount:         d.MinAmount,
		MaxDiscount:       d.MaxDiscount,
		Active:            d.Active,
		AccommodationType: d.AccommodationType,
	})
}

// RoomsEncoding maps the configured schema onto the domain encoding.
func RoomsEncoding(schema config.RoomsSchema) blockeddate.Encoding {
	if schema == config.RoomsSchemaLegacy {
		return blockeddate.EncodingLegacy
	}
	return blockeddate.EncodingDelta
}

func toBlockedDate(d blockedDateDTO, enc blockeddate.Encoding) (*blockeddate.Record, error) {
	raw := d.Date
	if raw == "" && len(d.Dates) > 0 {
		raw = d.Dates[0]
	}
	if raw == "" {
		return nil, errRecordWithoutDate
	}
	date, err := stay.ParseDate(raw)
	if err != nil {
		return nil, err
	}

	rooms := d.Rooms
	if rooms == nil {
		rooms = d.RoomNumber
	}

	return blockeddate.NewRecord(blockeddate.Params{
		ID:              d.ID,
		AccommodationID: d.AccommodationID,
		Date:            date,
		Rooms:           enc.Decode(rooms),
		Reason:          d.Reason,
		AdultPrice:      moneyPtr(d.AdultPrice),
		ChildPrice:      moneyPtr(d.ChildPrice),
		CreatedAt:       parseTimestamp(d.CreatedAt),
		UpdatedAt:       parseTimestamp(d.UpdatedAt),
	})
}

// parseTimestamp returns the zero time for missing or malformed values so
// such records lose every latest-wins comparison.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	return stay.ParseDateOrZero(s)
}

func toBlockedDateBody(b blockeddate.Body, enc blockeddate.Encoding) (blockedDateBody, error) {
	roomNumber, err := b.RoomNumber(enc)
	if err != nil {
		return blockedDateBody{}, err
	}
	return blockedDateBody{
		Dates:           []string{stay.FormatDate(b.Date)},
		Reason:          b.Reason,
		AccommodationID: b.AccommodationID,
		RoomNumber:      roomNumber,
		AdultPrice:      floatPtr(b.AdultPrice),
		ChildPrice:      floatPtr(b.ChildPrice),
	}, nil
}

func toOfflineBooking(s booking.Submission) offlineBookingDTO {
	return offlineBookingDTO{
		AccommodationID:   s.AccommodationID,
		AccommodationName: s.AccommodationName,
		GuestName:         s.Contact.Name,
		Email:             s.Contact.Email,
		Phone:             s.Contact.Phone,
		CheckInDate:       stay.FormatDate(s.CheckIn),
		CheckOutDate:      stay.FormatDate(s.CheckOut),
		Adults:            s.Guests.Adults,
		Children:          s.Guests.Children,
		ExtraAdults:       s.Guests.ExtraAdults,
		Rooms:             s.Rooms,
		Nights:            s.Nights,
		FoodPreference: foodPreferenceDTO{
			Veg:    s.Guests.Veg,
			NonVeg: s.Guests.NonVeg,
			Jain:   s.Guests.Jain,
		},
		TotalAmount:      s.TotalAmount.Float(),
		DiscountedAmount: s.DiscountedAmount.Float(),
		CouponCode:       s.CouponCode,
	}
}

func toConfirmation(d bookingConfirmationDTO) *booking.Confirmation {
	return &booking.Confirmation{
		BookingID:  firstNonEmpty(d.BookingID, d.ID),
		OwnerName:  d.OwnerName,
		OwnerEmail: d.OwnerEmail,
		OwnerPhone: d.OwnerPhone,
	}
}
