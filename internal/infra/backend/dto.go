package backend

import "encoding/json"

// envelope is the backend's {success, data} wrapper. success is absent on
// some list endpoints.
type envelope[T any] struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func (e envelope[T]) failed() bool {
	return e.Success != nil && !*e.Success
}

type accommodationDTO struct {
	ID       string       `json:"id"`
	MongoID  string       `json:"_id"`
	OwnerID  string       `json:"ownerId"`
	UserID   string       `json:"userId"`
	Basic    basicInfoDTO `json:"basicInfo"`
	Location struct {
		Address     string          `json:"address"`
		Coordinates json.RawMessage `json:"coordinates"`
	} `json:"location"`
	Packages struct {
		Pricing struct {
			Adult     *float64 `json:"adult"`
			Child     *float64 `json:"child"`
			MaxGuests *int     `json:"maxGuests"`
		} `json:"pricing"`
	} `json:"packages"`
}

type basicInfoDTO struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Capacity        int      `json:"capacity"`
	Rooms           int      `json:"rooms"`
	Price           float64  `json:"price"`
	MaxPersonVilla  *int     `json:"MaxPersonVilla"`
	RatePersonVilla *float64 `json:"RatePersonVilla"`
}

type couponDTO struct {
	ID                string   `json:"id"`
	MongoID           string   `json:"_id"`
	Code              string   `json:"code"`
	Discount          float64  `json:"discount"`
	DiscountType      string   `json:"discountType"`
	MinAmount         *float64 `json:"minAmount"`
	MaxDiscount       *float64 `json:"maxDiscount"`
	Active            bool     `json:"active"`
	AccommodationType *string  `json:"accommodationType"`
}

type blockedDateDTO struct {
	ID              string   `json:"id"`
	AccommodationID string   `json:"accommodation_id"`
	Date            string   `json:"date"`
	Dates           []string `json:"dates"`
	// null blocks every room
	Rooms      *int     `json:"rooms"`
	RoomNumber *int     `json:"room_number"`
	Reason     *string  `json:"reason"`
	AdultPrice *float64 `json:"adult_price"`
	ChildPrice *float64 `json:"child_price"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type blockedDateBody struct {
	Dates           []string `json:"dates"`
	Reason          *string  `json:"reason"`
	AccommodationID string   `json:"accommodation_id"`
	RoomNumber      *int     `json:"room_number"`
	AdultPrice      *float64 `json:"adult_price"`
	ChildPrice      *float64 `json:"child_price"`
}

type idDTO struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`
}

// createdDTO accepts the id either inside data or at the top level.
type createdDTO struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
	Data    *idDTO `json:"data"`
}

type occupancyDTO struct {
	TotalRooms int `json:"total_rooms"`
}

type foodPreferenceDTO struct {
	Veg    int `json:"veg"`
	NonVeg int `json:"nonVeg"`
	Jain   int `json:"jain"`
}

type offlineBookingDTO struct {
	AccommodationID   string            `json:"accommodationId"`
	AccommodationName string            `json:"accommodationName"`
	GuestName         string            `json:"guestName"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	CheckInDate       string            `json:"checkInDate"`
	CheckOutDate      string            `json:"checkOutDate"`
	Adults            int               `json:"adults"`
	Children          int               `json:"children"`
	ExtraAdults       int               `json:"extraAdults"`
	Rooms             int               `json:"rooms"`
	Nights            int               `json:"nights"`
	FoodPreference    foodPreferenceDTO `json:"foodPreference"`
	TotalAmount       float64           `json:"totalAmount"`
	DiscountedAmount  float64           `json:"discountedAmount"`
	CouponCode        string            `json:"couponCode,omitempty"`
}

type bookingConfirmationDTO struct {
	BookingID  string `json:"bookingId"`
	ID         string `json:"id"`
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
	OwnerPhone string `json:"ownerPhone"`
}
