package request

type SaveBlockedDatesRequest struct {
	AccommodationID string   `json:"accommodationId" binding:"required"`
	Dates           []string `json:"dates" binding:"required,min=1,max=62,dive,required"`
	Section         string   `json:"section" binding:"required,oneof=price inventory"`

	AdultPrice *float64 `json:"adultPrice" binding:"omitempty,min=0"`
	ChildPrice *float64 `json:"childPrice" binding:"omitempty,min=0"`

	BlockAll        bool    `json:"blockAll"`
	SelectedRooms   int     `json:"selectedRooms" binding:"min=0"`
	AvailableAtLoad *int    `json:"availableAtLoad" binding:"omitempty,min=0"`
	Reason          *string `json:"reason" binding:"omitempty,max=200"`
}
