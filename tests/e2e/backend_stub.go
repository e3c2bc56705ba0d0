//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// stubAPIToken must match config.NewTestConfig().Backend.APIToken.
const stubAPIToken = "test-token"

type StubAccommodation struct {
	ID              string
	Name            string
	Type            string
	Rooms           int
	Capacity        int
	Adult           float64
	Child           float64
	MaxPersonVilla  *int
	RatePersonVilla *float64
}

type StubCoupon struct {
	Code              string   `json:"code"`
	Discount          float64  `json:"discount"`
	DiscountType      string   `json:"discountType"`
	MinAmount         *float64 `json:"minAmount"`
	MaxDiscount       *float64 `json:"maxDiscount"`
	Active            bool     `json:"active"`
	AccommodationType *string  `json:"accommodationType"`
}

type StubBlockedDate struct {
	ID              string   `json:"id"`
	AccommodationID string   `json:"accommodation_id"`
	Date            string   `json:"date"`
	Rooms           *int     `json:"rooms"`
	Reason          *string  `json:"reason"`
	AdultPrice      *float64 `json:"adult_price"`
	ChildPrice      *float64 `json:"child_price"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

type StubBooking struct {
	ID             string
	IdempotencyKey string
	Body           map[string]any
}

type blockedDateWrite struct {
	Dates           []string `json:"dates"`
	Reason          *string  `json:"reason"`
	AccommodationID string   `json:"accommodation_id"`
	RoomNumber      *int     `json:"room_number"`
	AdultPrice      *float64 `json:"adult_price"`
	ChildPrice      *float64 `json:"child_price"`
}

// BackendStub is an in-memory stand-in for the remote admin REST backend.
type BackendStub struct {
	server *httptest.Server

	mu             sync.Mutex
	seq            int
	accommodations map[string]StubAccommodation
	coupons        []StubCoupon
	blocked        map[string]*StubBlockedDate
	occupancy      map[string]int
	bookings       []StubBooking
	failWrites     bool
}

func NewBackendStub() *BackendStub {
	s := &BackendStub{}
	s.Reset()

	engine := gin.New()
	engine.Use(s.requireToken)
	engine.GET("/admin/properties/accommodations", s.listAccommodations)
	engine.GET("/admin/properties/accommodations/:id", s.getAccommodation)
	engine.GET("/admin/coupons", s.listCoupons)
	engine.GET("/admin/calendar/blocked-dates", s.listBlockedDates)
	engine.POST("/admin/calendar/blocked-dates", s.createBlockedDate)
	engine.PUT("/admin/calendar/blocked-dates/:id", s.updateBlockedDate)
	engine.DELETE("/admin/calendar/blocked-dates/:id", s.deleteBlockedDate)
	engine.GET("/admin/bookings/room-occupancy", s.roomOccupancy)
	engine.POST("/admin/bookings/offline", s.submitBooking)

	s.server = httptest.NewServer(engine)
	return s
}

func (s *BackendStub) URL() string {
	return s.server.URL
}

func (s *BackendStub) Close() {
	s.server.Close()
}

func (s *BackendStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = 0
	s.accommodations = map[string]StubAccommodation{}
	s.coupons = nil
	s.blocked = map[string]*StubBlockedDate{}
	s.occupancy = map[string]int{}
	s.bookings = nil
	s.failWrites = false
}

func (s *BackendStub) AddAccommodation(a StubAccommodation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accommodations[a.ID] = a
}

func (s *BackendStub) AddCoupon(c StubCoupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons = append(s.coupons, c)
}

// AddBlockedDate stores rec as-is and returns its id.
func (s *BackendStub) AddBlockedDate(rec StubBlockedDate) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == "" {
		rec.ID = s.nextID("bd")
	}
	s.blocked[rec.ID] = &rec
	return rec.ID
}

func (s *BackendStub) SetBookedRooms(accommodationID, date string, rooms int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.occupancy[accommodationID+"|"+date] = rooms
}

// FailWrites makes every write endpoint answer 500.
func (s *BackendStub) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

// BlockedDates returns the stored records ordered by date then id.
func (s *BackendStub) BlockedDates() []StubBlockedDate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StubBlockedDate, 0, len(s.blocked))
	for _, r := range s.blocked {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *BackendStub) Bookings() []StubBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StubBooking(nil), s.bookings...)
}

func (s *BackendStub) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *BackendStub) requireToken(c *gin.Context) {
	if c.GetHeader("Authorization") != "Bearer "+stubAPIToken {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid api token"})
		return
	}
	c.Next()
}

func toAccommodationJSON(a StubAccommodation) gin.H {
	return gin.H{
		"_id": a.ID,
		"basicInfo": gin.H{
			"name":            a.Name,
			"type":            a.Type,
			"capacity":        a.Capacity,
			"rooms":           a.Rooms,
			"price":           a.Adult,
			"MaxPersonVilla":  a.MaxPersonVilla,
			"RatePersonVilla": a.RatePersonVilla,
		},
		"location": gin.H{"address": "1 Lake Road"},
		"packages": gin.H{"pricing": gin.H{"adult": a.Adult, "child": a.Child}},
	}
}

func (s *BackendStub) listAccommodations(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.accommodations))
	for id := range s.accommodations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	data := make([]gin.H, 0, len(ids))
	for _, id := range ids {
		data = append(data, toAccommodationJSON(s.accommodations[id]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (s *BackendStub) getAccommodation(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accommodations[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "accommodation not found"})
		return
	}
	// the detail endpoint answers without an envelope
	c.JSON(http.StatusOK, toAccommodationJSON(a))
}

func (s *BackendStub) listCoupons(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"data": s.coupons})
}

func (s *BackendStub) listBlockedDates(c *gin.Context) {
	data := s.BlockedDates()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (s *BackendStub) createBlockedDate(c *gin.Context) {
	var body blockedDateWrite
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Dates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "write failed"})
		return
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	var id string
	for _, d := range body.Dates {
		id = s.nextID("bd")
		s.blocked[id] = &StubBlockedDate{
			ID:              id,
			AccommodationID: body.AccommodationID,
			Date:            d,
			Rooms:           body.RoomNumber,
			Reason:          body.Reason,
			AdultPrice:      body.AdultPrice,
			ChildPrice:      body.ChildPrice,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"id": id}})
}

func (s *BackendStub) updateBlockedDate(c *gin.Context) {
	var body blockedDateWrite
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "write failed"})
		return
	}
	rec, ok := s.blocked[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "blocked date not found"})
		return
	}
	rec.Rooms = body.RoomNumber
	rec.Reason = body.Reason
	rec.AdultPrice = body.AdultPrice
	rec.ChildPrice = body.ChildPrice
	rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *BackendStub) deleteBlockedDate(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "write failed"})
		return
	}
	id := c.Param("id")
	if _, ok := s.blocked[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "blocked date not found"})
		return
	}
	delete(s.blocked, id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *BackendStub) roomOccupancy(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booked := s.occupancy[c.Query("id")+"|"+c.Query("check_in")]
	c.JSON(http.StatusOK, gin.H{"total_rooms": booked})
}

func (s *BackendStub) submitBooking(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}
	key := c.GetHeader("Idempotency-Key")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "write failed"})
		return
	}

	for _, b := range s.bookings {
		if key != "" && b.IdempotencyKey == key {
			c.JSON(http.StatusOK, confirmationJSON(b.ID))
			return
		}
	}
	b := StubBooking{ID: s.nextID("bk"), IdempotencyKey: key, Body: body}
	s.bookings = append(s.bookings, b)
	c.JSON(http.StatusCreated, confirmationJSON(b.ID))
}

func confirmationJSON(id string) gin.H {
	return gin.H{
		"success": true,
		"data": gin.H{
			"bookingId":  id,
			"ownerName":  "Lakeside Owner",
			"ownerEmail": "owner@example.com",
			"ownerPhone": "+91-9000000000",
		},
	}
}
