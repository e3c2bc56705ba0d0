//go:build unit

package backend_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"stay-admin/internal/domain/availability"
	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/domain/booking"
	"stay-admin/internal/infra"
	"stay-admin/internal/infra/backend"
	"stay-admin/internal/infra/cache"
	"stay-admin/internal/pkg/config"
	"stay-admin/internal/pkg/metrics"
	"stay-admin/internal/pkg/money"
	"stay-admin/internal/pkg/ptr"
	"stay-admin/internal/usecase/shared"
	"stay-admin/tests/common/builder"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jan10 = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func newClient(t *testing.T, h http.HandlerFunc, schema config.RoomsSchema, c shared.Cache) (*backend.Client, *metrics.Metrics) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	m := metrics.New()
	cfg := config.BackendConfig{
		BaseURL:       srv.URL + "/",
		APIToken:      "svc-token",
		Timeout:       2 * time.Second,
		RatePerSecond: 1000,
		Burst:         1000,
		RoomsSchema:   schema,
	}
	return backend.NewClient(cfg, c, m, slog.New(slog.NewTextHandler(io.Discard, nil))), m
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

const accommodationList = `{"data":[
  {"id":"acc-1","ownerId":"own-1","basicInfo":{"name":"Lakeview Rooms","type":"Standard","capacity":2,"rooms":5,"price":900},
   "location":{"address":"Lake Road","coordinates":{"lat":1,"lng":2}},
   "packages":{"pricing":{"adult":1000,"child":500,"maxGuests":4}}},
  {"_id":"acc-2","basicInfo":{"name":"Hilltop Villa","type":"Villa","capacity":10,"rooms":3,"price":5000,"MaxPersonVilla":14,"RatePersonVilla":500}},
  {"id":"acc-3","basicInfo":{"name":"Broken","type":"Castle"}}
]}`

func TestClient_ListAccommodations(t *testing.T) {
	calls := 0
	client, m := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/admin/properties/accommodations", r.URL.Path)
		assert.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, accommodationList)
	}, config.RoomsSchemaDelta, newMemoryCache())

	got, err := client.ListAccommodations(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2, "malformed records are skipped")

	lake := got[0]
	assert.Equal(t, "acc-1", lake.ID())
	assert.Equal(t, "own-1", lake.OwnerID())
	assert.Equal(t, "Lake Road", lake.Address())
	assert.Equal(t, money.FromFloat(1000), lake.AdultPrice(), "packages.pricing wins over basicInfo.price")
	assert.Equal(t, money.FromFloat(500), lake.ChildPrice())
	assert.Equal(t, 5, lake.Rooms())

	villa := got[1]
	assert.Equal(t, "acc-2", villa.ID())
	assert.True(t, villa.IsVilla())
	assert.Equal(t, 1, villa.Rooms())
	assert.Equal(t, money.FromFloat(5000), villa.AdultPrice())
	assert.Equal(t, money.FromFloat(500), villa.ExtraPersonRate())
	assert.Equal(t, ptr.Of(14), villa.MaxPersonsVilla())

	_, err = client.ListAccommodations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second read is served from cache")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("accommodations", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("accommodations", "miss")))
}

func TestClient_GetAccommodation(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantName string
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "enveloped",
			status:   http.StatusOK,
			body:     `{"success":true,"data":{"id":"acc-1","basicInfo":{"name":"Lakeview Rooms","type":"Standard","capacity":2,"rooms":5}}}`,
			wantName: "Lakeview Rooms",
		},
		{
			name:     "bare body without id",
			status:   http.StatusOK,
			body:     `{"basicInfo":{"name":"Lakeview Rooms","type":"Deluxe","capacity":2,"rooms":5}}`,
			wantName: "Lakeview Rooms",
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"message":"no such accommodation"}`,
			wantKind: infra.KindNotFound,
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     `boom`,
			wantKind: infra.KindUpstream,
		},
		{
			name:     "garbage",
			status:   http.StatusOK,
			body:     `<html>`,
			wantKind: infra.KindDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/admin/properties/accommodations/acc-1", r.URL.Path)
				writeJSON(w, tt.status, tt.body)
			}, config.RoomsSchemaDelta, cache.NoopStore{})

			acc, err := client.GetAccommodation(context.Background(), "acc-1")
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "acc-1", acc.ID())
			assert.Equal(t, tt.wantName, acc.Name())
		})
	}
}

func TestClient_ListCoupons(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/coupons", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":[
		  {"id":"c1","code":"WELCOME10","discount":10,"discountType":"percentage","maxDiscount":5,"active":true,"accommodationType":"All"},
		  {"id":"c2","code":"FLAT20","discount":20,"discountType":"fixed","minAmount":150,"active":false},
		  {"id":"c3","code":"","discount":5,"discountType":"fixed","active":true}
		]}`)
	}, config.RoomsSchemaDelta, cache.NoopStore{})

	got, err := client.ListCoupons(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "WELCOME10", got[0].Code().String())
	assert.Equal(t, money.FromFloat(95), got[0].ApplyDiscount(money.FromFloat(100)))
	assert.False(t, got[1].IsActive())
	assert.Equal(t, money.FromFloat(100), got[1].ApplyDiscount(money.FromFloat(100)))
}

func TestClient_ListCoupons_Refused(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":false,"message":"token expired"}`)
	}, config.RoomsSchemaDelta, cache.NoopStore{})

	_, err := client.ListCoupons(context.Background())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUpstream))
}

const blockedDateList = `{"success":true,"data":[
  {"id":"bd-1","accommodation_id":"acc-1","date":"2025-01-10","rooms":null,"reason":"Maintenance","created_at":"2025-01-01T09:00:00Z","updated_at":"2025-01-02T09:00:00Z"},
  {"id":"bd-2","accommodation_id":"acc-1","dates":["2025-01-11T00:00:00Z"],"rooms":2},
  {"id":"bd-3","accommodation_id":"acc-1","date":"2025-01-12","room_number":-1,"adult_price":1500},
  {"id":"bd-4","accommodation_id":"acc-1"}
]}`

func TestClient_ListBlockedDates(t *testing.T) {
	tests := []struct {
		name     string
		schema   config.RoomsSchema
		wantBd2  blockeddate.Rooms
		wantKind blockeddate.Kind
	}{
		{
			name:     "delta schema",
			schema:   config.RoomsSchemaDelta,
			wantBd2:  blockeddate.InventoryDelta(2),
			wantKind: blockeddate.KindPartial,
		},
		{
			name:     "legacy schema",
			schema:   config.RoomsSchemaLegacy,
			wantBd2:  blockeddate.RoomIndex(2),
			wantKind: blockeddate.KindPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := newMemoryCache()
			client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/admin/calendar/blocked-dates", r.URL.Path)
				writeJSON(w, http.StatusOK, blockedDateList)
			}, tt.schema, mem)

			got, err := client.ListBlockedDates(context.Background())
			require.NoError(t, err)
			require.Len(t, got, 3, "record without a date is skipped")
			assert.Empty(t, mem.data, "blocked dates are never cached")

			assert.True(t, got[0].Rooms().IsFullBlock())
			assert.Equal(t, blockeddate.KindFullBlock, got[0].Kind())
			assert.Equal(t, time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC), got[0].UpdatedAt())

			assert.Equal(t, tt.wantBd2, got[1].Rooms())
			assert.Equal(t, tt.wantKind, got[1].Kind())
			assert.Equal(t, time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), got[1].Date())

			require.NotNil(t, got[2].AdultPrice())
			assert.Equal(t, money.FromFloat(1500), *got[2].AdultPrice())
		})
	}
}

func TestClient_BookedRooms(t *testing.T) {
	client, m := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/bookings/room-occupancy", r.URL.Path)
		assert.Equal(t, "2025-01-10", r.URL.Query().Get("check_in"))
		assert.Equal(t, "acc-1", r.URL.Query().Get("id"))
		writeJSON(w, http.StatusOK, `{"total_rooms":2}`)
	}, config.RoomsSchemaDelta, cache.NoopStore{})

	booked, err := client.BookedRooms(context.Background(), "acc-1", jan10)
	require.NoError(t, err)
	assert.Equal(t, 2, booked)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendRequests.WithLabelValues("room_occupancy", http.MethodGet, metrics.OutcomeOK)))
}

func TestClient_BookedRooms_Unreachable(t *testing.T) {
	m := metrics.New()
	client := backend.NewClient(config.BackendConfig{
		BaseURL:       "http://127.0.0.1:1",
		Timeout:       time.Second,
		RatePerSecond: 10,
		Burst:         1,
		RoomsSchema:   config.RoomsSchemaDelta,
	}, cache.NoopStore{}, m, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.BookedRooms(context.Background(), "acc-1", jan10)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUpstream))
}

func TestClient_BlockedDateWrites(t *testing.T) {
	type seen struct {
		method string
		path   string
		body   map[string]any
	}
	var requests []seen

	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		s := seen{method: r.Method, path: r.URL.Path}
		if r.Body != nil {
			raw, _ := io.ReadAll(r.Body)
			if len(raw) > 0 {
				assert.NoError(t, json.Unmarshal(raw, &s.body))
			}
		}
		requests = append(requests, s)
		switch r.Method {
		case http.MethodPost:
			writeJSON(w, http.StatusCreated, `{"success":true,"data":{"id":"bd-9"}}`)
		default:
			writeJSON(w, http.StatusOK, `{"success":true}`)
		}
	}, config.RoomsSchemaDelta, cache.NoopStore{})

	reason := "Maintenance"
	adult := money.FromFloat(1200)
	body := blockeddate.Body{
		AccommodationID: "acc-1",
		Date:            jan10,
		Reason:          &reason,
		Rooms:           blockeddate.InventoryDelta(-2),
		AdultPrice:      &adult,
	}

	id, err := client.CreateBlockedDate(context.Background(), body)
	require.NoError(t, err)
	assert.Equal(t, "bd-9", id)

	body.Rooms = blockeddate.FullBlock()
	require.NoError(t, client.UpdateBlockedDate(context.Background(), "bd-9", body))
	require.NoError(t, client.DeleteBlockedDate(context.Background(), "bd-9"))

	require.Len(t, requests, 3)

	assert.Equal(t, http.MethodPost, requests[0].method)
	assert.Equal(t, "/admin/calendar/blocked-dates", requests[0].path)
	assert.Equal(t, []any{"2025-01-10"}, requests[0].body["dates"])
	assert.Equal(t, "acc-1", requests[0].body["accommodation_id"])
	assert.Equal(t, "Maintenance", requests[0].body["reason"])
	assert.Equal(t, -2.0, requests[0].body["room_number"])
	assert.Equal(t, 1200.0, requests[0].body["adult_price"])
	assert.Contains(t, requests[0].body, "child_price")
	assert.Nil(t, requests[0].body["child_price"])

	assert.Equal(t, http.MethodPut, requests[1].method)
	assert.Equal(t, "/admin/calendar/blocked-dates/bd-9", requests[1].path)
	assert.Contains(t, requests[1].body, "room_number")
	assert.Nil(t, requests[1].body["room_number"], "a full block is sent as null")

	assert.Equal(t, http.MethodDelete, requests[2].method)
	assert.Equal(t, "/admin/calendar/blocked-dates/bd-9", requests[2].path)
}

// blockedDateStore answers blocked-date writes and echoes them back on list.
func blockedDateStore(t *testing.T, posted *[]map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			*posted = append(*posted, body)
			writeJSON(w, http.StatusCreated, `{"success":true,"data":{"id":"bd-1"}}`)
		default:
			data := make([]map[string]any, 0, len(*posted))
			for i, b := range *posted {
				data = append(data, map[string]any{
					"id":               fmt.Sprintf("bd-%d", i+1),
					"accommodation_id": b["accommodation_id"],
					"date":             b["dates"].([]any)[0],
					"rooms":            b["room_number"],
					"reason":           b["reason"],
					"adult_price":      b["adult_price"],
					"child_price":      b["child_price"],
				})
			}
			raw, err := json.Marshal(map[string]any{"data": data})
			assert.NoError(t, err)
			writeJSON(w, http.StatusOK, string(raw))
		}
	}
}

func TestClient_PriceOverrideRoundTrip(t *testing.T) {
	acc, err := builder.NewAccommodationBuilder().BuildDomain()
	require.NoError(t, err)
	adult := money.FromFloat(2400)

	for _, schema := range []config.RoomsSchema{config.RoomsSchemaDelta, config.RoomsSchemaLegacy} {
		t.Run(string(schema), func(t *testing.T) {
			var posted []map[string]any
			client, _ := newClient(t, blockedDateStore(t, &posted), schema, cache.NoopStore{})

			m, err := blockeddate.BuildPayload(blockeddate.MutationInput{
				Accommodation: acc,
				Date:          jan10,
				Section:       blockeddate.SectionPrice,
				AdultPrice:    &adult,
				Encoding:      backend.RoomsEncoding(schema),
			})
			require.NoError(t, err)
			_, err = client.CreateBlockedDate(context.Background(), m.Body)
			require.NoError(t, err)

			got, err := client.ListBlockedDates(context.Background())
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, blockeddate.KindPriceOnly, got[0].Kind())
			assert.Equal(t, 5, availability.Resolve(5, 0, got[0]))
		})
	}
}

func TestClient_LegacySchemaRefusesDelta(t *testing.T) {
	calls := 0
	client, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		writeJSON(w, http.StatusCreated, `{"success":true}`)
	}, config.RoomsSchemaLegacy, cache.NoopStore{})

	_, err := client.CreateBlockedDate(context.Background(), blockeddate.Body{
		AccommodationID: "acc-1",
		Date:            jan10,
		Rooms:           blockeddate.InventoryDelta(-2),
	})
	require.ErrorIs(t, err, blockeddate.ErrDeltaUnsupported)
	assert.Zero(t, calls)
}

func TestClient_SubmitOfflineBooking(t *testing.T) {
	submission := booking.Submission{
		AccommodationID:   "acc-1",
		AccommodationName: "Lakeview Rooms",
		Contact:           booking.Contact{Name: "Asha Rao", Email: "asha@example.com", Phone: "9999999999"},
		CheckIn:           jan10,
		CheckOut:          jan10.AddDate(0, 0, 3),
		Guests:            booking.Guests{Adults: 2, Children: 1, Veg: 2, NonVeg: 1},
		Rooms:             2,
		Nights:            3,
		TotalAmount:       money.FromFloat(7500),
		DiscountedAmount:  money.FromFloat(6750),
		CouponCode:        "WELCOME10",
	}

	t.Run("success", func(t *testing.T) {
		client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/admin/bookings/offline", r.URL.Path)
			assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))

			var got map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "2025-01-10", got["checkInDate"])
			assert.Equal(t, "2025-01-13", got["checkOutDate"])
			assert.Equal(t, 7500.0, got["totalAmount"])
			assert.Equal(t, 6750.0, got["discountedAmount"])
			assert.Equal(t, "WELCOME10", got["couponCode"])
			assert.Equal(t, map[string]any{"veg": 2.0, "nonVeg": 1.0, "jain": 0.0}, got["foodPreference"])

			writeJSON(w, http.StatusCreated, `{"success":true,"data":{"bookingId":"bk-1","ownerName":"Ravi","ownerEmail":"ravi@example.com","ownerPhone":"8888"}}`)
		}, config.RoomsSchemaDelta, cache.NoopStore{})

		conf, err := client.SubmitOfflineBooking(context.Background(), submission, "key-1")
		require.NoError(t, err)
		assert.Equal(t, &booking.Confirmation{
			BookingID:  "bk-1",
			OwnerName:  "Ravi",
			OwnerEmail: "ravi@example.com",
			OwnerPhone: "8888",
		}, conf)
	})

	t.Run("rejected by backend", func(t *testing.T) {
		calls := 0
		client, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls++
			writeJSON(w, http.StatusBadGateway, `{"success":false}`)
		}, config.RoomsSchemaDelta, cache.NoopStore{})

		_, err := client.SubmitOfflineBooking(context.Background(), submission, "key-2")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUpstream))
		assert.Equal(t, 1, calls, "writes are not retried")
	})
}
