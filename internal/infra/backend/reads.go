package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/domain/coupon"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/infra"
)

const (
	pathAccommodations = "/admin/properties/accommodations"
	pathCoupons        = "/admin/coupons"
	pathBlockedDates   = "/admin/calendar/blocked-dates"
	pathRoomOccupancy  = "/admin/bookings/room-occupancy"
	pathOfflineBooking = "/admin/bookings/offline"

	cacheKeyAccommodations = "accommodations"
	cacheKeyCoupons        = "coupons"
)

func (c *Client) ListAccommodations(ctx context.Context) ([]*accommodation.Accommodation, error) {
	cl := call{endpoint: "accommodations", method: http.MethodGet, path: pathAccommodations}
	raw, err := c.fetchCached(ctx, cacheKeyAccommodations, cl)
	if err != nil {
		return nil, err
	}

	var env envelope[[]accommodationDTO]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, c.decodeErr(cl, err)
	}
	if env.failed() {
		return nil, infra.WrapRepoErr(c.logger, infra.KindUpstream, "backend refused accommodation list: "+env.Message, nil)
	}

	out := make([]*accommodation.Accommodation, 0, len(env.Data))
	for _, d := range env.Data {
		acc, err := toAccommodation(d)
		if err != nil {
			c.logger.Warn("skipping malformed accommodation", "id", firstNonEmpty(d.ID, d.MongoID), "error", err)
			continue
		}
		out = append(out, acc)
	}
	return out, nil
}

func (c *Client) GetAccommodation(ctx context.Context, id string) (*accommodation.Accommodation, error) {
	cl := call{endpoint: "accommodation", method: http.MethodGet, path: pathAccommodations + "/" + url.PathEscape(id)}
	raw, err := c.fetchCached(ctx, cacheKeyAccommodations+":"+id, cl)
	if err != nil {
		return nil, err
	}

	// the detail endpoint answers either enveloped or bare
	var env envelope[*accommodationDTO]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, c.decodeErr(cl, err)
	}
	if env.failed() {
		return nil, infra.WrapRepoErr(c.logger, infra.KindNotFound, "backend refused accommodation "+id+": "+env.Message, nil)
	}
	dto := env.Data
	if dto == nil {
		dto = new(accommodationDTO)
		if err := json.Unmarshal(raw, dto); err != nil {
			return nil, c.decodeErr(cl, err)
		}
	}
	if dto.ID == "" && dto.MongoID == "" {
		dto.ID = id
	}

	acc, err := toAccommodation(*dto)
	if err != nil {
		return nil, c.decodeErr(cl, err)
	}
	return acc, nil
}

func (c *Client) ListCoupons(ctx context.Context) ([]*coupon.Coupon, error) {
	cl := call{endpoint: "coupons", method: http.MethodGet, path: pathCoupons}
	raw, err := c.fetchCached(ctx, cacheKeyCoupons, cl)
	if err != nil {
		return nil, err
	}

	var env envelope[[]couponDTO]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, c.decodeErr(cl, err)
	}
	if env.failed() {
		return nil, infra.WrapRepoErr(c.logger, infra.KindUpstream, "backend refused coupon list: "+env.Message, nil)
	}

	out := make([]*coupon.Coupon, 0, len(env.Data))
	for _, d := range env.Data {
		cp, err := toCoupon(d)
		if err != nil {
			c.logger.Warn("skipping malformed coupon", "code", d.Code, "error", err)
			continue
		}
		out = append(out, cp)
	}
	return out, nil
}

// ListBlockedDates is never cached.
func (c *Client) ListBlockedDates(ctx context.Context) ([]*blockeddate.Record, error) {
	cl := call{endpoint: "blocked_dates", method: http.MethodGet, path: pathBlockedDates}
	raw, err := c.fetch(ctx, cl)
	if err != nil {
		return nil, err
	}

	var env envelope[[]blockedDateDTO]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, c.decodeErr(cl, err)
	}
	if env.failed() {
		return nil, infra.WrapRepoErr(c.logger, infra.KindUpstream, "backend refused blocked date list: "+env.Message, nil)
	}

	out := make([]*blockeddate.Record, 0, len(env.Data))
	for _, d := range env.Data {
		rec, err := toBlockedDate(d, c.rooms)
		if err != nil {
			c.logger.Warn("skipping malformed blocked date", "id", d.ID, "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// BookedRooms reads the occupancy for the night of date. Never cached.
func (c *Client) BookedRooms(ctx context.Context, accommodationID string, date time.Time) (int, error) {
	cl := call{
		endpoint: "room_occupancy",
		method:   http.MethodGet,
		path:     pathRoomOccupancy,
		query: url.Values{
			"check_in": {stay.FormatDate(date)},
			"id":       {accommodationID},
		},
	}
	raw, err := c.fetch(ctx, cl)
	if err != nil {
		return 0, err
	}

	var dto occupancyDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return 0, c.decodeErr(cl, err)
	}
	return dto.TotalRooms, nil
}
