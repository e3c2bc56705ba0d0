package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/domain/booking"
	"stay-admin/internal/infra"
)

func (c *Client) CreateBlockedDate(ctx context.Context, body blockeddate.Body) (string, error) {
	wire, err := toBlockedDateBody(body, c.rooms)
	if err != nil {
		return "", infra.WrapRepoErr(c.logger, infra.KindUpstream, "blocked date cannot be encoded", err)
	}
	cl := call{
		endpoint: "blocked_dates",
		method:   http.MethodPost,
		path:     pathBlockedDates,
		body:     wire,
	}
	raw, err := c.fetch(ctx, cl)
	if err != nil {
		return "", err
	}

	if len(raw) == 0 {
		return "", nil
	}
	var dto createdDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return "", c.decodeErr(cl, err)
	}
	if dto.Success != nil && !*dto.Success {
		return "", infra.WrapRepoErr(c.logger, infra.KindUpstream, "backend refused blocked date: "+dto.Message, nil)
	}
	if dto.Data != nil {
		return firstNonEmpty(dto.Data.ID, dto.Data.MongoID, dto.ID), nil
	}
	return dto.ID, nil
}

func (c *Client) UpdateBlockedDate(ctx context.Context, id string, body blockeddate.Body) error {
	wire, err := toBlockedDateBody(body, c.rooms)
	if err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindUpstream, "blocked date cannot be encoded", err)
	}
	cl := call{
		endpoint: "blocked_date",
		method:   http.MethodPut,
		path:     pathBlockedDates + "/" + url.PathEscape(id),
		body:     wire,
	}
	_, err = c.fetch(ctx, cl)
	return err
}

func (c *Client) DeleteBlockedDate(ctx context.Context, id string) error {
	cl := call{
		endpoint: "blocked_date",
		method:   http.MethodDelete,
		path:     pathBlockedDates + "/" + url.PathEscape(id),
	}
	_, err := c.fetch(ctx, cl)
	return err
}

func (c *Client) SubmitOfflineBooking(ctx context.Context, s booking.Submission, idempotencyKey string) (*booking.Confirmation, error) {
	cl := call{
		endpoint:       "offline_booking",
		method:         http.MethodPost,
		path:           pathOfflineBooking,
		body:           toOfflineBooking(s),
		idempotencyKey: idempotencyKey,
	}
	raw, err := c.fetch(ctx, cl)
	if err != nil {
		return nil, err
	}

	var env envelope[bookingConfirmationDTO]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, c.decodeErr(cl, err)
	}
	if env.failed() {
		return nil, infra.WrapRepoErr(c.logger, infra.KindUpstream, "backend refused booking: "+env.Message, nil)
	}
	return toConfirmation(env.Data), nil
}
