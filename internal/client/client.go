// Package client is an HTTP client for the /api/rooms API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/cory-johannsen/hotel/internal/httpapi"
)

// DefaultTimeout bounds each request.
const DefaultTimeout = 10 * time.Second

// RejectedError is returned when the server answers with a non-2xx status.
// Message carries the server's plain-text reason.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Conflict reports whether the server refused a booking it understood.
func (e *RejectedError) Conflict() bool { return e.Status == http.StatusConflict }

// Client calls a hotel server's room API.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New creates a Client for the server at baseURL (scheme, host and port).
// Requests are never retried.
//
// Precondition: baseURL must be non-empty; logger must be non-nil.
func New(baseURL string, logger *zap.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL+httpapi.BasePath).
		SetTimeout(DefaultTimeout).
		SetHeader("Accept", "application/json")
	return &Client{http: rc, logger: logger}
}

// All returns every floor's rooms keyed by floor number.
func (c *Client) All(ctx context.Context) (map[int][]httpapi.Room, error) {
	var out map[int][]httpapi.Room
	if err := c.do(ctx, http.MethodGet, "/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Book requests count rooms.
//
// Postcondition: On rejection the error is a *RejectedError carrying the reason.
func (c *Client) Book(ctx context.Context, count int) (httpapi.BookingResponse, error) {
	var out httpapi.BookingResponse
	query := map[string]string{"numberOfRooms": strconv.Itoa(count)}
	if err := c.do(ctx, http.MethodPost, "/book", query, &out); err != nil {
		return httpapi.BookingResponse{}, err
	}
	c.logger.Debug("rooms booked", zap.Int("count", len(out.RoomList)))
	return out, nil
}

// Reset vacates every room and returns the server's confirmation text.
func (c *Client) Reset(ctx context.Context) (string, error) {
	resp, err := c.send(ctx, http.MethodPost, "/reset", nil, nil)
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}

// Booked returns the occupied rooms in (floor, number) order.
func (c *Client) Booked(ctx context.Context) ([]httpapi.Room, error) {
	var out []httpapi.Room
	if err := c.do(ctx, http.MethodGet, "/bookedRooms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns the room counts.
func (c *Client) Stats(ctx context.Context) (httpapi.StatsResponse, error) {
	var out httpapi.StatsResponse
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &out); err != nil {
		return httpapi.StatsResponse{}, err
	}
	return out, nil
}

// History returns up to limit journal entries, newest first.
func (c *Client) History(ctx context.Context, limit int) ([]httpapi.Entry, error) {
	var out []httpapi.Entry
	query := map[string]string{"limit": strconv.Itoa(limit)}
	if err := c.do(ctx, http.MethodGet, "/history", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query map[string]string, result any) error {
	_, err := c.send(ctx, method, path, query, result)
	return err
}

func (c *Client) send(ctx context.Context, method, path string, query map[string]string, result any) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		c.logger.Debug("request rejected",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
		)
		return nil, &RejectedError{Status: resp.StatusCode(), Message: resp.String()}
	}
	return resp, nil
}
