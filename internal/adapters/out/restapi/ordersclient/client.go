// Package ordersclient stores orders through the remote Orders API.
package ordersclient

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"orderdesk/internal/adapters/out/restapi"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

const (
	ordersPath = "/api/orders"
	orderPath  = "/api/orders/{id}"
)

// Client implements ports.OrdersGateway over HTTP.
type Client struct {
	http *resty.Client
}

// New creates an orders client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{http: restapi.NewHTTPClient(baseURL, timeout)}
}

// Get loads the order and restores it as a persisted draft.
func (c *Client) Get(ctx context.Context, id order.OrderID) (*order.Draft, error) {
	var body OrderDTO

	resp, err := c.request(ctx, id).
		SetResult(&body).
		Get(orderPath)
	if err = restapi.CheckResponse(resp, err, notFound(id)); err != nil {
		return nil, err
	}

	draft, err := body.toDomain(id)
	if err != nil {
		return nil, fmt.Errorf("%w: order %d is not usable: %w", ports.ErrGatewayFailure, id, err)
	}
	return draft, nil
}

// Create posts the draft and returns the id from the response body.
func (c *Client) Create(ctx context.Context, draft *order.Draft) (order.OrderID, error) {
	var created createdDTO

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(fromDomain(draft)).
		SetResult(&created).
		Post(ordersPath)
	if err = restapi.CheckResponse(resp, err, nil); err != nil {
		return 0, err
	}

	return order.OrderID(created.ID), nil
}

// Update replaces the stored order.
func (c *Client) Update(ctx context.Context, id order.OrderID, draft *order.Draft) error {
	resp, err := c.request(ctx, id).
		SetBody(fromDomain(draft)).
		Put(orderPath)
	return restapi.CheckResponse(resp, err, notFound(id))
}

// Delete removes the stored order.
func (c *Client) Delete(ctx context.Context, id order.OrderID) error {
	resp, err := c.request(ctx, id).Delete(orderPath)
	return restapi.CheckResponse(resp, err, notFound(id))
}

func (c *Client) request(ctx context.Context, id order.OrderID) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(int64(id), 10))
}

func notFound(id order.OrderID) error {
	return fmt.Errorf("%w: %w", ports.ErrOrderNotFound, errs.NewObjectNotFoundError("order", int64(id)))
}

var _ ports.OrdersGateway = (*Client)(nil)
