// Package catalogclient reads the product catalog from the remote catalog API.
package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/adapters/out/restapi"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

const catalogPath = "/api/product-catalog"

type productDTO struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	UnitPrice json.Number `json:"unitPrice"`
}

// Client implements ports.ProductCatalogGateway over HTTP.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// New creates a catalog client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		http:   restapi.NewHTTPClient(baseURL, timeout),
		logger: logger.With("component", "catalog_client"),
	}
}

// List fetches the catalog. Entries that are not valid products (blank name,
// non-positive price, bad id) are skipped and logged; the rest of the catalog
// stays usable.
func (c *Client) List(ctx context.Context) ([]*catalog.Product, error) {
	var body []productDTO

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get(catalogPath)
	if err = restapi.CheckResponse(resp, err, nil); err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0, len(body))
	for _, dto := range body {
		product, err := dto.toDomain()
		if err != nil {
			c.logger.WarnContext(ctx, "skipping invalid catalog product", "product_id", dto.ID, "error", err)
			continue
		}
		products = append(products, product)
	}

	return products, nil
}

func (dto productDTO) toDomain() (*catalog.Product, error) {
	price, err := kernel.MoneyFromString(dto.UnitPrice.String())
	if err != nil {
		return nil, fmt.Errorf("unit price: %w", err)
	}
	return catalog.NewProduct(catalog.ProductID(dto.ID), dto.Name, price)
}

var _ ports.ProductCatalogGateway = (*Client)(nil)
