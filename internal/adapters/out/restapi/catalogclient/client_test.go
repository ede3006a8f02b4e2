package catalogclient_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/restapi/catalogclient"
	"orderdesk/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.GET("/api/product-catalog", func(c echo.Context) error {
		return c.JSONBlob(status, []byte(body))
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_List(t *testing.T) {
	srv := newServer(t, http.StatusOK, `[
		{"id": 1, "name": "Widget", "unitPrice": 5},
		{"id": 2, "name": "Gadget", "unitPrice": 19.99},
		{"id": 3, "name": "   ", "unitPrice": 1},
		{"id": 4, "name": "Freebie", "unitPrice": 0},
		{"id": 5, "name": "Screw", "unitPrice": 0.125}
	]`)
	client := catalogclient.New(srv.URL, time.Second, slog.New(slog.DiscardHandler))

	products, err := client.List(t.Context())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.EqualValues(t, 1, products[0].ID())
	assert.Equal(t, "Widget", products[0].Name())
	assert.Equal(t, "5.00", products[0].UnitPrice().String())
	assert.Equal(t, "19.99", products[1].UnitPrice().String())
}

func TestClient_List_ServerError(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
	client := catalogclient.New(srv.URL, time.Second, slog.New(slog.DiscardHandler))

	products, err := client.List(t.Context())

	require.ErrorIs(t, err, ports.ErrGatewayFailure)
	assert.Nil(t, products)
}

func TestClient_List_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := catalogclient.New(url, time.Second, slog.New(slog.DiscardHandler)).List(t.Context())

	require.ErrorIs(t, err, ports.ErrGatewayFailure)
}
