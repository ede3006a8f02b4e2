package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func captureAdded(store *MockSessionStore) *session.Session {
	for _, call := range store.Calls {
		if call.Method == "Add" {
			return call.Arguments.Get(0).(*session.Session)
		}
	}
	return nil
}

func TestOpenSessionCommandHandler_Handle_NewOrder(t *testing.T) {
	ctx := t.Context()
	catalogGateway := new(MockCatalogGateway)
	ordersGateway := new(MockOrdersGateway)
	store := new(MockSessionStore)

	catalogGateway.On("List", ctx).Return(testProducts(t), nil).Once()
	store.On("Add", mock.AnythingOfType("*session.Session")).Return(nil).Once()

	h := commands.NewOpenSessionCommandHandler(catalogGateway, ordersGateway, store, discardLogger())
	cmd, _ := commands.NewOpenSessionCommand(nil)

	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, id.Validate())
	s := captureAdded(store)
	require.NotNil(t, s)
	assert.True(t, id.IsEqual(s.ID()))
	require.NoError(t, s.Do(time.Now(), func(d *order.Draft, snapshot *catalog.Snapshot) error {
		assert.False(t, d.IsPersisted())
		assert.Equal(t, order.Pending, d.Status())
		assert.Equal(t, time.Now().Format(order.DateLayout), d.Date().Format(order.DateLayout))
		assert.True(t, snapshot.Available())
		assert.Equal(t, 2, snapshot.Len())
		return nil
	}))
	ordersGateway.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	catalogGateway.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestOpenSessionCommandHandler_Handle_CatalogUnavailable(t *testing.T) {
	ctx := t.Context()
	catalogGateway := new(MockCatalogGateway)
	store := new(MockSessionStore)

	catalogGateway.On("List", ctx).Return(nil, ports.ErrGatewayFailure).Once()
	store.On("Add", mock.AnythingOfType("*session.Session")).Return(nil).Once()

	h := commands.NewOpenSessionCommandHandler(catalogGateway, new(MockOrdersGateway), store, discardLogger())
	cmd, _ := commands.NewOpenSessionCommand(nil)

	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	s := captureAdded(store)
	require.NoError(t, s.Do(time.Now(), func(_ *order.Draft, snapshot *catalog.Snapshot) error {
		assert.False(t, snapshot.Available())
		assert.Equal(t, 0, snapshot.Len())
		return nil
	}))
}

func TestOpenSessionCommandHandler_Handle_ExistingOrder(t *testing.T) {
	ctx := t.Context()
	catalogGateway := new(MockCatalogGateway)
	ordersGateway := new(MockOrdersGateway)
	store := new(MockSessionStore)

	stored, err := order.RestoreDraft(42, "ORD42", time.Now(), order.InProgress, nil)
	require.NoError(t, err)

	ordersGateway.On("Get", ctx, order.OrderID(42)).Return(stored, nil).Once()
	catalogGateway.On("List", ctx).Return(testProducts(t), nil).Once()
	store.On("Add", mock.AnythingOfType("*session.Session")).Return(nil).Once()

	h := commands.NewOpenSessionCommandHandler(catalogGateway, ordersGateway, store, discardLogger())
	id := order.OrderID(42)
	cmd, _ := commands.NewOpenSessionCommand(&id)

	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	inspect(t, captureAdded(store), func(d *order.Draft) {
		assert.Same(t, stored, d)
		assert.False(t, d.CanEditOrderNumber())
	})
	ordersGateway.AssertExpectations(t)
}

func TestOpenSessionCommandHandler_Handle_OrderLoadFails(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"not found", ports.ErrOrderNotFound, ports.ErrOrderNotFound},
		{"gateway failure", ports.ErrGatewayFailure, ports.ErrGatewayFailure},
		{"unclassified failure", errors.New("connection reset"), ports.ErrGatewayFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			ordersGateway := new(MockOrdersGateway)
			store := new(MockSessionStore)
			ordersGateway.On("Get", ctx, order.OrderID(7)).Return(nil, tt.err).Once()

			h := commands.NewOpenSessionCommandHandler(new(MockCatalogGateway), ordersGateway, store, discardLogger())
			id := order.OrderID(7)
			cmd, _ := commands.NewOpenSessionCommand(&id)

			_, err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			store.AssertNotCalled(t, "Add", mock.Anything)
		})
	}
}

func TestOpenSessionCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewOpenSessionCommandHandler(
		new(MockCatalogGateway), new(MockOrdersGateway), new(MockSessionStore), discardLogger())

	_, err := h.Handle(t.Context(), commands.OpenSessionCommand{})

	require.ErrorIs(t, err, commands.ErrOpenSessionCommandIsNotConstructed)
}
