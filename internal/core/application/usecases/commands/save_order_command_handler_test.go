package commands_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func saveHandler(store *MockSessionStore, orders *MockOrdersGateway, publisher *MockEventPublisher) commands.SaveOrderCommandHandler {
	return commands.NewSaveOrderCommandHandler(store, orders, publisher, discardLogger())
}

func TestSaveOrderCommandHandler_Handle_EndToEnd(t *testing.T) {
	ctx := t.Context()
	s, store := storedSession(t, order.NewDraft(time.Now()), testSnapshot(t))

	require.NoError(t, addItem(t, store, s.ID(), 1, 2))
	require.NoError(t, addItem(t, store, s.ID(), 2, 1))
	inspect(t, s, func(d *order.Draft) {
		assert.Equal(t, 2, d.ItemCount())
		assert.True(t, d.FinalPrice().Equal(kernel.MustMoney("30.00")))
	})

	remove, _ := commands.NewRemoveLineItemCommand(s.ID(), 0)
	require.NoError(t, commands.NewRemoveLineItemCommandHandler(store).Handle(ctx, remove))
	inspect(t, s, func(d *order.Draft) {
		assert.Equal(t, 1, d.ItemCount())
		assert.True(t, d.FinalPrice().Equal(kernel.MustMoney("20.00")))
	})

	number, _ := commands.NewSetOrderNumberCommand(s.ID(), "ORD1")
	require.NoError(t, commands.NewSetOrderNumberCommandHandler(store).Handle(ctx, number))

	orders := new(MockOrdersGateway)
	orders.On("Create", ctx, mock.MatchedBy(func(d *order.Draft) bool {
		items := d.LineItems()
		return d.OrderNumber() == "ORD1" &&
			d.ItemCount() == 1 &&
			d.FinalPrice().Equal(kernel.MustMoney("20.00")) &&
			len(items) == 1 &&
			items[0].TotalPrice().Equal(kernel.MustMoney("20.00"))
	})).Return(order.OrderID(101), nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderSaved", ctx, mock.MatchedBy(func(e ports.OrderSaved) bool {
		return e.OrderID == 101 && e.OrderNumber == "ORD1" && e.FinalPrice == "20.00" && e.Created && e.ItemCount == 1
	})).Return(nil).Once()

	cmd, _ := commands.NewSaveOrderCommand(s.ID())
	result, err := saveHandler(store, orders, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.SaveOrderResult{OrderID: 101, Created: true}, result)
	assert.True(t, s.Closed())
	orders.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSaveOrderCommandHandler_Handle_UpdatesStoredOrder(t *testing.T) {
	ctx := t.Context()
	stored, err := order.RestoreDraft(42, "ORD42", time.Now(), order.InProgress, nil)
	require.NoError(t, err)
	s, store := storedSession(t, stored, testSnapshot(t))
	require.NoError(t, addItem(t, store, s.ID(), 1, 1))

	orders := new(MockOrdersGateway)
	orders.On("Update", ctx, order.OrderID(42), stored).Return(nil).Once()
	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderSaved", ctx, mock.AnythingOfType("ports.OrderSaved")).Return(nil).Once()

	cmd, _ := commands.NewSaveOrderCommand(s.ID())
	result, err := saveHandler(store, orders, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.SaveOrderResult{OrderID: 42}, result)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
}

func TestSaveOrderCommandHandler_Handle_ValidationFailure(t *testing.T) {
	tests := []struct {
		name        string
		orderNumber string
		withItem    bool
		reason      string
	}{
		{"empty order number", "", true, order.ReasonOrderNumberRequired},
		{"no items", "ORD1", false, order.ReasonNoLineItems},
		{"both missing reports order number first", "", false, order.ReasonOrderNumberRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			d := order.NewDraft(time.Now())
			require.NoError(t, d.SetOrderNumber(tt.orderNumber))
			s, store := storedSession(t, d, testSnapshot(t))
			if tt.withItem {
				require.NoError(t, addItem(t, store, s.ID(), 1, 1))
			}

			orders := new(MockOrdersGateway)
			publisher := new(MockEventPublisher)
			cmd, _ := commands.NewSaveOrderCommand(s.ID())

			_, err := saveHandler(store, orders, publisher).Handle(ctx, cmd)

			var invalid *order.OrderInvalidError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.reason, invalid.Reason)
			assert.False(t, s.Closed())
			orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			publisher.AssertNotCalled(t, "PublishOrderSaved", mock.Anything, mock.Anything)
		})
	}
}

func TestSaveOrderCommandHandler_Handle_GatewayFailureKeepsDraft(t *testing.T) {
	ctx := t.Context()
	d := order.NewDraft(time.Now())
	require.NoError(t, d.SetOrderNumber("ORD1"))
	s, store := storedSession(t, d, testSnapshot(t))
	require.NoError(t, addItem(t, store, s.ID(), 2, 1))

	orders := new(MockOrdersGateway)
	orders.On("Create", ctx, d).Return(order.OrderID(0), errors.New("503 service unavailable")).Once()
	publisher := new(MockEventPublisher)
	cmd, _ := commands.NewSaveOrderCommand(s.ID())

	_, err := saveHandler(store, orders, publisher).Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrGatewayFailure)
	assert.False(t, s.Closed())
	inspect(t, s, func(d *order.Draft) {
		assert.False(t, d.IsPersisted())
		assert.Equal(t, 1, d.ItemCount())
		assert.True(t, d.FinalPrice().Equal(kernel.MustMoney("20.00")))
	})
	publisher.AssertNotCalled(t, "PublishOrderSaved", mock.Anything, mock.Anything)

	// retry succeeds
	orders.On("Create", ctx, d).Return(order.OrderID(5), nil).Once()
	publisher.On("PublishOrderSaved", ctx, mock.AnythingOfType("ports.OrderSaved")).Return(nil).Once()

	result, err := saveHandler(store, orders, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.OrderID(5), result.OrderID)
	assert.True(t, s.Closed())
}

func TestSaveOrderCommandHandler_Handle_UnusableIDIsGatewayFailure(t *testing.T) {
	ctx := t.Context()
	d := order.NewDraft(time.Now())
	require.NoError(t, d.SetOrderNumber("ORD1"))
	s, store := storedSession(t, d, testSnapshot(t))
	require.NoError(t, addItem(t, store, s.ID(), 1, 1))

	orders := new(MockOrdersGateway)
	orders.On("Create", ctx, d).Return(order.OrderID(0), nil).Once()
	cmd, _ := commands.NewSaveOrderCommand(s.ID())

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	_, err := commands.NewSaveOrderCommandHandler(store, orders, new(MockEventPublisher), logger).Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrGatewayFailure)
	assert.False(t, d.IsPersisted())
	assert.False(t, s.Closed())

	logged := buf.String()
	assert.Contains(t, logged, `"level":"ERROR"`)
	assert.Contains(t, logged, `"msg":"order created but returned id is unusable"`)
	assert.Contains(t, logged, `"returned_id":0`)
	assert.Contains(t, logged, `"order_number":"ORD1"`)
	orders.AssertNumberOfCalls(t, "Create", 1)
}

func TestSaveOrderCommandHandler_Handle_PublishFailureDoesNotFailSave(t *testing.T) {
	ctx := t.Context()
	d := order.NewDraft(time.Now())
	require.NoError(t, d.SetOrderNumber("ORD1"))
	s, store := storedSession(t, d, testSnapshot(t))
	require.NoError(t, addItem(t, store, s.ID(), 1, 1))

	orders := new(MockOrdersGateway)
	orders.On("Create", ctx, d).Return(order.OrderID(9), nil).Once()
	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderSaved", ctx, mock.AnythingOfType("ports.OrderSaved")).
		Return(errors.New("broker down")).Once()
	cmd, _ := commands.NewSaveOrderCommand(s.ID())

	result, err := saveHandler(store, orders, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.OrderID(9), result.OrderID)
	publisher.AssertExpectations(t)
}

func TestSaveOrderCommandHandler_Handle_ClosedSession(t *testing.T) {
	d := order.NewDraft(time.Now())
	s, store := storedSession(t, d, testSnapshot(t))
	s.Close()
	orders := new(MockOrdersGateway)
	cmd, _ := commands.NewSaveOrderCommand(s.ID())

	_, err := saveHandler(store, orders, new(MockEventPublisher)).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, session.ErrSessionClosed)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
