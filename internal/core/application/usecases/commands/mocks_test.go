package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogGateway struct{ mock.Mock }

func (m *MockCatalogGateway) List(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*catalog.Product)
	return products, args.Error(1)
}

type MockOrdersGateway struct{ mock.Mock }

func (m *MockOrdersGateway) Get(ctx context.Context, id order.OrderID) (*order.Draft, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*order.Draft)
	return d, args.Error(1)
}

func (m *MockOrdersGateway) Create(ctx context.Context, d *order.Draft) (order.OrderID, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(order.OrderID), args.Error(1)
}

func (m *MockOrdersGateway) Update(ctx context.Context, id order.OrderID, d *order.Draft) error {
	args := m.Called(ctx, id, d)
	return args.Error(0)
}

func (m *MockOrdersGateway) Delete(ctx context.Context, id order.OrderID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderSaved(ctx context.Context, event ports.OrderSaved) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Add(s *session.Session) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSessionStore) Get(id kernel.UUID) (*session.Session, error) {
	args := m.Called(id)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *MockSessionStore) Remove(id kernel.UUID) {
	m.Called(id)
}

func (m *MockSessionStore) List() []*session.Session {
	args := m.Called()
	sessions, _ := args.Get(0).([]*session.Session)
	return sessions
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testProducts(t *testing.T) []*catalog.Product {
	t.Helper()

	widget, err := catalog.NewProduct(1, "Widget", kernel.MustMoney("5.00"))
	require.NoError(t, err)
	gadget, err := catalog.NewProduct(2, "Gadget", kernel.MustMoney("20.00"))
	require.NoError(t, err)
	return []*catalog.Product{widget, gadget}
}

func testSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()

	snapshot, err := catalog.NewSnapshot(testProducts(t))
	require.NoError(t, err)
	return snapshot
}

// storedSession registers a session around draft in a mock store.
func storedSession(t *testing.T, draft *order.Draft, snapshot *catalog.Snapshot) (*session.Session, *MockSessionStore) {
	t.Helper()

	s, err := session.New(kernel.NewUUID(), draft, snapshot, time.Now())
	require.NoError(t, err)

	store := new(MockSessionStore)
	store.On("Get", s.ID()).Return(s, nil)
	return s, store
}

func inspect(t *testing.T, s *session.Session, fn func(d *order.Draft)) {
	t.Helper()

	require.NoError(t, s.Do(time.Now(), func(d *order.Draft, _ *catalog.Snapshot) error {
		fn(d)
		return nil
	}))
}

func completedDraft(t *testing.T) *order.Draft {
	t.Helper()

	pid := catalog.ProductID(1)
	item, err := order.NewLineItem(order.LineItemCandidate{
		ProductID: &pid,
		Name:      "Widget",
		UnitPrice: kernel.MustMoney("5.00"),
		Quantity:  2,
	})
	require.NoError(t, err)

	d, err := order.RestoreDraft(42, "ORD42", time.Now(), order.Completed, []*order.LineItem{item})
	require.NoError(t, err)
	return d
}
