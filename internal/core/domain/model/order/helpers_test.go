package order_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, time.March, 14, 15, 4, 5, 0, time.UTC)

func newTestSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()

	products := make([]*catalog.Product, 0, 3)
	for _, p := range []struct {
		id    catalog.ProductID
		name  string
		price string
	}{
		{1, "Widget", "5.00"},
		{2, "Gadget", "20.00"},
		{3, "Gizmo", "10.00"},
	} {
		product, err := catalog.NewProduct(p.id, p.name, kernel.MustMoney(p.price))
		require.NoError(t, err)
		products = append(products, product)
	}

	snapshot, err := catalog.NewSnapshot(products)
	require.NoError(t, err)
	return snapshot
}

func newTestItem(t *testing.T, productID catalog.ProductID, name, price string, qty int) *order.LineItem {
	t.Helper()

	item, err := order.NewLineItem(order.LineItemCandidate{
		ProductID: &productID,
		Name:      name,
		UnitPrice: kernel.MustMoney(price),
		Quantity:  qty,
	})
	require.NoError(t, err)
	return item
}

func requireDerivedConsistent(t *testing.T, d *order.Draft) {
	t.Helper()

	sum := kernel.ZeroMoney()
	for _, item := range d.LineItems() {
		require.True(t, item.TotalPrice().Equal(item.UnitPrice().Mul(item.Quantity())),
			"total %s != %s x %d", item.TotalPrice(), item.UnitPrice(), item.Quantity())
		sum = sum.Add(item.TotalPrice())
	}
	require.Equal(t, len(d.LineItems()), d.ItemCount())
	require.True(t, d.FinalPrice().Equal(sum), "final price %s != %s", d.FinalPrice(), sum)
}

func completedDraft(t *testing.T) *order.Draft {
	t.Helper()

	d, err := order.RestoreDraft(42, "ORD42", testDate, order.Completed, []*order.LineItem{
		newTestItem(t, 1, "Widget", "5.00", 2),
	})
	require.NoError(t, err)
	return d
}
