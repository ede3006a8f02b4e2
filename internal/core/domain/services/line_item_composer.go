package services

import (
	"fmt"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// LineItemComposer turns a product pick from the add-item form into a line item.
//
// Business rules:
//   - The catalog must have loaded; an unavailable snapshot refuses composition
//   - The product must resolve in the snapshot
//   - Quantity must be at least 1
//   - Name and unit price are copied from the product; total price is unit price × quantity
//
// Example usage:
//
//	composer := services.NewLineItemComposer()
//	item, err := composer.Compose(snapshot, 7, 3)
//	if errors.Is(err, order.ErrInvalidLineItem) {
//	    // keep the form open and show the error
//	    return
//	}
//	err = draft.AddLineItem(item)
type LineItemComposer struct{}

// NewLineItemComposer creates a new LineItemComposer instance.
func NewLineItemComposer() LineItemComposer {
	return LineItemComposer{}
}

// Compose builds a new, unsaved line item.
//
// Returns:
//   - catalog.ErrCatalogUnavailable if the snapshot failed to load
//   - order.ErrInvalidLineItem (wrapping errs.ErrObjectNotFound) for an unknown product
//   - order.ErrInvalidLineItem (wrapping errs.ErrValueIsInvalid) for quantity < 1
func (c LineItemComposer) Compose(
	snapshot *catalog.Snapshot,
	productID catalog.ProductID,
	quantity int,
) (*order.LineItem, error) {
	if snapshot == nil || !snapshot.Available() {
		return nil, catalog.ErrCatalogUnavailable
	}

	product, ok := snapshot.FindByID(productID)
	if !ok {
		return nil, fmt.Errorf("%w: %w", order.ErrInvalidLineItem,
			errs.NewObjectNotFoundError("product", fmt.Sprint(productID)))
	}

	id := product.ID()
	return order.NewLineItem(order.LineItemCandidate{
		ProductID: &id,
		Name:      product.Name(),
		UnitPrice: product.UnitPrice(),
		Quantity:  quantity,
	})
}
