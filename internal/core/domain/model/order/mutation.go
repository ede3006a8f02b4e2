package order

import (
	"fmt"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/pkg/errs"
)

// ProductResolver resolves product references. *catalog.Snapshot implements it.
type ProductResolver interface {
	Available() bool
	FindByID(id catalog.ProductID) (*catalog.Product, bool)
}

// LineItemMutation is a change to an existing line item. The set is closed:
// SetProductReference and SetQuantity are the only implementations, each with its
// own recompute rule.
type LineItemMutation interface {
	applyTo(item *LineItem, products ProductResolver) error
}

// SetProductReference points a line item at another catalog product. Name and unit
// price are overwritten from the catalog and the total is recomputed with the
// item's current quantity.
type SetProductReference struct {
	ProductID catalog.ProductID
}

func (m SetProductReference) applyTo(item *LineItem, products ProductResolver) error {
	if products == nil || !products.Available() {
		return catalog.ErrCatalogUnavailable
	}

	product, ok := products.FindByID(m.ProductID)
	if !ok {
		return invalidLineItem(errs.NewObjectNotFoundError("product", fmt.Sprint(m.ProductID)))
	}

	item.productID = product.ID()
	item.name = product.Name()
	item.unitPrice = product.UnitPrice()
	item.recompute()
	return nil
}

// SetQuantity changes the quantity and recomputes the total.
type SetQuantity struct {
	Quantity int
}

func (m SetQuantity) applyTo(item *LineItem, _ ProductResolver) error {
	if m.Quantity <= 0 {
		return invalidLineItem(errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", m.Quantity),
		))
	}

	item.quantity = m.Quantity
	item.recompute()
	return nil
}
