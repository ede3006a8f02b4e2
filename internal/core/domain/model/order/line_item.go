package order

import (
	"errors"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created through
// NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// LineItemID is the identifier the Orders service assigns to a stored line item.
type LineItemID int64

// LineItemCandidate is a line item still being filled in, as in an add-item form.
// Its product reference may be nil until a product is picked.
type LineItemCandidate struct {
	ProductID *catalog.ProductID
	Name      string
	UnitPrice kernel.Money
	Quantity  int
}

// LineItem is one entry of a Draft.
//
// LineItem follows these invariants:
//   - References a catalog product and carries its name and unit price as copied at composition
//   - Quantity is at least 1
//   - TotalPrice always equals UnitPrice × Quantity
//   - Has an identifier only once the Orders service stored it
type LineItem struct {
	id         *LineItemID
	productID  catalog.ProductID
	name       string
	unitPrice  kernel.Money
	quantity   int
	totalPrice kernel.Money

	isConstructed bool
}

// NewLineItem validates a candidate and turns it into a new, unsaved line item.
//
// Example:
//
//	pid := product.ID()
//	item, err := order.NewLineItem(order.LineItemCandidate{
//	    ProductID: &pid,
//	    Name:      product.Name(),
//	    UnitPrice: product.UnitPrice(),
//	    Quantity:  3,
//	})
//	if errors.Is(err, order.ErrInvalidLineItem) {
//	    // show the add-item error and keep the form open
//	}
func NewLineItem(candidate LineItemCandidate) (*LineItem, error) {
	if err := ValidateLineItem(candidate); err != nil {
		return nil, err
	}

	item := &LineItem{
		productID:     *candidate.ProductID,
		name:          candidate.Name,
		unitPrice:     candidate.UnitPrice,
		quantity:      candidate.Quantity,
		isConstructed: true,
	}
	item.recompute()

	return item, nil
}

// RestoreLineItem rebuilds a stored line item. The total price is recomputed from
// unit price and quantity; a stored total is never trusted.
func RestoreLineItem(
	id *LineItemID,
	productID catalog.ProductID,
	name string,
	unitPrice kernel.Money,
	quantity int,
) (*LineItem, error) {
	item, err := NewLineItem(LineItemCandidate{
		ProductID: &productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, err
	}

	if id != nil {
		stored := *id
		item.id = &stored
	}

	return item, nil
}

// Validate ensures the LineItem was created through a constructor.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the stored identifier, or nil for an item added in this session.
func (li *LineItem) ID() *LineItemID {
	if li.id == nil {
		return nil
	}
	id := *li.id
	return &id
}

// ProductID returns the referenced catalog product.
func (li *LineItem) ProductID() catalog.ProductID {
	return li.productID
}

// Name returns the product name copied at composition.
func (li *LineItem) Name() string {
	return li.name
}

// UnitPrice returns the unit price copied at composition.
func (li *LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns the ordered quantity.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// TotalPrice returns UnitPrice × Quantity.
func (li *LineItem) TotalPrice() kernel.Money {
	return li.totalPrice
}

func (li *LineItem) candidate() LineItemCandidate {
	pid := li.productID
	return LineItemCandidate{
		ProductID: &pid,
		Name:      li.name,
		UnitPrice: li.unitPrice,
		Quantity:  li.quantity,
	}
}

func (li *LineItem) clone() *LineItem {
	c := *li
	if li.id != nil {
		id := *li.id
		c.id = &id
	}
	return &c
}

func (li *LineItem) recompute() {
	li.totalPrice = li.unitPrice.Mul(li.quantity)
}
