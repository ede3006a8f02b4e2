package catalog

import (
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created through NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// ProductID is the stable key the Product Catalog service assigns to a product.
type ProductID int64

// Product is a read-only catalog entry.
//
// Product follows these invariants:
//   - ID is positive
//   - Name is not blank
//   - Unit price is greater than zero
type Product struct {
	id        ProductID
	name      string
	unitPrice kernel.Money

	isConstructed bool
}

// NewProduct validates and creates a Product. All violations are reported together.
//
// Example:
//
//	p, err := catalog.NewProduct(7, "Espresso beans", kernel.MustMoney("12.50"))
//	if err != nil {
//	    // the catalog service returned a malformed product
//	}
func NewProduct(id ProductID, name string, unitPrice kernel.Money) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the catalog identifier.
func (p *Product) ID() ProductID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current catalog price.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

func (p *Product) setID(id ProductID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}
	p.unitPrice = unitPrice
	return nil
}
