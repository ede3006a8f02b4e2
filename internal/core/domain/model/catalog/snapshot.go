package catalog

import (
	"errors"
	"fmt"
)

// ErrCatalogUnavailable means the Product Catalog service could not be reached,
// or that an operation needed products from a snapshot whose load failed.
var ErrCatalogUnavailable = errors.New("product catalog is unavailable")

// Snapshot is the immutable set of products an editing session composes from.
// Products keep the order in which the catalog listed them.
type Snapshot struct {
	products  []*Product
	byID      map[ProductID]*Product
	available bool
}

// NewSnapshot indexes products by id. Duplicate ids are rejected because a line item
// must resolve to exactly one product.
func NewSnapshot(products []*Product) (*Snapshot, error) {
	s := &Snapshot{
		products:  make([]*Product, 0, len(products)),
		byID:      make(map[ProductID]*Product, len(products)),
		available: true,
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[p.ID()]; dup {
			return nil, fmt.Errorf("duplicate product id %d in catalog", p.ID())
		}
		s.byID[p.ID()] = p
		s.products = append(s.products, p)
	}

	return s, nil
}

// UnavailableSnapshot is what a session gets when the catalog load failed:
// no products, and item composition is refused with ErrCatalogUnavailable.
func UnavailableSnapshot() *Snapshot {
	return &Snapshot{
		products: []*Product{},
		byID:     map[ProductID]*Product{},
	}
}

// Available reports whether the catalog was loaded successfully. A nil
// snapshot is unavailable.
func (s *Snapshot) Available() bool {
	return s != nil && s.available
}

// FindByID resolves a product reference.
func (s *Snapshot) FindByID(id ProductID) (*Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Products returns a copy of the product list.
func (s *Snapshot) Products() []*Product {
	out := make([]*Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of products.
func (s *Snapshot) Len() int {
	return len(s.products)
}
