// Package queries contains read operations over editing sessions. Queries return
// read models copied out of the session, never the live aggregate.
package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery fetches the current state of an editing session.
//
// Example:
//
//	query, _ := NewGetSessionQuery(sessionID)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d items, %s total\n", view.ItemCount, view.FinalPrice)
type GetSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSessionQuery creates the query.
func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}

	return GetSessionQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

// SessionID returns the session to read.
func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// LineItemView is one line item of the session view.
type LineItemView struct {
	ID         *order.LineItemID
	ProductID  catalog.ProductID
	Name       string
	UnitPrice  kernel.Money
	Quantity   int
	TotalPrice kernel.Money
}

// ProductView is one entry of the session's product picker.
type ProductView struct {
	ID        catalog.ProductID
	Name      string
	UnitPrice kernel.Money
}

// GetSessionQueryResponse is the draft plus the flags a client uses to enable
// or disable its controls.
type GetSessionQueryResponse struct {
	SessionID   kernel.UUID
	OrderID     *order.OrderID
	OrderNumber string
	Date        time.Time
	Status      order.Status
	LineItems   []LineItemView
	ItemCount   int
	FinalPrice  kernel.Money

	OrderNumberEditable bool
	StatusSelectable    bool
	CanAddItems         bool
	CatalogAvailable    bool

	Statuses []order.Status
	Products []ProductView
}
