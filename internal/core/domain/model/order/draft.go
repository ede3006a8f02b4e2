package order

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// ErrDraftIsNotConstructed is returned when a Draft was not created through NewDraft
// or RestoreDraft.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft or RestoreDraft constructor")

// DateLayout is the calendar-date format used for the order date on the wire.
const DateLayout = time.DateOnly

// OrderID is the identifier the Orders service assigns to a stored order.
type OrderID int64

// Draft is the order being built or edited. It is the aggregate root of the
// composition model and the only place line items are added, changed or removed.
//
// Draft follows these invariants:
//   - FinalPrice equals the sum of all line item totals at every observable point
//   - ItemCount equals the number of line items at every observable point
//   - A Completed draft is read-only
//   - The order number never changes once the draft has a persisted identifier
//   - The date is fixed at creation
//
// The derived fields are rebuilt from the full line-item list by recompute after
// each change. They have no setters.
type Draft struct {
	id          *OrderID
	orderNumber string
	date        time.Time
	status      Status
	lineItems   []*LineItem
	itemCount   int
	finalPrice  kernel.Money

	isConstructed bool
}

// NewDraft starts an empty, unsaved order in Pending status dated on the calendar
// day of now.
//
// Example:
//
//	draft := order.NewDraft(time.Now())
//	item, _ := composer.Compose(snapshot, productID, 2)
//	if err := draft.AddLineItem(item); err != nil {
//	    // ErrOrderLocked or ErrInvalidLineItem
//	}
func NewDraft(now time.Time) *Draft {
	d := &Draft{
		date:          truncateToDate(now),
		status:        Pending,
		lineItems:     make([]*LineItem, 0),
		isConstructed: true,
	}
	d.recompute()
	return d
}

// RestoreDraft hydrates a stored order. Item count and final price are recomputed
// from items; whatever totals the store reported are ignored.
//
// Business Rules:
//   - id must be positive
//   - status must be valid
//   - the order number must satisfy the character rule
//   - every item must have been built by NewLineItem or RestoreLineItem
func RestoreDraft(
	id OrderID,
	orderNumber string,
	date time.Time,
	status Status,
	items []*LineItem,
) (*Draft, error) {
	d := &Draft{
		date:          truncateToDate(date),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setRestoredOrderNumber(orderNumber),
		d.setStatus(status),
		d.setLineItems(items),
	); err != nil {
		return nil, err
	}

	d.recompute()
	return d, nil
}

// Validate ensures the Draft was properly constructed.
func (d *Draft) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDraftIsNotConstructed
	}
	return nil
}

// PersistedID returns the stored identifier and whether there is one.
func (d *Draft) PersistedID() (OrderID, bool) {
	if d.id == nil {
		return 0, false
	}
	return *d.id, true
}

// IsPersisted reports whether the Orders service already stores this order.
func (d *Draft) IsPersisted() bool {
	return d.id != nil
}

// OrderNumber returns the business key typed by the user.
func (d *Draft) OrderNumber() string {
	return d.orderNumber
}

// Date returns the creation date (midnight UTC).
func (d *Draft) Date() time.Time {
	return d.date
}

// Status returns the current status.
func (d *Draft) Status() Status {
	return d.status
}

// LineItems returns the items in insertion order. The slice is a copy; items
// themselves expose no mutators.
func (d *Draft) LineItems() []*LineItem {
	out := make([]*LineItem, len(d.lineItems))
	copy(out, d.lineItems)
	return out
}

// ItemCount returns the number of line items.
func (d *Draft) ItemCount() int {
	return d.itemCount
}

// FinalPrice returns the sum of all line item totals.
func (d *Draft) FinalPrice() kernel.Money {
	return d.finalPrice
}

// AddLineItem appends a composed line item.
//
// Returns:
//   - ErrOrderLocked if the draft is Completed
//   - ErrInvalidLineItem if the item fails ValidateLineItem
func (d *Draft) AddLineItem(item *LineItem) error {
	if err := d.EnsureMutable(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return invalidLineItem(err)
	}
	if err := ValidateLineItem(item.candidate()); err != nil {
		return err
	}

	d.lineItems = append(d.lineItems, item)
	d.recompute()
	return nil
}

// UpdateLineItem applies a mutation to the item at index. The mutation runs on a
// copy, so a rejected change leaves the draft exactly as it was. Product
// references need an available catalog and fail with
// catalog.ErrCatalogUnavailable otherwise.
//
// Example:
//
//	err := draft.UpdateLineItem(0, order.SetQuantity{Quantity: 4}, snapshot)
//	err = draft.UpdateLineItem(1, order.SetProductReference{ProductID: 12}, snapshot)
func (d *Draft) UpdateLineItem(index int, mutation LineItemMutation, products ProductResolver) error {
	if err := d.EnsureMutable(); err != nil {
		return err
	}
	if err := d.checkIndex(index); err != nil {
		return err
	}
	if mutation == nil {
		return invalidLineItem(errs.NewValueIsRequiredError("mutation"))
	}

	updated := d.lineItems[index].clone()
	if err := mutation.applyTo(updated, products); err != nil {
		return err
	}

	d.lineItems[index] = updated
	d.recompute()
	return nil
}

// RemoveLineItem deletes the item at index.
func (d *Draft) RemoveLineItem(index int) error {
	if err := d.EnsureMutable(); err != nil {
		return err
	}
	if err := d.checkIndex(index); err != nil {
		return err
	}

	items := make([]*LineItem, 0, len(d.lineItems)-1)
	items = append(items, d.lineItems[:index]...)
	items = append(items, d.lineItems[index+1:]...)
	d.lineItems = items
	d.recompute()
	return nil
}

// SetOrderNumber edits the business key. Values that break the character rule are
// rejected and the previous value is kept.
func (d *Draft) SetOrderNumber(value string) error {
	if err := d.EnsureMutable(); err != nil {
		return err
	}
	if d.IsPersisted() {
		return ErrOrderNumberImmutable
	}
	if err := ValidateOrderNumber(value); err != nil {
		return err
	}

	d.orderNumber = value
	return nil
}

// SetStatus selects any valid status. No transition table applies; only a
// Completed draft refuses, since Completed locks the status too.
func (d *Draft) SetStatus(status Status) error {
	if err := d.EnsureMutable(); err != nil {
		return err
	}
	return d.setStatus(status)
}

// AssignID records the identifier returned by the Orders service after a create.
func (d *Draft) AssignID(id OrderID) error {
	if d.IsPersisted() {
		return errs.NewValueIsInvalidErrorWithCause("order id", errors.New("order already has an identifier"))
	}
	return d.setID(id)
}

func (d *Draft) recompute() {
	total := kernel.ZeroMoney()
	for _, item := range d.lineItems {
		total = total.Add(item.TotalPrice())
	}
	d.itemCount = len(d.lineItems)
	d.finalPrice = total
}

func (d *Draft) checkIndex(index int) error {
	if index < 0 || index >= len(d.lineItems) {
		return invalidLineItem(fmt.Errorf("%w: %d not in [0, %d)", ErrLineItemIndexOutOfRange, index, len(d.lineItems)))
	}
	return nil
}

func (d *Draft) setID(id OrderID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	d.id = &id
	return nil
}

func (d *Draft) setRestoredOrderNumber(value string) error {
	if err := ValidateOrderNumber(value); err != nil {
		return err
	}
	d.orderNumber = value
	return nil
}

func (d *Draft) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Draft) setLineItems(items []*LineItem) error {
	restored := make([]*LineItem, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		restored = append(restored, item)
	}
	d.lineItems = restored
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
