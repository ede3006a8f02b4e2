// Package order provides the order-composition model: the Draft aggregate root,
// its line items, the status lifecycle and the validation rules that gate
// mutation and persistence.
//
// The package includes:
//   - Draft: The aggregate being built or edited, with derived item count and final price
//   - LineItem: A catalog product reference plus quantity with a derived total price
//   - SetProductReference / SetQuantity: The only two ways to change an existing line item
//   - Status: Pending, InProgress, Completed
//   - ValidateLineItem, ValidateOrderNumber, ValidateOrder: Pure business-rule checks
//
// Key business rules:
//   - Item count and final price are recomputed from the full line-item list after
//     every insertion, update and removal; they are never adjusted incrementally
//   - A line item's total price is always unit price × quantity
//   - Unit prices are copied from the catalog when an item is composed and are not
//     re-synced later
//   - A Completed draft rejects every mutation with ErrOrderLocked
//   - The order number is immutable once the draft has a persisted identifier
//   - A draft is persistable only with a non-empty alphanumeric order number and at
//     least one line item
package order
