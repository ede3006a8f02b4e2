// Package catalog models the product catalog as seen by an editing session.
//
// The package includes:
//   - Product: An immutable catalog entry (id, name, unit price)
//   - Snapshot: The read-only set of products loaded once per editing session
//
// Key business rules:
//   - Product names are non-blank and unit prices are strictly positive
//   - A snapshot never changes after it is loaded; later catalog price changes
//     do not reach line items that were composed from it
//   - A failed catalog load yields an unavailable, empty snapshot instead of an error
//     that would abort the session
package catalog
