// Package kernel provides core domain primitives shared by the catalog, order and
// session models.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A non-negative decimal amount used for unit prices, line totals and order totals
//
// These primitives are immutable and safe for concurrent use.
package kernel
