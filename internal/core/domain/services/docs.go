// Package services provides domain services that work across the catalog and
// order aggregates.
//
// The package includes:
//   - LineItemComposer: Builds a validated line item from a catalog product and a quantity
//
// Composition is pure. It never touches a Draft; inserting the composed item is a
// separate step performed by Draft.AddLineItem after composition succeeded.
package services
