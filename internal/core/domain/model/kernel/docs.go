// Package kernel provides the shared domain primitives of the marketplace.
//
// The package includes:
//   - UUID: a value object for identifiers of users, stores, products, orders and settlements
//   - Location: a validated geographic point with great-circle distance in kilometres
//   - Money: a non-negative rupee amount backed by an exact decimal
//   - Role: the four marketplace roles and an ordered role set
//
// Every value object rejects its zero value where a zero value would be meaningless, so
// aggregates can validate their parts with a single Validate call.
package kernel
