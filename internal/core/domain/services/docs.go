// Package services provides domain services that coordinate several aggregates of the
// marketplace.
//
// The package includes:
//   - OrderPlacer: turns a customer's cart, the store and the current catalog into a placed Order
package services
