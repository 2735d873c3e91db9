// Package cart holds the per-user Cart aggregate and the pricing engine that turns cart lines
// into a Summary with delivery fee and promotions.
//
// Nothing about prices is stored on the cart. Every read prices the lines again from the
// current catalog, so promotion flags never go stale after a mutation.
package cart
