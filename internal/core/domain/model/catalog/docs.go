// Package catalog holds the merchant side of the marketplace: stores and the products they
// sell. A product carries one or more priced variants, and a variant may offer sizes that adjust
// its price. Carts and checkout price lines through Product.PriceFor.
package catalog
