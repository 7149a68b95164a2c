// Package catalog holds the consistency core of the storefront: the
// activation cascade over the three material hierarchies, the active-scope
// predicate applied to every customer-facing read, and the polymorphic
// product reference resolver used by cart, wishlist, order and review rows.
package catalog

import "errors"

var (
	// ErrNotFound covers both a missing row and a row hidden by the
	// active-scope filter on customer-facing reads.
	ErrNotFound = errors.New("catalog: not found")

	// ErrUnknownMaterial is returned for a material value outside
	// gold/silver/imitation.
	ErrUnknownMaterial = errors.New("catalog: unknown material type")
)
