// Package order contains the Order aggregate and its value objects: Customer,
// Line and Status. An order is produced by combining sanitized customer input
// with the pricing policy's quote at submission time; after that its only
// mutation is a status change. Totals are derived at construction, so the
// invariant total == subtotal + fee cannot be violated from outside.
package order
