// Package order contains the Order aggregate root, its line items, and the
// delivery status state machine.
//
// An Order is reconstructed ("hydrated") from normalized relational rows by
// the order repository: the raw order row is resolved against the user and
// restaurant lookup repositories, and each item row against the product
// lookup repository. All financial figures — line subtotals, order totals,
// deliverer commission — are derived here with exact decimal arithmetic and
// are never stored denormalized.
package order
