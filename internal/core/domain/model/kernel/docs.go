// Package kernel contains shared value objects used across the domain model.
//
// The package provides:
//   - UUID: identity value object for orders and order items
//   - Money: exact decimal amounts for price snapshots and order totals
//
// Value objects in this package are immutable and validate themselves; zero
// values are invalid unless documented otherwise (Money's zero value is a
// legitimate zero amount).
package kernel
