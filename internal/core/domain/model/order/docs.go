// Package order provides the domain model for customer orders on the
// digital-menu platform: the Order aggregate root, its line Items, and the
// status state machines for both.
//
// Key business rules:
//   - Orders are submitted from a cart with at least one line item; item
//     membership never changes afterwards, only item statuses do
//   - Each line item carries an order-time unit-price snapshot, so catalog
//     price edits never alter a placed order
//   - The aggregate status in the pending/preparing/ready band is derived
//     from the items' kitchen statuses (see the services package); served
//     and cancelled are explicit, terminal staff actions
//   - Item statuses ratchet forward only: pending -> preparing -> ready
//
// The package follows Domain-Driven Design conventions: aggregates and
// entities keep private fields, are created through validating constructors,
// and expose intent-revealing mutation methods that enforce the rules above.
package order
