package services

import (
	"menucore/internal/core/domain/model/order"
)

// StatusDerivation is the domain service that computes an order's aggregate
// status from the kitchen statuses of its line items. It is a pure policy:
// no state, no side effects, so the transition rules can be unit-tested
// without the order store.
//
// Policy, in precedence order:
//  1. A terminal order status (served, cancelled) passes through unchanged.
//     The store never calls the service in that state, but the policy stays
//     safe and idempotent if it is.
//  2. When every item is ready the order is ready. The order never reports
//     ready while any item is outstanding, so staff are not told to pick up
//     a partial order.
//  3. The first item entering preparation ratchets a pending order to
//     preparing. The ratchet fires only out of pending, so an order that
//     already left pending never flaps back.
//  4. Otherwise the current status stands.
//
// The service only ever advances an order along pending -> preparing ->
// ready; it never regresses a status and never produces served or cancelled.
//
// Example usage:
//
//	derivation := services.NewStatusDerivation()
//	next := derivation.DeriveOrderStatus(ord.Status(), ord.ItemStatuses())
//	ord.ApplyDerivedStatus(next)
type StatusDerivation struct{}

// NewStatusDerivation creates a new StatusDerivation instance.
func NewStatusDerivation() StatusDerivation {
	return StatusDerivation{}
}

// DeriveOrderStatus computes the order status implied by the given item
// statuses, starting from the order's current status.
//
// A single-item order whose item is ready yields ready immediately: the
// all-ready rule short-circuits without ever considering the preparing
// ratchet. An empty item list leaves the current status unchanged, although
// the order aggregate guarantees at least one item.
func (StatusDerivation) DeriveOrderStatus(current order.Status, itemStatuses []order.ItemStatus) order.Status {
	if current.IsTerminal() {
		return current
	}

	if len(itemStatuses) == 0 {
		return current
	}

	allReady := true
	anyPreparing := false
	for _, status := range itemStatuses {
		if status != order.ItemReady {
			allReady = false
		}
		if status == order.ItemPreparing {
			anyPreparing = true
		}
	}

	if allReady {
		return order.StatusReady
	}

	if anyPreparing && current == order.StatusPending {
		return order.StatusPreparing
	}

	return current
}
