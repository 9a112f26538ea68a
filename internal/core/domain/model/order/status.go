package order

import (
	"fmt"

	"menucore/internal/pkg/errs"
)

// Status represents the aggregate lifecycle state of an order.
//
// The pending/preparing/ready band is derived from the statuses of the
// order's line items (see the status derivation service); Served and
// Cancelled are terminal states reachable only through an explicit
// staff action, never through derivation.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Served
//	    │            │          │
//	    └────────────┴──────────┴─────> Cancelled
//
// Staff overrides may also force any non-terminal status directly; only the
// terminal states lock the order against further transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every submitted order.
	// No line item has entered preparation yet.
	StatusPending

	// StatusPreparing indicates the kitchen has started on at least one
	// line item.
	StatusPreparing

	// StatusReady indicates every line item is plated and the order is
	// waiting to be taken to the table.
	StatusReady

	// StatusServed indicates the order was delivered to the table.
	// Terminal; no further transitions are allowed.
	StatusServed

	// StatusCancelled indicates the order was withdrawn by staff or the
	// customer. Terminal; no further transitions are allowed.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusServed:    "served",
		StatusCancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusServed:    "served",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a status from its wire/persistence form.
// Accepted values are "pending", "preparing", "ready", "served", "cancelled".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase wire form of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Served and Cancelled orders are locked: neither item-status nor
// order-status mutations may touch them again.
func (s Status) IsTerminal() bool {
	return s == StatusServed || s == StatusCancelled
}

// IsActive reports whether an order in this status still requires kitchen or
// staff attention. Only pending and preparing orders are active; ready orders
// have left the kitchen queue and terminal orders are done.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusPreparing
}

// ChangeTo validates a direct transition to target and returns the new status.
//
// Direct transitions are staff overrides: any valid target is allowed,
// including forcing the order back to pending, as long as the current status
// is not terminal. This is the only path into Served and Cancelled.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s.IsTerminal() {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and cannot change", s.String()),
		)
	}

	return target, nil
}
