package order

import (
	"fmt"

	"menucore/internal/pkg/errs"
)

// ItemStatus represents the kitchen-display state of a single line item.
//
// Item statuses form a one-way ratchet:
//
//	ItemPending ──> ItemPreparing ──> ItemReady
//
// Forward jumps are allowed (a cold item can go straight from pending to
// ready), re-applying the current status is allowed (idempotent), and
// regression is rejected: the derivation policy that computes the order's
// aggregate status assumes items never move backwards.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ItemPending means the kitchen has not started on the item.
	ItemPending

	// ItemPreparing means the item is being cooked.
	ItemPreparing

	// ItemReady means the item is plated and waiting for pickup.
	ItemReady
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown: "unknown",
		ItemPending:       "pending",
		ItemPreparing:     "preparing",
		ItemReady:         "ready",
	}
}

func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // ItemStatusUnknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		ItemPending:   "pending",
		ItemPreparing: "preparing",
		ItemReady:     "ready",
	}
}

// ItemStatusFromString parses an item status from its wire/persistence form.
// Accepted values are "pending", "preparing", "ready".
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, str := range getValidItemStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item status is invalid",
		fmt.Errorf("%q is not a valid item status", s),
	)
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status is invalid",
			fmt.Errorf("%d is not a valid item status", s),
		)
	}
	return nil
}

// String returns the lowercase wire form of the item status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ChangeTo validates a transition to target and returns the new status.
//
// The pending -> preparing -> ready progression only moves forward.
// Re-applying the current status succeeds so a double tap on the kitchen
// display is harmless; any backwards move is rejected.
func (s ItemStatus) ChangeTo(target ItemStatus) (ItemStatus, error) {
	if err := target.Validate(); err != nil {
		return ItemStatusUnknown, err
	}

	if target < s {
		return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"item status is invalid",
			fmt.Errorf("cannot regress from %s to %s", s.String(), target.String()),
		)
	}

	return target, nil
}
