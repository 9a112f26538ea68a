package order

import (
	"errors"
	"fmt"
	"time"

	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNumberIsInvalid is returned for non-positive order numbers.
	ErrOrderNumberIsInvalid = errors.New("order number must be greater than 0")
)

// Order is the aggregate root for a submitted customer order. It owns its
// line items and tracks the order through the preparation and service
// lifecycle.
//
// Order follows these invariants:
//   - Always has at least one line item; membership is fixed at submission
//   - id and orderNumber are assigned exactly once, at creation
//   - The pending/preparing/ready band of the aggregate status is derived
//     from item statuses; served and cancelled are explicit and terminal
//   - Once terminal, no item-status or order-status mutation is permitted
//   - totalAmount is the sum of unit price x quantity over all items,
//     computed at creation and immutable
//   - updatedAt strictly advances on every mutation and is never before
//     createdAt
//
// The struct uses private fields so every mutation goes through validated
// methods; the only writers are the order store's operations.
type Order struct {
	// id is the globally unique identifier for the order
	id kernel.UUID

	// number is the human-facing sequential label, unique and
	// monotonically increasing across the process lifetime
	number int64

	// tableID and branchID are opaque context identifiers passed through
	// unchanged from the cart/checkout collaborator
	tableID  string
	branchID string

	// items are the order's line items, in submission order
	items []*Item

	// status is the aggregate lifecycle state
	status Status

	// totalAmount is the order total snapshotted at creation
	totalAmount kernel.Money

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a freshly submitted order with validation. Every item and
// the order itself start in pending status; the total is computed from the
// items' price snapshots and both timestamps are set to the current time.
//
// The caller (the order store) is responsible for supplying a unique id and
// the next order number.
func NewOrder(id kernel.UUID, number int64, tableID, branchID string, items []*Item) (*Order, error) {
	ord := &Order{
		tableID:       tableID,
		branchID:      branchID,
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		ord.setID(id),
		ord.setNumber(number),
		ord.setItems(items),
	); err != nil {
		return nil, err
	}

	ord.totalAmount = computeTotal(ord.items)
	now := time.Now()
	ord.createdAt = now
	ord.updatedAt = now

	return ord, nil
}

// RestoreOrder reconstructs an order from persistence, including its status,
// total, and timestamps. Used only by repository adapters.
func RestoreOrder(
	id kernel.UUID,
	number int64,
	tableID, branchID string,
	items []*Item,
	status Status,
	totalAmount kernel.Money,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	ord, err := NewOrder(id, number, tableID, branchID, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"updatedAt is invalid",
			fmt.Errorf("%s is before createdAt %s", updatedAt, createdAt),
		)
	}

	ord.status = status
	ord.totalAmount = totalAmount
	ord.createdAt = createdAt
	ord.updatedAt = updatedAt

	return ord, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing sequential order number.
func (o *Order) Number() int64 {
	return o.number
}

// TableID returns the opaque table context identifier.
func (o *Order) TableID() string {
	return o.tableID
}

// BranchID returns the opaque branch context identifier.
func (o *Order) BranchID() string {
	return o.branchID
}

// Items returns the order's line items in submission order.
// The returned slice is a copy; the items themselves are shared and mutate
// only through the aggregate.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the line item with the given identifier, or an
// ObjectNotFoundError if no such item exists in this order.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// Status returns the current aggregate status.
func (o *Order) Status() Status {
	return o.status
}

// ItemStatuses returns the kitchen statuses of all line items in submission
// order. This is the input the status derivation service works from.
func (o *Order) ItemStatuses() []ItemStatus {
	statuses := make([]ItemStatus, len(o.items))
	for i, item := range o.items {
		statuses[i] = item.Status()
	}
	return statuses
}

// TotalAmount returns the order total snapshotted at creation.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus sets the aggregate status directly, bypassing derivation.
//
// This is the explicit override path: it is the only way to reach the
// terminal served and cancelled states, and the only way to force a
// pending/preparing/ready status without going through item-derived logic.
//
// Returns an OrderIsFinalizedError if the order is already terminal; a
// failed call leaves the order entirely unchanged.
func (o *Order) ChangeStatus(target Status) error {
	if o.status.IsTerminal() {
		return errs.NewOrderIsFinalizedError(o.id.String(), o.status.String())
	}

	newStatus, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ChangeItemStatus advances the kitchen status of the line item with the
// given identifier. The item is addressed by identity, not position.
//
// Returns an OrderIsFinalizedError if the order is terminal, an
// ObjectNotFoundError if the item does not exist, and a validation error if
// the item status would regress. A failed call leaves the order entirely
// unchanged; a successful call refreshes updatedAt even when the item status
// did not change the aggregate status.
//
// The caller is expected to follow up with the status derivation service and
// ApplyDerivedStatus so the aggregate status tracks the items.
func (o *Order) ChangeItemStatus(itemID kernel.UUID, target ItemStatus) error {
	if o.status.IsTerminal() {
		return errs.NewOrderIsFinalizedError(o.id.String(), o.status.String())
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err = item.changeStatus(target); err != nil {
		return err
	}

	o.touch()
	return nil
}

// ApplyDerivedStatus applies a status computed by the derivation service.
// A no-op when the status is unchanged or the order is terminal; it never
// validates workflow direction because the derivation service already has.
func (o *Order) ApplyDerivedStatus(derived Status) {
	if o.status.IsTerminal() || derived == o.status {
		return
	}
	if derived.Validate() != nil {
		return
	}

	o.status = derived
	o.touch()
}

// Clone returns a deep copy of the order for snapshot reads. The copy shares
// nothing with the original, so it is safe to hand out while the original
// keeps mutating.
func (o *Order) Clone() *Order {
	copied := *o
	copied.items = make([]*Item, len(o.items))
	for i, item := range o.items {
		copied.items[i] = item.clone()
	}
	return &copied
}

// touch advances updatedAt. The nanosecond bump keeps the "every mutation
// strictly advances updatedAt" invariant even if the wall clock has not
// visibly moved between two mutations.
func (o *Order) touch() {
	now := time.Now()
	if !now.After(o.updatedAt) {
		now = o.updatedAt.Add(time.Nanosecond)
	}
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number int64) error {
	if number <= 0 {
		return ErrOrderNumberIsInvalid
	}
	o.number = number
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"order items",
				fmt.Errorf("duplicate item id %s", item.ID()),
			)
		}
		seen[item.ID()] = struct{}{}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}

func computeTotal(items []*Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
