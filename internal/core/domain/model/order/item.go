package order

import (
	"errors"
	"fmt"

	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item within an order: one menu item at an order-time price
// snapshot, with its own kitchen-display status.
//
// Item follows these invariants:
//   - Must have a valid unique identifier and a valid menu item reference
//   - Quantity must be positive
//   - The unit price is snapshotted at order time and never changes, so
//     later catalog price edits cannot alter a placed order
//   - Status only moves forward along pending -> preparing -> ready
//
// Item membership in an order is fixed at submission; only the status field
// mutates afterwards, and only through the order aggregate.
type Item struct {
	// id is the item's identifier, unique within its parent order
	id kernel.UUID

	// menuItemID references the catalog item ordered; the core never
	// dereferences it
	menuItemID kernel.UUID

	// quantity is the number of units ordered (positive)
	quantity int

	// notes carries optional free-text instructions for the kitchen
	notes string

	// unitPrice is the price snapshot taken when the order was placed
	unitPrice kernel.Money

	// status is the kitchen-display state of this line
	status ItemStatus

	// isConstructed ensures the item was created via NewItem or RestoreItem
	isConstructed bool
}

// NewItem creates a line item in pending status with validation. This is the
// only way to create a valid Item for a new order.
func NewItem(id kernel.UUID, menuItemID kernel.UUID, quantity int, notes string, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		status:        ItemPending,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	item.notes = notes
	return item, nil
}

// RestoreItem reconstructs a line item from persistence, including a status
// other than pending. Used only by repository adapters.
func RestoreItem(id kernel.UUID, menuItemID kernel.UUID, quantity int, notes string, unitPrice kernel.Money, status ItemStatus) (*Item, error) {
	item, err := NewItem(id, menuItemID, quantity, notes, unitPrice)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	item.status = status
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the catalog reference for the ordered menu item.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Notes returns the optional kitchen instructions for this line.
func (i *Item) Notes() string {
	return i.notes
}

// UnitPrice returns the order-time price snapshot for one unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Status returns the current kitchen-display status of the item.
func (i *Item) Status() ItemStatus {
	return i.status
}

// LineTotal returns unit price multiplied by quantity.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

// changeStatus advances the item's kitchen status. Regression is rejected;
// re-applying the current status succeeds. Called only by the order
// aggregate, which owns terminal-state and timestamp handling.
func (i *Item) changeStatus(target ItemStatus) error {
	newStatus, err := i.status.ChangeTo(target)
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

// clone returns a deep copy of the item for snapshot reads.
func (i *Item) clone() *Item {
	copied := *i
	return &copied
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("menu item id is invalid", err)
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
