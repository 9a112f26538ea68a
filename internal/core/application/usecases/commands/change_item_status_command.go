package commands

import (
	"errors"

	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/core/domain/model/order"
	"menucore/internal/pkg/guard"
)

var ErrChangeItemStatusCommandIsNotConstructed = errors.New(
	"ChangeItemStatusCommand must be created via NewChangeItemStatusCommand constructor",
)

// ChangeItemStatusCommand represents a kitchen-display action on a single
// line item: the cook starting or finishing one line of an order. Applying
// it may also advance the order's aggregate status through derivation.
type ChangeItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	status  order.ItemStatus

	guard guard.ConstructorGuard
}

// NewChangeItemStatusCommand creates a command to advance one line item's
// kitchen status. Validates that both identifiers are constructed and the
// target is a valid item status.
func NewChangeItemStatusCommand(orderID, itemID kernel.UUID, status order.ItemStatus) (ChangeItemStatusCommand, error) {
	cmd := ChangeItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeItemStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order holding the item.
func (c ChangeItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line item to mutate.
func (c ChangeItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Status returns the target item status.
func (c ChangeItemStatusCommand) Status() order.ItemStatus {
	return c.status
}

func (c *ChangeItemStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeItemStatusCommand) setStatus(status order.ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
