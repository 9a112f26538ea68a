package commands

import (
	"errors"

	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrCartLineIsNotConstructed = errors.New(
		"CartLine must be created via NewCartLine constructor",
	)
	ErrCartIsEmpty        = errors.New("cart must contain at least one line")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
	ErrMenuItemIsRequired = errors.New("menu item id is required")
)

// CartLine is one line of a submitted cart: a catalog reference, a quantity,
// optional kitchen notes, and the unit-price snapshot taken by the checkout
// collaborator at submission time.
type CartLine struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	quantity   int
	notes      string
	unitPrice  kernel.Money

	guard guard.ConstructorGuard
}

// NewCartLine creates a validated cart line. The quantity must be positive
// and the menu item reference must be a constructed UUID.
func NewCartLine(menuItemID kernel.UUID, quantity int, notes string, unitPrice kernel.Money) (CartLine, error) {
	line := CartLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return CartLine{}, err
	}

	line.notes = notes
	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l CartLine) Validate() error {
	return l.guard.Validate(ErrCartLineIsNotConstructed)
}

// MenuItemID returns the catalog reference for the ordered menu item.
func (l CartLine) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the number of units ordered.
func (l CartLine) Quantity() int {
	return l.quantity
}

// Notes returns the optional kitchen instructions.
func (l CartLine) Notes() string {
	return l.notes
}

// UnitPrice returns the price snapshot for one unit.
func (l CartLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l *CartLine) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return ErrMenuItemIsRequired
	}

	l.menuItemID = menuItemID
	return nil
}

func (l *CartLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	l.quantity = quantity
	return nil
}

func (l *CartLine) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	l.unitPrice = unitPrice
	return nil
}

// SubmitOrderCommand represents a request to turn a checked-out cart into a
// tracked order. The table and branch identifiers are opaque context from
// the QR landing flow and pass through unchanged.
//
// Example:
//
//	line, err := NewCartLine(menuItemID, 2, "no onions", price)
//	if err != nil {
//	    return fmt.Errorf("invalid cart line: %w", err)
//	}
//
//	cmd, err := NewSubmitOrderCommand("table-7", "branch-main", []CartLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid cart: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct {
	tableID  string
	branchID string
	lines    []CartLine

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a cart as a new order.
// The cart must contain at least one constructed line; the context
// identifiers are opaque and may be empty.
func NewSubmitOrderCommand(tableID, branchID string, lines []CartLine) (SubmitOrderCommand, error) {
	if len(lines) == 0 {
		return SubmitOrderCommand{}, ErrCartIsEmpty
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return SubmitOrderCommand{}, err
		}
	}

	cmd := SubmitOrderCommand{
		tableID:  tableID,
		branchID: branchID,
		lines:    make([]CartLine, len(lines)),
		guard:    guard.NewConstructorGuard(),
	}
	copy(cmd.lines, lines)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// TableID returns the opaque table context identifier.
func (c SubmitOrderCommand) TableID() string {
	return c.tableID
}

// BranchID returns the opaque branch context identifier.
func (c SubmitOrderCommand) BranchID() string {
	return c.branchID
}

// Lines returns the submitted cart lines in order.
func (c SubmitOrderCommand) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}
