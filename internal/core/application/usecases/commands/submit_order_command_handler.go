package commands

import (
	"context"

	"menucore/internal/core/application/store"
	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler turns a validated cart into a tracked order.
//
// The in-memory order store is mutated first and is authoritative: identity
// assignment, the pending initialization, and the total all happen there.
// The handler then writes the new order through to Postgres inside a unit
// of work, after every store lock has been released.
type SubmitOrderCommandHandler struct {
	orders     *store.OrderStore
	uowFactory OrderUoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(orders *store.OrderStore, uowFactory OrderUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		orders:     orders,
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command and returns a snapshot of the
// created order.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines := cmd.Lines()
	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(
			kernel.NewUUID(),
			line.MenuItemID(),
			line.Quantity(),
			line.Notes(),
			line.UnitPrice(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	created, err := h.orders.Submit(cmd.TableID(), cmd.BranchID(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
