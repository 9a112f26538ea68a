package commands

import (
	"context"

	"menucore/internal/core/application/store"
)

// ChangeOrderStatusCommandHandler applies explicit order-status overrides:
// the only path into the terminal served and cancelled states.
//
// The store mutation is authoritative and commits first; the updated order
// is then written through to Postgres inside a unit of work.
type ChangeOrderStatusCommandHandler struct {
	orders     *store.OrderStore
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order-status
// overrides.
func NewChangeOrderStatusCommandHandler(orders *store.OrderStore, uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		orders:     orders,
		uowFactory: uowFactory,
	}
}

// Handle processes the status override command. A failed store mutation
// (unknown order, terminal state) propagates immediately and nothing is
// persisted.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	updated, err := h.orders.ChangeStatus(cmd.OrderID(), cmd.Status())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Update(ctx, updated); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
