package commands

import (
	"context"

	"menucore/internal/core/application/store"
)

// ChangeItemStatusCommandHandler applies kitchen-display item updates. The
// store performs the item transition and any aggregate derivation in one
// critical section; this handler then writes the resulting snapshot through
// to Postgres.
type ChangeItemStatusCommandHandler struct {
	orders     *store.OrderStore
	uowFactory OrderUoWFactory
}

// NewChangeItemStatusCommandHandler creates a handler for item-status
// updates.
func NewChangeItemStatusCommandHandler(orders *store.OrderStore, uowFactory OrderUoWFactory) ChangeItemStatusCommandHandler {
	return ChangeItemStatusCommandHandler{
		orders:     orders,
		uowFactory: uowFactory,
	}
}

// Handle processes the item-status command. A failed store mutation
// (unknown order or item, regression, terminal order) propagates
// immediately and nothing is persisted.
func (h *ChangeItemStatusCommandHandler) Handle(ctx context.Context, cmd ChangeItemStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	updated, err := h.orders.ChangeItemStatus(cmd.OrderID(), cmd.ItemID(), cmd.Status())
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
