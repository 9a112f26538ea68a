package commands_test

import (
	"errors"
	"testing"

	"menucore/internal/core/application/store"
	"menucore/internal/core/application/usecases/commands"
	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/core/domain/model/order"
	"menucore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeWithOrder seeds a fresh store with one submitted order and returns
// both.
func storeWithOrder(t *testing.T) (*store.OrderStore, *order.Order) {
	t.Helper()

	orders := store.NewOrderStore(0)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, "", testPrice(t, "10"))
	require.NoError(t, err)

	created, err := orders.Submit("table-7", "branch-main", []*order.Item{item})
	require.NoError(t, err)
	return orders, created
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orders, created := storeWithOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(created.ID(), order.StatusServed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(orders, factory)
	require.NoError(t, h.Handle(ctx, cmd))

	stored, err := orders.Get(created.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusServed, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	orders := store.NewOrderStore(0)
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(orders, factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orders := store.NewOrderStore(0)
	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.StatusServed)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(orders, factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatusCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	orders, created := storeWithOrder(t)
	_, err := orders.ChangeStatus(created.ID(), order.StatusCancelled)
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(created.ID(), order.StatusServed)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(orders, factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOrderIsFinalized)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	orders, created := storeWithOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(created.ID(), order.StatusReady)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(orders, factory)
	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	orders, created := storeWithOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(created.ID(), order.StatusReady)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(orders, factory)
	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
