package queries_test

import (
	"testing"

	"menucore/internal/core/application/store"
	"menucore/internal/core/application/usecases/queries"
	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

// submitOrder submits one order with a single line item and returns its
// snapshot.
func submitOrder(t *testing.T, orders *store.OrderStore, tableID string) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, "", price(t, "10"))
	require.NoError(t, err)

	created, err := orders.Submit(tableID, "branch-main", []*order.Item{item})
	require.NoError(t, err)
	return created
}

func TestGetActiveOrdersQueryHandler_Handle_EmptyStore(t *testing.T) {
	orders := store.NewOrderStore(0)
	h := queries.NewGetActiveOrdersQueryHandler(orders)

	result, err := h.Handle(t.Context(), queries.NewGetActiveOrdersQuery())
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetActiveOrdersQueryHandler_Handle_InvalidQuery(t *testing.T) {
	orders := store.NewOrderStore(0)
	h := queries.NewGetActiveOrdersQueryHandler(orders)

	result, err := h.Handle(t.Context(), queries.GetActiveOrdersQuery{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestGetActiveOrdersQueryHandler_Handle_FiltersTerminalAndReady(t *testing.T) {
	orders := store.NewOrderStore(0)

	pending := submitOrder(t, orders, "table-1")

	preparing := submitOrder(t, orders, "table-2")
	_, err := orders.ChangeItemStatus(preparing.ID(), preparing.Items()[0].ID(), order.ItemPreparing)
	require.NoError(t, err)

	ready := submitOrder(t, orders, "table-3")
	_, err = orders.ChangeStatus(ready.ID(), order.StatusReady)
	require.NoError(t, err)

	served := submitOrder(t, orders, "table-4")
	_, err = orders.ChangeStatus(served.ID(), order.StatusServed)
	require.NoError(t, err)

	cancelled := submitOrder(t, orders, "table-5")
	_, err = orders.ChangeStatus(cancelled.ID(), order.StatusCancelled)
	require.NoError(t, err)

	h := queries.NewGetActiveOrdersQueryHandler(orders)
	result, err := h.Handle(t.Context(), queries.NewGetActiveOrdersQuery())
	require.NoError(t, err)
	require.Len(t, result, 2)

	// most-recent-first: table-2 was submitted after table-1
	assert.Equal(t, preparing.ID(), result[0].ID)
	assert.Equal(t, order.StatusPreparing, result[0].Status)
	assert.Equal(t, pending.ID(), result[1].ID)
	assert.Equal(t, order.StatusPending, result[1].Status)
}

func TestGetActiveOrdersQueryHandler_Handle_MapsOrderFields(t *testing.T) {
	orders := store.NewOrderStore(0)

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, "no onions", price(t, "4.50"))
	require.NoError(t, err)
	created, err := orders.Submit("table-7", "branch-main", []*order.Item{item})
	require.NoError(t, err)

	h := queries.NewGetActiveOrdersQueryHandler(orders)
	result, err := h.Handle(t.Context(), queries.NewGetActiveOrdersQuery())
	require.NoError(t, err)
	require.Len(t, result, 1)

	resp := result[0]
	assert.Equal(t, created.ID(), resp.ID)
	assert.Equal(t, created.Number(), resp.Number)
	assert.Equal(t, "table-7", resp.TableID)
	assert.Equal(t, "branch-main", resp.BranchID)
	assert.True(t, price(t, "13.5").IsEqual(resp.TotalAmount))
	assert.Equal(t, created.CreatedAt(), resp.CreatedAt)

	require.Len(t, resp.Items, 1)
	line := resp.Items[0]
	assert.Equal(t, item.ID(), line.ID)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, "no onions", line.Notes)
	assert.True(t, price(t, "4.50").IsEqual(line.UnitPrice))
	assert.True(t, price(t, "13.5").IsEqual(line.LineTotal))
	assert.Equal(t, order.ItemPending, line.Status)
}
