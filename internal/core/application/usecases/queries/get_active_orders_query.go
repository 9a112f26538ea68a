// Package queries contains the read side of the CQRS split. Query handlers
// read deep-copied snapshots from the in-memory order store, so they never
// block writers and never observe partially applied mutations.
package queries

import (
	"errors"
	"time"

	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/core/domain/model/order"
	"menucore/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order still requiring kitchen or
// staff attention: orders in pending or preparing status, most-recent-first.
// This is the query behind the kitchen display and the staff dashboard.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(orders)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	for _, o := range active {
//	    fmt.Printf("#%d %s (%s)\n", o.Number, o.Status, o.TableID)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve active orders.
// This is a parameterless query.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// OrderResponse is the read model for one order: a flattened snapshot safe
// to hold, render, and serialize without touching the store again.
type OrderResponse struct {
	ID          kernel.UUID
	Number      int64
	TableID     string
	BranchID    string
	Status      order.Status
	TotalAmount kernel.Money
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []OrderItemResponse
}

// OrderItemResponse is the read model for one line item.
type OrderItemResponse struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Quantity   int
	Notes      string
	UnitPrice  kernel.Money
	LineTotal  kernel.Money
	Status     order.ItemStatus
}

// orderToResponse flattens an order snapshot into the read model.
func orderToResponse(ord *order.Order) OrderResponse {
	items := ord.Items()
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			ID:         item.ID(),
			MenuItemID: item.MenuItemID(),
			Quantity:   item.Quantity(),
			Notes:      item.Notes(),
			UnitPrice:  item.UnitPrice(),
			LineTotal:  item.LineTotal(),
			Status:     item.Status(),
		})
	}

	return OrderResponse{
		ID:          ord.ID(),
		Number:      ord.Number(),
		TableID:     ord.TableID(),
		BranchID:    ord.BranchID(),
		Status:      ord.Status(),
		TotalAmount: ord.TotalAmount(),
		CreatedAt:   ord.CreatedAt(),
		UpdatedAt:   ord.UpdatedAt(),
		Items:       itemResponses,
	}
}
