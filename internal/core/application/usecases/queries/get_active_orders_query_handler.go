package queries

import (
	"context"

	"menucore/internal/core/application/store"
)

// GetActiveOrdersQueryHandler serves the active-order read model from the
// in-memory store. The store hands out detached snapshots, so the handler
// holds no lock while mapping and the caller holds nothing shared at all.
type GetActiveOrdersQueryHandler struct {
	orders *store.OrderStore
}

// NewGetActiveOrdersQueryHandler creates a handler for active-order queries.
func NewGetActiveOrdersQueryHandler(orders *store.OrderStore) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{orders: orders}
}

// Handle returns all pending and preparing orders, most-recent-first.
func (h GetActiveOrdersQueryHandler) Handle(
	_ context.Context,
	query GetActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := h.orders.Active()
	responses := make([]OrderResponse, 0, len(active))
	for _, ord := range active {
		responses = append(responses, orderToResponse(ord))
	}

	return responses, nil
}
