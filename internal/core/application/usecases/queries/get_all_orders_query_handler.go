package queries

import (
	"context"

	"menucore/internal/core/application/store"
)

// GetAllOrdersQueryHandler serves the full order history from the in-memory
// store, terminal orders included.
type GetAllOrdersQueryHandler struct {
	orders *store.OrderStore
}

// NewGetAllOrdersQueryHandler creates a handler for order-history queries.
func NewGetAllOrdersQueryHandler(orders *store.OrderStore) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle returns every order known to the store, most-recent-first.
func (h GetAllOrdersQueryHandler) Handle(
	_ context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all := h.orders.All()
	responses := make([]OrderResponse, 0, len(all))
	for _, ord := range all {
		responses = append(responses, orderToResponse(ord))
	}

	return responses, nil
}
