package http

import (
	"time"

	"menucore/internal/core/application/usecases/queries"
	"menucore/internal/core/domain/model/order"
)

// SubmitOrderRequest is the JSON body for order submission. The table and
// branch identifiers come from the QR landing context and pass through
// opaque.
type SubmitOrderRequest struct {
	TableID  string            `json:"tableId"`
	BranchID string            `json:"branchId"`
	Items    []CartLineRequest `json:"items"`
}

// CartLineRequest is one submitted cart line. The unit price is the decimal
// string snapshot taken at checkout, e.g. "12.50".
type CartLineRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
	UnitPrice  string `json:"unitPrice"`
}

// ChangeStatusRequest carries the target status for both order-level and
// item-level status updates.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the JSON shape of one order.
type OrderResponse struct {
	ID          string              `json:"id"`
	Number      int64               `json:"number"`
	TableID     string              `json:"tableId"`
	BranchID    string              `json:"branchId"`
	Status      string              `json:"status"`
	TotalAmount string              `json:"totalAmount"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Items       []OrderItemResponse `json:"items"`
}

// OrderItemResponse is the JSON shape of one line item.
type OrderItemResponse struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
	UnitPrice  string `json:"unitPrice"`
	LineTotal  string `json:"lineTotal"`
	Status     string `json:"status"`
}

// Error is the JSON error envelope returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toOrderResponse(resp queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			ID:         item.ID.String(),
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			Notes:      item.Notes,
			UnitPrice:  item.UnitPrice.String(),
			LineTotal:  item.LineTotal.String(),
			Status:     item.Status.String(),
		})
	}

	return OrderResponse{
		ID:          resp.ID.String(),
		Number:      resp.Number,
		TableID:     resp.TableID,
		BranchID:    resp.BranchID,
		Status:      resp.Status.String(),
		TotalAmount: resp.TotalAmount.String(),
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
		Items:       items,
	}
}

// orderToResponse maps an order snapshot straight onto the wire shape.
// Used where a command hands back the mutated order and no read model is
// involved.
func orderToResponse(ord *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(ord.Items()))
	for _, item := range ord.Items() {
		items = append(items, OrderItemResponse{
			ID:         item.ID().String(),
			MenuItemID: item.MenuItemID().String(),
			Quantity:   item.Quantity(),
			Notes:      item.Notes(),
			UnitPrice:  item.UnitPrice().String(),
			LineTotal:  item.LineTotal().String(),
			Status:     item.Status().String(),
		})
	}

	return OrderResponse{
		ID:          ord.ID().String(),
		Number:      ord.Number(),
		TableID:     ord.TableID(),
		BranchID:    ord.BranchID(),
		Status:      ord.Status().String(),
		TotalAmount: ord.TotalAmount().String(),
		CreatedAt:   ord.CreatedAt(),
		UpdatedAt:   ord.UpdatedAt(),
		Items:       items,
	}
}

func toOrderResponses(resps []queries.OrderResponse) []OrderResponse {
	out := make([]OrderResponse, 0, len(resps))
	for _, resp := range resps {
		out = append(out, toOrderResponse(resp))
	}
	return out
}
