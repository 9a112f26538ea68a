// Package http exposes the order lifecycle over a JSON API built on echo.
// Handlers translate between wire DTOs and application commands/queries and
// map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"menucore/internal/core/application/usecases/commands"
	"menucore/internal/core/application/usecases/queries"
	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/core/domain/model/order"
	"menucore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler       commands.SubmitOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	changeItemStatusHandler  commands.ChangeItemStatusCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	changeItemStatusHandler commands.ChangeItemStatusCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:       submitOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		changeItemStatusHandler:  changeItemStatusHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
	}
}

// RegisterRoutes wires the order API onto an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderID/items/:itemID/status", s.ChangeItemStatus)
}

// SubmitOrder handles POST /api/v1/orders - submits a cart as a new order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req SubmitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid menu item id: "+item.MenuItemID)
		}

		unitPrice, err := kernel.MoneyFromString(item.UnitPrice)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid unit price: "+item.UnitPrice)
		}

		line, err := commands.NewCartLine(menuItemID, item.Quantity, item.Notes, unitPrice)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid cart line: "+err.Error())
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewSubmitOrderCommand(req.TableID, req.BranchID, lines)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid cart: "+err.Error())
	}

	created, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status - sets an
// order's status directly, including the terminal served and cancelled
// states.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeItemStatus handles POST /api/v1/orders/:orderID/items/:itemID/status
// - advances one line item's kitchen status.
func (s *Server) ChangeItemStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.ItemStatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item status: "+req.Status)
	}

	cmd, err := commands.NewChangeItemStatusCommand(orderID, itemID, status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if err = s.changeItemStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all orders
// still requiring kitchen or staff attention.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	active, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve active orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(active))
}

// GetOrders handles GET /api/v1/orders - retrieves the full order history.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	all, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(all))
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// domainErrorResponse maps domain errors onto HTTP status codes: unknown
// object to 404, terminal-order conflict to 409, validation failures to 400,
// everything else to 500.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrOrderIsFinalized):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal error")
	}
}
