// Package http exposes the order and price-list operations over a JSON API.
// Handlers translate requests into commands and queries, and map domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/application/usecases/queries"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler       commands.SubmitOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	removeOrderHandler       commands.RemoveOrderCommandHandler
	addPriceItemHandler      commands.AddPriceItemCommandHandler
	updatePriceItemHandler   commands.UpdatePriceItemCommandHandler
	removePriceItemHandler   commands.RemovePriceItemCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getPriceListHandler queries.GetPriceListQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	addPriceItemHandler commands.AddPriceItemCommandHandler,
	updatePriceItemHandler commands.UpdatePriceItemCommandHandler,
	removePriceItemHandler commands.RemovePriceItemCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getPriceListHandler queries.GetPriceListQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:       submitOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		removeOrderHandler:       removeOrderHandler,
		addPriceItemHandler:      addPriceItemHandler,
		updatePriceItemHandler:   updatePriceItemHandler,
		removePriceItemHandler:   removePriceItemHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getPriceListHandler:      getPriceListHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.SubmitOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.RemoveOrder)
	api.GET("/prices", s.GetPriceList)
	api.POST("/prices", s.AddPriceItem)
	api.PUT("/prices/:id", s.UpdatePriceItem)
	api.DELETE("/prices/:id", s.RemovePriceItem)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/orders - retrieves all orders in ascending id order.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitOrder handles POST /api/orders - submits a new order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var request submitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "ValidationError",
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.OrderLineInput, len(request.Items))
	for i, item := range request.Items {
		lines[i] = commands.OrderLineInput{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
		}
	}

	var location *kernel.GeoPoint
	if request.Location != nil {
		point := kernel.NewGeoPoint(request.Location.Latitude, request.Location.Longitude)
		location = &point
	}

	cmd, err := commands.NewSubmitOrderCommand(
		request.CustomerName,
		request.CustomerPhone,
		request.DeliveryAddress,
		request.Notes,
		lines,
		location,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// ChangeOrderStatus handles PUT /api/orders/:id/status - moves an order to a new status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, ok := s.pathID(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "ValidationError",
			Message: "Invalid order id",
		})
	}

	var request changeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "ValidationError",
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, newStatus)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// RemoveOrder handles DELETE /api/orders/:id - deletes an order and returns it.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	id, ok := s.pathID(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "ValidationError",
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewRemoveOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	removed, err := s.removeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(removed))
}

// GetPriceList handles GET /api/prices - retrieves the full price list.
func (s *Server) GetPriceList(ctx echo.Context) error {
	query := queries.NewGetPriceListQuery()

	items, err := s.getPriceListHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]priceItemResponse, len(items))
	for i, item := range items {
		response[i] = toPriceItemResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddPriceItem handles POST /api/prices - adds a price-list item.
func (s *Server) AddPriceItem(ctx echo.Context) error {
	var request priceItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "ValidationError",
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddPriceItemCommand(request.Item, request.Price, request.Category)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.addPriceItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPriceItemResponse(created))
}

// UpdatePriceItem handles PUT /api/prices/:id - updates a price-list item.
func (s *Server) UpdatePriceItem(ctx echo.Context) error {
	id, ok := s.pathID(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "ValidationError",
			Message: "Invalid item id",
		})
	}

	var request priceItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "ValidationError",
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdatePriceItemCommand(id, request.Item, request.Price, request.Category)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.updatePriceItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPriceItemResponse(updated))
}

// RemovePriceItem handles DELETE /api/prices/:id - deletes a price-list item.
func (s *Server) RemovePriceItem(ctx echo.Context) error {
	id, ok := s.pathID(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "ValidationError",
			Message: "Invalid item id",
		})
	}

	cmd, err := commands.NewRemovePriceItemCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.removePriceItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) pathID(ctx echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeError maps a domain error onto an HTTP response. Not-found errors carry
// the looked-up object's kind, so the 404 body can name it.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var notFound errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		message := "Order not found"
		if notFound.ParamName == "item" {
			message = "Item not found"
		}
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: message})
	}

	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "ValidationError",
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Error: "Internal server error",
	})
}
