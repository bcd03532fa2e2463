// Package http exposes the marketplace operations over a JSON API.
// Every mutating route reads the caller identity from the bearer token
// placed in the request context by the auth middleware; the domain layer
// enforces what that caller may do.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"marketplace/internal/adapters/in/http/middleware"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	listProductHandler       commands.ListProductCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	validateOrderHandler     commands.ValidateOrderCommandHandler
	assignDeliveryHandler    commands.AssignDeliveryCommandHandler
	updateDeliveryHandler    commands.UpdateDeliveryStatusCommandHandler
	completeOrderHandler     commands.CompleteOrderCommandHandler
	confirmCompletionHandler commands.ConfirmOrderCompletionCommandHandler
	approveValidatorHandler  commands.ApproveValidatorCommandHandler
	assignRoleHandler        commands.AssignRoleCommandHandler

	// Query handlers
	getProductHandler  queries.GetProductQueryHandler
	getOrderHandler    queries.GetOrderQueryHandler
	getRoleHandler     queries.GetRoleQueryHandler
	isValidatorHandler queries.IsValidatorQueryHandler
	getCountsHandler   queries.GetCountsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	listProductHandler commands.ListProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	validateOrderHandler commands.ValidateOrderCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryStatusCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	confirmCompletionHandler commands.ConfirmOrderCompletionCommandHandler,
	approveValidatorHandler commands.ApproveValidatorCommandHandler,
	assignRoleHandler commands.AssignRoleCommandHandler,
	getProductHandler queries.GetProductQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRoleHandler queries.GetRoleQueryHandler,
	isValidatorHandler queries.IsValidatorQueryHandler,
	getCountsHandler queries.GetCountsQueryHandler,
) *Server {
	return &Server{
		listProductHandler:       listProductHandler,
		createOrderHandler:       createOrderHandler,
		validateOrderHandler:     validateOrderHandler,
		assignDeliveryHandler:    assignDeliveryHandler,
		updateDeliveryHandler:    updateDeliveryHandler,
		completeOrderHandler:     completeOrderHandler,
		confirmCompletionHandler: confirmCompletionHandler,
		approveValidatorHandler:  approveValidatorHandler,
		assignRoleHandler:        assignRoleHandler,
		getProductHandler:        getProductHandler,
		getOrderHandler:          getOrderHandler,
		getRoleHandler:           getRoleHandler,
		isValidatorHandler:       isValidatorHandler,
		getCountsHandler:         getCountsHandler,
	}
}

// RegisterRoutes mounts all marketplace routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *middleware.Auth) {
	api := e.Group("/api/v1", auth.Require())

	api.POST("/products", s.ListProduct)
	api.GET("/products/:id", s.GetProduct)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/validate", s.ValidateOrder)
	api.POST("/orders/:id/delivery", s.AssignDelivery)
	api.PATCH("/orders/:id/delivery", s.UpdateDeliveryStatus)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/confirm", s.ConfirmOrderCompletion)

	api.POST("/admin/validators", s.ApproveValidator)
	api.POST("/admin/roles", s.AssignRole)
	api.GET("/validators/:id", s.IsValidator)
	api.GET("/roles/:id", s.GetRole)

	api.GET("/counts", s.GetCounts)
}

// ListProduct handles POST /api/v1/products.
func (s *Server) ListProduct(ctx echo.Context) error {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req ListProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewListProductCommand(callerID, req.Name, req.Description, req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	productID, err := s.listProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID})
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	resp, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProductResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		Description: resp.Description,
		Price:       resp.Price,
		SellerID:    resp.SellerID,
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(callerID, req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:                  resp.ID,
		ProductID:           resp.ProductID,
		BuyerID:             resp.BuyerID,
		SellerID:            resp.SellerID,
		ValidatorID:         resp.ValidatorID,
		CourierID:           resp.CourierID,
		Status:              resp.Status,
		IsValidated:         resp.IsValidated,
		CompletionRequested: resp.CompletionRequested,
	})
}

// ValidateOrder handles POST /api/v1/orders/:id/validate.
func (s *Server) ValidateOrder(ctx echo.Context) error {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ValidateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewValidateOrderCommand(callerID, id, req.Approve)
	if err != nil {
		return badRequest(ctx, "Invalid validation data: "+err.Error())
	}

	if err = s.validateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/v1/orders/:id/delivery.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewAssignDeliveryCommand(callerID, id, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PATCH /api/v1/orders/:id/delivery.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateDeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(callerID, id, req.Completed)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err = s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(callerID, id)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrderCompletion handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrderCompletion(ctx echo.Context) error {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCompletionCommand(callerID, id)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if err = s.confirmCompletionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveValidator handles POST /api/v1/admin/validators.
func (s *Server) ApproveValidator(ctx echo.Context) error {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req ApproveValidatorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	validatorID, err := kernel.UUIDFromString(req.ValidatorID)
	if err != nil {
		return badRequest(ctx, "Invalid validator id")
	}

	cmd, err := commands.NewApproveValidatorCommand(callerID, validatorID)
	if err != nil {
		return badRequest(ctx, "Invalid approval data: "+err.Error())
	}

	if err = s.approveValidatorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRole handles POST /api/v1/admin/roles.
func (s *Server) AssignRole(ctx echo.Context) error {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req AssignRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	role, err := access.RoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+req.Role)
	}

	cmd, err := commands.NewAssignRoleCommand(callerID, actorID, role)
	if err != nil {
		return badRequest(ctx, "Invalid role data: "+err.Error())
	}

	if err = s.assignRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IsValidator handles GET /api/v1/validators/:id.
func (s *Server) IsValidator(ctx echo.Context) error {
	validatorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid validator id")
	}

	query, err := queries.NewIsValidatorQuery(validatorID)
	if err != nil {
		return badRequest(ctx, "Invalid validator id")
	}

	resp, err := s.isValidatorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ValidatorResponse{
		ValidatorID: resp.ValidatorID,
		Approved:    resp.Approved,
	})
}

// GetRole handles GET /api/v1/roles/:id.
func (s *Server) GetRole(ctx echo.Context) error {
	actorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	query, err := queries.NewGetRoleQuery(actorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	resp, err := s.getRoleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RoleResponse{
		ActorID: resp.ActorID,
		Role:    resp.Role,
	})
}

// GetCounts handles GET /api/v1/counts.
func (s *Server) GetCounts(ctx echo.Context) error {
	resp, err := s.getCountsHandler.Handle(ctx.Request().Context(), queries.NewGetCountsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountsResponse{
		Products: resp.Products,
		Orders:   resp.Orders,
	})
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func errorResponse(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
