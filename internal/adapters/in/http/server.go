// Package http exposes the order lifecycle over a REST API.
// It coordinates between HTTP handlers and application use cases, translating
// domain errors into status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	TransitionOrder commands.TransitionOrderCommandHandler
	DeleteOrder     commands.DeleteOrderCommandHandler
	CreateCustomer  commands.CreateCustomerCommandHandler
	CreateProduct   commands.CreateProductCommandHandler

	GetOrders        queries.GetOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	GetOrderLogs     queries.GetOrderLogsQueryHandler
	GetAllLogs       queries.GetAllLogsQueryHandler
	GetAllowedAction queries.GetAllowedActionsQueryHandler
	GetTickets       queries.GetTicketsQueryHandler
	GetTicket        queries.GetTicketQueryHandler
	GetCustomers     queries.GetCustomersQueryHandler
	GetCustomer      queries.GetCustomerQueryHandler
	GetProducts      queries.GetProductsQueryHandler
	GetProduct       queries.GetProductQueryHandler
}

// Server handles HTTP requests for the order lifecycle API.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/logs", s.GetAllLogs)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.GET("/orders/:id/logs", s.GetOrderLogs)
	api.GET("/orders/:id/allowed-actions", s.GetAllowedActions)

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.GetCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)
	api.GET("/products/:id", s.GetProduct)
	api.GET("/tickets", s.GetTickets)
	api.GET("/tickets/:id", s.GetTicket)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes: missing objects to
// 404, refused transitions to 400, invalid values to 422, everything else
// to 500.
func writeError(ctx echo.Context, err error) error {
	var (
		notFoundErr   *errs.ObjectNotFoundError
		requiredErr   *errs.ValueIsRequiredError
		invalidErr    *errs.ValueIsInvalidError
		outOfRangeErr *errs.ValueIsOutOfRangeError
	)

	code := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFoundErr):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrTransitionBlocked),
		errors.Is(err, order.ErrTransitionNotAllowed),
		errors.Is(err, order.ErrCancellationReasonIsRequired):
		code = http.StatusBadRequest
	case errors.As(err, &requiredErr):
		code = http.StatusBadRequest
	case errors.As(err, &invalidErr), errors.As(err, &outOfRangeErr):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// NewOrderItem is one requested line item in an order creation request.
type NewOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// NewOrder is the request body for POST /api/v1/orders.
type NewOrder struct {
	CustomerID string         `json:"customer_id"`
	Notes      string         `json:"notes"`
	Items      []NewOrderItem `json:"items"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, body.Notes, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, 0, len(orders))
	for _, item := range orders {
		response = append(response, orderFromResponse(item))
	}

	return ctx.JSON(http.StatusOK, response)
}

// Order is the JSON shape of one order.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Amount     float64     `json:"amount"`
	State      string      `json:"state"`
	Notes      string      `json:"notes"`
	CreatedAt  string      `json:"created_at"`
	Items      []OrderItem `json:"items"`
}

// OrderItem is the JSON shape of one order line item.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func orderFromResponse(item queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(item.Items))
	for _, line := range item.Items {
		items = append(items, OrderItem{
			ProductID: line.ProductID.String(),
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return Order{
		ID:         item.ID.String(),
		CustomerID: item.CustomerID.String(),
		Amount:     item.Amount,
		State:      item.State,
		Notes:      item.Notes,
		CreatedAt:  item.CreatedAt.UTC().Format(time.RFC3339),
		Items:      items,
	}
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(item))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionRequest is the request body for POST /api/v1/orders/:id/transition.
type TransitionRequest struct {
	Action             string `json:"action"`
	CancellationReason string `json:"cancellation_reason"`
}

// TransitionResponse reports a successful transition.
type TransitionResponse struct {
	OrderID       string         `json:"order_id"`
	PreviousState string         `json:"previous_state"`
	NewState      string         `json:"new_state"`
	ActionTaken   string         `json:"action_taken"`
	Metadata      map[string]any `json:"metadata"`
	Calculations  map[string]any `json:"calculations"`
}

// TransitionOrder handles POST /api/v1/orders/:id/transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body TransitionRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewTransitionOrderCommand(id, body.Action, body.CancellationReason)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		transitionsTotal.WithLabelValues(body.Action, transitionOutcome(err)).Inc()
		return writeError(ctx, err)
	}

	transitionsTotal.WithLabelValues(body.Action, outcomeApplied).Inc()

	return ctx.JSON(http.StatusOK, TransitionResponse{
		OrderID:       result.OrderID.String(),
		PreviousState: result.PreviousState.String(),
		NewState:      result.NewState.String(),
		ActionTaken:   result.ActionTaken.String(),
		Metadata:      result.Metadata,
		Calculations:  result.Calculations,
	})
}

// transitionOutcome classifies a failed transition for metrics.
func transitionOutcome(err error) string {
	switch {
	case errors.Is(err, commands.ErrTransitionBlocked):
		return outcomeBlocked
	case errors.Is(err, order.ErrTransitionNotAllowed),
		errors.Is(err, order.ErrCancellationReasonIsRequired):
		return outcomeRejected
	default:
		return outcomeError
	}
}

// TransitionLog is the JSON shape of one audit record.
type TransitionLog struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id"`
	PreviousState *string `json:"previous_state"`
	NewState      string  `json:"new_state"`
	ActionTaken   string  `json:"action_taken"`
	OccurredAt    string  `json:"occurred_at"`
}

func logsFromResponses(items []queries.TransitionLogResponse) []TransitionLog {
	logs := make([]TransitionLog, 0, len(items))
	for _, item := range items {
		logs = append(logs, TransitionLog{
			ID:            item.ID.String(),
			OrderID:       item.OrderID.String(),
			PreviousState: item.PreviousState,
			NewState:      item.NewState,
			ActionTaken:   item.ActionTaken,
			OccurredAt:    item.OccurredAt.UTC().Format(time.RFC3339),
		})
	}
	return logs
}

// GetOrderLogs handles GET /api/v1/orders/:id/logs.
func (s *Server) GetOrderLogs(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderLogsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	logs, err := s.handlers.GetOrderLogs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, logsFromResponses(logs))
}

// GetAllLogs handles GET /api/v1/orders/logs.
func (s *Server) GetAllLogs(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("limit", err))
		}
		limit = parsed
	}

	logs, err := s.handlers.GetAllLogs.Handle(ctx.Request().Context(), queries.NewGetAllLogsQuery(limit))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, logsFromResponses(logs))
}

// AllowedActions is the JSON shape of an allowed-actions response.
type AllowedActions struct {
	OrderID        string   `json:"order_id"`
	CurrentState   string   `json:"current_state"`
	AllowedActions []string `json:"allowed_actions"`
}

// GetAllowedActions handles GET /api/v1/orders/:id/allowed-actions.
func (s *Server) GetAllowedActions(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAllowedActionsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetAllowedAction.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AllowedActions{
		OrderID:        response.OrderID.String(),
		CurrentState:   response.CurrentState,
		AllowedActions: response.AllowedActions,
	})
}

// NewCustomer is the request body for POST /api/v1/customers.
type NewCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, body.Name, body.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": customerID.String()})
}

// Customer is the JSON shape of one customer.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.handlers.GetCustomers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Customer, 0, len(customers))
	for _, item := range customers {
		response = append(response, Customer{
			ID:    item.ID.String(),
			Name:  item.Name,
			Email: item.Email,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Customer{
		ID:    item.ID.String(),
		Name:  item.Name,
		Email: item.Email,
	})
}

// NewProduct is the request body for POST /api/v1/products.
type NewProduct struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, body.Name, body.UnitPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": productID.String()})
}

// Product is the JSON shape of one catalog product.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.handlers.GetProducts.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Product, 0, len(products))
	for _, item := range products {
		response = append(response, Product{
			ID:        item.ID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Product{
		ID:        item.ID.String(),
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
	})
}

// Ticket is the JSON shape of one cancellation ticket.
type Ticket struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}

func ticketFromResponse(item queries.TicketResponse) Ticket {
	return Ticket{
		ID:        item.ID.String(),
		OrderID:   item.OrderID.String(),
		Reason:    item.Reason,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// GetTicket handles GET /api/v1/tickets/:id.
func (s *Server) GetTicket(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTicketQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	ticket, err := s.handlers.GetTicket.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ticketFromResponse(ticket))
}

// GetTickets handles GET /api/v1/tickets. An optional order_id query
// parameter scopes the listing to one order.
func (s *Server) GetTickets(ctx echo.Context) error {
	query := queries.NewGetTicketsQuery()

	if raw := ctx.QueryParam("order_id"); raw != "" {
		orderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}

		scoped, err := queries.NewGetTicketsForOrderQuery(orderID)
		if err != nil {
			return writeError(ctx, err)
		}
		query = scoped
	}

	tickets, err := s.handlers.GetTickets.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Ticket, 0, len(tickets))
	for _, item := range tickets {
		response = append(response, ticketFromResponse(item))
	}

	return ctx.JSON(http.StatusOK, response)
}
