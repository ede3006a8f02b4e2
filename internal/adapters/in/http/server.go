package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	OpenSession    commands.OpenSessionCommandHandler
	AddLineItem    commands.AddLineItemCommandHandler
	UpdateLineItem commands.UpdateLineItemCommandHandler
	RemoveLineItem commands.RemoveLineItemCommandHandler
	SetOrderNumber commands.SetOrderNumberCommandHandler
	SetStatus      commands.SetStatusCommandHandler
	SaveOrder      commands.SaveOrderCommandHandler
	DiscardSession commands.DiscardSessionCommandHandler
	DeleteOrder    commands.DeleteOrderCommandHandler
	GetSession     queries.GetSessionQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	metrics  *metrics.ServerMetrics
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, m *metrics.ServerMetrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.With("component", "http_server"),
	}
}

// NewEcho builds the echo instance with middleware and every route registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestMetrics(s.metrics))
	e.Use(requestLogger(s.logger))

	s.Register(e)
	return e
}

// Register adds the API, health and metrics routes to e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := e.Group("/api/v1")

	api.POST("/sessions", s.OpenSession)
	api.GET("/sessions/:id", s.GetSession)
	api.DELETE("/sessions/:id", s.DiscardSession)
	api.POST("/sessions/:id/items", s.AddLineItem)
	api.PATCH("/sessions/:id/items/:index", s.UpdateLineItem)
	api.DELETE("/sessions/:id/items/:index", s.RemoveLineItem)
	api.PUT("/sessions/:id/order-number", s.SetOrderNumber)
	api.PUT("/sessions/:id/status", s.SetStatus)
	api.POST("/sessions/:id/save", s.SaveOrder)

	api.DELETE("/orders/:id", s.DeleteOrder)
}

// OpenSession handles POST /api/v1/sessions - starts editing a new or stored order.
func (s *Server) OpenSession(ctx echo.Context) error {
	var req OpenSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, invalidBody(err))
	}

	var orderID *order.OrderID
	if req.OrderID != nil {
		id := order.OrderID(*req.OrderID)
		orderID = &id
	}

	cmd, err := commands.NewOpenSessionCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	sessionID, err := s.handlers.OpenSession.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.metrics.SessionsOpened.Inc()
	return ctx.JSON(http.StatusCreated, OpenSessionResponse{SessionID: sessionID.String()})
}

// GetSession handles GET /api/v1/sessions/:id.
func (s *Server) GetSession(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, sessionID)
}

// AddLineItem handles POST /api/v1/sessions/:id/items.
func (s *Server) AddLineItem(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req AddLineItemRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, invalidBody(err))
	}

	cmd, err := commands.NewAddLineItemCommand(sessionID, catalog.ProductID(req.ProductID), req.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.AddLineItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithSession(ctx, http.StatusCreated, sessionID)
}

// UpdateLineItem handles PATCH /api/v1/sessions/:id/items/:index. The body
// selects the mutation: productId re-points the item, quantity resizes it.
func (s *Server) UpdateLineItem(ctx echo.Context) error {
	sessionID, index, err := lineItemParams(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req UpdateLineItemRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, invalidBody(err))
	}

	var mutation order.LineItemMutation
	switch {
	case req.ProductID != nil && req.Quantity == nil:
		mutation = order.SetProductReference{ProductID: catalog.ProductID(*req.ProductID)}
	case req.Quantity != nil && req.ProductID == nil:
		mutation = order.SetQuantity{Quantity: *req.Quantity}
	default:
		return s.fail(ctx, invalidBody(errors.New("exactly one of productId or quantity is required")))
	}

	cmd, err := commands.NewUpdateLineItemCommand(sessionID, index, mutation)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.UpdateLineItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithSession(ctx, http.StatusOK, sessionID)
}

// RemoveLineItem handles DELETE /api/v1/sessions/:id/items/:index.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	sessionID, index, err := lineItemParams(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveLineItemCommand(sessionID, index)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.RemoveLineItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithSession(ctx, http.StatusOK, sessionID)
}

// SetOrderNumber handles PUT /api/v1/sessions/:id/order-number.
func (s *Server) SetOrderNumber(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req SetOrderNumberRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, invalidBody(err))
	}

	cmd, err := commands.NewSetOrderNumberCommand(sessionID, req.OrderNumber)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.SetOrderNumber.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithSession(ctx, http.StatusOK, sessionID)
}

// SetStatus handles PUT /api/v1/sessions/:id/status.
func (s *Server) SetStatus(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req SetStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, invalidBody(err))
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetStatusCommand(sessionID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.SetStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithSession(ctx, http.StatusOK, sessionID)
}

// SaveOrder handles POST /api/v1/sessions/:id/save. A successful save ends the session.
func (s *Server) SaveOrder(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSaveOrderCommand(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.SaveOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// Session lookup errors are not save attempts and stay uncounted.
		switch {
		case errors.Is(err, order.ErrOrderInvalid):
			s.metrics.SavesTotal.WithLabelValues(metrics.SaveRejected).Inc()
		case errors.Is(err, ports.ErrGatewayFailure), errors.Is(err, ports.ErrOrderNotFound):
			s.metrics.SavesTotal.WithLabelValues(metrics.SaveFailed).Inc()
		}
		return s.fail(ctx, err)
	}

	outcome := metrics.SaveUpdated
	if result.Created {
		outcome = metrics.SaveCreated
	}
	s.metrics.SavesTotal.WithLabelValues(outcome).Inc()

	return ctx.JSON(http.StatusOK, SaveOrderResponse{
		OrderID: int64(result.OrderID),
		Created: result.Created,
	})
}

// DiscardSession handles DELETE /api/v1/sessions/:id - cancel without saving.
func (s *Server) DiscardSession(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDiscardSessionCommand(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.DiscardSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(order.OrderID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithSession(ctx echo.Context, status int, sessionID kernel.UUID) error {
	query, err := queries.NewGetSessionQuery(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetSession.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(status, newSession(view))
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"path", ctx.Path(),
			"error", err,
		)
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: messageFor(err, status),
	})
}

func invalidBody(cause error) error {
	return errs.NewValueIsInvalidErrorWithCause("request body", cause)
}

func sessionIDParam(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("session id", err)
	}
	return id, nil
}

func lineItemParams(ctx echo.Context) (kernel.UUID, int, error) {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return kernel.UUID{}, 0, err
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return kernel.UUID{}, 0, errs.NewValueIsInvalidErrorWithCause("index", err)
	}

	return sessionID, index, nil
}
