// Package http exposes the order lifecycle over a JSON API. The server is a
// thin adapter: it binds requests, resolves the acting supplier or courier
// from the verified token, delegates to command and query handlers, and maps
// the error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"mainbridge/internal/core/application/usecases/commands"
	"mainbridge/internal/core/application/usecases/queries"
	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	claimDeliveryHandler       commands.ClaimDeliveryCommandHandler
	confirmDeliveryHandler     commands.ConfirmDeliveryCommandHandler
	updateTransitStatusHandler commands.UpdateTransitStatusCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler

	// Query handlers
	getAvailableOffersHandler    queries.GetAvailableOffersQueryHandler
	getSupplierOrdersHandler     queries.GetSupplierOrdersQueryHandler
	getCourierEarningsHandler    queries.GetCourierEarningsQueryHandler
	getOrderTrackingHandler      queries.GetOrderTrackingQueryHandler
	getCourierStatisticsHandler  queries.GetCourierStatisticsQueryHandler
	getSupplierStatisticsHandler queries.GetSupplierStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimDeliveryHandler commands.ClaimDeliveryCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	updateTransitStatusHandler commands.UpdateTransitStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getAvailableOffersHandler queries.GetAvailableOffersQueryHandler,
	getSupplierOrdersHandler queries.GetSupplierOrdersQueryHandler,
	getCourierEarningsHandler queries.GetCourierEarningsQueryHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
	getCourierStatisticsHandler queries.GetCourierStatisticsQueryHandler,
	getSupplierStatisticsHandler queries.GetSupplierStatisticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		claimDeliveryHandler:         claimDeliveryHandler,
		confirmDeliveryHandler:       confirmDeliveryHandler,
		updateTransitStatusHandler:   updateTransitStatusHandler,
		cancelOrderHandler:           cancelOrderHandler,
		getAvailableOffersHandler:    getAvailableOffersHandler,
		getSupplierOrdersHandler:     getSupplierOrdersHandler,
		getCourierEarningsHandler:    getCourierEarningsHandler,
		getOrderTrackingHandler:      getOrderTrackingHandler,
		getCourierStatisticsHandler:  getCourierStatisticsHandler,
		getSupplierStatisticsHandler: getSupplierStatisticsHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance. All routes
// under /api/v1 require a verified bearer token; role middleware restricts
// supplier-only and courier-only operations.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1", auth)

	supplier := RequireRole(RoleSupplier)
	courier := RequireRole(RoleCourier)

	api.POST("/orders", s.CreateOrder, supplier)
	api.GET("/orders", s.GetSupplierOrders, supplier)
	api.POST("/orders/:orderID/cancel", s.CancelOrder, supplier)
	api.GET("/suppliers/me/statistics", s.GetSupplierStatistics, supplier)

	api.GET("/offers", s.GetAvailableOffers, courier)
	api.POST("/offers/:offerID/claim", s.ClaimDelivery, courier)
	api.POST("/orders/:orderID/confirm", s.ConfirmDelivery, courier)
	api.POST("/orders/:orderID/transit", s.UpdateTransitStatus, courier)
	api.GET("/couriers/me/earnings", s.GetCourierEarnings, courier)
	api.GET("/couriers/me/statistics", s.GetCourierStatistics, courier)

	api.GET("/orders/:orderID/tracking", s.GetOrderTracking)
}

// CreateOrder handles POST /api/v1/orders - registers a new shipment order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "Missing bearer token")
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipient, err := order.NewRecipient(req.Recipient.Name, req.Recipient.TaxID, req.Recipient.Phone, req.Recipient.Email)
	if err != nil {
		return badRequest(ctx, "Invalid recipient: "+err.Error())
	}

	address, err := kernel.NewAddress(
		req.Address.Street,
		req.Address.Number,
		req.Address.Complement,
		req.Address.Neighborhood,
		req.Address.City,
		req.Address.State,
		req.Address.PostalCode,
	)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	declaredValue, err := kernel.NewMoney(req.Cargo.DeclaredValue)
	if err != nil {
		return badRequest(ctx, "Invalid cargo: "+err.Error())
	}

	cargo, err := order.NewCargo(
		req.Cargo.Description,
		req.Cargo.WeightKg,
		req.Cargo.HeightCm,
		req.Cargo.WidthCm,
		req.Cargo.DepthCm,
		declaredValue,
	)
	if err != nil {
		return badRequest(ctx, "Invalid cargo: "+err.Error())
	}

	tier, err := order.ParseServiceTier(req.Tier)
	if err != nil {
		return badRequest(ctx, "Invalid tier: "+err.Error())
	}

	pickupDate, err := time.Parse(time.DateOnly, req.PickupDate)
	if err != nil {
		return badRequest(ctx, "Invalid pickup date, expected YYYY-MM-DD")
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		actor.ID,
		recipient,
		address,
		cargo,
		tier,
		pickupDate,
		req.Notes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(created))
}

// ClaimDelivery handles POST /api/v1/offers/:offerID/claim - atomically
// assigns the offer to the calling courier. Exactly one of any set of
// concurrent claims succeeds; the rest receive 409.
func (s *Server) ClaimDelivery(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "Missing bearer token")
	}

	offerID, err := kernel.UUIDFromString(ctx.Param("offerID"))
	if err != nil {
		return badRequest(ctx, "Invalid offer id")
	}

	cmd, err := commands.NewClaimDeliveryCommand(offerID, actor.ID)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	claimed, err := s.claimDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(claimed))
}

// ConfirmDelivery handles POST /api/v1/orders/:orderID/confirm - the
// assigned courier confirms the delivery and accrues the payout.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "Missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, actor.ID)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	confirmed, err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(confirmed))
}

// UpdateTransitStatus handles POST /api/v1/orders/:orderID/transit - the
// assigned courier reports an intermediate transit status.
func (s *Server) UpdateTransitStatus(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "Missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateTransitRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateTransitStatusCommand(orderID, actor.ID, next)
	if err != nil {
		return badRequest(ctx, "Invalid transit data: "+err.Error())
	}

	updated, err := s.updateTransitStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - the owning
// supplier cancels an order that has not reached a terminal status.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "Missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor.ID)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(cancelled))
}

// GetAvailableOffers handles GET /api/v1/offers - lists claimable offers.
func (s *Server) GetAvailableOffers(ctx echo.Context) error {
	query := queries.NewGetAvailableOffersQuery()

	offers, err := s.getAvailableOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]OfferResponse, len(offers))
	for i, o := range offers {
		response[i] = OfferResponse{
			OfferID:     o.OfferID.Bytes(),
			OrderID:     o.OrderID.Bytes(),
			OrderNumber: o.OrderNumber,
			OriginCity:  o.OriginCity,
			OriginState: o.OriginState,
			DestCity:    o.DestCity,
			DestState:   o.DestState,
			DistanceKm:  o.DistanceKm.String(),
			Payout:      o.Payout.String(),
			PickupDate:  o.PickupDate,
			Deadline:    o.Deadline,
			PublishedAt: o.PublishedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSupplierOrders handles GET /api/v1/orders - lists the supplier's orders.
func (s *Server) GetSupplierOrders(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "Missing bearer token")
	}

	query, err := queries.NewGetSupplierOrdersQuery(actor.ID)
	if err != nil {
		return badRequest(ctx, "Invalid supplier id")
	}

	orders, err := s.getSupplierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]SupplierOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = SupplierOrderResponse{
			ID:               o.ID.Bytes(),
			Number:           o.Number,
			Status:           o.Status,
			RecipientName:    o.RecipientName,
			DestCity:         o.DestCity,
			DestState:        o.DestState,
			Tier:             o.Tier,
			Freight:          o.Freight.String(),
			Total:            o.Total.String(),
			PickupDate:       o.PickupDate,
			ExpectedDelivery: o.ExpectedDelivery,
			CreatedAt:        o.CreatedAt,
			DeliveredAt:      o.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderTracking handles GET /api/v1/orders/:orderID/tracking - returns
// the order's event history, oldest first.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	tracking, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	events := make([]TrackingEvent, len(tracking.Events))
	for i, e := range tracking.Events {
		events[i] = TrackingEvent{
			Status:    e.Status,
			Location:  e.Location,
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		OrderID: tracking.OrderID.Bytes(),
		Number:  tracking.Number,
		Status:  tracking.Status,
		Events:  events,
	})
}

// GetCourierEarnings handles GET /api/v1/couriers/me/earnings - returns the
// calling courier's pending earnings sums and payout history.
func (s *Server) GetCourierEarnings(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "Missing bearer token")
	}

	query, err := queries.NewGetCourierEarningsQuery(actor.ID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	earnings, err := s.getCourierEarningsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	records := make([]EarningsRecord, len(earnings.Records))
	for i, r := range earnings.Records {
		records[i] = EarningsRecord{
			ID:          r.ID.Bytes(),
			OrderID:     r.OrderID.Bytes(),
			OrderNumber: r.OrderNumber,
			Value:       r.Value.String(),
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, EarningsResponse{
		Today:   earnings.Today.String(),
		Week:    earnings.Week.String(),
		Total:   earnings.Total.String(),
		Records: records,
	})
}

// GetCourierStatistics handles GET /api/v1/couriers/me/statistics.
func (s *Server) GetCourierStatistics(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "Missing bearer token")
	}

	query, err := queries.NewGetCourierStatisticsQuery(actor.ID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	stats, err := s.getCourierStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierStatisticsResponse{
		CourierID:       actor.ID.Bytes(),
		DeliveriesTotal: stats.DeliveriesTotal,
		EarningsToday:   stats.EarningsToday.String(),
		EarningsWeek:    stats.EarningsWeek.String(),
		EarningsTotal:   stats.EarningsTotal.String(),
		UpdatedAt:       stats.UpdatedAt,
	})
}

// GetSupplierStatistics handles GET /api/v1/suppliers/me/statistics.
func (s *Server) GetSupplierStatistics(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "Missing bearer token")
	}

	query, err := queries.NewGetSupplierStatisticsQuery(actor.ID)
	if err != nil {
		return badRequest(ctx, "Invalid supplier id")
	}

	stats, err := s.getSupplierStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SupplierStatisticsResponse{
		SupplierID:       actor.ID.Bytes(),
		OrdersTotal:      stats.OrdersTotal,
		OrdersInProgress: stats.OrdersInProgress,
		OrdersDelivered:  stats.OrdersDelivered,
		UpdatedAt:        stats.UpdatedAt,
	})
}

func orderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID().Bytes(),
		Number:           o.Number(),
		Status:           o.Status().String(),
		Freight:          o.Freight().String(),
		Total:            o.Total().String(),
		CourierPayout:    o.CourierPayout().String(),
		PickupDate:       o.PickupDate(),
		ExpectedDelivery: o.ExpectedDelivery(),
		DeliveredAt:      o.DeliveredAt(),
	}
}

// mapError translates application and domain errors onto HTTP status codes:
// validation failures 400, acting on someone else's order 403, missing
// objects 404, losing a claim race 409, everything else 500.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOfferNotFound),
		errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err)
	case errors.Is(err, offer.ErrOfferAlreadyClaimed):
		return errorJSON(ctx, http.StatusConflict, err)
	case errors.Is(err, order.ErrCourierNotAssigned),
		errors.Is(err, commands.ErrNotOrderOwner):
		return errorJSON(ctx, http.StatusForbidden, err)
	case errors.Is(err, order.ErrPickupDateInPast),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

func errorJSON(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
