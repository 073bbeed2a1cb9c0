// Package http is the inbound REST adapter. It binds request bodies into
// commands and queries, delegates to the application layer and translates
// domain error kinds into HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	requestPickupHandler    commands.RequestPickupCommandHandler
	acceptPickupHandler     commands.AcceptPickupCommandHandler
	completePickupHandler   commands.CompletePickupCommandHandler
	assignWashingHandler    commands.AssignWashingCommandHandler
	processStationHandler   commands.ProcessStationCommandHandler
	completeStationHandler  commands.CompleteStationCommandHandler
	requestBypassHandler    commands.RequestBypassCommandHandler
	resolveBypassHandler    commands.ResolveBypassCommandHandler
	markOrderPaidHandler    commands.MarkOrderPaidCommandHandler
	acceptDeliveryHandler   commands.AcceptDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	checkInHandler          commands.CheckInCommandHandler
	checkOutHandler         commands.CheckOutCommandHandler

	availablePickupsHandler queries.GetAvailablePickupsQueryHandler
	stationQueueHandler     queries.GetStationQueueQueryHandler
	pendingBypassesHandler  queries.GetPendingBypassesQueryHandler
}

// NewServer creates the HTTP server over the given command and query handlers.
func NewServer(
	requestPickupHandler commands.RequestPickupCommandHandler,
	acceptPickupHandler commands.AcceptPickupCommandHandler,
	completePickupHandler commands.CompletePickupCommandHandler,
	assignWashingHandler commands.AssignWashingCommandHandler,
	processStationHandler commands.ProcessStationCommandHandler,
	completeStationHandler commands.CompleteStationCommandHandler,
	requestBypassHandler commands.RequestBypassCommandHandler,
	resolveBypassHandler commands.ResolveBypassCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	checkInHandler commands.CheckInCommandHandler,
	checkOutHandler commands.CheckOutCommandHandler,
	availablePickupsHandler queries.GetAvailablePickupsQueryHandler,
	stationQueueHandler queries.GetStationQueueQueryHandler,
	pendingBypassesHandler queries.GetPendingBypassesQueryHandler,
) *Server {
	return &Server{
		requestPickupHandler:    requestPickupHandler,
		acceptPickupHandler:     acceptPickupHandler,
		completePickupHandler:   completePickupHandler,
		assignWashingHandler:    assignWashingHandler,
		processStationHandler:   processStationHandler,
		completeStationHandler:  completeStationHandler,
		requestBypassHandler:    requestBypassHandler,
		resolveBypassHandler:    resolveBypassHandler,
		markOrderPaidHandler:    markOrderPaidHandler,
		acceptDeliveryHandler:   acceptDeliveryHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		checkInHandler:          checkInHandler,
		checkOutHandler:         checkOutHandler,
		availablePickupsHandler: availablePickupsHandler,
		stationQueueHandler:     stationQueueHandler,
		pendingBypassesHandler:  pendingBypassesHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.RequestPickup)
	api.POST("/orders/:id/washing", s.AssignWashing)
	api.POST("/orders/:id/process", s.ProcessStation)
	api.POST("/orders/:id/complete-station", s.CompleteStation)
	api.POST("/orders/:id/bypass", s.RequestBypass)

	api.POST("/pickups/:id/accept", s.AcceptPickup)
	api.POST("/pickups/:id/complete", s.CompletePickup)
	api.POST("/deliveries/:id/accept", s.AcceptDelivery)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)

	api.POST("/bypasses/:id/resolve", s.ResolveBypass)
	api.POST("/payments/webhook", s.PaymentWebhook)

	api.POST("/attendance/check-in", s.CheckIn)
	api.POST("/attendance/check-out", s.CheckOut)

	api.GET("/outlets/:id/pickups", s.GetAvailablePickups)
	api.GET("/outlets/:id/stations/:station/queue", s.GetStationQueue)
	api.GET("/outlets/:id/bypasses", s.GetPendingBypasses)
}

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps a domain error kind to an HTTP status.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden),
		errors.Is(err, errs.ErrAttendanceRequired):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrStationAlreadyClaimed),
		errors.Is(err, errs.ErrWorkerBusy),
		errors.Is(err, errs.ErrDriverBusy),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrBypassAlreadyResolved),
		errors.Is(err, errs.ErrNoAdminsForOutlet):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// RequestPickup handles POST /api/v1/orders. It registers a new order and
// returns the generated order ID.
func (s *Server) RequestPickup(ctx echo.Context) error {
	var body struct {
		CustomerID string    `json:"customer_id"`
		OutletID   string    `json:"outlet_id"`
		AddressID  string    `json:"address_id"`
		PickupTime time.Time `json:"pickup_time"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer_id")
	}
	outletID, err := kernel.UUIDFromString(body.OutletID)
	if err != nil {
		return badRequest(ctx, "Invalid outlet_id")
	}
	addressID, err := kernel.UUIDFromString(body.AddressID)
	if err != nil {
		return badRequest(ctx, "Invalid address_id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewRequestPickupCommand(orderID, customerID, outletID, addressID, body.PickupTime)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.requestPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"order_id": orderID.String()})
}

// AcceptPickup handles POST /api/v1/pickups/:id/accept.
func (s *Server) AcceptPickup(ctx echo.Context) error {
	pickupOrderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid pickup order ID")
	}

	var body struct {
		DriverID string `json:"driver_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id")
	}

	cmd, err := commands.NewAcceptPickupCommand(driverID, pickupOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePickup handles POST /api/v1/pickups/:id/complete.
func (s *Server) CompletePickup(ctx echo.Context) error {
	pickupOrderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid pickup order ID")
	}

	var body struct {
		DriverID string `json:"driver_id"`
		ProofURL string `json:"proof_url"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id")
	}

	cmd, err := commands.NewCompletePickupCommand(driverID, pickupOrderID, body.ProofURL)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completePickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignWashing handles POST /api/v1/orders/:id/washing. The admin records
// the weighed items and pricing, which moves the order to WASHING and issues
// the invoice.
func (s *Server) AssignWashing(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body struct {
		AdminID     string  `json:"admin_id"`
		TotalPrice  int64   `json:"total_price"`
		TotalWeight float64 `json:"total_weight"`
		Items       []struct {
			LaundryItemID string `json:"laundry_item_id"`
			Quantity      int    `json:"quantity"`
		} `json:"items"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	adminID, err := kernel.UUIDFromString(body.AdminID)
	if err != nil {
		return badRequest(ctx, "Invalid admin_id")
	}

	items := make(map[kernel.UUID]int, len(body.Items))
	for _, item := range body.Items {
		itemID, itemErr := kernel.UUIDFromString(item.LaundryItemID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid laundry_item_id")
		}
		items[itemID] = item.Quantity
	}

	cmd, err := commands.NewAssignWashingCommand(adminID, orderID, body.TotalPrice, body.TotalWeight, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignWashingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessStation handles POST /api/v1/orders/:id/process. The worker submits
// the recounted items; a mismatch yields need_bypass instead of a shift.
func (s *Server) ProcessStation(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body struct {
		WorkerID string `json:"worker_id"`
		Items    []struct {
			LaundryItemID string `json:"laundry_item_id"`
			Quantity      int    `json:"quantity"`
		} `json:"items"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	workerID, err := kernel.UUIDFromString(body.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker_id")
	}

	items := make(map[kernel.UUID]int, len(body.Items))
	for _, item := range body.Items {
		itemID, itemErr := kernel.UUIDFromString(item.LaundryItemID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid laundry_item_id")
		}
		items[itemID] = item.Quantity
	}

	cmd, err := commands.NewProcessStationCommand(workerID, orderID, items)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.processStationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	if result.NeedBypass {
		return ctx.JSON(http.StatusOK, map[string]any{"need_bypass": true})
	}
	return ctx.JSON(http.StatusOK, map[string]any{
		"need_bypass": false,
		"shift_id":    result.ShiftID.String(),
	})
}

// CompleteStation handles POST /api/v1/orders/:id/complete-station.
func (s *Server) CompleteStation(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body struct {
		WorkerID string `json:"worker_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	workerID, err := kernel.UUIDFromString(body.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker_id")
	}

	cmd, err := commands.NewCompleteStationCommand(workerID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeStationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestBypass handles POST /api/v1/orders/:id/bypass.
func (s *Server) RequestBypass(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body struct {
		WorkerID string `json:"worker_id"`
		Reason   string `json:"reason"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	workerID, err := kernel.UUIDFromString(body.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker_id")
	}

	cmd, err := commands.NewRequestBypassCommand(workerID, orderID, body.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.requestBypassHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveBypass handles POST /api/v1/bypasses/:id/resolve.
func (s *Server) ResolveBypass(ctx echo.Context) error {
	workProcessID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid work process ID")
	}

	var body struct {
		AdminID string `json:"admin_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	adminID, err := kernel.UUIDFromString(body.AdminID)
	if err != nil {
		return badRequest(ctx, "Invalid admin_id")
	}

	cmd, err := commands.NewResolveBypassCommand(adminID, workProcessID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.resolveBypassHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PaymentWebhook handles POST /api/v1/payments/webhook, the payment
// provider's settlement callback.
func (s *Server) PaymentWebhook(ctx echo.Context) error {
	var body struct {
		OrderID string `json:"order_id"`
		Status  string `json:"status"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order_id")
	}
	status, err := payment.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptDelivery handles POST /api/v1/deliveries/:id/accept.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	deliveryOrderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery order ID")
	}

	var body struct {
		DriverID string `json:"driver_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id")
	}

	cmd, err := commands.NewAcceptDeliveryCommand(driverID, deliveryOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryOrderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery order ID")
	}

	var body struct {
		DriverID string `json:"driver_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(driverID, deliveryOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckIn handles POST /api/v1/attendance/check-in.
func (s *Server) CheckIn(ctx echo.Context) error {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id")
	}

	cmd, err := commands.NewCheckInCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.checkInHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckOut handles POST /api/v1/attendance/check-out.
func (s *Server) CheckOut(ctx echo.Context) error {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id")
	}

	cmd, err := commands.NewCheckOutCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.checkOutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailablePickups handles GET /api/v1/outlets/:id/pickups.
func (s *Server) GetAvailablePickups(ctx echo.Context) error {
	outletID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid outlet ID")
	}

	query, err := queries.NewGetAvailablePickupsQuery(outletID)
	if err != nil {
		return respondError(ctx, err)
	}

	pickups, err := s.availablePickupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	type pickupItem struct {
		PickupOrderID string    `json:"pickup_order_id"`
		OrderID       string    `json:"order_id"`
		OrderNumber   string    `json:"order_number"`
		AddressID     string    `json:"address_id"`
		PickupTime    time.Time `json:"pickup_time"`
	}
	response := make([]pickupItem, len(pickups))
	for i, p := range pickups {
		response[i] = pickupItem{
			PickupOrderID: p.PickupOrderID.String(),
			OrderID:       p.OrderID.String(),
			OrderNumber:   p.OrderNumber,
			AddressID:     p.AddressID.String(),
			PickupTime:    p.PickupTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStationQueue handles GET /api/v1/outlets/:id/stations/:station/queue.
func (s *Server) GetStationQueue(ctx echo.Context) error {
	outletID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid outlet ID")
	}
	station, err := order.StationFromString(ctx.Param("station"))
	if err != nil {
		return badRequest(ctx, "Invalid station")
	}

	query, err := queries.NewGetStationQueueQuery(outletID, station)
	if err != nil {
		return respondError(ctx, err)
	}

	queue, err := s.stationQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	type queueItem struct {
		OrderID     string  `json:"order_id"`
		OrderNumber string  `json:"order_number"`
		TotalWeight float64 `json:"total_weight"`
		Pending     bool    `json:"pending"`
	}
	response := make([]queueItem, len(queue))
	for i, q := range queue {
		response[i] = queueItem{
			OrderID:     q.OrderID.String(),
			OrderNumber: q.OrderNumber,
			TotalWeight: q.TotalWeight,
			Pending:     q.Pending,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingBypasses handles GET /api/v1/outlets/:id/bypasses.
func (s *Server) GetPendingBypasses(ctx echo.Context) error {
	outletID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid outlet ID")
	}

	query, err := queries.NewGetPendingBypassesQuery(outletID)
	if err != nil {
		return respondError(ctx, err)
	}

	bypasses, err := s.pendingBypassesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	type bypassItem struct {
		WorkProcessID string `json:"work_process_id"`
		OrderID       string `json:"order_id"`
		OrderNumber   string `json:"order_number"`
		Station       string `json:"station"`
		Reason        string `json:"reason"`
	}
	response := make([]bypassItem, len(bypasses))
	for i, b := range bypasses {
		response[i] = bypassItem{
			WorkProcessID: b.WorkProcessID.String(),
			OrderID:       b.OrderID.String(),
			OrderNumber:   b.OrderNumber,
			Station:       b.Station.String(),
			Reason:        b.Reason,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
