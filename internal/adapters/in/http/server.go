// Package http provides the echo-based HTTP adapter. It translates requests
// into commands and queries and maps application errors to the status code
// contract clients rely on.
package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler         commands.CreateParcelCommandHandler
	deleteParcelHandler         commands.DeleteParcelCommandHandler
	assignRiderHandler          commands.AssignRiderCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	createRiderHandler          commands.CreateRiderCommandHandler
	updateRiderStatusHandler    commands.UpdateRiderStatusCommandHandler
	creditEarningsHandler       commands.CreditEarningsCommandHandler
	requestCashOutHandler       commands.RequestCashOutCommandHandler
	recordPaymentHandler        commands.RecordPaymentCommandHandler

	// Query handlers
	getParcelsBySenderHandler queries.GetParcelsBySenderQueryHandler
	getAdminParcelsHandler    queries.GetAdminParcelsQueryHandler
	getParcelHandler          queries.GetParcelQueryHandler
	getRiderDeliveriesHandler queries.GetRiderDeliveriesQueryHandler
	getWalletBalanceHandler   queries.GetWalletBalanceQueryHandler
	getRidersByStatusHandler  queries.GetRidersByStatusQueryHandler
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler

	paymentGateway ports.PaymentGateway
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	updateRiderStatusHandler commands.UpdateRiderStatusCommandHandler,
	creditEarningsHandler commands.CreditEarningsCommandHandler,
	requestCashOutHandler commands.RequestCashOutCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	getParcelsBySenderHandler queries.GetParcelsBySenderQueryHandler,
	getAdminParcelsHandler queries.GetAdminParcelsQueryHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	getRiderDeliveriesHandler queries.GetRiderDeliveriesQueryHandler,
	getWalletBalanceHandler queries.GetWalletBalanceQueryHandler,
	getRidersByStatusHandler queries.GetRidersByStatusQueryHandler,
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler,
	paymentGateway ports.PaymentGateway,
) *Server {
	return &Server{
		createParcelHandler:         createParcelHandler,
		deleteParcelHandler:         deleteParcelHandler,
		assignRiderHandler:          assignRiderHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		createRiderHandler:          createRiderHandler,
		updateRiderStatusHandler:    updateRiderStatusHandler,
		creditEarningsHandler:       creditEarningsHandler,
		requestCashOutHandler:       requestCashOutHandler,
		recordPaymentHandler:        recordPaymentHandler,
		getParcelsBySenderHandler:   getParcelsBySenderHandler,
		getAdminParcelsHandler:      getAdminParcelsHandler,
		getParcelHandler:            getParcelHandler,
		getRiderDeliveriesHandler:   getRiderDeliveriesHandler,
		getWalletBalanceHandler:     getWalletBalanceHandler,
		getRidersByStatusHandler:    getRidersByStatusHandler,
		getTrackingHistoryHandler:   getTrackingHistoryHandler,
		paymentGateway:              paymentGateway,
	}
}

// RegisterRoutes wires the endpoint surface onto the echo instance.
// Tracking is the only unauthenticated route.
func (s *Server) RegisterRoutes(e *echo.Echo, verifier ports.IdentityVerifier) {
	api := e.Group("/api/v1")

	api.GET("/track/:trackingId", s.GetTrackingHistory)

	authed := api.Group("", Authenticated(verifier))

	authed.POST("/parcels", s.CreateParcel)
	authed.GET("/parcels", s.GetMyParcels)
	authed.GET("/parcels/:id", s.GetParcel)
	authed.GET("/admin/parcels", s.GetAdminParcels, AdminOnly)
	authed.DELETE("/parcels/:id", s.DeleteParcel, AdminOnly)
	authed.POST("/parcels/:id/assign", s.AssignRider, AdminOnly)
	authed.PATCH("/parcels/:id/status", s.UpdateDeliveryStatus)

	authed.POST("/riders", s.CreateRider)
	authed.GET("/riders", s.GetRidersByStatus, AdminOnly)
	authed.PATCH("/riders/:id/status", s.UpdateRiderStatus, AdminOnly)
	authed.GET("/riders/me/deliveries", s.GetMyDeliveries)
	authed.GET("/riders/me/wallet", s.GetWalletBalance)
	authed.POST("/riders/me/wallet/cash-out", s.RequestCashOut)
	authed.POST("/riders/:id/wallet/credit", s.CreditEarnings, AdminOnly)

	authed.POST("/payments/intent", s.CreatePaymentIntent)
	authed.POST("/payments/confirm", s.RecordPayment)
}

type contactRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Region   string `json:"region"`
	District string `json:"district"`
	Address  string `json:"address"`
}

func (r contactRequest) toDomain() parcel.Contact {
	return parcel.Contact{
		Name:     r.Name,
		Phone:    r.Phone,
		Region:   r.Region,
		District: r.District,
		Address:  r.Address,
	}
}

type createParcelRequest struct {
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Weight        float64        `json:"weight"`
	DeliveryZone  string         `json:"deliveryZone"`
	BaseCost      float64        `json:"baseCost"`
	ExtraCharges  float64        `json:"extraCharges"`
	DeliveryCost  float64        `json:"deliveryCost"`
	PaymentMethod string         `json:"paymentMethod"`
	Sender        contactRequest `json:"sender"`
	Receiver      contactRequest `json:"receiver"`
}

// CreateParcel handles POST /api/v1/parcels - books a new parcel for the
// authenticated sender.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req createParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body", nil)
	}

	parcelID := kernel.NewUUID()
	details := parcel.Details{
		TrackingID:    newTrackingID(),
		Name:          req.Name,
		Type:          req.Type,
		Weight:        req.Weight,
		DeliveryZone:  req.DeliveryZone,
		BaseCost:      req.BaseCost,
		ExtraCharges:  req.ExtraCharges,
		DeliveryCost:  req.DeliveryCost,
		PaymentMethod: req.PaymentMethod,
		CreatedBy:     identityFrom(ctx).Email,
		Sender:        req.Sender.toDomain(),
		Receiver:      req.Receiver.toDomain(),
	}

	cmd, err := commands.NewCreateParcelCommand(parcelID, details)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "parcel booked", echo.Map{
		"id":         parcelID.String(),
		"trackingId": details.TrackingID,
	})
}

// GetMyParcels handles GET /api/v1/parcels - lists the authenticated
// sender's parcels.
func (s *Server) GetMyParcels(ctx echo.Context) error {
	query, err := queries.NewGetParcelsBySenderQuery(identityFrom(ctx).Email)
	if err != nil {
		return respondError(ctx, err)
	}

	parcels, err := s.getParcelsBySenderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "parcels retrieved", parcels)
}

// GetParcel handles GET /api/v1/parcels/:id - the full detail view of one
// parcel including contacts, rider snapshot and history.
func (s *Server) GetParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid parcel id", nil)
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "parcel retrieved", detail)
}

// GetAdminParcels handles GET /api/v1/admin/parcels?deliveryStatus= - lists
// all parcels for the admin dashboard, optionally filtered by delivery
// status.
func (s *Server) GetAdminParcels(ctx echo.Context) error {
	query, err := queries.NewGetAdminParcelsQuery(
		parcel.DeliveryStatus(ctx.QueryParam("deliveryStatus")),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	parcels, err := s.getAdminParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "parcels retrieved", parcels)
}

// DeleteParcel handles DELETE /api/v1/parcels/:id - removes a parcel.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid parcel id", nil)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "parcel deleted", nil)
}

type assignRiderRequest struct {
	RiderID string `json:"riderId"`
}

// AssignRider handles POST /api/v1/parcels/:id/assign - binds a rider to
// the parcel.
func (s *Server) AssignRider(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid parcel id", nil)
	}

	var req assignRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body", nil)
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid rider id", nil)
	}

	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID, identityFrom(ctx).Email)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "rider assigned", nil)
}

type updateDeliveryStatusRequest struct {
	DeliveryStatus string `json:"deliveryStatus"`
}

// UpdateDeliveryStatus handles PATCH /api/v1/parcels/:id/status - advances
// the delivery along the status graph. Only the assigned rider may call it.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid parcel id", nil)
	}

	var req updateDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body", nil)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		parcelID,
		parcel.DeliveryStatus(req.DeliveryStatus),
		identityFrom(ctx).Email,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "delivery status updated", nil)
}

type createRiderRequest struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Phone     string `json:"phone"`
	Region    string `json:"region"`
	District  string `json:"district"`
	NID       string `json:"nid"`
	BikeBrand string `json:"bikeBrand"`
	BikeRegNo string `json:"bikeRegNo"`
}

// CreateRider handles POST /api/v1/riders - submits a rider application for
// the authenticated caller.
func (s *Server) CreateRider(ctx echo.Context) error {
	var req createRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body", nil)
	}

	riderID := kernel.NewUUID()
	profile := rider.Profile{
		Name:      req.Name,
		Email:     identityFrom(ctx).Email,
		Age:       req.Age,
		Phone:     req.Phone,
		Region:    req.Region,
		District:  req.District,
		NID:       req.NID,
		BikeBrand: req.BikeBrand,
		BikeRegNo: req.BikeRegNo,
	}

	cmd, err := commands.NewCreateRiderCommand(riderID, profile)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "rider application submitted", echo.Map{
		"id": riderID.String(),
	})
}

// GetRidersByStatus handles GET /api/v1/riders?status= - lists riders in an
// approval status for admin review.
func (s *Server) GetRidersByStatus(ctx echo.Context) error {
	status := ctx.QueryParam("status")
	if status == "" {
		status = string(rider.StatusPending)
	}

	query, err := queries.NewGetRidersByStatusQuery(rider.Status(status))
	if err != nil {
		return respondError(ctx, err)
	}

	riders, err := s.getRidersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "riders retrieved", riders)
}

type updateRiderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateRiderStatus handles PATCH /api/v1/riders/:id/status - approves,
// rejects or deactivates a rider application.
func (s *Server) UpdateRiderStatus(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid rider id", nil)
	}

	var req updateRiderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body", nil)
	}

	cmd, err := commands.NewUpdateRiderStatusCommand(riderID, rider.Status(req.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateRiderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "rider status updated", nil)
}

// GetMyDeliveries handles GET /api/v1/riders/me/deliveries - the
// authenticated rider's parcels bucketed by delivery status.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	query, err := queries.NewGetRiderDeliveriesQuery(identityFrom(ctx).Email)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.getRiderDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "deliveries retrieved", deliveries)
}

// GetWalletBalance handles GET /api/v1/riders/me/wallet - the calling
// rider's balances and recent ledger entries. The wallet is resolved from
// the verified identity, never from a client-supplied id. Creates the
// wallet on first query.
func (s *Server) GetWalletBalance(ctx echo.Context) error {
	query, err := queries.NewGetWalletBalanceQuery(identityFrom(ctx).Email)
	if err != nil {
		return respondError(ctx, err)
	}

	balance, err := s.getWalletBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "wallet retrieved", balance)
}

type accountInfoRequest struct {
	PhoneNumber   string `json:"phoneNumber"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	BranchName    string `json:"branchName"`
	AccountType   string `json:"accountType"`
}

type cashOutRequest struct {
	Amount      float64            `json:"amount"`
	Method      string             `json:"method"`
	AccountInfo accountInfoRequest `json:"accountInfo"`
}

// RequestCashOut handles POST /api/v1/riders/me/wallet/cash-out - queues a
// withdrawal request against the calling rider's own wallet. The wallet is
// resolved from the verified identity, never from a client-supplied id.
func (s *Server) RequestCashOut(ctx echo.Context) error {
	var req cashOutRequest
	if err := ctx.Bind(&req); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body", nil)
	}

	cmd, err := commands.NewRequestCashOutCommand(
		identityFrom(ctx).Email,
		req.Amount,
		wallet.WithdrawalMethod(req.Method),
		wallet.AccountInfo{
			PhoneNumber:   req.AccountInfo.PhoneNumber,
			AccountNumber: req.AccountInfo.AccountNumber,
			BankName:      req.AccountInfo.BankName,
			BranchName:    req.AccountInfo.BranchName,
			AccountType:   req.AccountInfo.AccountType,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	withdrawal, err := s.requestCashOutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "cash-out requested", echo.Map{
		"withdrawalId": withdrawal.ID.String(),
		"amount":       withdrawal.Amount,
		"netAmount":    withdrawal.NetAmount(),
		"status":       string(withdrawal.Status),
	})
}

type creditEarningsRequest struct {
	ParcelID    string  `json:"parcelId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// CreditEarnings handles POST /api/v1/riders/:id/wallet/credit - manual
// earnings adjustment by an admin.
func (s *Server) CreditEarnings(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid rider id", nil)
	}

	var req creditEarningsRequest
	if err := ctx.Bind(&req); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body", nil)
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid parcel id", nil)
	}

	cmd, err := commands.NewCreditEarningsCommand(riderID, parcelID, req.Amount, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.creditEarningsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "earnings credited", nil)
}

type paymentIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreatePaymentIntent handles POST /api/v1/payments/intent - asks the
// payment gateway for a client secret the frontend completes the payment
// with.
func (s *Server) CreatePaymentIntent(ctx echo.Context) error {
	var req paymentIntentRequest
	if err := ctx.Bind(&req); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body", nil)
	}

	clientSecret, err := s.paymentGateway.CreatePaymentIntent(
		ctx.Request().Context(), req.Amount, req.Currency,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "payment intent created", echo.Map{
		"clientSecret": clientSecret,
	})
}

type recordPaymentRequest struct {
	ParcelID      string  `json:"parcelId"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
	Method        string  `json:"method"`
}

// RecordPayment handles POST /api/v1/payments/confirm - records a confirmed
// external payment and marks the parcel paid. Idempotent per transaction id.
func (s *Server) RecordPayment(ctx echo.Context) error {
	var req recordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body", nil)
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid parcel id", nil)
	}

	cmd, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(),
		parcelID,
		req.Email,
		req.Amount,
		req.TransactionID,
		req.Method,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "payment recorded", nil)
}

// GetTrackingHistory handles GET /api/v1/track/:trackingId - the public
// tracking view of a parcel.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	query, err := queries.NewGetTrackingHistoryQuery(ctx.Param("trackingId"))
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.getTrackingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "tracking history retrieved", history)
}

// newTrackingID generates the public tracking identifier for a new parcel.
func newTrackingID() string {
	suffix := strings.ToUpper(kernel.NewUUID().String()[:8])
	return fmt.Sprintf("TRK-%s-%s", time.Now().Format("20060102"), suffix)
}
