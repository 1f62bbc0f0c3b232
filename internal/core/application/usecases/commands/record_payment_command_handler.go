package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/payment"
	"parceltrack/internal/pkg/errs"
)

// RecordPaymentCommandHandler records a confirmed gateway charge and marks
// the paid parcel. Gateways may deliver the same confirmation more than
// once, so the handler is idempotent per transaction reference.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment recording command.
// A transaction reference already on file short-circuits to success
// without touching the parcel again.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	_, err := paymentRepo.GetByTransactionID(ctx, cmd.TransactionID())
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	record, err := payment.NewPayment(
		cmd.PaymentID(),
		cmd.ParcelID(),
		cmd.Email(),
		cmd.Amount(),
		cmd.TransactionID(),
		cmd.Method(),
	)
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, record); err != nil {
		return err
	}

	aggregate.MarkPaid()
	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
