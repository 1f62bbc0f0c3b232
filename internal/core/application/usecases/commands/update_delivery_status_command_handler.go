package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// ErrNotAssignedRider is returned when a rider tries to advance a parcel
// that is assigned to someone else (or to no one).
var ErrNotAssignedRider = errors.New("parcel is not assigned to this rider")

// UpdateDeliveryStatusCommandHandler advances a parcel along the delivery
// status graph on behalf of its assigned rider.
//
// Reaching the terminal delivered status has two side effects, applied in
// the same transaction as the status change:
//   - the rider's current delivery slot is released
//   - the rider's wallet is credited with the parcel's delivery cost,
//     at most once per parcel
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery status update command.
// Verifies the acting rider is the one assigned to the parcel, applies the
// transition, and on delivery completion releases the rider and credits
// earnings atomically.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	if !aggregate.IsAssignedTo(cmd.RiderEmail()) {
		return ErrNotAssignedRider
	}

	if err = aggregate.AdvanceDelivery(cmd.Target(), cmd.RiderEmail(), "status_update"); err != nil {
		return err
	}

	if aggregate.IsDelivered() {
		if err = h.completeDelivery(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// completeDelivery releases the rider's delivery slot and credits the
// parcel's delivery cost to the rider's wallet. The earnings-credited flag
// on the parcel guarantees the credit happens at most once even if the
// terminal update is retried.
func (h UpdateDeliveryStatusCommandHandler) completeDelivery(
	ctx context.Context,
	uow DeliveryUoW,
	aggregate *parcel.Parcel,
) error {
	snapshot := aggregate.AssignedRider()
	if snapshot == nil {
		return ErrNotAssignedRider
	}

	riderRepo := uow.RiderRepository()
	assignee, err := riderRepo.Get(ctx, snapshot.ID)
	if err != nil {
		return err
	}

	if err = assignee.CompleteDelivery(aggregate.ID()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, assignee); err != nil {
		return err
	}

	if !aggregate.MarkEarningsCredited() {
		return nil
	}

	return creditWallet(
		ctx,
		uow.WalletRepository(),
		snapshot.ID,
		aggregate.ID(),
		aggregate.Details().DeliveryCost,
		"",
	)
}

// creditWallet finds or lazily creates the rider's wallet and applies an
// earnings credit. Shared by the delivery completion flow and the direct
// credit command.
func creditWallet(
	ctx context.Context,
	walletRepo ports.WalletRepository,
	riderID, parcelID kernel.UUID,
	amount float64,
	description string,
) error {
	ledger, err := walletRepo.GetByRiderID(ctx, riderID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if ledger, err = wallet.NewWallet(riderID); err != nil {
			return err
		}
		if err = ledger.CreditEarnings(amount, parcelID, description); err != nil {
			return err
		}
		return walletRepo.Add(ctx, ledger)
	case err != nil:
		return err
	}

	if err = ledger.CreditEarnings(amount, parcelID, description); err != nil {
		return err
	}
	return walletRepo.Update(ctx, ledger)
}
