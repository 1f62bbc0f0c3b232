package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

var (
	ErrParcelNotFound = errors.New("parcel not found")
	ErrRiderNotFound  = errors.New("rider not found")
)

// AssignRiderCommandHandler orchestrates binding a rider to a parcel.
// Both sides of the relation change together: the parcel takes a snapshot of
// the rider's contact details and the rider's current delivery is set to the
// parcel. Re-assigning the same rider to the same parcel is a no-op success.
//
// Example:
//
//	handler := NewAssignRiderCommandHandler(uowFactory)
//	cmd, _ := NewAssignRiderCommand(parcelID, riderID, "admin@example.com")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, rider.ErrRiderBusy):
//	    log.Println("Rider already carries another parcel")
//	case errors.Is(err, parcel.ErrParcelAlreadyAssigned):
//	    log.Println("Parcel is bound to a different rider")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignRiderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment operations.
func NewAssignRiderCommandHandler(uowFactory AssignmentUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider assignment command.
// Loads both aggregates, claims the rider's delivery slot, applies the
// rider snapshot to the parcel, and persists both within one transaction.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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
	riderRepo := uow.RiderRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	assignee, err := riderRepo.Get(ctx, cmd.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRiderNotFound
	}
	if err != nil {
		return err
	}

	if err = assignee.StartDelivery(aggregate.ID()); err != nil {
		return err
	}

	profile := assignee.Profile()
	snapshot := parcel.RiderSnapshot{
		ID:        assignee.ID(),
		Name:      profile.Name,
		Email:     profile.Email,
		Phone:     profile.Phone,
		BikeRegNo: profile.BikeRegNo,
	}
	if err = aggregate.AssignRider(snapshot, cmd.AssignedBy()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, assignee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
