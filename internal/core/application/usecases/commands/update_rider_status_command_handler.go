package commands

import (
	"context"
	"errors"

	"parceltrack/internal/pkg/errs"
)

// UpdateRiderStatusCommandHandler applies admin approval decisions to
// rider applications.
type UpdateRiderStatusCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewUpdateRiderStatusCommandHandler creates a handler for rider status updates.
func NewUpdateRiderStatusCommandHandler(uowFactory RiderUoWFactory) UpdateRiderStatusCommandHandler {
	return UpdateRiderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider status update command.
func (h UpdateRiderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateRiderStatusCommand) error {
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

	riderRepo := uow.RiderRepository()

	aggregate, err := riderRepo.Get(ctx, cmd.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRiderNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.UpdateStatus(cmd.Status()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
