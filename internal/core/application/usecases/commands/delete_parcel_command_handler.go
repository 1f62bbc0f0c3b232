package commands

import (
	"context"
	"errors"

	"parceltrack/internal/pkg/errs"
)

// DeleteParcelCommandHandler removes a parcel and its history on explicit
// admin request.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel deletion command.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	if _, err := parcelRepo.Get(ctx, cmd.ParcelID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrParcelNotFound
		}
		return err
	}

	if err := parcelRepo.Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
