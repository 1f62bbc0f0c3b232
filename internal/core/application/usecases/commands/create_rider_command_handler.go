package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/pkg/errs"
)

// ErrRiderAlreadyRegistered is returned when the applicant's email is
// already registered.
var ErrRiderAlreadyRegistered = errors.New("rider with this email already registered")

// CreateRiderCommandHandler handles rider onboarding applications.
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates a handler for rider onboarding.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider onboarding command.
// Rejects duplicate email registrations before persisting the application.
func (h CreateRiderCommandHandler) Handle(ctx context.Context, cmd CreateRiderCommand) error {
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

	_, err := riderRepo.GetByEmail(ctx, cmd.Profile().Email)
	if err == nil {
		return ErrRiderAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := rider.NewRider(cmd.RiderID(), cmd.Profile())
	if err != nil {
		return err
	}

	if err = riderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
