package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/pkg/errs"
)

// ErrWalletNotFound is returned when a caller without a wallet tries to
// cash out. Wallets appear on first earnings credit or balance query, so a
// missing wallet always means a zero balance.
var ErrWalletNotFound = errors.New("wallet not found")

// RequestCashOutCommandHandler queues a withdrawal request against the
// calling rider's own wallet and returns the created withdrawal for the
// response body. The wallet is resolved from the verified email, never from
// client-supplied identifiers.
type RequestCashOutCommandHandler struct {
	uowFactory CashOutUoWFactory
}

// NewRequestCashOutCommandHandler creates a handler for cash-out requests.
func NewRequestCashOutCommandHandler(uowFactory CashOutUoWFactory) RequestCashOutCommandHandler {
	return RequestCashOutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cash-out command.
// The wallet serializes balance checks within the transaction, two
// concurrent requests cannot both pass against a stale balance.
func (h RequestCashOutCommandHandler) Handle(
	ctx context.Context,
	cmd RequestCashOutCommand,
) (wallet.Withdrawal, error) {
	if err := cmd.Validate(); err != nil {
		return wallet.Withdrawal{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return wallet.Withdrawal{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.RiderRepository().GetByEmail(ctx, cmd.RiderEmail())
	if errors.Is(err, errs.ErrObjectNotFound) {
		// A caller who never registered as a rider has no wallet.
		return wallet.Withdrawal{}, ErrWalletNotFound
	}
	if err != nil {
		return wallet.Withdrawal{}, err
	}

	walletRepo := uow.WalletRepository()

	ledger, err := walletRepo.GetByRiderID(ctx, owner.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return wallet.Withdrawal{}, ErrWalletNotFound
	}
	if err != nil {
		return wallet.Withdrawal{}, err
	}

	withdrawal, err := ledger.RequestCashOut(cmd.Amount(), cmd.Method(), cmd.AccountInfo())
	if err != nil {
		return wallet.Withdrawal{}, err
	}

	if err = walletRepo.Update(ctx, ledger); err != nil {
		return wallet.Withdrawal{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return wallet.Withdrawal{}, err
	}

	return withdrawal, nil
}
