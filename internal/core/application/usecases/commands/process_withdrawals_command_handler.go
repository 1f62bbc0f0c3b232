package commands

import (
	"context"
)

// ProcessWithdrawalsCommandHandler moves pending withdrawals into
// processing status across all wallets. Actual disbursement happens
// downstream; this pass only claims the requests so they are not picked
// up twice.
type ProcessWithdrawalsCommandHandler struct {
	uowFactory WalletUoWFactory
}

// NewProcessWithdrawalsCommandHandler creates a handler for the
// withdrawal settlement pass.
func NewProcessWithdrawalsCommandHandler(uowFactory WalletUoWFactory) ProcessWithdrawalsCommandHandler {
	return ProcessWithdrawalsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal settlement command.
// All claimed withdrawals are committed in a single transaction.
func (h *ProcessWithdrawalsCommandHandler) Handle(ctx context.Context, cmd ProcessWithdrawalsCommand) error {
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

	walletRepo := uow.WalletRepository()

	wallets, err := walletRepo.GetAllWithPendingWithdrawals(ctx)
	if err != nil {
		return err
	}

	for _, ledger := range wallets {
		for _, withdrawal := range ledger.PendingWithdrawals() {
			if err = ledger.MarkWithdrawalProcessing(withdrawal.ID); err != nil {
				return err
			}
		}

		if err = walletRepo.Update(ctx, ledger); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
