package queries

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// recentTransactionLimit caps the ledger entries returned with a balance.
const recentTransactionLimit = 20

// WalletUoW is the transaction scope the balance query needs: resolve the
// calling rider by verified email, create the wallet when it is missing,
// read it otherwise.
type WalletUoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	RiderRepository() ports.RiderRepository
	WalletRepository() ports.WalletRepository
}

// WalletUoWFactory creates new wallet unit of work instances.
type WalletUoWFactory interface {
	Create() WalletUoW
}

// GetWalletBalanceQueryHandler retrieves a rider's wallet state, lazily
// creating a zeroed wallet on their first balance query.
type GetWalletBalanceQueryHandler struct {
	uowFactory WalletUoWFactory
}

// NewGetWalletBalanceQueryHandler creates a handler for wallet balance queries.
func NewGetWalletBalanceQueryHandler(uowFactory WalletUoWFactory) GetWalletBalanceQueryHandler {
	return GetWalletBalanceQueryHandler{uowFactory: uowFactory}
}

// Handle executes the wallet balance query.
// Returns the balances, pending withdrawals and the most recent ledger
// entries, newest first.
func (h GetWalletBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetWalletBalanceQuery,
) (GetWalletBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Only a registered rider owns a wallet; the email comes from the
	// verified token, never from request parameters.
	owner, err := uow.RiderRepository().GetByEmail(ctx, query.RiderEmail())
	if err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	walletRepo := uow.WalletRepository()

	ledger, err := walletRepo.GetByRiderID(ctx, owner.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		if ledger, err = wallet.NewWallet(owner.ID()); err != nil {
			return GetWalletBalanceQueryResponse{}, err
		}
		if err = walletRepo.Add(ctx, ledger); err != nil {
			return GetWalletBalanceQueryResponse{}, err
		}
	} else if err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	return GetWalletBalanceQueryResponse{
		RiderID:            ledger.RiderID(),
		AvailableBalance:   ledger.AvailableBalance(),
		TotalEarned:        ledger.TotalEarned(),
		TotalWithdrawn:     ledger.TotalWithdrawn(),
		RecentTransactions: recentTransactions(ledger.Transactions()),
		PendingWithdrawals: ledger.PendingWithdrawals(),
		LastUpdated:        ledger.LastUpdated(),
	}, nil
}

// recentTransactions returns up to recentTransactionLimit entries in
// reverse ledger order, newest first.
func recentTransactions(history []wallet.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, recentTransactionLimit)
	for i := len(history) - 1; i >= 0 && len(out) < recentTransactionLimit; i-- {
		out = append(out, TransactionResponse{
			Type:         history[i].Type,
			Amount:       history[i].Amount,
			Description:  history[i].Description,
			Timestamp:    history[i].Timestamp,
			BalanceAfter: history[i].BalanceAfter,
		})
	}
	return out
}
