package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrGetWalletBalanceQueryIsNotConstructed = errors.New(
	"GetWalletBalanceQuery must be created via NewGetWalletBalanceQuery constructor",
)

// GetWalletBalanceQuery retrieves a rider's wallet balances and recent
// transactions. The wallet is addressed by the caller's verified email, a
// rider can only read their own wallet. The first balance query for a rider
// creates their wallet, so this query goes through a unit of work rather
// than a read-only connection.
type GetWalletBalanceQuery struct { //nolint:recvcheck //using for validation
	riderEmail string

	guard guard.ConstructorGuard
}

// NewGetWalletBalanceQuery creates a query for a rider's wallet balance.
func NewGetWalletBalanceQuery(riderEmail string) (GetWalletBalanceQuery, error) {
	query := GetWalletBalanceQuery{
		guard: guard.NewConstructorGuard(),
	}

	if riderEmail == "" {
		return GetWalletBalanceQuery{}, errs.NewValueIsRequiredError("riderEmail")
	}
	query.riderEmail = riderEmail

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWalletBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletBalanceQueryIsNotConstructed)
}

// RiderEmail returns the verified email of the wallet owner.
func (q GetWalletBalanceQuery) RiderEmail() string {
	return q.riderEmail
}

// TransactionResponse is the read model for a single ledger entry.
type TransactionResponse struct {
	Type         wallet.TransactionType
	Amount       float64
	Description  string
	Timestamp    time.Time
	BalanceAfter float64
}

// GetWalletBalanceQueryResponse is the read model for a wallet's state.
// RecentTransactions holds the newest entries first.
type GetWalletBalanceQueryResponse struct {
	RiderID            kernel.UUID
	AvailableBalance   float64
	TotalEarned        float64
	TotalWithdrawn     float64
	RecentTransactions []TransactionResponse
	PendingWithdrawals []wallet.Withdrawal
	LastUpdated        time.Time
}
