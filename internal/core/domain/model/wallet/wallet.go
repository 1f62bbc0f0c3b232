package wallet

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

const (
	// MinCashOutAmount is the smallest cash-out request accepted, in currency units.
	MinCashOutAmount = 500.0
	// MaxCashOutAmount is the largest cash-out request accepted, in currency units.
	MaxCashOutAmount = 50000.0
	// ProcessingFee is deducted from availableBalance the moment a cash-out
	// request is queued; the requested principal moves only on settlement.
	ProcessingFee = 10.0
)

// Domain errors for wallet operations.
var (
	// ErrWalletIsNotConstructed is returned when using an improperly initialized Wallet.
	ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet constructor")
	// ErrInsufficientBalance is returned when a cash-out request exceeds availableBalance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrWithdrawalNotFound is returned when a referenced withdrawal is not in the queue.
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
)

// Wallet is the aggregate root for a rider's earnings ledger. One wallet
// exists per rider, created lazily on the first balance query or earnings
// credit.
//
// Invariants:
//   - availableBalance, totalEarned, and totalWithdrawn are never negative
//   - every transaction's BalanceAfter equals availableBalance immediately
//     after that entry was applied; replaying the history from zero
//     reproduces the current availableBalance
//   - the transaction history is append-only and ordered by timestamp
type Wallet struct {
	riderID kernel.UUID

	availableBalance float64
	totalEarned      float64
	// totalWithdrawn reflects the full requested amount of every cash-out at
	// request time, not the fee-adjusted settled amount. availableBalance
	// only drops by the processing fee until a request settles.
	totalWithdrawn float64

	transactions []Transaction
	withdrawals  []Withdrawal

	lastUpdated time.Time

	guard guard.ConstructorGuard
}

// NewWallet creates a zeroed wallet for a rider.
func NewWallet(riderID kernel.UUID) (*Wallet, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	return &Wallet{
		riderID:     riderID,
		lastUpdated: time.Now(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreWallet reconstructs a Wallet aggregate from persistent storage.
// The balance fields must be consistent with the transaction history;
// the snapshot invariant is re-checked on restoration.
func RestoreWallet(
	riderID kernel.UUID,
	availableBalance float64,
	totalEarned float64,
	totalWithdrawn float64,
	transactions []Transaction,
	withdrawals []Withdrawal,
	lastUpdated time.Time,
) (*Wallet, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}
	if availableBalance < 0 || totalEarned < 0 || totalWithdrawn < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"balance",
			errors.New("wallet balances cannot be negative"),
		)
	}

	w := &Wallet{
		riderID:          riderID,
		availableBalance: availableBalance,
		totalEarned:      totalEarned,
		totalWithdrawn:   totalWithdrawn,
		transactions:     make([]Transaction, len(transactions)),
		withdrawals:      make([]Withdrawal, len(withdrawals)),
		lastUpdated:      lastUpdated,
		guard:            guard.NewConstructorGuard(),
	}
	copy(w.transactions, transactions)
	copy(w.withdrawals, withdrawals)

	if replayed := w.ReplayBalance(); replayed != availableBalance {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"transactionHistory",
			fmt.Errorf("replayed balance %v does not match availableBalance %v", replayed, availableBalance),
		)
	}

	return w, nil
}

// Validate ensures the Wallet was created through one of its constructors.
func (w *Wallet) Validate() error {
	if w == nil {
		return ErrWalletIsNotConstructed
	}
	return w.guard.Validate(ErrWalletIsNotConstructed)
}

// RiderID returns the owning rider's identifier.
func (w *Wallet) RiderID() kernel.UUID {
	return w.riderID
}

// AvailableBalance returns the spendable balance.
func (w *Wallet) AvailableBalance() float64 {
	return w.availableBalance
}

// TotalEarned returns the lifetime earnings credited to the wallet.
func (w *Wallet) TotalEarned() float64 {
	return w.totalEarned
}

// TotalWithdrawn returns the lifetime sum of requested cash-out amounts.
func (w *Wallet) TotalWithdrawn() float64 {
	return w.totalWithdrawn
}

// Transactions returns a copy of the append-only audit trail, oldest first.
func (w *Wallet) Transactions() []Transaction {
	out := make([]Transaction, len(w.transactions))
	copy(out, w.transactions)
	return out
}

// Withdrawals returns a copy of the cash-out queue, oldest first.
func (w *Wallet) Withdrawals() []Withdrawal {
	out := make([]Withdrawal, len(w.withdrawals))
	copy(out, w.withdrawals)
	return out
}

// LastUpdated returns the timestamp of the last balance mutation.
func (w *Wallet) LastUpdated() time.Time {
	return w.lastUpdated
}

// ReplayBalance recomputes availableBalance by replaying the transaction
// history from zero using each entry's signed amount.
func (w *Wallet) ReplayBalance() float64 {
	balance := 0.0
	for _, tx := range w.transactions {
		balance += tx.signed()
	}
	return balance
}

// CreditEarnings adds delivery earnings to the wallet: appends a credit
// transaction whose BalanceAfter equals the new availableBalance, bumps
// totalEarned, and stamps lastUpdated. The amount must be positive.
//
// Callers are responsible for crediting a delivered parcel at most once;
// the Parcel aggregate's earnings flag is the idempotency key.
func (w *Wallet) CreditEarnings(amount float64, parcelID kernel.UUID, description string) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is not greater than 0", amount),
		)
	}
	if err := parcelID.Validate(); err != nil {
		return err
	}
	if description == "" {
		description = fmt.Sprintf("Delivery completed for parcel %s", parcelID)
	}

	newBalance := w.availableBalance + amount
	now := time.Now()

	w.transactions = append(w.transactions, Transaction{
		Type:         TransactionCredit,
		Amount:       amount,
		Description:  description,
		ParcelID:     &parcelID,
		Timestamp:    now,
		BalanceAfter: newBalance,
	})
	w.availableBalance = newBalance
	w.totalEarned += amount
	w.lastUpdated = now

	return nil
}

// RequestCashOut queues a withdrawal request.
//
// Validation order (all checks happen before any mutation):
//  1. method must be a supported payout channel
//  2. amount must lie in [MinCashOutAmount, MaxCashOutAmount]
//  3. amount must not exceed availableBalance
//
// On success the fixed processing fee is deducted from availableBalance
// immediately with a matching debit transaction, totalWithdrawn grows by the
// full requested amount, and a pending withdrawal is appended to the queue.
// The returned withdrawal carries the identifier and NetAmount for the caller.
func (w *Wallet) RequestCashOut(
	amount float64,
	method WithdrawalMethod,
	accountInfo AccountInfo,
) (Withdrawal, error) {
	if err := method.Validate(); err != nil {
		return Withdrawal{}, err
	}
	if amount < MinCashOutAmount || amount > MaxCashOutAmount {
		return Withdrawal{}, errs.NewValueIsOutOfRangeError(
			"amount", amount, MinCashOutAmount, MaxCashOutAmount,
		)
	}
	if amount > w.availableBalance {
		return Withdrawal{}, ErrInsufficientBalance
	}

	now := time.Now()
	newBalance := w.availableBalance - ProcessingFee

	withdrawal := Withdrawal{
		ID:          kernel.NewUUID(),
		Amount:      amount,
		Method:      method,
		AccountInfo: accountInfo,
		Status:      WithdrawalPending,
		RequestedAt: now,
	}

	w.transactions = append(w.transactions, Transaction{
		Type:         TransactionDebit,
		Amount:       ProcessingFee,
		Description:  fmt.Sprintf("Processing fee for %s cash-out", method),
		Timestamp:    now,
		BalanceAfter: newBalance,
	})
	w.availableBalance = newBalance
	w.totalWithdrawn += amount
	w.withdrawals = append(w.withdrawals, withdrawal)
	w.lastUpdated = now

	return withdrawal, nil
}

// MarkWithdrawalProcessing moves a pending withdrawal to processing.
// Used by the background settlement pass; requests in any other state are
// left untouched and reported as an error.
func (w *Wallet) MarkWithdrawalProcessing(id kernel.UUID) error {
	for i := range w.withdrawals {
		if !w.withdrawals[i].ID.IsEqual(id) {
			continue
		}
		if w.withdrawals[i].Status != WithdrawalPending {
			return errs.NewValueIsInvalidErrorWithCause(
				"withdrawal",
				fmt.Errorf("withdrawal %s is %s, not pending", id, w.withdrawals[i].Status),
			)
		}
		w.withdrawals[i].Status = WithdrawalProcessing
		w.lastUpdated = time.Now()
		return nil
	}
	return ErrWithdrawalNotFound
}

// PendingWithdrawals returns the withdrawals still awaiting processing.
func (w *Wallet) PendingWithdrawals() []Withdrawal {
	out := make([]Withdrawal, 0)
	for _, wd := range w.withdrawals {
		if wd.Status == WithdrawalPending {
			out = append(out, wd)
		}
	}
	return out
}
