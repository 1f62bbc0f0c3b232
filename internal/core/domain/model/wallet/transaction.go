package wallet

import (
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// TransactionType distinguishes money moving into and out of a wallet.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// Transaction is one immutable entry in a wallet's audit trail. Entries are
// append-only and ordered by timestamp; corrections are made with new
// entries, never by editing history.
type Transaction struct {
	Type        TransactionType
	Amount      float64
	Description string
	// ParcelID links earnings credits to the delivered parcel; nil for fees.
	ParcelID  *kernel.UUID
	Timestamp time.Time
	// BalanceAfter snapshots availableBalance immediately after this entry
	// was applied. Replaying all entries from zero must reproduce the
	// wallet's current availableBalance.
	BalanceAfter float64
}

// signed returns the amount with the sign implied by the transaction type.
func (t Transaction) signed() float64 {
	if t.Type == TransactionDebit {
		return -t.Amount
	}
	return t.Amount
}

// WithdrawalMethod is the payout channel for a cash-out request.
type WithdrawalMethod string

const (
	MethodBkash WithdrawalMethod = "bkash"
	MethodNagad WithdrawalMethod = "nagad"
	MethodBank  WithdrawalMethod = "bank"
)

// Validate checks that the value is one of the supported payout channels.
func (m WithdrawalMethod) Validate() error {
	switch m {
	case MethodBkash, MethodNagad, MethodBank:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"method",
		fmt.Errorf("%q is not a valid withdrawal method", string(m)),
	)
}

// WithdrawalStatus is the lifecycle state of a cash-out request.
type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalCompleted  WithdrawalStatus = "completed"
	WithdrawalFailed     WithdrawalStatus = "failed"
	WithdrawalCancelled  WithdrawalStatus = "cancelled"
)

// AccountInfo holds the payout destination for a withdrawal. Which fields are
// set depends on the method: mobile wallets use PhoneNumber, banks use the rest.
type AccountInfo struct {
	PhoneNumber   string
	AccountNumber string
	BankName      string
	BranchName    string
	AccountType   string
}

// Withdrawal is one entry in a wallet's cash-out queue. The requested
// principal stays earmarked here until an administrative process resolves the
// request; only the processing fee has left availableBalance.
type Withdrawal struct {
	ID          kernel.UUID
	Amount      float64
	Method      WithdrawalMethod
	AccountInfo AccountInfo
	Status      WithdrawalStatus
	RequestedAt time.Time
	ProcessedAt *time.Time
	AdminNotes  string
	// TransactionID is the external payout reference filled at completion.
	TransactionID string
}

// NetAmount is what the rider receives once the request completes:
// the requested amount minus the fixed processing fee.
func (w Withdrawal) NetAmount() float64 {
	return w.Amount - ProcessingFee
}
