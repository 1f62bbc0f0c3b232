package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for wallet aggregates.
// Wallets are keyed by the owning rider, one wallet per rider.
type WalletRepository interface {
	// Add persists a new wallet aggregate to storage.
	Add(ctx context.Context, aggregate *wallet.Wallet) error

	// Update persists changes to an existing wallet aggregate,
	// including its transaction history and withdrawal queue.
	Update(ctx context.Context, aggregate *wallet.Wallet) error

	// GetByRiderID retrieves the wallet owned by the given rider.
	// Returns errs.ObjectNotFoundError when the rider has no wallet yet.
	GetByRiderID(ctx context.Context, riderID kernel.UUID) (*wallet.Wallet, error)

	// GetAllWithPendingWithdrawals retrieves every wallet holding at
	// least one withdrawal still in pending status. Used by the
	// background settlement pass.
	GetAllWithPendingWithdrawals(ctx context.Context) ([]*wallet.Wallet, error)
}
