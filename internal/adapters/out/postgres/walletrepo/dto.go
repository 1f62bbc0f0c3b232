// Package walletrepo provides data transfer objects and mapping functions for
// wallet persistence.
package walletrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/wallet"

	"github.com/google/uuid"
)

// WalletDTO represents the database structure for persisting wallet aggregates.
// Wallets are keyed by the owning rider, one row per rider.
type WalletDTO struct {
	RiderID uuid.UUID `gorm:"type:uuid;primaryKey"`

	AvailableBalance float64 `gorm:"type:decimal(12,2);not null"`
	TotalEarned      float64 `gorm:"type:decimal(12,2);not null"`
	TotalWithdrawn   float64 `gorm:"type:decimal(12,2);not null"`

	Transactions []TransactionDTO `gorm:"foreignKey:WalletRiderID;references:RiderID;constraint:OnDelete:CASCADE"`
	Withdrawals  []WithdrawalDTO  `gorm:"foreignKey:WalletRiderID;references:RiderID;constraint:OnDelete:CASCADE"`

	LastUpdated time.Time `gorm:"not null"`
}

// TableName specifies the database table name for wallet entities.
func (WalletDTO) TableName() string {
	return "wallets"
}

// TransactionDTO represents one ledger entry of a wallet. Seq preserves the
// append order of the history.
type TransactionDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	WalletRiderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq           int       `gorm:"not null"`

	Type         string     `gorm:"type:varchar(16);not null"`
	Amount       float64    `gorm:"type:decimal(12,2);not null"`
	Description  string     `gorm:"type:varchar(255)"`
	ParcelID     *uuid.UUID `gorm:"type:uuid"`
	Timestamp    time.Time  `gorm:"not null"`
	BalanceAfter float64    `gorm:"type:decimal(12,2);not null"`
}

// TableName specifies the database table name for wallet ledger entries.
func (TransactionDTO) TableName() string {
	return "wallet_transactions"
}

// WithdrawalDTO represents one cash-out request of a wallet.
type WithdrawalDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	WalletRiderID uuid.UUID `gorm:"type:uuid;not null;index"`

	Amount float64 `gorm:"type:decimal(12,2);not null"`
	Method string  `gorm:"type:varchar(16);not null"`

	PhoneNumber   string `gorm:"type:varchar(32)"`
	AccountNumber string `gorm:"type:varchar(64)"`
	BankName      string `gorm:"type:varchar(128)"`
	BranchName    string `gorm:"type:varchar(128)"`
	AccountType   string `gorm:"type:varchar(32)"`

	Status        string     `gorm:"type:varchar(16);not null;index"`
	RequestedAt   time.Time  `gorm:"not null"`
	ProcessedAt   *time.Time `gorm:""`
	AdminNotes    string     `gorm:"type:varchar(255)"`
	TransactionID string     `gorm:"type:varchar(128)"`
}

// TableName specifies the database table name for cash-out requests.
func (WithdrawalDTO) TableName() string {
	return "wallet_withdrawals"
}

// fromDomain converts a wallet domain aggregate to its database representation.
func fromDomain(aggregate *wallet.Wallet) WalletDTO {
	riderID := aggregate.RiderID().Bytes()

	dto := WalletDTO{
		RiderID:          riderID,
		AvailableBalance: aggregate.AvailableBalance(),
		TotalEarned:      aggregate.TotalEarned(),
		TotalWithdrawn:   aggregate.TotalWithdrawn(),
		LastUpdated:      aggregate.LastUpdated(),
	}

	for i, transaction := range aggregate.Transactions() {
		entry := TransactionDTO{
			WalletRiderID: riderID,
			Seq:           i,
			Type:          string(transaction.Type),
			Amount:        transaction.Amount,
			Description:   transaction.Description,
			Timestamp:     transaction.Timestamp,
			BalanceAfter:  transaction.BalanceAfter,
		}
		if transaction.ParcelID != nil {
			parcelID := transaction.ParcelID.Bytes()
			entry.ParcelID = &parcelID
		}
		dto.Transactions = append(dto.Transactions, entry)
	}

	for _, withdrawal := range aggregate.Withdrawals() {
		dto.Withdrawals = append(dto.Withdrawals, WithdrawalDTO{
			ID:            withdrawal.ID.Bytes(),
			WalletRiderID: riderID,
			Amount:        withdrawal.Amount,
			Method:        string(withdrawal.Method),
			PhoneNumber:   withdrawal.AccountInfo.PhoneNumber,
			AccountNumber: withdrawal.AccountInfo.AccountNumber,
			BankName:      withdrawal.AccountInfo.BankName,
			BranchName:    withdrawal.AccountInfo.BranchName,
			AccountType:   withdrawal.AccountInfo.AccountType,
			Status:        string(withdrawal.Status),
			RequestedAt:   withdrawal.RequestedAt,
			ProcessedAt:   withdrawal.ProcessedAt,
			AdminNotes:    withdrawal.AdminNotes,
			TransactionID: withdrawal.TransactionID,
		})
	}

	return dto
}

// toDomain converts a database DTO to a wallet domain aggregate.
func toDomain(dto WalletDTO) (*wallet.Wallet, error) {
	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	transactions := make([]wallet.Transaction, 0, len(dto.Transactions))
	for _, entry := range dto.Transactions {
		transaction := wallet.Transaction{
			Type:         wallet.TransactionType(entry.Type),
			Amount:       entry.Amount,
			Description:  entry.Description,
			Timestamp:    entry.Timestamp,
			BalanceAfter: entry.BalanceAfter,
		}
		if entry.ParcelID != nil {
			parcelID, idErr := kernel.UUIDFromBytes((*entry.ParcelID)[:])
			if idErr != nil {
				return nil, idErr
			}
			transaction.ParcelID = &parcelID
		}
		transactions = append(transactions, transaction)
	}

	withdrawals := make([]wallet.Withdrawal, 0, len(dto.Withdrawals))
	for _, entry := range dto.Withdrawals {
		withdrawalID, idErr := kernel.UUIDFromBytes(entry.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		withdrawals = append(withdrawals, wallet.Withdrawal{
			ID:     withdrawalID,
			Amount: entry.Amount,
			Method: wallet.WithdrawalMethod(entry.Method),
			AccountInfo: wallet.AccountInfo{
				PhoneNumber:   entry.PhoneNumber,
				AccountNumber: entry.AccountNumber,
				BankName:      entry.BankName,
				BranchName:    entry.BranchName,
				AccountType:   entry.AccountType,
			},
			Status:        wallet.WithdrawalStatus(entry.Status),
			RequestedAt:   entry.RequestedAt,
			ProcessedAt:   entry.ProcessedAt,
			AdminNotes:    entry.AdminNotes,
			TransactionID: entry.TransactionID,
		})
	}

	return wallet.RestoreWallet(
		riderID,
		dto.AvailableBalance,
		dto.TotalEarned,
		dto.TotalWithdrawn,
		transactions,
		withdrawals,
		dto.LastUpdated,
	)
}
