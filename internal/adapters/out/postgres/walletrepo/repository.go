package walletrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWalletRepository implements WalletRepository using GORM.
type GormWalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWalletRepository creates a new GORM wallet repository.
func NewGormWalletRepository(db *gorm.DB, tracker aggregateTracker) *GormWalletRepository {
	return &GormWalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new wallet to the database.
func (r *GormWalletRepository) Add(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.RiderID(), aggregate)
	return nil
}

// Update saves an existing wallet to the database.
// Both child tables are replaced wholesale: the ledger is append-only and
// withdrawals change status in place, so rewriting keeps the mapping simple.
func (r *GormWalletRepository) Update(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).
		Where("wallet_rider_id = ?", dto.RiderID).
		Delete(&TransactionDTO{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Where("wallet_rider_id = ?", dto.RiderID).
		Delete(&WithdrawalDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.RiderID(), aggregate)
	return nil
}

// GetByRiderID retrieves the wallet owned by the given rider.
// The wallet row is locked for the duration of the surrounding transaction;
// two concurrent cash-outs cannot both pass the balance check against a
// stale read.
func (r *GormWalletRepository) GetByRiderID(ctx context.Context, riderID kernel.UUID) (*wallet.Wallet, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	var dto WalletDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Withdrawals", func(db *gorm.DB) *gorm.DB { return db.Order("requested_at") }).
		First(&dto, "rider_id = ?", riderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wallet", riderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllWithPendingWithdrawals retrieves every wallet that has at least one
// cash-out request still in the pending state.
func (r *GormWalletRepository) GetAllWithPendingWithdrawals(ctx context.Context) ([]*wallet.Wallet, error) {
	pending := r.db.
		Model(&WithdrawalDTO{}).
		Select("wallet_rider_id").
		Where("status = ?", string(wallet.WithdrawalPending))

	var dtos []WalletDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Withdrawals", func(db *gorm.DB) *gorm.DB { return db.Order("requested_at") }).
		Where("rider_id IN (?)", pending).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	wallets := make([]*wallet.Wallet, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, aggregate)
	}

	return wallets, nil
}
