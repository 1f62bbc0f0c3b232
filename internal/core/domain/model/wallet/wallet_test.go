package wallet_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWallet(t *testing.T) *wallet.Wallet {
	t.Helper()
	w, err := wallet.NewWallet(kernel.NewUUID())
	require.NoError(t, err)
	return w
}

func TestNewWallet(t *testing.T) {
	t.Run("creates_zeroed_wallet", func(t *testing.T) {
		w := newWallet(t)

		require.NoError(t, w.Validate())
		assert.Zero(t, w.AvailableBalance())
		assert.Zero(t, w.TotalEarned())
		assert.Zero(t, w.TotalWithdrawn())
		assert.Empty(t, w.Transactions())
		assert.Empty(t, w.Withdrawals())
	})

	t.Run("requires_valid_rider_id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := wallet.NewWallet(zeroID)

		require.Error(t, err)
	})
}

func TestWallet_CreditEarnings(t *testing.T) {
	t.Run("credits_earnings_with_balance_snapshot", func(t *testing.T) {
		w := newWallet(t)
		parcelID := kernel.NewUUID()

		err := w.CreditEarnings(150, parcelID, "delivery")

		require.NoError(t, err)
		assert.Equal(t, 150.0, w.AvailableBalance())
		assert.Equal(t, 150.0, w.TotalEarned())

		transactions := w.Transactions()
		require.Len(t, transactions, 1)
		assert.Equal(t, wallet.TransactionCredit, transactions[0].Type)
		assert.Equal(t, 150.0, transactions[0].Amount)
		assert.Equal(t, 150.0, transactions[0].BalanceAfter)
		require.NotNil(t, transactions[0].ParcelID)
		assert.True(t, transactions[0].ParcelID.IsEqual(parcelID))
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		w := newWallet(t)

		for _, amount := range []float64{0, -50} {
			err := w.CreditEarnings(amount, kernel.NewUUID(), "delivery")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
		assert.Zero(t, w.AvailableBalance())
	})

	t.Run("defaults_description_when_empty", func(t *testing.T) {
		w := newWallet(t)
		parcelID := kernel.NewUUID()

		require.NoError(t, w.CreditEarnings(100, parcelID, ""))

		assert.Contains(t, w.Transactions()[0].Description, parcelID.String())
	})
}

func TestWallet_RequestCashOut(t *testing.T) {
	funded := func(t *testing.T, balance float64) *wallet.Wallet {
		t.Helper()
		w := newWallet(t)
		require.NoError(t, w.CreditEarnings(balance, kernel.NewUUID(), "delivery"))
		return w
	}

	t.Run("queues_pending_withdrawal_and_deducts_fee", func(t *testing.T) {
		w := funded(t, 1000)

		withdrawal, err := w.RequestCashOut(600, wallet.MethodBkash, wallet.AccountInfo{
			PhoneNumber: "01733333333",
		})

		require.NoError(t, err)
		assert.Equal(t, 990.0, w.AvailableBalance())
		assert.Equal(t, 600.0, w.TotalWithdrawn())
		assert.Equal(t, 600.0, withdrawal.Amount)
		assert.Equal(t, 590.0, withdrawal.NetAmount())
		assert.Equal(t, wallet.WithdrawalPending, withdrawal.Status)
		require.NoError(t, withdrawal.ID.Validate())

		transactions := w.Transactions()
		require.Len(t, transactions, 2)
		fee := transactions[1]
		assert.Equal(t, wallet.TransactionDebit, fee.Type)
		assert.Equal(t, 10.0, fee.Amount)
		assert.Equal(t, 990.0, fee.BalanceAfter)

		require.Len(t, w.Withdrawals(), 1)
	})

	t.Run("rejects_amount_below_minimum", func(t *testing.T) {
		w := funded(t, 1000)

		_, err := w.RequestCashOut(100, wallet.MethodBkash, wallet.AccountInfo{})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 1000.0, w.AvailableBalance())
	})

	t.Run("rejects_amount_above_maximum", func(t *testing.T) {
		w := funded(t, 60000)

		_, err := w.RequestCashOut(50001, wallet.MethodBank, wallet.AccountInfo{})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_amount_exceeding_balance", func(t *testing.T) {
		w := funded(t, 1000)
		_, err := w.RequestCashOut(600, wallet.MethodBkash, wallet.AccountInfo{})
		require.NoError(t, err)

		// Balance is now 990; requesting more than that must fail.
		_, err = w.RequestCashOut(2000, wallet.MethodBkash, wallet.AccountInfo{})

		require.ErrorIs(t, err, wallet.ErrInsufficientBalance)
		assert.Equal(t, 990.0, w.AvailableBalance())
		assert.Len(t, w.Withdrawals(), 1)
	})

	t.Run("rejects_unknown_method", func(t *testing.T) {
		w := funded(t, 1000)

		_, err := w.RequestCashOut(600, wallet.WithdrawalMethod("paypal"), wallet.AccountInfo{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWallet_ReplayBalance(t *testing.T) {
	t.Run("replaying_history_reproduces_balance", func(t *testing.T) {
		w := newWallet(t)
		require.NoError(t, w.CreditEarnings(500, kernel.NewUUID(), "delivery"))
		require.NoError(t, w.CreditEarnings(300, kernel.NewUUID(), "delivery"))
		_, err := w.RequestCashOut(600, wallet.MethodNagad, wallet.AccountInfo{})
		require.NoError(t, err)

		assert.Equal(t, w.AvailableBalance(), w.ReplayBalance())
		assert.Equal(t, 790.0, w.ReplayBalance())
	})

	t.Run("every_entry_snapshots_the_running_balance", func(t *testing.T) {
		w := newWallet(t)
		require.NoError(t, w.CreditEarnings(500, kernel.NewUUID(), "delivery"))
		_, err := w.RequestCashOut(500, wallet.MethodBkash, wallet.AccountInfo{})
		require.NoError(t, err)
		require.NoError(t, w.CreditEarnings(250, kernel.NewUUID(), "delivery"))

		running := 0.0
		for _, tx := range w.Transactions() {
			if tx.Type == wallet.TransactionDebit {
				running -= tx.Amount
			} else {
				running += tx.Amount
			}
			assert.Equal(t, running, tx.BalanceAfter)
		}
	})
}

func TestWallet_MarkWithdrawalProcessing(t *testing.T) {
	t.Run("moves_pending_withdrawal_to_processing", func(t *testing.T) {
		w := newWallet(t)
		require.NoError(t, w.CreditEarnings(1000, kernel.NewUUID(), "delivery"))
		withdrawal, err := w.RequestCashOut(600, wallet.MethodBkash, wallet.AccountInfo{})
		require.NoError(t, err)

		require.NoError(t, w.MarkWithdrawalProcessing(withdrawal.ID))

		assert.Equal(t, wallet.WithdrawalProcessing, w.Withdrawals()[0].Status)
		assert.Empty(t, w.PendingWithdrawals())
	})

	t.Run("rejects_unknown_withdrawal", func(t *testing.T) {
		w := newWallet(t)

		err := w.MarkWithdrawalProcessing(kernel.NewUUID())

		require.ErrorIs(t, err, wallet.ErrWithdrawalNotFound)
	})

	t.Run("rejects_already_processing_withdrawal", func(t *testing.T) {
		w := newWallet(t)
		require.NoError(t, w.CreditEarnings(1000, kernel.NewUUID(), "delivery"))
		withdrawal, err := w.RequestCashOut(600, wallet.MethodBkash, wallet.AccountInfo{})
		require.NoError(t, err)
		require.NoError(t, w.MarkWithdrawalProcessing(withdrawal.ID))

		require.ErrorIs(t, w.MarkWithdrawalProcessing(withdrawal.ID), errs.ErrValueIsInvalid)
	})
}

func TestRestoreWallet(t *testing.T) {
	t.Run("restores_wallet_with_history", func(t *testing.T) {
		original := newWallet(t)
		require.NoError(t, original.CreditEarnings(1000, kernel.NewUUID(), "delivery"))
		_, err := original.RequestCashOut(600, wallet.MethodBkash, wallet.AccountInfo{})
		require.NoError(t, err)

		restored, err := wallet.RestoreWallet(
			original.RiderID(),
			original.AvailableBalance(),
			original.TotalEarned(),
			original.TotalWithdrawn(),
			original.Transactions(),
			original.Withdrawals(),
			original.LastUpdated(),
		)

		require.NoError(t, err)
		assert.Equal(t, original.AvailableBalance(), restored.AvailableBalance())
		assert.Equal(t, original.TotalWithdrawn(), restored.TotalWithdrawn())
		assert.Equal(t, original.Transactions(), restored.Transactions())
	})

	t.Run("rejects_history_inconsistent_with_balance", func(t *testing.T) {
		original := newWallet(t)
		require.NoError(t, original.CreditEarnings(1000, kernel.NewUUID(), "delivery"))

		_, err := wallet.RestoreWallet(
			original.RiderID(),
			999, // does not match replayed history
			original.TotalEarned(),
			original.TotalWithdrawn(),
			original.Transactions(),
			original.Withdrawals(),
			original.LastUpdated(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_balances", func(t *testing.T) {
		original := newWallet(t)

		_, err := wallet.RestoreWallet(
			original.RiderID(), -1, 0, 0, nil, nil, original.LastUpdated(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
