package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/riderrepo"
	"parceltrack/internal/adapters/out/postgres/walletrepo"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// walletUoWFactory narrows the full unit of work factory to the wallet scope
// the balance query needs.
type walletUoWFactory struct {
	inner ports.UnitOfWorkFactory
}

func (f walletUoWFactory) Create() queries.WalletUoW {
	return f.inner.Create()
}

type GetWalletBalanceQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	handler   queries.GetWalletBalanceQueryHandler
}

func (suite *GetWalletBalanceQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&riderrepo.RiderDTO{},
		&walletrepo.WalletDTO{},
		&walletrepo.TransactionDTO{},
		&walletrepo.WithdrawalDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewGetWalletBalanceQueryHandler(walletUoWFactory{inner: suite.factory})
}

func (suite *GetWalletBalanceQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetWalletBalanceQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE wallet_transactions, wallet_withdrawals, wallets, riders").Error
	suite.Require().NoError(err)
}

func (suite *GetWalletBalanceQueryHandlerTestSuite) addRider(email string, nid string) *rider.Rider {
	owner := makeRider(suite.T(), email, nid)
	repo := suite.factory.Create().RiderRepository()
	suite.Require().NoError(repo.Add(context.Background(), owner))
	return owner
}

func (suite *GetWalletBalanceQueryHandlerTestSuite) TestHandle_MissingWallet_CreatesZeroedWallet() {
	ctx := context.Background()
	owner := suite.addRider("rider@example.com", "1990123456789")

	query, err := queries.NewGetWalletBalanceQuery("rider@example.com")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(owner.ID(), result.RiderID)
	suite.Zero(result.AvailableBalance)
	suite.Zero(result.TotalEarned)
	suite.Zero(result.TotalWithdrawn)
	suite.Empty(result.RecentTransactions)
	suite.Empty(result.PendingWithdrawals)

	// The lazily created wallet must be persisted
	var count int64
	suite.Require().NoError(suite.db.Model(&walletrepo.WalletDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *GetWalletBalanceQueryHandlerTestSuite) TestHandle_UnregisteredEmail_ReturnsNotFound() {
	query, err := queries.NewGetWalletBalanceQuery("nobody@example.com")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// No wallet appears for callers who are not riders
	var count int64
	suite.Require().NoError(suite.db.Model(&walletrepo.WalletDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *GetWalletBalanceQueryHandlerTestSuite) TestHandle_ExistingWallet_ReturnsBalancesAndLedger() {
	ctx := context.Background()
	owner := suite.addRider("rider@example.com", "1990123456789")

	ledger, err := wallet.NewWallet(owner.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(ledger.CreditEarnings(500, kernel.NewUUID(), "Delivery earnings"))
	suite.Require().NoError(ledger.CreditEarnings(300, kernel.NewUUID(), "Delivery earnings"))
	_, err = ledger.RequestCashOut(600, wallet.MethodBkash, wallet.AccountInfo{
		PhoneNumber: "01744444444",
	})
	suite.Require().NoError(err)

	repo := suite.factory.Create().WalletRepository()
	suite.Require().NoError(repo.Add(ctx, ledger))

	query, err := queries.NewGetWalletBalanceQuery("rider@example.com")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(790.0, result.AvailableBalance)
	suite.Equal(800.0, result.TotalEarned)
	suite.Equal(600.0, result.TotalWithdrawn)

	// Newest first: fee debit, then the two credits
	suite.Require().Len(result.RecentTransactions, 3)
	suite.Equal(wallet.TransactionDebit, result.RecentTransactions[0].Type)
	suite.Equal(wallet.ProcessingFee, result.RecentTransactions[0].Amount)
	suite.Equal(300.0, result.RecentTransactions[1].Amount)
	suite.Equal(500.0, result.RecentTransactions[2].Amount)

	suite.Require().Len(result.PendingWithdrawals, 1)
	suite.Equal(600.0, result.PendingWithdrawals[0].Amount)
}

func (suite *GetWalletBalanceQueryHandlerTestSuite) TestHandle_ReturnsOnlyTheCallersWallet() {
	ctx := context.Background()
	caller := suite.addRider("caller@example.com", "1990123456789")
	other := suite.addRider("other@example.com", "1985987654321")

	callerLedger, err := wallet.NewWallet(caller.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(callerLedger.CreditEarnings(120, kernel.NewUUID(), "Delivery earnings"))

	otherLedger, err := wallet.NewWallet(other.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(otherLedger.CreditEarnings(5000, kernel.NewUUID(), "Delivery earnings"))

	repo := suite.factory.Create().WalletRepository()
	suite.Require().NoError(repo.Add(ctx, callerLedger))
	suite.Require().NoError(repo.Add(ctx, otherLedger))

	query, err := queries.NewGetWalletBalanceQuery("caller@example.com")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(caller.ID(), result.RiderID)
	suite.Equal(120.0, result.AvailableBalance)
}

func (suite *GetWalletBalanceQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetWalletBalanceQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetWalletBalanceQuery constructor")
}

func TestGetWalletBalanceQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetWalletBalanceQueryHandlerTestSuite))
}
