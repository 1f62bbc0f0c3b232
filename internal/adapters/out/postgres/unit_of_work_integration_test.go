package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/paymentrepo"
	"parceltrack/internal/adapters/out/postgres/riderrepo"
	"parceltrack/internal/adapters/out/postgres/walletrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.HistoryEntryDTO{},
		&riderrepo.RiderDTO{},
		&walletrepo.WalletDTO{},
		&walletrepo.TransactionDTO{},
		&walletrepo.WithdrawalDTO{},
		&paymentrepo.PaymentDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE parcel_history_entries, parcels, riders, wallet_transactions, wallet_withdrawals, wallets, payments",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.ParcelRepository(), "First instance should provide parcel repository")
	suite.NotNil(uow1.RiderRepository(), "First instance should provide rider repository")
	suite.NotNil(uow2.WalletRepository(), "Second instance should provide wallet repository")
	suite.NotNil(uow2.PaymentRepository(), "Second instance should provide payment repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := createTestParcel(suite.T())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add parcel within transaction
	err = uow.ParcelRepository().Add(ctx, testParcel)
	suite.Require().NoError(err)

	// Verify parcel exists within transaction
	retrieved, err := uow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(testParcel.ID(), retrieved.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify parcel persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(testParcel.ID(), retrieved.ID())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := createTestParcel(suite.T())
	testRider := createTestRider(suite.T())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities using different repositories within same transaction
	err = uow.ParcelRepository().Add(ctx, testParcel)
	suite.Require().NoError(err)

	err = uow.RiderRepository().Add(ctx, testRider)
	suite.Require().NoError(err)

	// Assign the rider to the parcel, marking the rider busy
	err = testRider.StartDelivery(testParcel.ID())
	suite.Require().NoError(err)
	err = uow.RiderRepository().Update(ctx, testRider)
	suite.Require().NoError(err)

	profile := testRider.Profile()
	err = testParcel.AssignRider(parcel.RiderSnapshot{
		ID:        testRider.ID(),
		Name:      profile.Name,
		Email:     profile.Email,
		Phone:     profile.Phone,
		BikeRegNo: profile.BikeRegNo,
	}, "admin@example.com")
	suite.Require().NoError(err)
	err = uow.ParcelRepository().Update(ctx, testParcel)
	suite.Require().NoError(err)

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both entities persisted correctly with relationships
	newUow := suite.factory.Create()

	retrievedParcel, err := newUow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedParcel.AssignedRider())
	suite.Equal(testRider.ID(), retrievedParcel.AssignedRider().ID)

	retrievedRider, err := newUow.RiderRepository().Get(ctx, testRider.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedRider.CurrentDelivery())
	suite.Equal(testParcel.ID(), *retrievedRider.CurrentDelivery())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := createTestParcel(suite.T())
	testRider := createTestRider(suite.T())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.ParcelRepository().Add(ctx, testParcel)
	suite.Require().NoError(err)

	err = uow.RiderRepository().Add(ctx, testRider)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)

	_, err = uow.RiderRepository().Get(ctx, testRider.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing was persisted
	newUow := suite.factory.Create()

	_, err = newUow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().Error(err, "Parcel should not exist after rollback")

	_, err = newUow.RiderRepository().Get(ctx, testRider.ID())
	suite.Require().Error(err, "Rider should not exist after rollback")
}

func createTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	details := parcel.Details{
		TrackingID:    "TRK-20260901-" + kernel.NewUUID().String()[:4],
		Name:          "Books",
		Type:          "regular",
		Weight:        2.5,
		DeliveryZone:  "inside_dhaka",
		BaseCost:      100,
		ExtraCharges:  20,
		DeliveryCost:  120,
		PaymentMethod: "Card",
		CreatedBy:     "sender@example.com",
		Sender: parcel.Contact{
			Name:  "Sender",
			Phone: "01711111111",
		},
		Receiver: parcel.Contact{
			Name:  "Receiver",
			Phone: "01722222222",
		},
	}

	aggregate, err := parcel.NewParcel(kernel.NewUUID(), details)
	if err != nil {
		t.Fatal(err)
	}
	return aggregate
}

func createTestRider(t *testing.T) *rider.Rider {
	t.Helper()

	id := kernel.NewUUID()
	profile := rider.Profile{
		Name:      "Rahim Uddin",
		Email:     id.String()[:8] + "@example.com",
		Age:       27,
		Phone:     "01733333333",
		Region:    "Dhaka",
		District:  "Dhaka",
		NID:       id.String()[:13],
		BikeBrand: "Hero",
		BikeRegNo: "DHK-METRO-LA-11-2233",
	}

	aggregate, err := rider.NewRider(id, profile)
	if err != nil {
		t.Fatal(err)
	}
	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
