package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetRiderDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	handler   queries.GetRiderDeliveriesQueryHandler
}

func (suite *GetRiderDeliveriesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{}, &parcelrepo.HistoryEntryDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewGetRiderDeliveriesQueryHandler(db)
}

func (suite *GetRiderDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetRiderDeliveriesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetRiderDeliveriesQueryHandlerTestSuite) TestHandle_NoDeliveries_ReturnsEmptyBuckets() {
	query, err := queries.NewGetRiderDeliveriesQuery("rider@example.com")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Assigned)
	suite.Empty(result.InTransit)
	suite.Empty(result.Completed)
}

func (suite *GetRiderDeliveriesQueryHandlerTestSuite) TestHandle_BucketsByDeliveryStatus() {
	ctx := context.Background()
	repo := suite.factory.Create().ParcelRepository()

	assigned := makeParcel(suite.T(), "TRK-20260901-0010", "sender@example.com")
	inTransit := makeParcel(suite.T(), "TRK-20260901-0011", "sender@example.com")
	completed := makeParcel(suite.T(), "TRK-20260901-0012", "sender@example.com")

	for _, aggregate := range []*parcel.Parcel{assigned, inTransit, completed} {
		assignee := makeRider(suite.T(), "rider@example.com", "1990123456789")
		assignParcel(suite.T(), aggregate, assignee)
	}

	suite.Require().NoError(inTransit.AdvanceDelivery(parcel.DeliveryInTransit, "rider@example.com", "picked_up"))

	suite.Require().NoError(completed.AdvanceDelivery(parcel.DeliveryInTransit, "rider@example.com", "picked_up"))
	suite.Require().NoError(completed.AdvanceDelivery(parcel.DeliveryDelivered, "rider@example.com", "delivered"))

	for _, aggregate := range []*parcel.Parcel{assigned, inTransit, completed} {
		suite.Require().NoError(repo.Add(ctx, aggregate))
	}

	// A parcel bound to a different rider must not appear
	foreign := makeParcel(suite.T(), "TRK-20260901-0013", "sender@example.com")
	assignParcel(suite.T(), foreign, makeRider(suite.T(), "other@example.com", "1990987654321"))
	suite.Require().NoError(repo.Add(ctx, foreign))

	query, err := queries.NewGetRiderDeliveriesQuery("rider@example.com")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Assigned, 1)
	suite.Equal(assigned.ID(), result.Assigned[0].ID)

	suite.Require().Len(result.InTransit, 1)
	suite.Equal(inTransit.ID(), result.InTransit[0].ID)

	suite.Require().Len(result.Completed, 1)
	suite.Equal(completed.ID(), result.Completed[0].ID)
}

func (suite *GetRiderDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetRiderDeliveriesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Empty(result.Assigned)
	suite.Contains(err.Error(), "must be created via NewGetRiderDeliveriesQuery constructor")
}

func TestGetRiderDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRiderDeliveriesQueryHandlerTestSuite))
}
