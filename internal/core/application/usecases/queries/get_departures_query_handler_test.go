package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/departurerepo"
	"freight/internal/adapters/out/postgres/parcelrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/departure"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDeparturesQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetDeparturesQueryHandler
	departures *departurerepo.GormDepartureRepository
	parcels    *parcelrepo.GormParcelRepository
}

func (suite *GetDeparturesQueryHandlerTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&departurerepo.DepartureDTO{},
		&departurerepo.CarrierDTO{},
		&parcelrepo.ParcelDTO{},
	))

	suite.handler = queries.NewGetDeparturesQueryHandler(db)
	suite.departures = departurerepo.NewGormDepartureRepository(db)
	suite.parcels = parcelrepo.NewGormParcelRepository(db)
}

func (suite *GetDeparturesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE departures, departure_carriers, parcels").Error
	suite.Require().NoError(err)
}

func (suite *GetDeparturesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDeparturesQueryHandlerTestSuite) seaRoute() kernel.Route {
	route, err := kernel.NewRoute("CN", "Guangzhou", "CM")
	suite.Require().NoError(err)
	return route
}

func (suite *GetDeparturesQueryHandlerTestSuite) addDeparture(scheduledAt time.Time) *departure.Departure {
	d, err := departure.NewDeparture(
		kernel.NewUUID(), suite.seaRoute(), kernel.TransportSea,
		scheduledAt, 40, "", false,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.departures.Add(context.Background(), d))
	return d
}

// addReceivedParcel stores a measured parcel assigned to the departure so the
// board row carries weight and revenue.
func (suite *GetDeparturesQueryHandlerTestSuite) addReceivedParcel(
	d *departure.Departure, trackingCode string, weightKg, rate float64,
) {
	p, err := parcel.NewParcel(
		kernel.NewUUID(), trackingCode, "", "client-1", "spare parts",
		suite.seaRoute(), kernel.TransportSea, "standard", parcel.BillingByWeight,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(p.Receive(weightKg, 0, 0, rate))
	suite.Require().NoError(p.AssignTo(d.ID(), d.Route(), d.Transport()))
	suite.Require().NoError(suite.parcels.Add(context.Background(), p))
}

func (suite *GetDeparturesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetDeparturesQuery(queries.ScopeAll)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDeparturesQueryHandlerTestSuite) TestHandle_Upcoming_SoonestFirst() {
	later := suite.addDeparture(time.Now().Add(96 * time.Hour))
	sooner := suite.addDeparture(time.Now().Add(24 * time.Hour))

	query, err := queries.NewGetDeparturesQuery(queries.ScopeUpcoming)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(sooner.ID(), result[0].ID)
	suite.Equal(later.ID(), result[1].ID)
}

func (suite *GetDeparturesQueryHandlerTestSuite) TestHandle_Upcoming_ExcludesOtherStatuses() {
	scheduled := suite.addDeparture(time.Now().Add(24 * time.Hour))

	departed, err := departure.NewDeparture(
		kernel.NewUUID(), suite.seaRoute(), kernel.TransportSea,
		time.Now().Add(24*time.Hour), 40, "", false,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(departed.MarkDeparted(1, time.Now()))
	suite.Require().NoError(suite.departures.Add(context.Background(), departed))

	query, err := queries.NewGetDeparturesQuery(queries.ScopeUpcoming)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(scheduled.ID(), result[0].ID)
}

func (suite *GetDeparturesQueryHandlerTestSuite) TestHandle_DerivesParcelTotals() {
	d := suite.addDeparture(time.Now().Add(24 * time.Hour))
	suite.addReceivedParcel(d, "trk-4001", 10, 12.5) // amount 125
	suite.addReceivedParcel(d, "trk-4002", 4, 10)    // amount 40

	empty := suite.addDeparture(time.Now().Add(48 * time.Hour))

	query, err := queries.NewGetDeparturesQuery(queries.ScopeUpcoming)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	loaded := result[0]
	suite.Equal(d.ID(), loaded.ID)
	suite.Equal(2, loaded.ParcelCount)
	suite.InDelta(14.0, loaded.TotalWeightKg, 0.001)
	suite.InDelta(165.0, loaded.TotalRevenue, 0.001)

	blank := result[1]
	suite.Equal(empty.ID(), blank.ID)
	suite.Equal(0, blank.ParcelCount)
	suite.Zero(blank.TotalWeightKg)
	suite.Zero(blank.TotalRevenue)
}

func (suite *GetDeparturesQueryHandlerTestSuite) TestHandle_DepartedRows_CountDownToArrival() {
	d, err := departure.NewDeparture(
		kernel.NewUUID(), suite.seaRoute(), kernel.TransportSea,
		time.Now().Add(-48*time.Hour), 40, "", false,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(d.MarkDeparted(1, time.Now().Add(-48*time.Hour)))
	suite.Require().NoError(suite.departures.Add(context.Background(), d))

	query, err := queries.NewGetDeparturesQuery(queries.ScopeDeparted)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(38, result[0].DaysRemaining)
}

func (suite *GetDeparturesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDeparturesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetDeparturesQueryIsNotConstructed)
}

func TestGetDeparturesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeparturesQueryHandlerTestSuite))
}
