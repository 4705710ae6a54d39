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

type GetParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetParcelsQueryHandler
	departures *departurerepo.GormDepartureRepository
	parcels    *parcelrepo.GormParcelRepository
}

func (suite *GetParcelsQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetParcelsQueryHandler(db)
	suite.departures = departurerepo.NewGormDepartureRepository(db)
	suite.parcels = parcelrepo.NewGormParcelRepository(db)
}

func (suite *GetParcelsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE departures, departure_carriers, parcels").Error
	suite.Require().NoError(err)
}

func (suite *GetParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetParcelsQueryHandlerTestSuite) route(originCity string) kernel.Route {
	route, err := kernel.NewRoute("CN", originCity, "CM")
	suite.Require().NoError(err)
	return route
}

func (suite *GetParcelsQueryHandlerTestSuite) addParcel(
	trackingCode, supplierCode string, route kernel.Route, transport kernel.TransportMode,
) *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(), trackingCode, supplierCode, "client-1", "spare parts",
		route, transport, "standard", parcel.BillingByWeight,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcels.Add(context.Background(), p))
	return p
}

func (suite *GetParcelsQueryHandlerTestSuite) addDeparture() *departure.Departure {
	d, err := departure.NewDeparture(
		kernel.NewUUID(), suite.route("Guangzhou"), kernel.TransportSea,
		time.Now().Add(24*time.Hour), 40, "", false,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.departures.Add(context.Background(), d))
	return d
}

func (suite *GetParcelsQueryHandlerTestSuite) assign(p *parcel.Parcel, d *departure.Departure) {
	suite.Require().NoError(p.AssignTo(d.ID(), d.Route(), d.Transport()))
	suite.Require().NoError(suite.parcels.Update(context.Background(), p))
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_All_OrderedByTrackingCode() {
	suite.addParcel("trk-b", "", suite.route("Guangzhou"), kernel.TransportSea)
	suite.addParcel("trk-a", "", suite.route("Shenzhen"), kernel.TransportAirNormal)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllParcelsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("trk-a", result[0].TrackingCode)
	suite.Equal("trk-b", result[1].TrackingCode)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_Unassigned_ExcludesAssigned() {
	d := suite.addDeparture()
	assigned := suite.addParcel("trk-assigned", "", suite.route("Guangzhou"), kernel.TransportSea)
	suite.assign(assigned, d)
	suite.addParcel("trk-free", "", suite.route("Guangzhou"), kernel.TransportSea)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetUnassignedParcelsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("trk-free", result[0].TrackingCode)
	suite.Nil(result[0].DepartureID)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_ByDeparture() {
	d := suite.addDeparture()
	assigned := suite.addParcel("trk-on-board", "", suite.route("Guangzhou"), kernel.TransportSea)
	suite.assign(assigned, d)
	suite.addParcel("trk-elsewhere", "", suite.route("Guangzhou"), kernel.TransportSea)

	query, err := queries.NewGetParcelsByDepartureQuery(d.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("trk-on-board", result[0].TrackingCode)
	suite.Require().NotNil(result[0].DepartureID)
	suite.Equal(d.ID(), *result[0].DepartureID)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_ByCorridor_OriginCityDoesNotNarrow() {
	suite.addParcel("trk-gz", "", suite.route("Guangzhou"), kernel.TransportSea)
	suite.addParcel("trk-sz", "", suite.route("Shenzhen"), kernel.TransportSea)
	suite.addParcel("trk-air", "", suite.route("Guangzhou"), kernel.TransportAirNormal)

	query, err := queries.NewGetParcelsByCorridorQuery(suite.route("Guangzhou"), kernel.TransportSea)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	codes := []string{result[0].TrackingCode, result[1].TrackingCode}
	suite.ElementsMatch([]string{"trk-gz", "trk-sz"}, codes)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_ByTracking_MatchesSupplierCodeCaseInsensitively() {
	suite.addParcel("trk-own", "SUP-77", suite.route("Guangzhou"), kernel.TransportSea)
	suite.addParcel("trk-other", "", suite.route("Guangzhou"), kernel.TransportSea)

	query, err := queries.NewFindParcelByTrackingQuery("sup-77")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("trk-own", result[0].TrackingCode)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_ByTracking_UnknownCode_ReturnsEmpty() {
	suite.addParcel("trk-own", "", suite.route("Guangzhou"), kernel.TransportSea)

	query, err := queries.NewFindParcelByTrackingQuery("trk-missing")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func TestGetParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetParcelsQueryHandlerTestSuite))
}
