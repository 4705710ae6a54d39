package expenserepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/expenserepo"
	"freight/internal/core/domain/model/expense"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ExpenseRepositoryIntegrationTestSuite verifies the append/delete expense
// ledger against a real PostgreSQL instance.
type ExpenseRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *expenserepo.GormExpenseRepository
}

func (suite *ExpenseRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&expenserepo.ExpenseDTO{}))
}

func (suite *ExpenseRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE expenses").Error)
	suite.repository = expenserepo.NewGormExpenseRepository(suite.db)
}

func (suite *ExpenseRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ExpenseRepositoryIntegrationTestSuite) newExpense(
	departureID kernel.UUID,
	category expense.Category,
	description string,
	amount float64,
	date time.Time,
) *expense.Expense {
	e, err := expense.NewExpense(kernel.NewUUID(), departureID, category, description, amount, date)
	suite.Require().NoError(err)
	return e
}

func (suite *ExpenseRepositoryIntegrationTestSuite) TestAddAndGetAllByDeparture_RoundTrip() {
	ctx := context.Background()
	departureID := kernel.NewUUID()

	original := suite.newExpense(
		departureID, expense.CategoryCustoms, "import duty", 120.50, time.Now().Truncate(time.Second))
	suite.Require().NoError(suite.repository.Add(ctx, original))

	expenses, err := suite.repository.GetAllByDeparture(ctx, departureID)

	suite.Require().NoError(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal(original.ID(), expenses[0].ID())
	suite.Assert().Equal(departureID, expenses[0].DepartureID())
	suite.Assert().Equal(expense.CategoryCustoms, expenses[0].Category())
	suite.Assert().Equal("import duty", expenses[0].Description())
	suite.Assert().InDelta(120.50, expenses[0].Amount(), 0.001)
}

func (suite *ExpenseRepositoryIntegrationTestSuite) TestGetAllByDeparture_OrderedByDate() {
	ctx := context.Background()
	departureID := kernel.NewUUID()
	base := time.Now().Truncate(time.Second)

	later := suite.newExpense(departureID, expense.CategoryHandling, "destination unloading", 80, base)
	earlier := suite.newExpense(departureID, expense.CategoryFreight, "ocean freight", 950, base.Add(-48*time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, later))
	suite.Require().NoError(suite.repository.Add(ctx, earlier))

	expenses, err := suite.repository.GetAllByDeparture(ctx, departureID)

	suite.Require().NoError(err)
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal("ocean freight", expenses[0].Description())
	suite.Assert().Equal("destination unloading", expenses[1].Description())
}

func (suite *ExpenseRepositoryIntegrationTestSuite) TestGetAllByDeparture_ScopedToDeparture() {
	ctx := context.Background()
	departureID := kernel.NewUUID()
	otherID := kernel.NewUUID()
	now := time.Now()

	mine := suite.newExpense(departureID, expense.CategoryTransport, "port haulage", 60, now)
	foreign := suite.newExpense(otherID, expense.CategoryTransport, "port haulage", 60, now)
	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	expenses, err := suite.repository.GetAllByDeparture(ctx, departureID)

	suite.Require().NoError(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal(mine.ID(), expenses[0].ID())
}

func (suite *ExpenseRepositoryIntegrationTestSuite) TestDelete_RemovesEntry() {
	ctx := context.Background()
	departureID := kernel.NewUUID()

	e := suite.newExpense(departureID, expense.CategoryFreight, "ocean freight", 950, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, e))

	suite.Require().NoError(suite.repository.Delete(ctx, e.ID()))

	expenses, err := suite.repository.GetAllByDeparture(ctx, departureID)
	suite.Require().NoError(err)
	suite.Assert().Empty(expenses)
}

func (suite *ExpenseRepositoryIntegrationTestSuite) TestDelete_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func TestExpenseRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseRepositoryIntegrationTestSuite))
}
