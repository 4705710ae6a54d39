package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/carrier"
	"freight/internal/adapters/out/notify"
	"freight/internal/adapters/out/postgres"
	redisout "freight/internal/adapters/out/redis"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. It is built once at
// startup; every Create* call hands out a handler over the shared factories.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	cache            ports.QueryCache
	notifier         ports.Notifier
	trackingProvider ports.TrackingProvider

	logger *slog.Logger
	loc    *time.Location
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	timeout := gatewayTimeout(configs.GatewayTimeoutSeconds)

	notifier, err := notify.NewHTTPNotifier(configs.NotifyGatewayURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("notify gateway: %w", err)
	}

	trackingProvider, err := carrier.NewHTTPTrackingProvider(configs.CarrierGatewayURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("carrier gateway: %w", err)
	}

	loc := time.UTC
	if configs.StatsTimezone != "" {
		loc, err = time.LoadLocation(configs.StatsTimezone)
		if err != nil {
			return nil, fmt.Errorf("stats timezone: %w", err)
		}
	}

	// The cache is optional: without Redis every stats read goes straight to
	// the database.
	var cache ports.QueryCache
	if configs.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     configs.RedisAddr,
			Password: configs.RedisPassword,
		})
		cache = redisout.NewQueryCache(client)
	}

	return &CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:            cache,
		notifier:         notifier,
		trackingProvider: trackingProvider,
		logger:           logger,
		loc:              loc,
	}, nil
}

func gatewayTimeout(raw string) time.Duration {
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(seconds) * time.Second
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoW() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) expenseUoW() commands.ExpenseUoWFactory {
	return FuncExpenseUoWFactory(func() commands.ExpenseUoW {
		return c.uowFactory.Create()
	})
}

// CreateCommandHandlers builds the complete write-side handler set.
func (c *CompositionRoot) CreateCommandHandlers() (httpin.CommandHandlers, error) {
	notifyClients, err := commands.NewNotifyClientsCommandHandler(c.uow(), c.notifier)
	if err != nil {
		return httpin.CommandHandlers{}, err
	}

	assignCarrier, err := commands.NewAssignCarrierCommandHandler(c.uow(), c.notifier)
	if err != nil {
		return httpin.CommandHandlers{}, err
	}

	refreshTracking, err := commands.NewRefreshTrackingCommandHandler(c.uow(), c.trackingProvider)
	if err != nil {
		return httpin.CommandHandlers{}, err
	}

	return httpin.CommandHandlers{
		CreateDeparture: commands.NewCreateDepartureCommandHandler(c.uow()),
		UpdateDeparture: commands.NewUpdateDepartureCommandHandler(c.uow()),
		MarkDeparted:    commands.NewMarkDepartedCommandHandler(c.uow()),
		MarkArrived:     commands.NewMarkArrivedCommandHandler(c.uow()),
		CancelDeparture: commands.NewCancelDepartureCommandHandler(c.uow()),
		NotifyClients:   notifyClients,
		AssignCarrier:   assignCarrier,
		RefreshTracking: refreshTracking,
		AssignParcels:   commands.NewAssignParcelsCommandHandler(c.uow()),
		RemoveParcel:    commands.NewRemoveParcelCommandHandler(c.uow()),
		ScanAssign:      commands.NewScanAssignCommandHandler(c.uow()),
		CreateParcel:    commands.NewCreateParcelCommandHandler(c.parcelUoW()),
		ReceiveParcel:   commands.NewReceiveParcelCommandHandler(c.parcelUoW()),
		RecordPayment:   commands.NewRecordPaymentCommandHandler(c.parcelUoW()),
		AddExpense:      commands.NewAddExpenseCommandHandler(c.expenseUoW()),
		DeleteExpense:   commands.NewDeleteExpenseCommandHandler(c.expenseUoW()),
	}, nil
}

// CreateQueryHandlers builds the complete read-side handler set.
func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		Departures:       queries.NewGetDeparturesQueryHandler(c.gormDB),
		DepartureDetails: queries.NewGetDepartureDetailsQueryHandler(c.gormDB),
		Parcels:          queries.NewGetParcelsQueryHandler(c.gormDB),
		PeriodStats:      queries.NewGetPeriodStatsQueryHandler(c.gormDB, c.cache, c.loc),
	}
}

// CreateHTTPServer builds the API server over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	cmds, err := c.CreateCommandHandlers()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(cmds, c.CreateQueryHandlers(), c.cache, c.loc), nil
}

// CreateJobManager builds the background job set.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	refreshTracking, err := commands.NewRefreshTrackingCommandHandler(c.uow(), c.trackingProvider)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(c.uow(), refreshTracking, c.logger), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncExpenseUoWFactory func() commands.ExpenseUoW

func (f FuncExpenseUoWFactory) Create() commands.ExpenseUoW {
	return f()
}
