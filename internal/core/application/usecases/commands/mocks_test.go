package commands_test

import (
	"context"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/departure"
	"freight/internal/core/domain/model/expense"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/tariff"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDepartureRepository struct{ mock.Mock }

func (m *MockDepartureRepository) Add(ctx context.Context, d *departure.Departure) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDepartureRepository) Update(ctx context.Context, d *departure.Departure) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDepartureRepository) Get(ctx context.Context, id kernel.UUID) (*departure.Departure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*departure.Departure), args.Error(1)
}

func (m *MockDepartureRepository) GetAllInDepartedStatus(ctx context.Context) ([]*departure.Departure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*departure.Departure), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) FindByTrackingCode(ctx context.Context, code string) (*parcel.Parcel, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllUnassignedMatching(
	ctx context.Context,
	route kernel.Route,
	transport kernel.TransportMode,
) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, route, transport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllByDeparture(
	ctx context.Context,
	departureID kernel.UUID,
) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, departureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) CountByDeparture(ctx context.Context, departureID kernel.UUID) (int, error) {
	args := m.Called(ctx, departureID)
	return args.Int(0), args.Error(1)
}

type MockExpenseRepository struct{ mock.Mock }

func (m *MockExpenseRepository) Add(ctx context.Context, e *expense.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) GetAllByDeparture(
	ctx context.Context,
	departureID kernel.UUID,
) ([]*expense.Expense, error) {
	args := m.Called(ctx, departureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*expense.Expense), args.Error(1)
}

type MockTariffRepository struct{ mock.Mock }

func (m *MockTariffRepository) Add(ctx context.Context, tf *tariff.Tariff) error {
	args := m.Called(ctx, tf)
	return args.Error(0)
}

func (m *MockTariffRepository) Find(
	ctx context.Context,
	route kernel.Route,
	transport kernel.TransportMode,
	packageType string,
) (*tariff.Tariff, error) {
	args := m.Called(ctx, route, transport, packageType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariff.Tariff), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DepartureRepository() ports.DepartureRepository {
	args := m.Called()
	return args.Get(0).(ports.DepartureRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockParcelUoW) TariffRepository() ports.TariffRepository {
	args := m.Called()
	return args.Get(0).(ports.TariffRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockExpenseUoW struct{ mock.Mock }

func (m *MockExpenseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExpenseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExpenseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExpenseUoW) DepartureRepository() ports.DepartureRepository {
	args := m.Called()
	return args.Get(0).(ports.DepartureRepository)
}

func (m *MockExpenseUoW) ExpenseRepository() ports.ExpenseRepository {
	args := m.Called()
	return args.Get(0).(ports.ExpenseRepository)
}

type MockExpenseUoWFactory struct{ mock.Mock }

func (m *MockExpenseUoWFactory) Create() commands.ExpenseUoW {
	args := m.Called()
	return args.Get(0).(commands.ExpenseUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyDeparture(ctx context.Context, departureID kernel.UUID, target string) error {
	args := m.Called(ctx, departureID, target)
	return args.Error(0)
}

type MockTrackingProvider struct{ mock.Mock }

func (m *MockTrackingProvider) FetchUpdates(
	ctx context.Context,
	carrier, trackingCode string,
) ([]ports.TrackingUpdate, error) {
	args := m.Called(ctx, carrier, trackingCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.TrackingUpdate), args.Error(1)
}
