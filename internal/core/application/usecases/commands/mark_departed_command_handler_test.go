package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/departure"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDeparture(t *testing.T) *departure.Departure {
	t.Helper()
	d, err := departure.NewDeparture(
		kernel.NewUUID(), testRoute(t), kernel.TransportSea, time.Now().Add(72*time.Hour), 30, "", false,
	)
	require.NoError(t, err)
	return d
}

func TestMarkDepartedCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := testDeparture(t)

	cmd, err := commands.NewMarkDepartedCommand(d.ID())
	require.NoError(t, err)

	departureRepo := new(MockDepartureRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("CountByDeparture", ctx, d.ID()).Return(2, nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDepartedCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, departure.StatusDeparted, d.Status())
	require.NotNil(t, d.DepartedAt())
	departureRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkDepartedCommandHandler_Handle_NoParcelsAssigned(t *testing.T) {
	ctx := t.Context()
	d := testDeparture(t)

	cmd, err := commands.NewMarkDepartedCommand(d.ID())
	require.NoError(t, err)

	departureRepo := new(MockDepartureRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("CountByDeparture", ctx, d.ID()).Return(0, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDepartedCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, departure.ErrNoParcelsAssigned)
	assert.Equal(t, departure.StatusScheduled, d.Status())
	departureRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkDepartedCommandHandler_Handle_AlreadyDeparted(t *testing.T) {
	ctx := t.Context()
	d := testDeparture(t)
	require.NoError(t, d.MarkDeparted(1, time.Now()))

	cmd, err := commands.NewMarkDepartedCommand(d.ID())
	require.NoError(t, err)

	departureRepo := new(MockDepartureRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("CountByDeparture", ctx, d.ID()).Return(1, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDepartedCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestMarkDepartedCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	departureID := kernel.NewUUID()

	cmd, err := commands.NewMarkDepartedCommand(departureID)
	require.NoError(t, err)

	departureRepo := new(MockDepartureRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Get", ctx, departureID).
			Return(nil, errs.NewObjectNotFoundError("departureID", departureID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDepartedCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
