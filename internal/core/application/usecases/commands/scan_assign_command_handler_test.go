package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScanAssignCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := testDeparture(t)
	p := testParcelOn(t, d.Route(), d.Transport(), "TRK-SCAN")

	cmd, err := commands.NewScanAssignCommand(d.ID(), "trk-scan")
	require.NoError(t, err)

	departureRepo := new(MockDepartureRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("FindByTrackingCode", ctx, "trk-scan").Return(p, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScanAssignCommandHandler(factory)
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, assigned)
	require.NotNil(t, assigned.Departure())
	assert.True(t, assigned.Departure().IsEqual(d.ID()))
	parcelRepo.AssertExpectations(t)
}

func TestScanAssignCommandHandler_Handle_UnknownCode(t *testing.T) {
	ctx := t.Context()
	d := testDeparture(t)

	cmd, err := commands.NewScanAssignCommand(d.ID(), "NO-SUCH-CODE")
	require.NoError(t, err)

	departureRepo := new(MockDepartureRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("FindByTrackingCode", ctx, "NO-SUCH-CODE").
			Return(nil, errs.NewObjectNotFoundError("trackingCode", "NO-SUCH-CODE")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScanAssignCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NotErrorIs(t, err, errs.ErrConflict)
}

func TestScanAssignCommandHandler_Handle_ParcelOnAnotherDeparture(t *testing.T) {
	ctx := t.Context()
	d := testDeparture(t)

	p := testParcelOn(t, d.Route(), d.Transport(), "TRK-ELSEWHERE")
	require.NoError(t, p.AssignTo(kernel.NewUUID(), d.Route(), d.Transport()))

	cmd, err := commands.NewScanAssignCommand(d.ID(), "TRK-ELSEWHERE")
	require.NoError(t, err)

	departureRepo := new(MockDepartureRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("FindByTrackingCode", ctx, "TRK-ELSEWHERE").Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScanAssignCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewScanAssignCommand_EmptyCode(t *testing.T) {
	_, err := commands.NewScanAssignCommand(kernel.NewUUID(), "   ")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
