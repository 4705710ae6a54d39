package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyClientsCommandHandler_RequiresNotifier(t *testing.T) {
	factory := new(MockUoWFactory)

	_, err := commands.NewNotifyClientsCommandHandler(factory, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNotifyClientsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := testDeparture(t)
	require.False(t, d.Notified())

	cmd, err := commands.NewNotifyClientsCommand(d.ID(), "clients")
	require.NoError(t, err)

	departureRepo := new(MockDepartureRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		notifier.On("NotifyDeparture", ctx, d.ID(), "clients").Return(nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler, err := commands.NewNotifyClientsCommandHandler(factory, notifier)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, d.Notified())
	require.NotNil(t, d.NotifiedAt())
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNotifyClientsCommandHandler_Handle_DeliveryFailureLeavesFlagUnset(t *testing.T) {
	ctx := t.Context()
	d := testDeparture(t)

	cmd, err := commands.NewNotifyClientsCommand(d.ID(), "clients")
	require.NoError(t, err)

	departureRepo := new(MockDepartureRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	transientErr := errs.NewTransientError("notify clients", assert.AnError)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DepartureRepository").Return(departureRepo).Once(),
		departureRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		notifier.On("NotifyDeparture", ctx, d.ID(), "clients").Return(transientErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler, err := commands.NewNotifyClientsCommandHandler(factory, notifier)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTransient)
	assert.False(t, d.Notified())
	departureRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
