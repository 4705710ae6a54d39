package commands

import (
	"context"

	"freight/internal/core/domain/model/departure"
	"freight/internal/core/domain/services"
)

// CreateDepartureResult reports the outcome of scheduling a departure:
// the created aggregate and how many parcels the auto-assign sweep bound.
type CreateDepartureResult struct {
	Departure     *departure.Departure
	AssignedCount int
}

// CreateDepartureCommandHandler schedules a new departure and optionally
// auto-assigns every currently-unassigned parcel matching the exact route and
// transport. The sweep runs at most once, inside the creation transaction, so
// the caller's success message can trust the returned count.
type CreateDepartureCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.AssignmentMatcher
}

// NewCreateDepartureCommandHandler creates a handler for departure creation.
func NewCreateDepartureCommandHandler(uowFactory UoWFactory) CreateDepartureCommandHandler {
	return CreateDepartureCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewAssignmentMatcher(),
	}
}

// Handle processes the command: creates the departure in scheduled status and,
// when requested, sweeps the matching unassigned parcels into it.
func (h *CreateDepartureCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDepartureCommand,
) (CreateDepartureResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateDepartureResult{}, err
	}

	newDeparture, err := departure.NewDeparture(
		cmd.DepartureID(),
		cmd.Route(),
		cmd.Transport(),
		cmd.ScheduledAt(),
		cmd.DurationDays(),
		cmd.Notes(),
		cmd.NotifyClients(),
	)
	if err != nil {
		return CreateDepartureResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateDepartureResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DepartureRepository().Add(ctx, newDeparture); err != nil {
		return CreateDepartureResult{}, err
	}

	assigned := 0
	if cmd.AutoAssign() {
		parcelRepo := uow.ParcelRepository()

		candidates, candidatesErr := parcelRepo.GetAllUnassignedMatching(ctx, cmd.Route(), cmd.Transport())
		if candidatesErr != nil {
			return CreateDepartureResult{}, candidatesErr
		}

		assigned, err = h.matcher.AssignAll(newDeparture, candidates)
		if err != nil {
			return CreateDepartureResult{}, err
		}

		for _, p := range candidates {
			if p.Departure() == nil || !p.Departure().IsEqual(newDeparture.ID()) {
				continue
			}
			if err = parcelRepo.Update(ctx, p); err != nil {
				return CreateDepartureResult{}, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateDepartureResult{}, err
	}

	return CreateDepartureResult{Departure: newDeparture, AssignedCount: assigned}, nil
}
