package jobs

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// TrackingRefreshJob periodically pulls carrier tracking updates for every
// departure in transit and advances its parcels.
type TrackingRefreshJob struct {
	uowFactory commands.UoWFactory
	handler    commands.RefreshTrackingCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTrackingRefreshJob creates a job refreshing tracking every ten minutes.
func NewTrackingRefreshJob(
	uowFactory commands.UoWFactory,
	handler commands.RefreshTrackingCommandHandler,
	logger *slog.Logger,
) *TrackingRefreshJob {
	return &TrackingRefreshJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(),
		logger:     logger.With("component", "tracking_refresh_job"),
	}
}

// Start schedules the job.
func (j *TrackingRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking refresh job started (running every ten minutes)")
	return nil
}

// Stop stops the job.
func (j *TrackingRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking refresh job stopped")
}

func (j *TrackingRefreshJob) run() {
	ctx := context.Background()

	departed, err := j.departedDepartureIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Listing departed departures failed", "error", err)
		return
	}

	for _, departureID := range departed {
		cmd, cmdErr := commands.NewRefreshTrackingCommand(departureID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Building refresh command failed",
				"departure_id", departureID.String(), "error", cmdErr)
			continue
		}

		updated, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			// A departure without an open carrier leg has nothing to refresh;
			// that is a normal state, not a failure.
			if errors.Is(handleErr, errs.ErrConflict) {
				continue
			}
			j.logger.ErrorContext(ctx, "Tracking refresh failed",
				"departure_id", departureID.String(), "error", handleErr)
			continue
		}

		if updated > 0 {
			j.logger.InfoContext(ctx, "Tracking refresh advanced parcels",
				"departure_id", departureID.String(), "updated", updated)
		}
	}
}

func (j *TrackingRefreshJob) departedDepartureIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := j.uowFactory.Create()

	departures, err := uow.DepartureRepository().GetAllInDepartedStatus(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(departures))
	for _, d := range departures {
		ids = append(ids, d.ID())
	}

	return ids, nil
}
