package worker

import (
	"context"
	"log/slog"
	"time"

	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

const expireJobTimeout = time.Minute

// PendingExpirer periodically cancels pending bookings that were never
// confirmed, releasing the courts they hold.
type PendingExpirer struct {
	scheduler gocron.Scheduler
	bookings  commands.BookingCommands
	ttl       time.Duration
	interval  time.Duration
}

func NewPendingExpirer(bookings commands.BookingCommands, cfg config.BookingConfig) (*PendingExpirer, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					slog.Error("scheduler job panicked",
						"job_id", jobID.String(),
						"job_name", jobName,
						"panic", recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return &PendingExpirer{
		scheduler: scheduler,
		bookings:  bookings,
		ttl:       cfg.PendingTTL,
		interval:  cfg.ExpiryInterval,
	}, nil
}

func (e *PendingExpirer) Start() error {
	_, err := e.scheduler.NewJob(
		gocron.DurationJob(e.interval),
		gocron.NewTask(e.runOnce),
		gocron.WithName("pending_booking_expirer"),
		gocron.WithSingletonMode(gocron.LimitModeWait),
	)
	if err != nil {
		return err
	}

	e.scheduler.Start()
	slog.Info("pending booking expirer started",
		"interval", e.interval.String(),
		"pending_ttl", e.ttl.String())
	return nil
}

func (e *PendingExpirer) Stop() error {
	return e.scheduler.Shutdown()
}

func (e *PendingExpirer) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), expireJobTimeout)
	defer cancel()

	expired, err := e.bookings.ExpirePending(ctx, e.ttl)
	if err != nil {
		slog.Error("failed to expire pending bookings", "error", err.Error())
		return
	}
	if expired > 0 {
		slog.Info("expired pending bookings", "count", expired)
	}
}
