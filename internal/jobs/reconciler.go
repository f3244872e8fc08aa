package jobs

import (
	"context"
	"log/slog"
	"time"

	"hotel-desk/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const reconcileTimeout = 30 * time.Second

// Reconciler periodically returns rooms whose stays have ended to Available.
type Reconciler struct {
	cron     *cron.Cron
	schedule string
	cmds     commands.RoomStatusCommands
}

func NewReconciler(schedule string, cmds commands.RoomStatusCommands) *Reconciler {
	return &Reconciler{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		schedule: schedule,
		cmds:     cmds,
	}
}

// Start registers the job and starts the scheduler. An empty schedule disables it.
func (r *Reconciler) Start() error {
	if r.schedule == "" {
		slog.Info("room status reconciler disabled")
		return nil
	}

	if _, err := r.cron.AddFunc(r.schedule, r.RunOnce); err != nil {
		return err
	}
	r.cron.Start()
	slog.Info("room status reconciler started", "schedule", r.schedule)
	return nil
}

// Stop waits for a running job to finish or ctx to expire.
func (r *Reconciler) Stop(ctx context.Context) error {
	done := r.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Reconciler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	released, err := r.cmds.ReleaseIdleRooms(ctx)
	if err != nil {
		slog.Error("room status reconciliation failed", "error", err.Error())
		return
	}
	slog.Debug("room status reconciliation finished", "released", released)
}
