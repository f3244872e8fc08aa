package bootstrap

import (
	"context"

	"hotel-desk/internal/jobs"
	"hotel-desk/internal/pkg/config"
	"hotel-desk/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewReconciler,
	),
	fx.Invoke(func(*jobs.Reconciler) {}),
)

func NewReconciler(lc fx.Lifecycle, cfg config.Config, cmds commands.RoomStatusCommands) *jobs.Reconciler {
	r := jobs.NewReconciler(cfg.Jobs.ReconcileSchedule, cmds)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return r.Start()
		},
		OnStop: func(ctx context.Context) error {
			return r.Stop(ctx)
		},
	})
	return r
}
