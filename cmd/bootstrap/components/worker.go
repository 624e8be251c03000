package components

import (
	"context"

	"courtbook/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewPendingExpirer,
	),
	fx.Invoke(startPendingExpirer),
)

func startPendingExpirer(lc fx.Lifecycle, expirer *worker.PendingExpirer) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return expirer.Start()
		},
		OnStop: func(_ context.Context) error {
			return expirer.Stop()
		},
	})
}
