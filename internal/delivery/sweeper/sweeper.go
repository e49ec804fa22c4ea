// Package sweeper runs the periodic geofence expiration sweep.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/usecase"

	"go.uber.org/fx"
)

// Sweeper drives the expiration sweep on a fixed interval. The interval is a
// liveness knob only; archival correctness is enforced by the conditioned
// delete in the persistence layer.
type Sweeper struct {
	sweepUsecase usecase.SweeperUsecase
	interval     time.Duration
	clock        func() time.Time
	logger       *slog.Logger
	stop         chan struct{}
}

// Params holds dependencies for the sweeper, injected by Fx.
type Params struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	SweepUsecase usecase.SweeperUsecase
}

// New creates the sweeper delivery and registers its shutdown hook.
func New(params Params) (delivery.Delivery, error) {
	s := newSweeper(params.SweepUsecase, params.Cfg.Sweeper.Interval, time.Now, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			close(s.stop)

			return nil
		},
	})

	return s, nil
}

// newSweeper wires the sweeper with an explicit clock so sweeps are testable.
func newSweeper(sweepUsecase usecase.SweeperUsecase, interval time.Duration, clock func() time.Time, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		sweepUsecase: sweepUsecase,
		interval:     interval,
		clock:        clock,
		logger:       logger,
		stop:         make(chan struct{}),
	}
}

// Serve runs the sweep loop until shutdown. The first sweep happens
// immediately so a restart picks up geofences that expired while down.
func (s *Sweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting expiration sweeper", slog.Duration("interval", s.interval))

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("Shutting down expiration sweeper")

			return nil
		case <-s.stop:
			s.logger.Info("Shutting down expiration sweeper")

			return nil
		}
	}
}

// runOnce executes one sweep and logs the outcome. Sweep errors never stop
// the loop; the next tick retries.
func (s *Sweeper) runOnce(ctx context.Context) {
	started := s.clock()

	archived, err := s.sweepUsecase.SweepExpired(ctx, started)
	if err != nil {
		s.logger.Error("expiration sweep failed", slog.Any("error", err))

		return
	}

	if archived > 0 {
		s.logger.Info("expiration sweep completed",
			slog.Int("archived", archived),
			slog.Duration("took", time.Since(started)))
	}
}
