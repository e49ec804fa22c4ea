package sweeper

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUC "guardian/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweeper_RunOnce(t *testing.T) {
	mockSweep := mockUC.NewMockSweeperUsecase(t)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	s := newSweeper(mockSweep, time.Hour, func() time.Time { return now }, testLogger())

	ctx := context.Background()

	mockSweep.EXPECT().
		SweepExpired(ctx, now).
		Return(2, nil)

	s.runOnce(ctx)
}

func TestSweeper_RunOnce_SweepFailure(t *testing.T) {
	mockSweep := mockUC.NewMockSweeperUsecase(t)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	s := newSweeper(mockSweep, time.Hour, func() time.Time { return now }, testLogger())

	ctx := context.Background()

	// The error is swallowed; the loop lives on to the next tick.
	mockSweep.EXPECT().
		SweepExpired(ctx, now).
		Return(0, errors.New("connection reset"))

	s.runOnce(ctx)
}

func TestSweeper_Serve_SweepsImmediatelyAndStops(t *testing.T) {
	mockSweep := mockUC.NewMockSweeperUsecase(t)
	swept := make(chan struct{}, 1)

	s := newSweeper(mockSweep, time.Hour, time.Now, testLogger())

	ctx := context.Background()

	mockSweep.EXPECT().
		SweepExpired(ctx, mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, _ time.Time) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(0, nil)

	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx)
	}()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate sweep on startup")
	}

	close(s.stop)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not shut down")
	}
}

func TestSweeper_Serve_StopsOnContextCancel(t *testing.T) {
	mockSweep := mockUC.NewMockSweeperUsecase(t)

	s := newSweeper(mockSweep, time.Hour, time.Now, testLogger())

	ctx, cancel := context.WithCancel(context.Background())

	mockSweep.EXPECT().
		SweepExpired(ctx, mock.AnythingOfType("time.Time")).
		Return(0, nil)

	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not shut down")
	}
}
