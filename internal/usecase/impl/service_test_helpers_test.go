package impl

import (
	"io"
	"log/slog"
	"time"

	"guardian/config"
)

// testLogger returns a logger that discards everything, keeping test output clean.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testDispatchConfig returns a config with a generous per-channel timeout so
// slow CI never turns a mocked send into a timeout.
func testDispatchConfig() *config.Config {
	return &config.Config{
		Dispatch: &config.DispatchConfig{
			ChannelTimeout: 5 * time.Second,
		},
	}
}
