// Package lifecycle holds process-wide lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful-shutdown operations.
const DefaultTimeout = 10 * time.Second
