// Package delivery defines the contract shared by every long-running entry
// point of the process (HTTP server, background sweeper).
package delivery

import "context"

// Delivery is a serving component started by main and stopped through its
// fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
