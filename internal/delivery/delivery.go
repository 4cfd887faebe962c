// Package delivery holds the entry points that expose person operations to the outside world.
package delivery

import "context"

// Delivery is a long-running server started by the composition root.
type Delivery interface {
	// Serve blocks until the server stops. A graceful shutdown is not an error.
	Serve(ctx context.Context) error
}
