// Package delivery defines the entry points that expose the use cases to clients.
package delivery

import "context"

// Delivery is a long-running server started by the application's fx graph.
type Delivery interface {
	Serve(ctx context.Context) error
}
