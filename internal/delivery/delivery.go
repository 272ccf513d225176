// Package delivery defines the transports that expose the service.
package delivery

import "context"

// Delivery is a transport started by the fx application.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
