// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is implemented by every server the application can run (HTTP today,
// more transports later). Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
