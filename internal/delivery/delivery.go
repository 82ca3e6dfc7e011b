// Package delivery defines the contract every serving component fulfills.
package delivery

import "context"

// Delivery is a long-running serving component (HTTP server, scheduler).
// Serve blocks until the component stops or the context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
