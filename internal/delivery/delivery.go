// Package delivery defines the contract every transport entry point
// (HTTP, workers) fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves requests until the
// context is cancelled or the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
