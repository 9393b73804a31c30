// Package delivery defines the inbound transport boundary of the service.
package delivery

import "context"

// Delivery is a transport that serves inbound traffic until it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
