// Package delivery defines the contract every transport implementation fulfils.
package delivery

import "context"

// Delivery is a transport that serves requests until its context ends or it fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
