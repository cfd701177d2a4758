package service

import "context"

// Notifier dispatches domain events without ever blocking or failing the caller.
// Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, kind EventKind, payload any)
}
