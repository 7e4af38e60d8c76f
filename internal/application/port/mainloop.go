package port

import "context"

// MainLoop is the event dispatch loop that delivers preference change
// notifications.
type MainLoop interface {
	// Run dispatches events until ctx is done. A cancelled context is a
	// clean shutdown and returns nil.
	Run(ctx context.Context) error
}
