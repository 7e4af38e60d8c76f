// Package mainloop runs the GLib main loop that dispatches GSettings
// change notifications.
package mainloop

import (
	"context"
	"runtime"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/logging"
)

// GLibLoop implements port.MainLoop on the default GLib main context.
type GLibLoop struct{}

// New creates a main loop adapter.
func New() *GLibLoop {
	return &GLibLoop{}
}

// Run blocks dispatching events until ctx is done.
func (l *GLibLoop) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	loop := glib.NewMainLoop(nil, false)
	done := make(chan struct{})

	var g errgroup.Group
	g.Go(func() error {
		select {
		case <-ctx.Done():
			log.Debug().Msg("stopping main loop")
			// Queued on the context so a cancel that races Run is not lost.
			glib.IdleAdd(func() bool {
				loop.Quit()
				return false
			})
		case <-done:
		}
		return nil
	})

	log.Debug().Msg("main loop running")
	loop.Run()
	close(done)

	return g.Wait()
}

var _ port.MainLoop = (*GLibLoop)(nil)
