// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations start their own goroutine, which
// exits when ctx is cancelled or Stop is called. Stop blocks until that
// goroutine has returned and is safe to call on a worker that never ran.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
