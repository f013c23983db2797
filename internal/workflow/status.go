// internal/workflow/status.go
package workflow

import "sync"

// Status is a snapshot of one workflow's observable state: whether an
// invocation is in flight and the last human-readable outcome in each
// direction. The UI layer polls this instead of handling errors itself.
type Status struct {
	InProgress  bool
	LastError   string
	LastSuccess string
}

// Tracker maintains a Status under a mutex. One tracker per workflow,
// owned by the service that runs the workflow.
type Tracker struct {
	mu     sync.Mutex
	status Status
}

// Begin marks an invocation as in flight and clears the previous error.
func (t *Tracker) Begin() {
	t.mu.Lock()
	t.status.InProgress = true
	t.status.LastError = ""
	t.mu.Unlock()
}

// Fail records a human-readable failure and ends the invocation.
func (t *Tracker) Fail(msg string) {
	t.mu.Lock()
	t.status.InProgress = false
	t.status.LastError = msg
	t.mu.Unlock()
}

// Succeed records a human-readable success and ends the invocation.
func (t *Tracker) Succeed(msg string) {
	t.mu.Lock()
	t.status.InProgress = false
	t.status.LastSuccess = msg
	t.mu.Unlock()
}

// Snapshot returns a copy of the current status.
func (t *Tracker) Snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}
