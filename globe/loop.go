package globe

import "sync"

// frameLoop gates per-frame rendering. Two independent conditions halt the
// loop: an explicit pause requested by the caller, and the window being
// hidden. An explicit pause survives the window becoming visible again, so
// restoring a minimized window never overrides a caller's Pause.
type frameLoop struct {
	mu       sync.Mutex
	paused   bool
	hidden   bool
	disposed bool
}

// Pause halts frame rendering. Idempotent.
func (l *frameLoop) Pause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = true
}

// Resume restarts frame rendering if it was explicitly paused. Idempotent;
// the loop stays halted while the window is hidden.
func (l *frameLoop) Resume() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = false
}

// SetHidden records the window visibility state. A hidden window halts the
// loop; becoming visible releases only the visibility halt.
//
// Parameters:
//   - hidden: true when the window is minimized or otherwise not visible
func (l *frameLoop) SetHidden(hidden bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hidden = hidden
}

// Dispose permanently halts the loop. Pause and Resume have no effect after
// Dispose.
func (l *frameLoop) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disposed = true
}

// Running reports whether a frame should be rendered.
//
// Returns:
//   - bool: true when not paused, not hidden, and not disposed
func (l *frameLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.paused && !l.hidden && !l.disposed
}
