package pick

import (
	"sync"
	"time"
)

// commitDelay is how long text fields and the pipette hover notification wait
// after the last input before pushing a color through the update path.
const commitDelay = 300 * time.Millisecond

// alarm is a fire-once cancellable timer. Scheduling while a callback is
// pending replaces it, so at most one callback is outstanding at a time.
type alarm struct {
	mu    sync.Mutex
	timer *time.Timer
}

func (a *alarm) schedule(d time.Duration, fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(d, fn)
}

func (a *alarm) cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
