package navigation

import "time"

// Debouncer is a single-slot pending task holder driven by frame polls
// Scheduling replaces the slot and restarts the quiet window; only the task
// occupying the slot when the window expires runs
type Debouncer struct {
	window  time.Duration
	pending func()
	due     time.Time
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Schedule stores task, discarding any task already waiting
func (d *Debouncer) Schedule(now time.Time, task func()) {
	d.pending = task
	d.due = now.Add(d.window)
}

// Cancel drops the pending task
func (d *Debouncer) Cancel() {
	d.pending = nil
}

// Pending reports whether a task is waiting
func (d *Debouncer) Pending() bool {
	return d.pending != nil
}

// Poll runs the pending task once its window has expired
// Returns true when a task ran
func (d *Debouncer) Poll(now time.Time) bool {
	if d.pending == nil || now.Before(d.due) {
		return false
	}
	task := d.pending
	d.pending = nil
	task()
	return true
}
