package player

import "time"

type _Timer struct {
	start time.Time
}

func _NewTimer() *_Timer {
	return &_Timer{time.Now()}
}

// Set the 'start' as now
func (t *_Timer) Reset() {
	t.start = time.Now()
}

// Get the start time
func (t *_Timer) Start() time.Time {
	return t.start
}

// Time passed since the last reset
func (t *_Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
