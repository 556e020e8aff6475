package core

import "time"

// FrameLimiter caps a loop at a fixed number of iterations per second by
// sleeping until the next frame boundary.
type FrameLimiter struct {
	step  time.Duration
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameLimiter constructs a FrameLimiter targeting the given frame rate.
func NewFrameLimiter(fps int) *FrameLimiter {
	f := &FrameLimiter{now: time.Now, sleep: time.Sleep}
	f.SetFPS(fps)
	return f
}

// SetFPS changes the frame rate. Non-positive values fall back to 60.
func (f *FrameLimiter) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.step = time.Second / time.Duration(fps)
}

// Interval reports the minimum time between two frames.
func (f *FrameLimiter) Interval() time.Duration { return f.step }

// Wait blocks until at least one frame interval has elapsed since the
// previous call returned. The first call returns immediately.
func (f *FrameLimiter) Wait() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return
	}
	elapsed := now.Sub(f.last)
	if elapsed < f.step {
		f.sleep(f.step - elapsed)
		now = now.Add(f.step - elapsed)
	}
	f.last = now
}
