package demo

import "time"

// frameStats counts frames and reports the rate once per interval.
type frameStats struct {
	interval time.Duration
	start    time.Time
	frames   int
}

func newFrameStats(now time.Time, interval time.Duration) *frameStats {
	return &frameStats{interval: interval, start: now}
}

// tick records a frame. When an interval has elapsed it returns the
// frames per second over it and starts a new interval.
func (s *frameStats) tick(now time.Time) (fps float64, ok bool) {
	s.frames++
	elapsed := now.Sub(s.start)
	if elapsed < s.interval {
		return 0, false
	}
	fps = float64(s.frames) / elapsed.Seconds()
	s.frames = 0
	s.start = now
	return fps, true
}
