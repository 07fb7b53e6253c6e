package logparse

import (
	"time"

	"github.com/VividCortex/ewma"
	"github.com/sirupsen/logrus"
)

const progressInterval = 100000

// progressTracker reports a smoothed parse rate every interval lines so
// long runs over large logs stay observable at debug level.
type progressTracker struct {
	avg      ewma.MovingAverage
	interval int
	marked   time.Time
}

func newProgressTracker(interval int) *progressTracker {
	return &progressTracker{
		avg:      ewma.NewMovingAverage(),
		interval: interval,
		marked:   time.Now(),
	}
}

func (t *progressTracker) observe(total int) {
	if total%t.interval != 0 {
		return
	}

	now := time.Now()
	if elapsed := now.Sub(t.marked).Seconds(); elapsed > 0 {
		t.avg.Add(float64(t.interval) / elapsed)
	}
	t.marked = now

	logrus.Debugf("parsed %d lines (%.0f lines/sec)", total, t.avg.Value())
}
