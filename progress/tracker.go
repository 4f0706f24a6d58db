package progress

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// logInterval is how often Observe emits a progress log line.
const logInterval = 5 * time.Second

// Stats is a point-in-time progress report.
type Stats struct {
	// Frames is how many frames have been processed.
	Frames int
	// Elapsed is the wall time since the first frame.
	Elapsed time.Duration
	// FPS is the processing rate in frames per second.
	FPS float64
	// RealtimeFactor is processed video time over wall time; above 1
	// means faster than realtime.
	RealtimeFactor float64
	// Progress is the completed fraction, 0 when the total is unknown.
	Progress float64
	// ETA is the estimated time to finish, 0 when the total is unknown.
	ETA time.Duration
}

// Tracker counts processed frames of one stream. Not safe for
// concurrent use.
type Tracker struct {
	clock       Clock
	totalFrames int
	frameRate   float64

	start   time.Time
	lastLog time.Time
	frames  int
}

// NewTracker builds a tracker. totalFrames may be zero when the stream
// length is unknown; frameRate is the source frame rate used for the
// realtime factor. A nil clock uses the wall clock.
func NewTracker(totalFrames int, frameRate float64, clock Clock) *Tracker {
	if clock == nil {
		clock = NewClock()
	}
	return &Tracker{
		clock:       clock,
		totalFrames: totalFrames,
		frameRate:   frameRate,
	}
}

// Observe counts one processed frame and periodically logs progress.
func (t *Tracker) Observe() {
	now := t.clock.Now()
	if t.frames == 0 {
		t.start = now
		t.lastLog = now
	}
	t.frames++

	if now.Sub(t.lastLog) < logInterval {
		return
	}
	t.lastLog = now

	s := t.Snapshot()
	fields := logrus.Fields{
		"function": "Observe",
		"frames":   s.Frames,
		"fps":      fmt.Sprintf("%.1f", s.FPS),
		"realtime": fmt.Sprintf("%.2fx", s.RealtimeFactor),
	}
	if t.totalFrames > 0 {
		fields["progress"] = fmt.Sprintf("%.1f%%", s.Progress*100)
		fields["eta"] = FormatDuration(s.ETA)
	}
	logrus.WithFields(fields).Info("Processing progress")
}

// Snapshot reports progress as of now.
func (t *Tracker) Snapshot() Stats {
	s := Stats{Frames: t.frames}
	if t.frames == 0 {
		return s
	}

	s.Elapsed = t.clock.Now().Sub(t.start)
	secs := s.Elapsed.Seconds()
	if secs > 0 {
		s.FPS = float64(t.frames) / secs
		if t.frameRate > 0 {
			s.RealtimeFactor = (float64(t.frames) / t.frameRate) / secs
		}
	}

	if t.totalFrames > 0 {
		s.Progress = float64(t.frames) / float64(t.totalFrames)
		if remaining := t.totalFrames - t.frames; remaining > 0 && s.FPS > 0 {
			s.ETA = time.Duration(float64(remaining) / s.FPS * float64(time.Second))
		}
	}
	return s
}

// FormatDuration renders a duration as h:mm:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
