package spinner

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// run is the render goroutine. It draws a frame, then parks for one interval
// or until ctx is cancelled, whichever comes first. While hidden it only
// parks, so un-hiding is noticed within one interval.
func (s *Spinner) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	for {
		if !s.hidden.Load() {
			if err := s.renderFrame(); err != nil {
				s.reportFrameError(err)
			}
		}
		if !wait(ctx, s.interval()) {
			return
		}
	}
}

// wait blocks for d or until ctx is done. It reports whether the full
// interval elapsed.
func wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// renderFrame draws the glyph under the cursor and advances the cursor.
func (s *Spinner) renderFrame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hidden.Load() {
		return nil
	}

	glyph := s.frames[s.cursor]
	s.cursor = (s.cursor + 1) % len(s.frames)

	out, err := Compose(s.frameLocked(glyph, false))
	if err != nil {
		return err
	}

	s.out.clearLine()
	s.out.write(out)
	s.out.flush()
	s.out.track(out)
	return nil
}

// reportFrameError logs each distinct frame error once per run.
func (s *Spinner) reportFrameError(err error) {
	msg := err.Error()
	if s.frameErrs[msg] {
		return
	}
	s.frameErrs[msg] = true
	s.log.Warn("spinner frame skipped", zap.Error(err))
}
