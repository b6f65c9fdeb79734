package spinner

import (
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"termspin/internal/termutil"
)

// ANSI control sequences.
const (
	ansiEscape     = "\033["
	ansiHideCursor = ansiEscape + "?25l"
	ansiShowCursor = ansiEscape + "?25h"
	ansiClearLine  = ansiEscape + "K"
	carriageReturn = "\r"
)

// stream is the spinner's best-effort view of its writer. Writes never fail
// from the caller's point of view; once the writer reports that it is closed,
// further output is dropped. Callers hold the spinner's stream lock.
type stream struct {
	w       io.Writer
	tty     bool
	closed  bool
	warn    bool
	warned  bool
	log     *zap.Logger
	lineLen int
}

func newStream(w io.Writer, warnOnClosed bool, log *zap.Logger) *stream {
	return &stream{
		w:    w,
		tty:  termutil.IsTerminal(w),
		warn: warnOnClosed,
		log:  log,
	}
}

func isClosedErr(err error) bool {
	return errors.Is(err, os.ErrClosed) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, syscall.EPIPE)
}

// isTerminal reports whether ANSI control sequences can be used.
func (s *stream) isTerminal() bool {
	return s.tty && !s.closed
}

func (s *stream) write(text string) {
	if s.closed {
		s.warnClosed()
		return
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		if isClosedErr(err) {
			s.closed = true
			s.warnClosed()
			return
		}
		s.log.Debug("spinner write failed", zap.Error(err))
	}
}

func (s *stream) warnClosed() {
	if !s.warn || s.warned {
		return
	}
	s.warned = true
	s.log.Warn("attempted to write to closed stream, output ignored; this may indicate a stream lifecycle management issue")
}

// flush pushes buffered output for writers that buffer, such as bufio.Writer.
func (s *stream) flush() {
	if s.closed {
		return
	}
	if f, ok := s.w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// clearLine erases the current line. Without ANSI support the previously
// written width is overwritten with spaces.
func (s *stream) clearLine() {
	if s.isTerminal() {
		s.write(carriageReturn + ansiClearLine)
	} else {
		s.write(carriageReturn + strings.Repeat(" ", s.lineLen) + carriageReturn)
	}
}

// track records the width of a frame written in place.
func (s *stream) track(frame string) {
	s.lineLen = max(s.lineLen, termutil.VisibleWidth(frame))
}

func (s *stream) hideCursor() {
	if s.isTerminal() {
		s.write(ansiHideCursor)
		s.flush()
	}
}

func (s *stream) showCursor() {
	if s.isTerminal() {
		s.write(ansiShowCursor)
		s.flush()
	}
}
