package spinner

import (
	"maps"
	"os"

	"go.uber.org/zap"
)

// SignalHandler runs when a mapped signal arrives while the spinner is
// running. It receives the spinner it was registered on.
type SignalHandler func(sig os.Signal, sp *Spinner)

// SignalMap maps signals to their handlers. A nil handler means
// DefaultHandler.
type SignalMap map[os.Signal]SignalHandler

// Exit terminates the process from the built-in handlers.
var Exit = os.Exit

// DefaultHandler marks the spinner failed, stops it and exits the process.
func DefaultHandler(sig os.Signal, sp *Spinner) {
	_ = sp.Fail("")
	sp.Stop()
	Exit(0)
}

// FancyHandler is DefaultHandler with a red cross as the final glyph.
func FancyHandler(sig os.Signal, sp *Spinner) {
	_ = sp.SetColor("red")
	_ = sp.Fail("✘")
	sp.Stop()
	Exit(0)
}

// ExitHandler returns a handler that fails the spinner with text and exits
// with code.
func ExitHandler(text string, code int) SignalHandler {
	return func(sig os.Signal, sp *Spinner) {
		_ = sp.Fail(text)
		sp.Stop()
		Exit(code)
	}
}

// InterruptSafe returns a copy of cfg whose signal map also sends SIGINT to
// DefaultHandler, unless SIGINT is already mapped.
func InterruptSafe(cfg Config) Config {
	sigs := make(SignalMap, len(cfg.Signals)+1)
	maps.Copy(sigs, cfg.Signals)
	if _, ok := sigs[os.Interrupt]; !ok {
		sigs[os.Interrupt] = DefaultHandler
	}
	cfg.Signals = sigs
	return cfg
}

func (s *Spinner) dispatchSignal(sig os.Signal) {
	handler := s.signals[sig]
	if handler == nil {
		handler = DefaultHandler
	}
	s.log.Debug("spinner received signal", zap.Stringer("signal", sig))
	handler(sig, s)
}
