// Package signal subscribes to OS signals on behalf of a running spinner and
// puts the process back the way it found it when the spinner stops.
package signal

import (
	"os"
	"os/signal"
	"slices"
	"sync"

	"github.com/pkg/errors"
)

// ErrUncatchable is returned when a handler is requested for a signal the
// operating system never delivers to the process.
var ErrUncatchable = errors.New("signal cannot be caught")

// Uncatchable reports whether sig can never be handled.
func Uncatchable(sig os.Signal) bool {
	return slices.Contains(uncatchable, sig)
}

// Subscription delivers a set of signals to a dispatch function until it is
// restored.
type Subscription struct {
	ch      chan os.Signal
	done    chan struct{}
	ignored []os.Signal
	once    sync.Once
}

// Subscribe starts delivering sigs to dispatch on a dedicated goroutine.
// Whether each signal was ignored beforehand is captured so Restore can put
// that disposition back.
func Subscribe(sigs []os.Signal, dispatch func(os.Signal)) (*Subscription, error) {
	for _, sig := range sigs {
		if Uncatchable(sig) {
			return nil, errors.Wrapf(ErrUncatchable, "%v cannot be caught or ignored", sig)
		}
	}

	s := &Subscription{
		ch:   make(chan os.Signal, len(sigs)+1),
		done: make(chan struct{}),
	}
	for _, sig := range sigs {
		if signal.Ignored(sig) {
			s.ignored = append(s.ignored, sig)
		}
	}
	if len(sigs) == 0 {
		close(s.done)
		return s, nil
	}

	signal.Notify(s.ch, sigs...)

	go func() {
		for {
			select {
			case sig := <-s.ch:
				dispatch(sig)
			case <-s.done:
				return
			}
		}
	}()

	return s, nil
}

// Restore stops delivery and re-ignores signals that were ignored before
// Subscribe. Only the first call has any effect, and it is safe to call from
// inside dispatch.
func (s *Subscription) Restore() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		signal.Stop(s.ch)
		select {
		case <-s.done:
		default:
			close(s.done)
		}
		if len(s.ignored) > 0 {
			signal.Ignore(s.ignored...)
		}
	})
}
