//go:build unix

package spinner

import (
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUncatchableSignalRejected(t *testing.T) {
	for _, sig := range []os.Signal{syscall.SIGKILL, syscall.SIGSTOP} {
		t.Run(sig.String(), func(t *testing.T) {
			sp, _ := newTestSpinner(t, Config{Signals: SignalMap{sig: nil}})
			err := sp.Start()
			assert.True(t, errors.Is(err, ErrUncatchableSignal), "got %v", err)
			assert.False(t, sp.Running())
		})
	}
}

func TestSignalHandlerReceivesSpinner(t *testing.T) {
	got := make(chan *Spinner, 1)
	sp, _ := newTestSpinner(t, Config{
		Text: "Working",
		Signals: SignalMap{
			syscall.SIGUSR1: func(sig os.Signal, sp *Spinner) {
				assert.Equal(t, syscall.SIGUSR1, sig)
				got <- sp
			},
		},
	})
	require.NoError(t, sp.Start())

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))

	select {
	case handled := <-got:
		assert.Same(t, sp, handled)
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not run")
	}
	sp.Stop()
}

func TestDefaultHandlerFailsAndExits(t *testing.T) {
	codes := make(chan int, 1)
	prev := Exit
	Exit = func(code int) { codes <- code }
	t.Cleanup(func() { Exit = prev })

	tests := []struct {
		name     string
		handler  SignalHandler
		wantCode int
		wantLine string
	}{
		{"default", nil, 0, "FAIL Working\n"},
		{"fancy", FancyHandler, 0, "✘ Working\n"},
		{"exit handler", ExitHandler("interrupted", 130), 130, "interrupted Working\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, buf := newTestSpinner(t, Config{
				Text:    "Working",
				Signals: SignalMap{syscall.SIGUSR2: tt.handler},
			})
			require.NoError(t, sp.Start())
			waitForOutput(t, buf, 0)

			require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR2))

			select {
			case code := <-codes:
				assert.Equal(t, tt.wantCode, code)
			case <-time.After(2 * time.Second):
				t.Fatal("handler did not exit")
			}
			assert.False(t, sp.Running())
			assert.Equal(t, tt.wantLine, sp.LastFrame())
		})
	}
}

func TestInterruptSafe(t *testing.T) {
	cfg := InterruptSafe(Config{Text: "x"})
	require.Contains(t, cfg.Signals, os.Interrupt)

	custom := ExitHandler("bye", 2)
	cfg = InterruptSafe(Config{Signals: SignalMap{os.Interrupt: custom, syscall.SIGTERM: nil}})
	assert.Len(t, cfg.Signals, 2)
	assert.NotNil(t, cfg.Signals[os.Interrupt])

	orig := SignalMap{syscall.SIGTERM: nil}
	_ = InterruptSafe(Config{Signals: orig})
	assert.Len(t, orig, 1, "the caller's map is not modified")
}
