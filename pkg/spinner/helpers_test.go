package spinner

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// syncBuffer is a bytes.Buffer safe for the render goroutine and the test
// to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// newTestSpinner builds a spinner writing to a fresh buffer with a fast
// glyph cycle and a fixed width.
func newTestSpinner(t *testing.T, cfg Config) (*Spinner, *syncBuffer) {
	t.Helper()
	buf := &syncBuffer{}
	cfg.Writer = buf
	if cfg.Width == 0 {
		cfg.Width = 80
	}
	if !cfg.Definition.Valid() {
		cfg.Definition = NewDefinition([]string{"-", "\\", "|", "/"}, 5)
	}
	sp, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(sp.Stop)
	return sp, buf
}

// waitForOutput blocks until buf grows past n bytes.
func waitForOutput(t *testing.T, buf *syncBuffer, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return buf.Len() > n }, 2*time.Second, time.Millisecond)
}
