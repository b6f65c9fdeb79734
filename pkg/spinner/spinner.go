// Package spinner animates a glyph cycle next to status text on a terminal
// while the rest of the program keeps printing.
//
// A background goroutine owns the output line; foreground code goes through
// the same stream lock to write, hide or finalize it, so a spinner frame is
// never torn by other output.
//
//	sp, err := spinner.New(spinner.Config{Text: "Loading", Color: "cyan"})
//	// handle the error
//	if err := sp.Start(); err != nil {
//		// handle the error
//	}
//	sp.Write("> step 1 complete")
//	sp.OK("✔")
package spinner

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"termspin/internal/signal"
	"termspin/internal/termutil"
)

// Default final texts.
const (
	DefaultOKText   = "OK"
	DefaultFailText = "FAIL"
)

// Config describes a spinner. The zero value is a left-placed default
// spinner writing to os.Stdout.
type Config struct {
	// Definition is the glyph cycle. An invalid definition means the default.
	Definition Definition
	// Text is shown next to the glyph.
	Text string
	// Color, Highlight and Attrs style the glyph by name; see Colors,
	// Highlights and Attributes for the accepted values.
	Color     string
	Highlight string
	Attrs     []string
	// ColorFunc styles the glyph with custom code and wins over the names.
	ColorFunc StyleFunc
	// Reversal plays the glyph cycle backwards.
	Reversal bool
	// Side places the glyph left (default) or right of the text.
	Side Side
	// Signals maps signals to handlers installed while the spinner runs.
	Signals SignalMap
	// Timer appends the elapsed time to every frame.
	Timer bool
	// Ellipsis marks text truncated to fit the terminal.
	Ellipsis string
	// Writer receives the output; os.Stdout when nil.
	Writer io.Writer
	// WarnOnClosedStream logs one warning when output is dropped because
	// the writer was closed.
	WarnOnClosedStream bool
	// Logger receives warnings; a no-op logger when nil.
	Logger *zap.Logger
	// Width overrides the terminal width, which is otherwise read once from
	// COLUMNS or the writer's terminal.
	Width int
	// Catalog resolves glyph set names in Apply; the built-in catalog when nil.
	Catalog *Catalog
}

// Spinner is a terminal spinner. Create it with New; all methods are safe
// for concurrent use.
type Spinner struct {
	id      string
	log     *zap.Logger
	catalog *Catalog
	signals SignalMap
	width   int

	// mu is the stream lock. It serializes every write to out and guards
	// the render state below.
	mu        sync.Mutex
	out       *stream
	def       Definition
	frames    []string
	cursor    int
	text      string
	color     string
	highlight string
	attrs     []string
	colorFunc StyleFunc
	style     StyleFunc
	side      Side
	reversal  bool
	timer     bool
	ellipsis  string
	startTime time.Time
	stopTime  time.Time
	lastFrame string
	colorWarn sync.Once

	hidden  atomic.Bool
	running atomic.Bool
	started atomic.Bool

	// ctl guards the render goroutine's lifecycle.
	ctl    sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	sub    *signal.Subscription

	// scopeMu guards hiddenLevel for nested Hidden scopes.
	scopeMu     sync.Mutex
	hiddenLevel int

	// frameErrs is owned by the render goroutine.
	frameErrs map[string]bool
}

// New validates cfg and returns an idle spinner.
func New(cfg Config) (*Spinner, error) {
	side, err := ParseSide(string(cfg.Side))
	if err != nil {
		return nil, err
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog := cfg.Catalog
	if catalog == nil {
		if catalog, err = BuiltinCatalog(); err != nil {
			return nil, err
		}
	}
	width := cfg.Width
	if width <= 0 {
		width = termutil.Columns(w, termutil.DefaultColumns)
	}

	id := uuid.NewString()
	s := &Spinner{
		id:       id,
		log:      logger.With(zap.String("spinner", id)),
		catalog:  catalog,
		signals:  maps.Clone(cfg.Signals),
		width:    width,
		text:     cfg.Text,
		side:     side,
		reversal: cfg.Reversal,
		timer:    cfg.Timer,
		ellipsis: cfg.Ellipsis,
	}
	s.out = newStream(w, cfg.WarnOnClosedStream, s.log)
	s.setDefinitionLocked(cfg.Definition)

	if cfg.Color != "" {
		if err := s.checkStyleName(checkColor, cfg.Color); err != nil {
			return nil, err
		}
		s.color = cfg.Color
	}
	if cfg.Highlight != "" {
		if err := s.checkStyleName(checkHighlight, cfg.Highlight); err != nil {
			return nil, err
		}
		s.highlight = cfg.Highlight
	}
	if len(cfg.Attrs) > 0 {
		if err := s.checkStyleName(func(string) error { return checkAttrs(cfg.Attrs) }, ""); err != nil {
			return nil, err
		}
		s.attrs = mergeAttrs(nil, cfg.Attrs)
	}
	if cfg.ColorFunc != nil {
		s.warnIfNoColor()
		s.colorFunc = cfg.ColorFunc
	}
	s.refreshStyleLocked()

	return s, nil
}

// ID identifies the spinner in log output.
func (s *Spinner) ID() string {
	return s.id
}

// String describes the spinner's current glyph cycle.
func (s *Spinner) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("<Spinner frames=%s>", strings.Join(s.frames, ""))
}

// Running reports whether the render goroutine is active.
func (s *Spinner) Running() bool {
	return s.running.Load()
}

// IsHidden reports whether rendering is suspended by Hide.
func (s *Spinner) IsHidden() bool {
	return s.hidden.Load()
}

// Start installs the configured signal handlers, hides the cursor and starts
// animating. Starting a running spinner does nothing.
func (s *Spinner) Start() error {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	if s.cancel != nil {
		return nil
	}

	if len(s.signals) > 0 {
		sigs := make([]os.Signal, 0, len(s.signals))
		for sig := range s.signals {
			sigs = append(sigs, sig)
		}
		sub, err := signal.Subscribe(sigs, s.dispatchSignal)
		if err != nil {
			return errors.Wrap(ErrUncatchableSignal, err.Error())
		}
		s.sub = sub
	}

	s.mu.Lock()
	s.out.hideCursor()
	s.startTime = time.Now()
	s.stopTime = time.Time{}
	s.cursor = 0
	s.mu.Unlock()

	s.hidden.Store(false)
	s.frameErrs = make(map[string]bool)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.started.Store(true)
	s.running.Store(true)

	go s.run(ctx, s.done)

	s.log.Debug("spinner started")
	return nil
}

// Stop ends the animation and waits for the render goroutine to exit, then
// clears the line, shows the cursor and restores signal handlers. Stopping
// an idle or stopped spinner only clears the line and shows the cursor.
func (s *Spinner) Stop() {
	s.ctl.Lock()
	if s.cancel != nil {
		s.cancel()
		<-s.done
		s.cancel = nil
		s.done = nil

		s.mu.Lock()
		s.stopTime = time.Now()
		s.mu.Unlock()

		s.running.Store(false)
		s.sub.Restore()
		s.sub = nil
		s.log.Debug("spinner stopped")
	}
	s.ctl.Unlock()

	s.mu.Lock()
	s.out.clearLine()
	s.out.showCursor()
	s.mu.Unlock()
}

// Hide suspends rendering and clears the spinner line so the caller can
// print freely. It does nothing when already hidden or not running.
func (s *Spinner) Hide() error {
	if !s.started.Load() {
		return errors.Wrap(ErrNotStarted, "hide")
	}
	if !s.running.Load() || s.hidden.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden.Store(true)
	s.out.clearLine()
	s.out.flush()
	s.log.Debug("spinner hidden")
	return nil
}

// Show resumes rendering after Hide. It does nothing when not hidden or not
// running.
func (s *Spinner) Show() error {
	if !s.started.Load() {
		return errors.Wrap(ErrNotStarted, "show")
	}
	if !s.running.Load() || !s.hidden.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden.Store(false)
	s.out.clearLine()
	s.log.Debug("spinner shown")
	return nil
}

// Write prints v on its own line above the spinner. Byte slices are taken as
// UTF-8 text; other values are formatted with fmt.Sprint.
func (s *Spinner) Write(v any) {
	var text string
	switch t := v.(type) {
	case string:
		text = t
	case []byte:
		text = string(t)
	default:
		text = fmt.Sprint(v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.clearLine()
	s.out.write(text + "\n")
	s.out.lineLen = 0
}

// OK stops the spinner and leaves text, "OK" if empty, in place of the glyph.
func (s *Spinner) OK(text string) error {
	if text == "" {
		text = DefaultOKText
	}
	return s.freeze(text)
}

// Fail stops the spinner and leaves text, "FAIL" if empty, in place of the
// glyph.
func (s *Spinner) Fail(text string) error {
	if text == "" {
		text = DefaultFailText
	}
	return s.freeze(text)
}

// freeze composes the final line, stops the loop, then writes the line. The
// spinner is stopped even when the line cannot be composed.
func (s *Spinner) freeze(final string) error {
	s.mu.Lock()
	frame, err := Compose(s.frameLocked(final, true))
	if err == nil {
		s.lastFrame = frame
	}
	s.mu.Unlock()

	s.Stop()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.write(frame)
	s.out.lineLen = 0
	return nil
}

// LastFrame returns the line written by the latest OK or Fail.
func (s *Spinner) LastFrame() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFrame
}

// Elapsed is the time since Start, frozen once the spinner stops.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsedLocked()
}

func (s *Spinner) elapsedLocked() time.Duration {
	switch {
	case s.startTime.IsZero():
		return 0
	case s.stopTime.IsZero():
		return time.Since(s.startTime)
	default:
		return s.stopTime.Sub(s.startTime)
	}
}

// frameLocked gathers the render state for glyph.
func (s *Spinner) frameLocked(glyph string, final bool) Frame {
	return Frame{
		Glyph:    glyph,
		Text:     s.text,
		Side:     s.side,
		Style:    s.style,
		Timer:    s.timer,
		Elapsed:  s.elapsedLocked(),
		Ellipsis: s.ellipsis,
		Width:    s.width,
		Final:    final,
	}
}

// Definition returns the glyph cycle as configured, before reversal.
func (s *Spinner) Definition() Definition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Definition{Frames: slices.Clone(s.def.Frames), Interval: s.def.Interval}
}

// SetDefinition swaps the glyph cycle and restarts it from its first frame.
// The current reversal applies to the new cycle.
func (s *Spinner) SetDefinition(d Definition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setDefinitionLocked(d)
}

func (s *Spinner) setDefinitionLocked(d Definition) {
	d = d.OrDefault()
	s.def = Definition{Frames: slices.Clone(d.Frames), Interval: d.Interval}
	s.applyFramesLocked()
}

func (s *Spinner) applyFramesLocked() {
	if s.reversal {
		s.frames = reverseFrames(s.def.Frames)
	} else {
		s.frames = slices.Clone(s.def.Frames)
	}
	s.cursor = 0
}

// Frames returns the glyphs in the order they are drawn.
func (s *Spinner) Frames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.frames)
}

func (s *Spinner) interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.def.Interval
}

// Text returns the status text.
func (s *Spinner) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// SetText replaces the status text from the next frame on.
func (s *Spinner) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

// Color returns the glyph color name.
func (s *Spinner) Color() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color
}

// SetColor sets the glyph color by name; the empty string removes it.
func (s *Spinner) SetColor(name string) error {
	if name != "" {
		if err := s.checkStyleName(checkColor, name); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = name
	s.refreshStyleLocked()
	return nil
}

// SetColorFunc styles the glyph with fn instead of the named color,
// highlight and attributes. A nil fn returns to the names.
func (s *Spinner) SetColorFunc(fn StyleFunc) {
	if fn != nil {
		s.warnIfNoColor()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colorFunc = fn
	s.refreshStyleLocked()
}

// Highlight returns the glyph background color name.
func (s *Spinner) Highlight() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlight
}

// SetHighlight sets the glyph background by name; the empty string removes
// it.
func (s *Spinner) SetHighlight(name string) error {
	if name != "" {
		if err := s.checkStyleName(checkHighlight, name); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highlight = name
	s.refreshStyleLocked()
	return nil
}

// Attrs returns the glyph attributes in sorted order.
func (s *Spinner) Attrs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.attrs)
}

// SetAttrs adds attributes to the glyph; attributes already set are kept.
func (s *Spinner) SetAttrs(attrs ...string) error {
	if len(attrs) == 0 {
		return nil
	}
	if err := s.checkStyleName(func(string) error { return checkAttrs(attrs) }, ""); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = mergeAttrs(s.attrs, attrs)
	s.refreshStyleLocked()
	return nil
}

func mergeAttrs(have, add []string) []string {
	out := slices.Clone(have)
	for _, a := range add {
		if !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	slices.Sort(out)
	return out
}

// Side returns the glyph placement.
func (s *Spinner) Side() Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.side
}

// SetSide places the glyph left or right of the text.
func (s *Spinner) SetSide(side Side) error {
	parsed, err := ParseSide(string(side))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.side = parsed
	return nil
}

// Reversal reports whether the glyph cycle plays backwards.
func (s *Spinner) Reversal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reversal
}

// SetReversal sets the spin direction and restarts the cycle.
func (s *Spinner) SetReversal(reversed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reversal = reversed
	s.applyFramesLocked()
}

// Ellipsis returns the truncation marker.
func (s *Spinner) Ellipsis() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ellipsis
}

// SetEllipsis sets the marker appended to truncated text.
func (s *Spinner) SetEllipsis(ellipsis string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ellipsis = ellipsis
}

// Timer reports whether frames carry the elapsed time.
func (s *Spinner) Timer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer
}

// SetTimer toggles the elapsed time suffix.
func (s *Spinner) SetTimer(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = on
}

// checkStyleName warns when styling cannot show up on the stream, then
// validates name with check.
func (s *Spinner) checkStyleName(check func(string) error, name string) error {
	s.warnIfNoColor()
	return check(name)
}

func (s *Spinner) warnIfNoColor() {
	s.mu.Lock()
	tty := s.out.isTerminal()
	s.mu.Unlock()
	if tty {
		return
	}
	s.colorWarn.Do(func() {
		s.log.Warn("color, highlight and attrs are not supported when output is not a terminal")
	})
}

// refreshStyleLocked recomposes the glyph style from the current settings.
// Nothing is styled on streams that cannot interpret escape sequences.
func (s *Spinner) refreshStyleLocked() {
	switch {
	case !s.out.isTerminal() || colorDisabledByEnv():
		s.style = nil
	case s.colorFunc != nil:
		s.style = s.colorFunc
	default:
		s.style = newStyle(s.color, s.highlight, s.attrs)
	}
}
