package spinner

import (
	"slices"
	"time"
)

// defaultFrames is the braille dots cycle.
var defaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// DefaultInterval is the frame interval of the default definition.
const DefaultInterval = 80 * time.Millisecond

// Definition is a glyph cycle and the delay between its frames. Treat it as
// a value: the spinner copies the frames it is given.
type Definition struct {
	Frames   []string
	Interval time.Duration
}

// DefaultDefinition returns the braille dots cycle at 80ms.
func DefaultDefinition() Definition {
	return Definition{Frames: slices.Clone(defaultFrames), Interval: DefaultInterval}
}

// NewDefinition builds a definition from frames and an interval in
// milliseconds. Empty frames or a non-positive interval yield the default.
func NewDefinition(frames []string, intervalMS int) Definition {
	return Definition{
		Frames:   slices.Clone(frames),
		Interval: time.Duration(intervalMS) * time.Millisecond,
	}.OrDefault()
}

// DefinitionFromString uses each rune of frames as one glyph.
func DefinitionFromString(frames string, intervalMS int) Definition {
	glyphs := make([]string, 0, len(frames))
	for _, r := range frames {
		glyphs = append(glyphs, string(r))
	}
	return NewDefinition(glyphs, intervalMS)
}

// Valid reports whether d has at least one frame and a positive interval.
func (d Definition) Valid() bool {
	return len(d.Frames) > 0 && d.Interval > 0
}

// OrDefault returns d when it is valid and the default definition otherwise.
func (d Definition) OrDefault() Definition {
	if !d.Valid() {
		return DefaultDefinition()
	}
	return d
}

// reverseFrames returns a reversed copy of frames.
func reverseFrames(frames []string) []string {
	out := slices.Clone(frames)
	slices.Reverse(out)
	return out
}
