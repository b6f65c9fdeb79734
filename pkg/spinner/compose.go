package spinner

import (
	"fmt"
	"math"
	"time"

	"github.com/mattn/go-runewidth"
)

// Frame is everything needed to render one spinner line.
type Frame struct {
	Glyph    string
	Text     string
	Side     Side
	Style    StyleFunc // applied to the glyph only; nil leaves it plain
	Timer    bool
	Elapsed  time.Duration
	Ellipsis string
	Width    int  // terminal columns
	Final    bool // newline-terminated frozen line instead of an in-place frame
}

// FormatElapsed renders d as H:MM:SS.ff, rounded to hundredths of a second.
func FormatElapsed(d time.Duration) string {
	centis := int64(math.Round(float64(d) / float64(10*time.Millisecond)))
	if centis < 0 {
		centis = 0
	}
	secs, frac := centis/100, centis%100
	return fmt.Sprintf("%d:%02d:%02d.%02d", secs/3600, secs%3600/60, secs%60, frac)
}

// maxTextWidth is the room left for text once the glyph, its separating
// space, the timer and the ellipsis are placed.
func maxTextWidth(width, glyphWidth, timerWidth int, ellipsis string) int {
	return width - (glyphWidth + 1) - timerWidth - runewidth.StringWidth(ellipsis)
}

// Compose renders f. In-place frames start with a carriage return; final
// frames end with a newline.
func Compose(f Frame) (string, error) {
	var timer string
	if f.Timer {
		timer = " (" + FormatElapsed(f.Elapsed) + ")"
	}

	limit := maxTextWidth(f.Width, runewidth.StringWidth(f.Glyph), runewidth.StringWidth(timer), f.Ellipsis)
	if limit < 1 {
		return "", &TerminalTooSmallError{Width: f.Width}
	}

	text := f.Text
	if runewidth.StringWidth(text) > limit {
		text = runewidth.Truncate(text, limit, "") + f.Ellipsis
	}

	glyph := f.Glyph
	if f.Style != nil {
		glyph = f.Style(glyph)
	}

	left, right := glyph, text
	if f.Side == SideRight {
		left, right = text, glyph
	}

	if f.Final {
		return left + " " + right + timer + "\n", nil
	}
	return "\r" + left + " " + right + timer, nil
}
