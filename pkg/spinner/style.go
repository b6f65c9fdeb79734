package spinner

import (
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// StyleFunc decorates a glyph before it is written, typically by wrapping it
// in ANSI escape sequences.
type StyleFunc func(string) string

// Side is where the glyph sits relative to the text.
type Side string

// Supported sides.
const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ParseSide validates a side name. The empty string means left.
func ParseSide(name string) (Side, error) {
	switch Side(name) {
	case "", SideLeft:
		return SideLeft, nil
	case SideRight:
		return SideRight, nil
	}
	return "", errors.Wrapf(ErrInvalidSide, "%q: use either 'left' or 'right'", name)
}

var colorNames = map[string]color.Attribute{
	"black":         color.FgBlack,
	"grey":          color.FgBlack,
	"red":           color.FgRed,
	"green":         color.FgGreen,
	"yellow":        color.FgYellow,
	"blue":          color.FgBlue,
	"magenta":       color.FgMagenta,
	"cyan":          color.FgCyan,
	"light_grey":    color.FgWhite,
	"dark_grey":     color.FgHiBlack,
	"light_red":     color.FgHiRed,
	"light_green":   color.FgHiGreen,
	"light_yellow":  color.FgHiYellow,
	"light_blue":    color.FgHiBlue,
	"light_magenta": color.FgHiMagenta,
	"light_cyan":    color.FgHiCyan,
	"white":         color.FgHiWhite,
}

var highlightNames = map[string]color.Attribute{
	"on_black":         color.BgBlack,
	"on_grey":          color.BgBlack,
	"on_red":           color.BgRed,
	"on_green":         color.BgGreen,
	"on_yellow":        color.BgYellow,
	"on_blue":          color.BgBlue,
	"on_magenta":       color.BgMagenta,
	"on_cyan":          color.BgCyan,
	"on_light_grey":    color.BgWhite,
	"on_dark_grey":     color.BgHiBlack,
	"on_light_red":     color.BgHiRed,
	"on_light_green":   color.BgHiGreen,
	"on_light_yellow":  color.BgHiYellow,
	"on_light_blue":    color.BgHiBlue,
	"on_light_magenta": color.BgHiMagenta,
	"on_light_cyan":    color.BgHiCyan,
	"on_white":         color.BgHiWhite,
}

var attrNames = map[string]color.Attribute{
	"bold":      color.Bold,
	"dark":      color.Faint,
	"underline": color.Underline,
	"blink":     color.BlinkSlow,
	"reverse":   color.ReverseVideo,
	"concealed": color.Concealed,
}

func sortedKeys(m map[string]color.Attribute) []string {
	return slices.Sorted(maps.Keys(m))
}

// Colors lists the supported text color names.
func Colors() []string { return sortedKeys(colorNames) }

// Highlights lists the supported background color names.
func Highlights() []string { return sortedKeys(highlightNames) }

// Attributes lists the supported text attribute names.
func Attributes() []string { return sortedKeys(attrNames) }

func checkColor(name string) error {
	if _, ok := colorNames[name]; !ok {
		return errors.Wrapf(ErrInvalidColor, "%q: use one of the: %s", name, strings.Join(Colors(), ", "))
	}
	return nil
}

func checkHighlight(name string) error {
	if _, ok := highlightNames[name]; !ok {
		return errors.Wrapf(ErrInvalidHighlight, "%q: use one of the: %s", name, strings.Join(Highlights(), ", "))
	}
	return nil
}

func checkAttrs(names []string) error {
	for _, name := range names {
		if _, ok := attrNames[name]; !ok {
			return errors.Wrapf(ErrInvalidAttr, "%q: use one of the: %s", name, strings.Join(Attributes(), ", "))
		}
	}
	return nil
}

// newStyle builds the escape-sequence wrapper for the given names, or nil
// when nothing is set. Names must already be validated.
func newStyle(fg, bg string, attrs []string) StyleFunc {
	var params []color.Attribute
	if fg != "" {
		params = append(params, colorNames[fg])
	}
	if bg != "" {
		params = append(params, highlightNames[bg])
	}
	for _, a := range attrs {
		params = append(params, attrNames[a])
	}
	if len(params) == 0 {
		return nil
	}

	c := color.New(params...)
	// The spinner decides about its own stream; color.NoColor only
	// describes os.Stdout.
	c.EnableColor()
	return func(s string) string {
		return c.Sprint(s)
	}
}

// colorDisabledByEnv honors the NO_COLOR convention.
func colorDisabledByEnv() bool {
	return os.Getenv("NO_COLOR") != ""
}
