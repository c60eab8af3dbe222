package format

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/pairlist"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

const defaultLineWidth = 65

const (
	separator = " │ "
	ellipsis  = "…"
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // target line length in fixed width ‘en’s
	Colors    *Palette       // nil means plain output
	Context   *uax11.Context // nil means uax11.LatinContext
}

// Palette holds the colors for the parts of a table row. Any of them may be nil.
//
// Duplicate is used for keys which compare equal to the key in the row above.
type Palette struct {
	Index, Key, Value, Duplicate *color.Color
}

// DefaultPalette returns the palette used if a Config asks for colors without
// further preferences.
func DefaultPalette() *Palette {
	return &Palette{
		Index:     color.New(color.Faint),
		Key:       color.New(color.FgBlue),
		Value:     color.New(color.FgGreen),
		Duplicate: color.New(color.FgCyan),
	}
}

// Print outputs a pair list as a table to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will then be created based on heuristics from the user environment.
func Print[K, V any](l *pairlist.List[K, V], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Console(os.Stdout, l, config)
}

// Console outputs a pair list as a table with one row per pair, to a device
// with a fixed width font. Rows are
//
//	index │ key │ value
//
// Keys are left-aligned in a column wide enough for the widest key. The key
// column takes at most half of the line, unless the values need less room.
func Console[K, V any](w io.Writer, l *pairlist.List[K, V], config *Config) error {
	if w == nil || l == nil || config == nil {
		return fmt.Errorf("%w: nil", pairlist.ErrIllegalArguments)
	}
	setupGraphemes()
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	linewidth := config.LineWidth
	if linewidth <= 0 {
		linewidth = defaultLineWidth
	}
	n := l.Len()
	keys, texts, values := make([]K, 0, n), make([]string, 0, n), make([]string, 0, n)
	maxkey, maxval := 0, 0
	for k, v := range l.All() {
		keys = append(keys, k)
		texts = append(texts, fmt.Sprint(k))
		values = append(values, fmt.Sprint(v))
		maxkey = max(maxkey, cells(texts[len(texts)-1], context))
		maxval = max(maxval, cells(values[len(values)-1], context))
	}
	idxw := len(strconv.Itoa(max(n-1, 0)))
	avail := linewidth - idxw - 2*len([]rune(separator))
	if avail < 2 {
		return fmt.Errorf("%w: line width %d too small", pairlist.ErrIllegalArguments, linewidth)
	}
	keyw := max(1, min(maxkey, max(avail/2, avail-maxval)))
	valw := avail - keyw
	tracer().Debugf("format: %d rows, key column %d en, value column %d en", n, keyw, valw)
	palette := config.Colors
	if palette == nil {
		palette = &Palette{}
	}
	compare := l.Config().Compare
	for i := range n {
		paint(w, palette.Index, fmt.Sprintf("%*d", idxw, i))
		io.WriteString(w, separator)
		key, kw := fit(texts[i], keyw, context)
		if i > 0 && compare(keys[i-1], keys[i]) == 0 {
			paint(w, palette.Duplicate, key)
		} else {
			paint(w, palette.Key, key)
		}
		io.WriteString(w, strings.Repeat(" ", keyw-kw))
		io.WriteString(w, separator)
		value, _ := fit(values[i], valw, context)
		paint(w, palette.Value, value)
		io.WriteString(w, "\n")
	}
	return nil
}

func paint(w io.Writer, c *color.Color, s string) {
	if c == nil {
		io.WriteString(w, s)
		return
	}
	// Sprint wraps s in both escape sequences whenever c is enabled, while
	// Fprint omits the reset if color is switched off globally.
	io.WriteString(w, c.Sprint(s))
}

// fit cuts s to at most width ‘en’s and returns the result together with its
// width. Cut strings end in an ellipsis. Cuts happen at grapheme boundaries only.
func fit(s string, width int, context *uax11.Context) (string, int) {
	gstr := grapheme.StringFromString(s)
	w := uax11.StringWidth(gstr, context)
	if w <= width {
		return s, w
	}
	ew := cells(ellipsis, context)
	var b strings.Builder
	used := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.Width([]byte(g), context)
		if used+gw > width-ew {
			break
		}
		b.WriteString(g)
		used += gw
	}
	b.WriteString(ellipsis)
	return b.String(), used + ew
}

func cells(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

var graphemesOnce sync.Once

func setupGraphemes() {
	graphemesOnce.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = DefaultPalette()
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = defaultLineWidth
		} else if w > 30 {
			config.LineWidth = w - 5
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = defaultLineWidth
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
