package blockview

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/bdeque"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config configures console output.
type Config struct {
	LineWidth int            // target line length in fixed width ‘en’s
	Context   *uax11.Context // context for measuring display widths of element previews
}

// Console renders block layouts to a console with a fixed width font.
//
// Every block is printed on a line of its own: block number, global index of
// its first element, fill count, a bar visualizing the fill level and a preview
// of the block's first element. The bar is colored by occupancy class.
type Console struct {
	colors map[Occupancy]*color.Color
}

// NewConsole creates a console renderer. colors maps occupancy classes to
// colors; it may contain just a subset of the classes. If colors is nil, a
// default palette is used.
func NewConsole(colors map[Occupancy]*color.Color) *Console {
	con := &Console{}
	if colors == nil {
		con.colors = makeDefaultPalette()
	} else {
		con.colors = colors
	}
	return con
}

func makeDefaultPalette() map[Occupancy]*color.Color {
	palette := map[Occupancy]*color.Color{
		Underfull: color.New(color.FgRed),
		Normal:    color.New(color.FgGreen),
		NearFull:  color.New(color.FgYellow),
	}
	return palette
}

// Print outputs the block layout of d to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print[T any](d *bdeque.Deque[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Render(os.Stdout, d, NewConsole(nil), config)
}

// Render outputs the block layout of d to w. If con is nil, a console with
// the default palette is used. If config is nil, a config is derived from the
// terminal.
func Render[T any](w io.Writer, d *bdeque.Deque[T], con *Console, config *Config) error {
	if con == nil {
		con = NewConsole(nil)
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	cfg := d.Config()
	if _, err := fmt.Fprintf(w, "deque of %d elements in %d blocks (inf=%d, sup=%d)\n",
		d.Len(), d.BlockCount(), cfg.Sup()/4, cfg.Sup()); err != nil {
		return err
	}
	for _, info := range d.Layout() {
		v, err := d.At(info.First)
		if err != nil {
			tracer().Errorf("block view: %s", err.Error())
			return err
		}
		prefix := fmt.Sprintf("#%-4d @%-8d %5d/%-5d ", info.Index, info.First, info.Size, cfg.Sup())
		barWidth, previewWidth := columns(config.LineWidth, len(prefix))
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
		if err := con.bar(w, info.Size, cfg, barWidth); err != nil {
			return err
		}
		if previewWidth > 0 {
			preview := fit(fmt.Sprint(v), previewWidth, context)
			if _, err := io.WriteString(w, " "+preview); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// columns splits the space after the line prefix between bar and preview.
func columns(linewidth int, prefix int) (bar int, preview int) {
	rest := linewidth - prefix
	bar = max(10, rest/2)
	preview = rest - bar - 1
	return bar, max(0, preview)
}

func (con *Console) bar(w io.Writer, size int, cfg bdeque.Config, width int) error {
	filled := size * width / cfg.Sup()
	s := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if c, ok := con.colors[Classify(size, cfg)]; ok {
		_, err := c.Fprint(w, s)
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// fit shortens s to a display width of at most width, measured in the given
// context. Shortened strings end with an ellipsis.
func fit(s string, width int, context *uax11.Context) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s, context) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		t := string(runes) + "…"
		if displayWidth(t, context) <= width {
			return t
		}
	}
	return ""
}

var graphemeSetup sync.Once

func displayWidth(s string, context *uax11.Context) int {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w < 40 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w - 1
		}
	} else {
		config.LineWidth = 80
	}
	T().Debugf("block view: setting line length to %d en", config.LineWidth)
	return config
}
