package render

import (
	"github.com/muesli/termenv"

	"github.com/delehef/metro/pkg/event"
)

// Settings controls glyph spacing and coloring. It is a value type: the
// chainable setters return modified copies, so a Settings handed to the
// renderer can never change underneath it.
//
//	s := render.DefaultSettings().Splat(3).Color(false)
type Settings struct {
	splat   int
	color   bool
	rounded bool
}

// DefaultSettings returns the standard configuration: splat 5, color on,
// square corners.
func DefaultSettings() Settings {
	return Settings{splat: 5, color: true}
}

// Splat returns a copy with the glyph-repetition factor set to n.
// The factor controls horizontal spacing between columns; negative values
// are clamped to zero.
func (s Settings) Splat(n int) Settings {
	if n < 0 {
		n = 0
	}
	s.splat = n
	return s
}

// Color returns a copy with per-track coloring switched on or off.
// With coloring off the output is the same glyph stream with no escape
// sequences.
func (s Settings) Color(on bool) Settings {
	s.color = on
	return s
}

// Rounded returns a copy selecting rounded corner glyphs (╭ ╮ ╰ ╯) in
// place of the square ones. Spacing and layout are unaffected.
func (s Settings) Rounded(on bool) Settings {
	s.rounded = on
	return s
}

// colorIndex maps a track id onto the xterm 256-color palette. The
// unsigned arithmetic wraps, so every id, including event.Detached, has a
// defined index.
func colorIndex(id event.TrackID) uint8 {
	return uint8(((uint64(id) + 1) ^ 93) % 255)
}

// colorize wraps str in the foreground escape for id's palette entry.
func (s Settings) colorize(str string, id event.TrackID) string {
	if !s.color {
		return str
	}
	c := termenv.ANSI256Color(colorIndex(id))
	return termenv.String(str).Foreground(c).String()
}
