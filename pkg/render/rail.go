package render

import "strings"

// rail is one glyph cell of an output row. Which rail a column gets is
// decided per event in ToWriter; how it looks is decided here.
type rail int

const (
	railStraight rail = iota
	railHorizontal
	railStation
	railGround
	railShiftRight
	railShiftLeft
	railTopRight
	railBottomRight
	railBottomLeft
	railSplitRight
	railSplitLeft
)

// corners returns the corner glyphs in reading order: top-left, top-right,
// bottom-left, bottom-right.
func (s Settings) corners() (tl, tr, bl, br string) {
	if s.rounded {
		return "╭", "╮", "╰", "╯"
	}
	return "┌", "┐", "└", "┘"
}

// railString renders one rail as text. The splat factor stretches the
// horizontal runs and the inter-column padding; it never changes which
// glyphs appear.
func (s Settings) railString(r rail) string {
	sp := strings.Repeat(" ", s.splat)
	run := strings.Repeat("─", s.splat)
	tl, tr, bl, br := s.corners()

	switch r {
	case railStraight:
		return "│" + sp
	case railHorizontal:
		return strings.Repeat("─", s.splat+1)
	case railStation:
		return "╪" + sp
	case railGround:
		return "┷" + sp
	case railShiftRight:
		return bl + run + tr + sp
	case railShiftLeft:
		return tl + run + br
	case railTopRight:
		return run + tr + sp
	case railBottomRight:
		return run + br + sp
	case railBottomLeft:
		return bl + run
	case railSplitRight:
		return "├"
	case railSplitLeft:
		return run + "┤"
	}
	return ""
}
