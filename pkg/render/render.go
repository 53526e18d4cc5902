package render

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/delehef/metro/pkg/event"
)

// ToWriter replays events against w, one or more text rows per event.
//
// Replay starts from a single implicit default track with id 0. The log
// must respect the renderer contract: starting an id that is already
// active, or stopping/splitting/joining through an id that is not, is a
// caller bug in a hand-built log and panics. Logs produced through the
// metro builder always satisfy the contract.
//
// Errors from w are returned as-is; rendering stops at the failing row,
// so partial output may already have been flushed.
func ToWriter(w io.Writer, events []event.Event, s Settings) error {
	tracks := []event.TrackID{0}
	widest := widestTrack(events)

	for _, ev := range events {
		switch ev.Kind {
		case event.KindStart:
			startTrack(&tracks, ev.From)

		case event.KindStartMany:
			for _, id := range ev.Tracks {
				startTrack(&tracks, id)
			}

		case event.KindStop:
			pos := slices.Index(tracks, ev.From)
			if pos < 0 {
				panic(fmt.Sprintf("render: stop of inactive track %d", ev.From))
			}
			row := s.row(tracks, func(_ int, id event.TrackID) rail {
				if id == ev.From {
					return railGround
				}
				return railStraight
			})
			if err := writeRow(w, row); err != nil {
				return err
			}
			tracks = slices.Delete(tracks, pos, pos+1)

		case event.KindStation:
			if err := s.writeStation(w, tracks, ev, widest); err != nil {
				return err
			}

		case event.KindSplit:
			var err error
			tracks, err = s.writeSplit(w, tracks, ev)
			if err != nil {
				return err
			}

		case event.KindJoin:
			var err error
			tracks, err = s.writeJoin(w, tracks, ev)
			if err != nil {
				return err
			}

		case event.KindNone:
			row := s.row(tracks, func(int, event.TrackID) rail { return railStraight })
			if err := writeRow(w, row); err != nil {
				return err
			}
		}
	}

	return nil
}

// ToBytes renders events into a fresh byte buffer.
func ToBytes(events []event.Event, s Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := ToWriter(&buf, events, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToString renders events into a string. Only fixed glyphs and
// caller-supplied text are ever written, so the result is always valid
// UTF-8.
func ToString(events []event.Event, s Settings) (string, error) {
	b, err := ToBytes(events, s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// widestTrack pre-computes the maximum size the active list ever reaches,
// counting the seeded default track. Station text is right-aligned against
// this width so it stays in one column across rows with differing rail
// counts.
func widestTrack(events []event.Event) int {
	current, widest := 1, 1
	for _, ev := range events {
		switch ev.Kind {
		case event.KindStart, event.KindSplit:
			current++
		case event.KindStartMany:
			current += len(ev.Tracks)
		case event.KindStop, event.KindJoin:
			current--
		}
		if current > widest {
			widest = current
		}
	}
	return widest
}

func startTrack(tracks *[]event.TrackID, id event.TrackID) {
	if slices.Contains(*tracks, id) {
		panic(fmt.Sprintf("render: track %d started while already active", id))
	}
	*tracks = append(*tracks, id)
}

// row builds one output row, one rail per active column, each colored by
// the id occupying that column.
func (s Settings) row(tracks []event.TrackID, pick func(i int, id event.TrackID) rail) string {
	var b strings.Builder
	for i, id := range tracks {
		b.WriteString(s.colorize(s.railString(pick(i, id)), id))
	}
	return b.String()
}

func writeRow(w io.Writer, row string) error {
	_, err := io.WriteString(w, row+"\n")
	return err
}

// writeStation emits one row per text line (only the first highlights the
// target column), then one all-straight spacer row. Text is written plain,
// right-aligned so that the text column depends on the log's widest point
// rather than the momentary rail count. An absent target id highlights
// nothing but the text still renders.
func (s Settings) writeStation(w io.Writer, tracks []event.TrackID, ev event.Event, widest int) error {
	for i, line := range splitLines(ev.Text) {
		var b strings.Builder
		b.WriteString(s.row(tracks, func(_ int, id event.TrackID) rail {
			if i == 0 && id == ev.From {
				return railStation
			}
			return railStraight
		}))
		fmt.Fprintf(&b, "%*s", len(line)+widest-len(tracks)+3, line)
		if err := writeRow(w, b.String()); err != nil {
			return err
		}
	}
	return writeRow(w, s.row(tracks, func(int, event.TrackID) rail { return railStraight }))
}

// writeSplit inserts ev.To immediately right of ev.From. With more than
// one rail active it first draws the opening staircase: one row per column
// from the rightmost down to the insertion gap, each shifting one more
// rail rightward. The final row draws the branch itself.
func (s Settings) writeSplit(w io.Writer, tracks []event.TrackID, ev event.Event) ([]event.TrackID, error) {
	parent := slices.Index(tracks, ev.From)
	if parent < 0 {
		panic(fmt.Sprintf("render: split parent %d not active", ev.From))
	}

	if len(tracks) > 1 {
		for li := 0; li < len(tracks)-parent; li++ {
			row := s.row(tracks, func(i int, _ event.TrackID) rail {
				if len(tracks)-i == li {
					return railShiftRight
				}
				return railStraight
			})
			if err := writeRow(w, row); err != nil {
				return tracks, err
			}
		}
	}

	tracks = slices.Insert(tracks, parent+1, ev.To)
	row := s.row(tracks, func(_ int, id event.TrackID) rail {
		switch id {
		case ev.To:
			return railTopRight
		case ev.From:
			return railSplitRight
		}
		return railStraight
	})
	return tracks, writeRow(w, row)
}

// writeJoin draws the merge row (branch glyph at the target, a
// direction-oriented corner at the child, horizontal connectors between),
// removes the child, then draws the closing staircase pulling the
// remaining rails left until the set is contiguous again.
//
// The connector segment is colored with the child's id, matching the
// child-side corner it leads to.
func (s Settings) writeJoin(w io.Writer, tracks []event.TrackID, ev event.Event) ([]event.TrackID, error) {
	target := slices.Index(tracks, ev.To)
	if target < 0 {
		panic(fmt.Sprintf("render: join target %d not active", ev.To))
	}
	child := slices.Index(tracks, ev.From)
	if child < 0 {
		panic(fmt.Sprintf("render: join child %d not active", ev.From))
	}
	lo, hi := min(target, child), max(target, child)

	var b strings.Builder
	for i, id := range tracks {
		switch {
		case i == target:
			r := railSplitLeft
			if child > target {
				r = railSplitRight
			}
			b.WriteString(s.colorize(s.railString(r), id))
		case i == child:
			r := railBottomLeft
			if child > target {
				r = railBottomRight
			}
			b.WriteString(s.colorize(s.railString(r), ev.From))
		case i > lo && i < hi:
			b.WriteString(s.colorize(s.railString(railHorizontal), ev.From))
		default:
			b.WriteString(s.colorize(s.railString(railStraight), id))
		}
	}
	if err := writeRow(w, b.String()); err != nil {
		return tracks, err
	}

	tracks = slices.Delete(tracks, child, child+1)
	start := hi
	if child < target {
		start = lo + 1
	}
	for i := start; i < len(tracks); i++ {
		row := s.row(tracks, func(j int, _ event.TrackID) rail {
			if j == i && j != 0 {
				return railShiftLeft
			}
			return railStraight
		})
		if err := writeRow(w, row); err != nil {
			return tracks, err
		}
	}
	return tracks, nil
}

// splitLines splits station text into display lines: the final trailing
// newline does not produce an empty line, and Windows line endings are
// tolerated. Empty text yields no lines at all, so the station renders as
// a bare spacer row.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
