// Package event defines the diagram operation log shared between the
// metro builder and the renderer.
//
// An ordered []Event is the sole interchange format: the builder appends
// events as tracks are created, stopped, split, joined, or annotated with
// stations, and the renderer replays the slice front to back. Order is
// semantically load-bearing - it is the replay timeline.
//
// Events are immutable values and should only be built through the
// constructor functions (Start, Stop, Station, ...). Hand-built logs are
// replayable as long as they respect the renderer's contract: an id is
// started at most once while active, and stop/split/join only reference
// active ids.
package event

import "math"

// TrackID identifies a logical rail in a diagram.
//
// IDs are non-negative and reusable: once a track is stopped or joined
// away, its id may identify a fresh track later in the log.
type TrackID int

// Detached is the reserved out-of-range id used by stations that are not
// tied to any track. It never appears in the active-track list, so no rail
// is ever highlighted for it.
const Detached TrackID = math.MaxInt

// Kind discriminates the Event variants.
type Kind int

const (
	// KindNone renders a single row of straight rails (a manual spacer).
	KindNone Kind = iota
	// KindStart adds a new rightmost track. Renders no row by itself.
	KindStart
	// KindStartMany adds several new rightmost tracks in order.
	KindStartMany
	// KindStop terminates a track, rendering a ground glyph in its column.
	KindStop
	// KindStation attaches labeled text to a track (or to no track when
	// the id is Detached or otherwise absent).
	KindStation
	// KindSplit branches a new track off an existing one, to its right.
	KindSplit
	// KindJoin merges a track into another, removing the first.
	KindJoin
)

// String returns the kind name used in debug output.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindStart:
		return "start"
	case KindStartMany:
		return "start-many"
	case KindStop:
		return "stop"
	case KindStation:
		return "station"
	case KindSplit:
		return "split"
	case KindJoin:
		return "join"
	}
	return "unknown"
}

// Event is one immutable diagram operation.
//
// Kind selects the variant; the remaining fields are payload and only
// meaningful for the kinds noted on each constructor.
type Event struct {
	Kind Kind

	// From is the primary track: the started, stopped, or annotated id,
	// the split parent, or the join child.
	From TrackID

	// To is the counterpart track: the split child or the join target.
	To TrackID

	// Tracks holds the ids of a StartMany, in insertion order.
	Tracks []TrackID

	// Text is the station label. It may span multiple lines.
	Text string
}

// None returns a spacer event: one row of straight rails.
func None() Event {
	return Event{Kind: KindNone}
}

// Start returns an event adding id as the new rightmost track.
func Start(id TrackID) Event {
	return Event{Kind: KindStart, From: id}
}

// StartMany returns an event adding each id, in order, as new rightmost
// tracks. The slice is copied so later mutation cannot alter the log.
func StartMany(ids ...TrackID) Event {
	cp := make([]TrackID, len(ids))
	copy(cp, ids)
	return Event{Kind: KindStartMany, Tracks: cp}
}

// Stop returns an event terminating id.
func Stop(id TrackID) Event {
	return Event{Kind: KindStop, From: id}
}

// Station returns an event attaching text to id. Pass Detached (or any id
// that is not active at replay time) to render the text without
// highlighting a rail.
func Station(id TrackID, text string) Event {
	return Event{Kind: KindStation, From: id, Text: text}
}

// Split returns an event branching child off parent, immediately to the
// parent's right.
func Split(parent, child TrackID) Event {
	return Event{Kind: KindSplit, From: parent, To: child}
}

// Join returns an event merging child into target, removing child.
func Join(child, target TrackID) Event {
	return Event{Kind: KindJoin, From: child, To: target}
}
