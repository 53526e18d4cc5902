package metro

import (
	"slices"

	"github.com/delehef/metro/pkg/event"
)

// Track is a handle on one logical rail of a Metro. Handles are cheap
// values: several may reference the same id, and a mutation through any
// alias is visible through all of them.
//
// A handle does not pin its track. Once the id leaves the active set
// (Stop, or being the child side of Join) the handle is dangling and
// every lifecycle call on it degrades to a safe no-op. Creating a new
// track with the same id makes the old handles live again.
type Track struct {
	metro *Metro
	id    event.TrackID
}

// ID returns the track id this handle references.
func (t *Track) ID() event.TrackID {
	return t.id
}

// IsDangling reports whether the referenced id has left the active set.
func (t *Track) IsDangling() bool {
	return !t.metro.isActive(t.id)
}

// AddStation logs a station tied to this track. The text may span
// multiple lines; only the first rendered line highlights the rail. On a
// dangling handle the text still renders, just tied to no rail.
func (t *Track) AddStation(text string) {
	t.metro.events = append(t.metro.events, event.Station(t.id, text))
}

// Split creates a new track with the next counter id, branching off this
// one immediately to its right.
func (t *Track) Split() *Track {
	return t.SplitWithID(t.metro.issueID())
}

// SplitWithID creates a new track with a specific id, branching off this
// one. If id is already active the returned handle aliases the existing
// track and no event is logged. If this handle is dangling the branch
// point is gone, so the new track simply starts in the rightmost column.
func (t *Track) SplitWithID(id event.TrackID) *Track {
	m := t.metro
	if m.isActive(id) {
		return &Track{metro: m, id: id}
	}
	if t.IsDangling() {
		m.active = append(m.active, id)
		m.events = append(m.events, event.Start(id))
		return &Track{metro: m, id: id}
	}
	pos := slices.Index(m.active, t.id)
	m.active = slices.Insert(m.active, pos+1, id)
	m.events = append(m.events, event.Split(t.id, id))
	return &Track{metro: m, id: id}
}

// Join merges this track into target and removes it; the id becomes
// reusable. A degenerate join (nil target, a target from another Metro, a
// dangling target, or target == self) cannot be drawn as a merge and is
// logged as a stop instead. On a dangling handle Join is a no-op.
//
// The handle is dangling afterwards; further lifecycle calls through it
// or any alias are no-ops.
func (t *Track) Join(target *Track) {
	m := t.metro
	if !m.deactivate(t.id) {
		return
	}
	if target == nil || target.metro != m || target.id == t.id || !m.isActive(target.id) {
		m.events = append(m.events, event.Stop(t.id))
		return
	}
	m.events = append(m.events, event.Join(t.id, target.id))
}

// Stop terminates the track and removes it from the active set; the id
// becomes reusable. Exactly one stop event is logged per track lifetime:
// when several aliases exist, only the call that actually removes the id
// logs, and the rest are no-ops.
func (t *Track) Stop() {
	if t.metro.deactivate(t.id) {
		t.metro.events = append(t.metro.events, event.Stop(t.id))
	}
}
