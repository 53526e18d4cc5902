package metro

import (
	"io"
	"slices"

	"github.com/delehef/metro/pkg/event"
	"github.com/delehef/metro/pkg/render"
)

// Metro is the registry behind the builder API. It owns the append-only
// event log, the ordered set of currently active track ids, and the
// monotonic id counter. Track handles are lightweight references into the
// registry; any number of handles may alias the same id.
//
// Metro is not safe for concurrent use. All operations are short and
// non-blocking, so a single coarse lock around the registry suffices if
// one is ever needed.
type Metro struct {
	settings render.Settings
	events   []event.Event

	// active mirrors the renderer's column list, seeded with the implicit
	// default track 0 so the builder never starts id 0 a second time.
	active []event.TrackID

	nextID event.TrackID
}

// New creates an empty Metro with default rendering settings.
// The implicit default track with id 0 is already active.
func New() *Metro {
	return NewWithSettings(render.DefaultSettings())
}

// NewWithSettings creates an empty Metro rendering with s.
func NewWithSettings(s render.Settings) *Metro {
	return &Metro{
		settings: s,
		active:   []event.TrackID{0},
	}
}

// issueID returns the next counter id. The counter only moves forward;
// freed ids are reused solely through NewTrackWithID.
func (m *Metro) issueID() event.TrackID {
	if m.nextID == event.Detached {
		panic("metro: track id space exhausted")
	}
	id := m.nextID
	m.nextID++
	return id
}

// NewTrack creates a track with the next counter id. If that id is still
// active (the counter starts at the implicit default track 0), the
// returned handle aliases the existing track and no event is logged.
func (m *Metro) NewTrack() *Track {
	return m.NewTrackWithID(m.issueID())
}

// NewTrackWithID creates a track with a specific id. If the id is already
// active the returned handle aliases the existing track and no event is
// logged; otherwise the track starts in the rightmost column.
func (m *Metro) NewTrackWithID(id event.TrackID) *Track {
	if !slices.Contains(m.active, id) {
		m.active = append(m.active, id)
		m.events = append(m.events, event.Start(id))
	}
	return &Track{metro: m, id: id}
}

// GetTrack returns an aliasing handle for id, or false if no track with
// that id is currently active. No event is logged either way.
func (m *Metro) GetTrack(id event.TrackID) (*Track, bool) {
	if !slices.Contains(m.active, id) {
		return nil, false
	}
	return &Track{metro: m, id: id}, true
}

// AddStation logs a station that is tied to no track: the text renders in
// the usual text column but no rail is highlighted.
func (m *Metro) AddStation(text string) {
	m.events = append(m.events, event.Station(event.Detached, text))
}

// Events returns a snapshot of the accumulated log. The registry keeps
// its own copy and can continue to be used.
func (m *Metro) Events() []event.Event {
	return slices.Clone(m.events)
}

// TakeEvents moves the accumulated log out of the registry, leaving it
// empty. Active tracks and the id counter are untouched.
func (m *Metro) TakeEvents() []event.Event {
	evs := m.events
	m.events = nil
	return evs
}

// Render replays the accumulated log to w using the registry's settings.
func (m *Metro) Render(w io.Writer) error {
	return render.ToWriter(w, m.events, m.settings)
}

// RenderBytes renders the accumulated log into a byte slice.
func (m *Metro) RenderBytes() ([]byte, error) {
	return render.ToBytes(m.events, m.settings)
}

// RenderString renders the accumulated log into a string.
func (m *Metro) RenderString() (string, error) {
	return render.ToString(m.events, m.settings)
}

// isActive reports whether id currently occupies a column.
func (m *Metro) isActive(id event.TrackID) bool {
	return slices.Contains(m.active, id)
}

// deactivate removes id from the active set, reporting whether it was
// present. Exactly one caller observes true per lifetime of a track, which
// is what keeps stop idempotent across aliases.
func (m *Metro) deactivate(id event.TrackID) bool {
	pos := slices.Index(m.active, id)
	if pos < 0 {
		return false
	}
	m.active = slices.Delete(m.active, pos, pos+1)
	return true
}
