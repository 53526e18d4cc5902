package metro_test

import (
	"testing"

	"github.com/delehef/metro/pkg/event"
	"github.com/delehef/metro/pkg/metro"
	"github.com/delehef/metro/pkg/render"
)

var plain = render.DefaultSettings().Splat(1).Color(false)

func kinds(events []event.Event) []event.Kind {
	out := make([]event.Kind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestNewTrackAliasesDefaultTrack(t *testing.T) {
	m := metro.New()

	track := m.NewTrack()
	if track.ID() != 0 {
		t.Errorf("ID() = %d, want 0", track.ID())
	}
	// id 0 is the implicit default track, so no start event is logged
	if evs := m.Events(); len(evs) != 0 {
		t.Errorf("Events() = %v, want empty", evs)
	}

	second := m.NewTrack()
	if second.ID() != 1 {
		t.Errorf("second ID() = %d, want 1", second.ID())
	}
	evs := m.Events()
	if len(evs) != 1 || evs[0].Kind != event.KindStart || evs[0].From != 1 {
		t.Errorf("Events() = %v, want one start of track 1", evs)
	}
}

func TestNewTrackWithID(t *testing.T) {
	m := metro.New()

	track := m.NewTrackWithID(7)
	if track.ID() != 7 {
		t.Errorf("ID() = %d, want 7", track.ID())
	}

	// same id: alias, no second event
	alias := m.NewTrackWithID(7)
	if alias.ID() != 7 {
		t.Errorf("alias ID() = %d, want 7", alias.ID())
	}
	if evs := m.Events(); len(evs) != 1 {
		t.Errorf("Events() logged %d events, want 1", len(evs))
	}
}

func TestGetTrack(t *testing.T) {
	m := metro.New()

	track, ok := m.GetTrack(0)
	if !ok || track.ID() != 0 {
		t.Fatalf("GetTrack(0) = %v, %v; want default track", track, ok)
	}

	if _, ok := m.GetTrack(9); ok {
		t.Error("GetTrack(9) = ok for an id never created")
	}

	// no events for lookups
	if evs := m.Events(); len(evs) != 0 {
		t.Errorf("Events() = %v, want empty", evs)
	}
}

// Scenario: a single station on the default track.
func TestStationOnDefaultTrack(t *testing.T) {
	m := metro.NewWithSettings(plain)
	track := m.NewTrack()
	track.AddStation("Hello")

	out, err := m.RenderString()
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if want := "╪    Hello\n│ \n"; out != want {
		t.Errorf("RenderString() = %q, want %q", out, want)
	}
}

// Scenario: split then join returns the active set to a single rail.
func TestSplitAndJoinRoundTrip(t *testing.T) {
	m := metro.New()
	main := m.NewTrack()

	branch := main.Split()
	if branch.ID() != 1 {
		t.Errorf("branch ID() = %d, want 1", branch.ID())
	}
	if branch.IsDangling() || main.IsDangling() {
		t.Error("freshly split tracks must not dangle")
	}

	branch.Join(main)
	if !branch.IsDangling() {
		t.Error("joined-away track still active")
	}
	if main.IsDangling() {
		t.Error("join target became inactive")
	}

	want := []event.Kind{event.KindSplit, event.KindJoin}
	got := kinds(m.Events())
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("event kinds = %v, want %v", got, want)
	}
}

// Scenario: stopping through two aliases logs exactly one stop event.
func TestDoubleStopThroughAliases(t *testing.T) {
	m := metro.New()
	first := m.NewTrack()
	second, ok := m.GetTrack(first.ID())
	if !ok {
		t.Fatal("GetTrack failed for an active id")
	}

	first.Stop()
	second.Stop() // already gone: no-op

	evs := m.Events()
	if len(evs) != 1 || evs[0].Kind != event.KindStop {
		t.Fatalf("Events() = %v, want exactly one stop", evs)
	}
	if !first.IsDangling() || !second.IsDangling() {
		t.Error("both aliases should dangle after the stop")
	}
}

func TestJoinDegeneratesToStop(t *testing.T) {
	tests := []struct {
		name string
		run  func(m *metro.Metro, track *metro.Track)
	}{
		{"nil target", func(m *metro.Metro, track *metro.Track) {
			track.Join(nil)
		}},
		{"self target", func(m *metro.Metro, track *metro.Track) {
			track.Join(track)
		}},
		{"dangling target", func(m *metro.Metro, track *metro.Track) {
			other := m.NewTrack()
			other.Stop()
			track.Join(other)
		}},
		{"foreign target", func(m *metro.Metro, track *metro.Track) {
			foreign := metro.New()
			track.Join(foreign.NewTrack())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metro.New()
			track := m.NewTrackWithID(4)
			before := len(m.Events())

			tt.run(m, track)

			evs := m.Events()
			last := evs[len(evs)-1]
			if last.Kind != event.KindStop || last.From != 4 {
				t.Errorf("last event = %+v, want stop of track 4", last)
			}
			if !track.IsDangling() {
				t.Error("track still active after degenerate join")
			}
			if got := len(evs) - before; got < 1 {
				t.Errorf("logged %d events, want at least the stop", got)
			}

			// a degenerate-join log must still replay cleanly
			if _, err := m.RenderString(); err != nil {
				t.Errorf("RenderString() error = %v", err)
			}
		})
	}
}

func TestJoinOnDanglingHandleIsNoOp(t *testing.T) {
	m := metro.New()
	main := m.NewTrack()
	branch := main.Split()

	branch.Stop()
	before := m.Events()
	branch.Join(main) // dangling: nothing to merge

	if got := m.Events(); len(got) != len(before) {
		t.Errorf("Events() grew from %d to %d on a dangling join", len(before), len(got))
	}
}

func TestSplitWithID(t *testing.T) {
	m := metro.New()
	main := m.NewTrack()

	branch := main.SplitWithID(9)
	if branch.ID() != 9 {
		t.Errorf("branch ID() = %d, want 9", branch.ID())
	}

	// existing id: alias, no event
	alias := main.SplitWithID(9)
	if alias.ID() != 9 {
		t.Errorf("alias ID() = %d, want 9", alias.ID())
	}
	if n := len(m.Events()); n != 1 {
		t.Errorf("logged %d events, want 1", n)
	}
}

func TestSplitFromDanglingParentStartsTrack(t *testing.T) {
	m := metro.New()
	main := m.NewTrack()
	main.Stop()

	branch := main.Split()
	if branch.IsDangling() {
		t.Fatal("track from dangling split is not active")
	}

	evs := m.Events()
	last := evs[len(evs)-1]
	if last.Kind != event.KindStart || last.From != branch.ID() {
		t.Errorf("last event = %+v, want start of track %d", last, branch.ID())
	}
	if _, err := m.RenderString(); err != nil {
		t.Errorf("RenderString() error = %v", err)
	}
}

func TestIDReuseAfterStop(t *testing.T) {
	m := metro.New()
	track := m.NewTrackWithID(3)
	track.Stop()

	if !track.IsDangling() {
		t.Fatal("stopped track still active")
	}

	revived := m.NewTrackWithID(3)
	if revived.IsDangling() {
		t.Fatal("revived track not active")
	}
	// the old handle aliases the new track again
	if track.IsDangling() {
		t.Error("old handle still dangling after id reuse")
	}
}

func TestEventsSnapshotAndTake(t *testing.T) {
	m := metro.New()
	m.AddStation("note")

	snap := m.Events()
	if len(snap) != 1 {
		t.Fatalf("Events() = %v, want one station", snap)
	}
	snap[0] = event.None()
	if m.Events()[0].Kind != event.KindStation {
		t.Error("mutating the snapshot altered the registry log")
	}

	taken := m.TakeEvents()
	if len(taken) != 1 {
		t.Fatalf("TakeEvents() = %v, want one station", taken)
	}
	if len(m.Events()) != 0 {
		t.Error("registry log not empty after TakeEvents")
	}
}

func TestDetachedStationHighlightsNothing(t *testing.T) {
	m := metro.NewWithSettings(plain)
	m.AddStation("floating")

	out, err := m.RenderString()
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if want := "│    floating\n│ \n"; out != want {
		t.Errorf("RenderString() = %q, want %q", out, want)
	}
}

// Rendering the extracted log must match the registry's own render.
func TestEventsRenderRoundTrip(t *testing.T) {
	m := metro.NewWithSettings(plain)
	main := m.NewTrack()
	main.AddStation("Hello\nWorld")
	branch := main.Split()
	branch.AddStation("side")
	other := branch.Split()
	other.Join(main)
	branch.Stop()

	direct, err := m.RenderString()
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	viaLog, err := render.ToString(m.Events(), plain)
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}

	if direct != viaLog {
		t.Errorf("registry render = %q, log render = %q", direct, viaLog)
	}
}

// Replaying any builder-produced log must never put a duplicate id in the
// active column list. The replay here mirrors the renderer's bookkeeping.
func TestBuilderLogsKeepActiveListDuplicateFree(t *testing.T) {
	m := metro.New()
	main := m.NewTrack()
	a := main.Split()
	b := a.Split()
	c := m.NewTrackWithID(10)
	a.Join(main)
	b.Stop()
	d := m.NewTrack() // reuses nothing, fresh id
	d.Join(c)
	c.Stop()
	main.AddStation("end")

	active := []event.TrackID{0}
	for _, ev := range m.Events() {
		switch ev.Kind {
		case event.KindStart:
			active = appendUnique(t, active, ev.From)
		case event.KindStartMany:
			for _, id := range ev.Tracks {
				active = appendUnique(t, active, id)
			}
		case event.KindSplit:
			active = appendUnique(t, active, ev.To)
		case event.KindStop, event.KindJoin:
			active = removePresent(t, active, ev.From)
		}
	}
}

func appendUnique(t *testing.T, active []event.TrackID, id event.TrackID) []event.TrackID {
	t.Helper()
	for _, a := range active {
		if a == id {
			t.Fatalf("track %d activated twice", id)
		}
	}
	return append(active, id)
}

func removePresent(t *testing.T, active []event.TrackID, id event.TrackID) []event.TrackID {
	t.Helper()
	for i, a := range active {
		if a == id {
			return append(active[:i], active[i+1:]...)
		}
	}
	t.Fatalf("track %d removed while inactive", id)
	return active
}
