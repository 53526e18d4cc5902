// Package metro builds metro-line text diagrams through a safe,
// alias-aware track API.
//
// # Overview
//
// A [Metro] is a registry that accumulates an ordered event log (see the
// event package) as tracks are created, annotated, split, joined, and
// stopped. The log is always replayable: the edge cases that make a
// hand-built log panic in the renderer cannot be produced through this
// API - absent ids degrade to no-ops and degenerate joins become stops
// before anything reaches the log.
//
//	m := metro.New()
//
//	main := m.NewTrack() // the implicit default track, id 0
//	main.AddStation("Station 1")
//
//	branch := main.Split()
//	branch.AddStation("Station 2")
//	branch.Join(main)
//
//	main.AddStation("Station 3")
//
//	out, _ := m.RenderString()
//
// With splat 0 and color off this renders:
//
//	╪    Station 1
//	│
//	├┐
//	│╪   Station 2
//	││
//	├┘
//	╪    Station 3
//	│
//
// # Handles and aliasing
//
// [Track] handles are lightweight (registry, id) references. Looking up
// the same id twice yields aliases of one logical track; stopping through
// one alias makes the others dangling, and [Track.IsDangling] queries
// that state. There is no implicit stop-on-release: a track stays active
// until [Track.Stop] or [Track.Join] removes it.
//
// # Extracting the log
//
// [Metro.Events] snapshots the log (the registry stays usable);
// [Metro.TakeEvents] moves it out. Either slice can be handed to the
// render package directly and produces the same output as the registry's
// own Render methods.
package metro
