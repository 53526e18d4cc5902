// Package render turns an ordered event log into a metro-line text
// diagram.
//
// # Overview
//
// Rendering is a pure, deterministic replay: [ToWriter] walks the log
// front to back while maintaining the ordered list of active tracks
// (column index = render position), emitting one or more rows per event.
// The same log and settings always produce byte-identical output, so
// results are safe to cache or re-render.
//
// Three sinks are provided:
//
//   - [ToWriter]: stream rows to any io.Writer, propagating its errors
//   - [ToBytes]: render into an owned byte slice
//   - [ToString]: render into an owned string
//
// # Settings
//
// [Settings] is an immutable value configured through chainable setters:
//
//	out, err := render.ToString(events,
//	    render.DefaultSettings().Splat(3).Color(false))
//
// Splat stretches the horizontal spacing, Color toggles per-track xterm
// 256-color escapes, and Rounded swaps the square corner glyphs for
// rounded ones. None of them change the layout algorithm.
//
// # Example output
//
// A split, two stations, and a join render as (splat 0, color off):
//
//	╪    Origin
//	│
//	├┐
//	│╪   Branch
//	││
//	├┘
//	╪    Terminus
//	│
//
// # Contract
//
// The replay seeds one default track with id 0. Events referencing ids the
// renderer cannot resolve (a duplicate start, or a stop/split/join through
// an inactive id) indicate a corrupt hand-built log and panic. The metro
// builder package guarantees its logs never do this.
package render
