package metro_test

import (
	"fmt"

	"github.com/delehef/metro/pkg/metro"
	"github.com/delehef/metro/pkg/render"
)

func ExampleMetro() {
	m := metro.NewWithSettings(render.DefaultSettings().Splat(0).Color(false))

	main := m.NewTrack() // the implicit default track, id 0
	main.AddStation("Station 1")

	branch := main.Split()
	branch.AddStation("Station 2")
	branch.Join(main)

	main.AddStation("Station 3")

	out, err := m.RenderString()
	if err != nil {
		panic(err)
	}
	fmt.Print(out)
	// Output:
	// ╪    Station 1
	// │
	// ├┐
	// │╪   Station 2
	// ││
	// ├┘
	// ╪    Station 3
	// │
}

func ExampleTrack_IsDangling() {
	m := metro.New()

	track := m.NewTrack()
	alias, _ := m.GetTrack(track.ID())

	fmt.Println(track.IsDangling(), alias.IsDangling())

	track.Stop()
	fmt.Println(track.IsDangling(), alias.IsDangling())

	// a new track with the same id revives every handle
	m.NewTrackWithID(track.ID())
	fmt.Println(track.IsDangling(), alias.IsDangling())

	// Output:
	// false false
	// true true
	// false false
}
