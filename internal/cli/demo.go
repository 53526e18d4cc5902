package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/delehef/metro/pkg/metro"
	"github.com/delehef/metro/pkg/render"
)

// newDemoCmd creates the demo command, which renders the showcase diagram
// to stdout.
func newDemoCmd() *cobra.Command {
	var opts settingsOptions

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the showcase diagram to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			settings, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			m := showcase(settings)
			events := m.Events()
			logger.Debugf("replaying %d events", len(events))

			p := newProgress(logger)
			if err := m.Render(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("render diagram: %w", err)
			}
			p.done(fmt.Sprintf("rendered %d events", len(events)))
			return nil
		},
	}

	opts.install(cmd)
	return cmd
}

// settingsOptions holds the rendering flags shared by demo and play.
type settingsOptions struct {
	splat      int
	noColor    bool
	rounded    bool
	configPath string
}

func (o *settingsOptions) install(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.splat, "splat", 5, "glyph spacing factor")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "disable per-track coloring")
	cmd.Flags().BoolVar(&o.rounded, "rounded", false, "use rounded corner glyphs")
	cmd.Flags().StringVar(&o.configPath, "config", "", "TOML config file with a [render] table")
}

// resolve layers the settings sources: defaults, then the config file,
// then explicitly set flags.
func (o *settingsOptions) resolve(cmd *cobra.Command) (render.Settings, error) {
	settings := render.DefaultSettings()

	if o.configPath != "" {
		cfg, err := loadConfig(o.configPath)
		if err != nil {
			return settings, err
		}
		settings = cfg.apply(settings)
	}

	if cmd.Flags().Changed("splat") {
		settings = settings.Splat(o.splat)
	}
	if cmd.Flags().Changed("no-color") {
		settings = settings.Color(!o.noColor)
	}
	if cmd.Flags().Changed("rounded") {
		settings = settings.Rounded(o.rounded)
	}
	return settings, nil
}

// showcase builds the demo diagram: five tracks splitting off one another,
// sixteen stations, one of them detached, with merges and stops along the
// way.
func showcase(settings render.Settings) *metro.Metro {
	m := metro.NewWithSettings(settings)

	track1 := m.NewTrack()
	track1.AddStation("Station 1")
	track1.AddStation("Station 2")
	track1.AddStation("Station 3")

	track2 := track1.Split()
	track2.AddStation("Station 4")

	track3 := track2.Split()
	track2.AddStation("Station 5")
	track3.AddStation("Station 6")

	track1.AddStation("Station 7")
	track2.AddStation("Station 8")
	track3.AddStation("Station 9")

	track4 := track3.Split()
	track5 := track4.Split()

	m.AddStation("Station 10 (Detached)")

	track5.Join(track1)

	track4.AddStation("Station 11")

	track2.Stop()

	track1.AddStation("Station 12")
	track3.AddStation("Station 13")
	track4.AddStation("Station 14")

	track4.Join(track1)

	track3.AddStation("Station 15")
	track3.Stop()

	track1.AddStation("Station 16")

	return m
}
