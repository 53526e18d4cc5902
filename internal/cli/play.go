package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/delehef/metro/pkg/event"
	"github.com/delehef/metro/pkg/render"
)

// newPlayCmd creates the play command: an interactive player stepping
// through the showcase event log one event at a time.
func newPlayCmd() *cobra.Command {
	var opts settingsOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Step through the showcase event log interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			model := playModel{
				events:   showcase(settings).Events(),
				settings: settings,
			}
			prog := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := prog.Run(); err != nil {
				return fmt.Errorf("run player: %w", err)
			}
			return nil
		},
	}

	opts.install(cmd)
	return cmd
}

// playModel is the bubbletea model for the event player. step is how many
// events of the log are currently replayed; every prefix of a
// builder-produced log is itself a valid log, so re-rendering the prefix
// per frame is always safe.
type playModel struct {
	events   []event.Event
	settings render.Settings
	step     int
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "n", " ":
			if m.step < len(m.events) {
				m.step++
			}
		case "left", "p":
			if m.step > 0 {
				m.step--
			}
		case "r":
			m.step = 0
		case "end":
			m.step = len(m.events)
		}
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("metro"))
	b.WriteString(styleStep.Render(fmt.Sprintf("  event %d/%d", m.step, len(m.events))))
	if m.step > 0 {
		b.WriteString(styleDim.Render("  " + m.events[m.step-1].Kind.String()))
	}
	b.WriteString("\n\n")

	out, err := render.ToString(m.events[:m.step], m.settings)
	if err != nil {
		out = err.Error() + "\n"
	}
	b.WriteString(out)

	b.WriteString("\n")
	b.WriteString(styleDim.Render("→/space advance  ←/p back  r reset  q quit"))
	b.WriteString("\n")
	return b.String()
}
