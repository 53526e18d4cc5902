package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delehef/metro/pkg/event"
	"github.com/delehef/metro/pkg/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metro.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// probe renders a one-row log so settings can be compared by behavior.
func probe(t *testing.T, s render.Settings) string {
	t.Helper()
	out, err := render.ToString([]event.Event{event.None()}, s)
	require.NoError(t, err)
	return out
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[render]
splat = 2
color = false
rounded = true
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Render.Splat)
	assert.Equal(t, 2, *cfg.Render.Splat)
	require.NotNil(t, cfg.Render.Color)
	assert.False(t, *cfg.Render.Color)
	require.NotNil(t, cfg.Render.Rounded)
	assert.True(t, *cfg.Render.Rounded)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, `
[render]
splat = 1
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Render.Splat)
	assert.Nil(t, cfg.Render.Color)
	assert.Nil(t, cfg.Render.Rounded)

	// unset keys keep their defaults
	got := probe(t, cfg.apply(render.DefaultSettings()))
	want := probe(t, render.DefaultSettings().Splat(1))
	assert.Equal(t, want, got)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestResolveFlagsWinOverConfig(t *testing.T) {
	path := writeConfig(t, `
[render]
splat = 2
color = false
`)

	var opts settingsOptions
	cmd := &cobra.Command{Use: "probe"}
	opts.install(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--splat", "0", "--config", path}))

	settings, err := opts.resolve(cmd)
	require.NoError(t, err)

	// splat from the flag, color from the config
	got := probe(t, settings)
	want := probe(t, render.DefaultSettings().Splat(0).Color(false))
	assert.Equal(t, want, got)
}
