package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetofonta/asd/generator"
	"github.com/tetofonta/asd/ioformat"
)

const multiDoc = `
kind: settings
id: a
obstacles: 5
---
kind: settings
id: b
obstacles: 9
time_max: 50
---
kind: instance
id: a
`

func TestLoadDocument_FiltersByKindAndID(t *testing.T) {
	var s ioformat.Settings
	err := ioformat.LoadDocument(strings.NewReader(multiDoc), "settings", "b", &s)
	require.NoError(t, err)
	assert.Equal(t, "b", s.ID)
	require.NotNil(t, s.Obstacles)
	assert.Equal(t, 9, *s.Obstacles)
	require.NotNil(t, s.TimeMax)
	assert.Equal(t, 50, *s.TimeMax)
}

func TestLoadDocument_NoMatchIsError(t *testing.T) {
	var s ioformat.Settings
	err := ioformat.LoadDocument(strings.NewReader(multiDoc), "settings", "nope", &s)
	assert.ErrorIs(t, err, ioformat.ErrNoMatchingDocument)
}

func TestLoadDocument_EmptyIDMatchesFirstOfKind(t *testing.T) {
	var s ioformat.Settings
	err := ioformat.LoadDocument(strings.NewReader(multiDoc), "settings", "", &s)
	require.NoError(t, err)
	assert.Equal(t, "a", s.ID)
}

func TestSettingsToConfig_AppliesSpecDefaultsWhenUnset(t *testing.T) {
	cfg := ioformat.SettingsToConfig(ioformat.Settings{ID: "x"})
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
	assert.Equal(t, 30, cfg.Obstacles)
	assert.Equal(t, 100, cfg.TimeMax)
	assert.Equal(t, 1, cfg.AgentCount)
}

func TestSettingsToConfig_OverridesProvidedFields(t *testing.T) {
	obstacles := 7
	s := ioformat.Settings{
		ID:        "y",
		Obstacles: &obstacles,
		Size:      &ioformat.SizeSettings{Width: 20, Height: 15},
		Agents:    &ioformat.AgentsSettings{Number: 3, StopProbability: 0.2},
	}
	cfg := ioformat.SettingsToConfig(s)
	assert.Equal(t, 7, cfg.Obstacles)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 15, cfg.Height)
	assert.Equal(t, 3, cfg.AgentCount)
	assert.InDelta(t, 0.2, cfg.StopProbability, 1e-9)
}

func TestInstanceRoundTrip_NoiseGrid(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.Seed = 7
	cfg.Width, cfg.Height = 6, 6
	cfg.Obstacles = 4
	cfg.TimeMax = 5
	cfg.AgentCount = 1

	res, err := generator.Run(cfg)
	require.NoError(t, err)

	inst := ioformat.InstanceFromResult(cfg, res)

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteDocument(&buf, inst))

	var decoded ioformat.Instance
	require.NoError(t, ioformat.LoadDocument(&buf, "instance", "", &decoded))

	g, err := ioformat.InstanceToGrid(decoded)
	require.NoError(t, err)
	assert.Equal(t, cfg.Width, g.Width())
	assert.Equal(t, cfg.Height, g.Height())

	blocked := 0
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if g.Blocked(x, y) {
				blocked++
			}
		}
	}
	assert.Equal(t, cfg.Obstacles, blocked)

	mgr := ioformat.InstanceToManager(decoded)
	require.Len(t, mgr.Agents(), 1)
}

func TestInstanceToGrid_RejectsAmbiguousSource(t *testing.T) {
	custom := [][2]int{{0, 0}}
	inst := ioformat.Instance{
		Grid: ioformat.GridConfig{
			Width: 3, Height: 3,
			Noise:  &ioformat.NoiseConfig{},
			Custom: &custom,
		},
	}
	_, err := ioformat.InstanceToGrid(inst)
	assert.ErrorIs(t, err, ioformat.ErrConfigInvalid)
}

func TestInstanceToGrid_RejectsMissingSource(t *testing.T) {
	inst := ioformat.Instance{
		Grid: ioformat.GridConfig{Width: 3, Height: 3},
	}
	_, err := ioformat.InstanceToGrid(inst)
	assert.ErrorIs(t, err, ioformat.ErrConfigInvalid)
}

func TestInstanceToGrid_CustomObstacles(t *testing.T) {
	custom := [][2]int{{1, 1}, {2, 2}}
	inst := ioformat.Instance{
		Grid: ioformat.GridConfig{Width: 4, Height: 4, Custom: &custom},
	}
	g, err := ioformat.InstanceToGrid(inst)
	require.NoError(t, err)
	assert.True(t, g.Blocked(1, 1))
	assert.True(t, g.Blocked(2, 2))
	assert.False(t, g.Blocked(0, 0))
}
