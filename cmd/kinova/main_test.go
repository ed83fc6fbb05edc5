package main

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwillem/kinova/pkg/kinova"
	"github.com/gwillem/kinova/pkg/robot"
)

func testModule(t *testing.T) *robot.Module {
	t.Helper()
	urdfPath, err := filepath.Abs(filepath.Join("..", "..", "pkg", "kinova", "testdata", "gen3.urdf"))
	require.NoError(t, err)
	m, err := kinova.New(kinova.Config{
		DescriptionPath: filepath.Dir(urdfPath),
		URDFPath:        urdfPath,
		ConvexDir:       t.TempDir(),
	})
	require.NoError(t, err)
	return m
}

func TestRenderInfo(t *testing.T) {
	out, err := renderInfo(testModule(t))
	require.NoError(t, err)

	for _, name := range kinova.AllJoints() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "continuous")
	assert.Contains(t, out, "∞")
	assert.Contains(t, out, "0.959879")
	assert.Contains(t, out, "1.928e-06")
}

func TestRenderCollisions(t *testing.T) {
	out := renderCollisions(testModule(t))

	assert.Contains(t, out, kinova.SphericalWrist1Link)
	assert.Contains(t, out, kinova.ForceSensorName)
	assert.Contains(t, out, kinova.VirtualTorqueSensorName)
	assert.Contains(t, out, "none found")
}

func TestLimitsModel(t *testing.T) {
	s, err := testModule(t).Snapshot()
	require.NoError(t, err)

	m := newLimitsModel(s, velocityView)
	data := m.barData()
	require.Len(t, data, 7)
	assert.Equal(t, "1", data[0].Label)
	assert.Equal(t, 2.0944, data[0].Values[0].Value)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	lm := next.(limitsModel)
	assert.Equal(t, torqueView, lm.view)
	assert.Equal(t, 45.0, lm.barData()[5].Values[0].Value)
	assert.Contains(t, lm.View(), "torque")

	_, cmd := lm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "2.0944", formatFloat(2.0944))
	assert.Equal(t, "-2.15", formatFloat(-2.15))
}
