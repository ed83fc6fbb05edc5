package robot

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotSaveAndLoad(t *testing.T) {
	m := newTestModule(t)
	require.NoError(t, m.SetGearRatio("shoulder", 50))
	require.NoError(t, m.SetStance("elbow", 1.2))
	require.NoError(t, m.SetSelfCollisions(
		[]Collision{{Body1: "base", Body2: "wrist", IDist: 0.03, SDist: 0.015}}, nil))
	m.Devices = append(m.Devices, NewVirtualTorqueSensor("virt", 3))

	path := filepath.Join(t.TempDir(), "arm.yaml")
	require.NoError(t, m.SaveTo(path))

	s, err := LoadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, "arm", s.Name)
	require.Len(t, s.Joints, 3, "fixed joints are not listed")

	shoulder, ok := s.Joint("shoulder")
	require.True(t, ok)
	assert.Equal(t, "revolute", shoulder.Type)
	assert.Equal(t, [2]float64{-1.5, 2.0}, shoulder.Position)
	assert.Equal(t, [2]float64{-30, 30}, shoulder.Torque)
	assert.Equal(t, 50.0, shoulder.GearRatio)

	roll, ok := s.Joint("roll")
	require.True(t, ok)
	assert.Equal(t, "continuous", roll.Type)
	assert.True(t, math.IsInf(roll.Position[1], 1))

	assert.Equal(t, map[string][]float64{"elbow": {1.2}}, s.Stance)
	assert.Equal(t, []DeviceSnapshot{{Name: "virt", Kind: "VirtualTorqueSensor"}}, s.Devices)
	assert.Equal(t, []CollisionSnapshot{{Body1: "base", Body2: "wrist", IDist: 0.03, SDist: 0.015}}, s.MinimalSelfCols)
	assert.Empty(t, s.CommonSelfCols)
	assert.Equal(t, []string{FloatingBaseSensor}, s.BodySensors)
	assert.Equal(t, []float64{1, 0, 0, 0, 0, 0, 0}, s.DefaultAttitude)

	_, ok = s.Joint("flange")
	assert.False(t, ok)
}

func TestLoadSnapshotMissing(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
