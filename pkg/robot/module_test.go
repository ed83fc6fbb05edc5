package robot

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwillem/kinova/pkg/rbd"
	"github.com/gwillem/kinova/pkg/urdf"
)

const armURDF = `<robot name="arm">
  <link name="base"/>
  <link name="upper"/>
  <link name="lower"/>
  <link name="wrist"/>
  <link name="tool"/>
  <joint name="shoulder" type="revolute">
    <parent link="base"/><child link="upper"/>
    <axis xyz="0 0 1"/>
    <limit lower="-1.5" upper="2.0" effort="30" velocity="1.2"/>
  </joint>
  <joint name="elbow" type="revolute">
    <parent link="upper"/><child link="lower"/>
    <limit lower="0.5" upper="1.5" effort="10" velocity="2"/>
  </joint>
  <joint name="roll" type="continuous">
    <parent link="lower"/><child link="wrist"/>
    <limit effort="5" velocity="3"/>
  </joint>
  <joint name="flange" type="fixed">
    <parent link="wrist"/><child link="tool"/>
  </joint>
</robot>`

func newTestModule(t *testing.T) *Module {
	t.Helper()
	parsed, err := urdf.Parse(strings.NewReader(armURDF))
	require.NoError(t, err)
	mb, limits, err := rbd.FromURDF(parsed, true)
	require.NoError(t, err)

	m := New("/tmp/arm", "arm")
	require.NoError(t, m.Init(mb, limits))
	return m
}

func TestInitRejectsIncompleteSkeleton(t *testing.T) {
	parsed, err := urdf.Parse(strings.NewReader(armURDF))
	require.NoError(t, err)
	mb, limits, err := rbd.FromURDF(parsed, true)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mb     *rbd.MultiBody
		limits *rbd.Limits
		want   string
	}{
		{"nil skeleton", nil, limits, "no bodies"},
		{"empty skeleton", &rbd.MultiBody{}, limits, "no bodies"},
		{"nil limits", mb, nil, "no joint limits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New("/tmp/arm", "arm")
			err := m.Init(tt.mb, tt.limits)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Nil(t, m.MB)
		})
	}
}

func TestInitBoundsFromURDF(t *testing.T) {
	m := newTestModule(t)

	q, err := m.Bounds.Position("shoulder")
	require.NoError(t, err)
	assert.Equal(t, Bound{Lower: -1.5, Upper: 2.0}, q)

	v, err := m.Bounds.Velocity("shoulder")
	require.NoError(t, err)
	assert.Equal(t, Bound{Lower: -1.2, Upper: 1.2}, v)

	tq, err := m.Bounds.Torque("elbow")
	require.NoError(t, err)
	assert.Equal(t, Bound{Lower: -10, Upper: 10}, tq)

	roll, err := m.Bounds.Position("roll")
	require.NoError(t, err)
	assert.True(t, math.IsInf(roll.Lower, -1))
	assert.True(t, math.IsInf(roll.Upper, 1))

	// Zero-DoF joints still get (empty) entries in every table.
	for i, table := range m.Bounds.tables() {
		v, ok := table["flange"]
		assert.True(t, ok, "table %d", i)
		assert.Empty(t, v)
	}

	require.NoError(t, m.Validate())
	assert.Equal(t, []string{"shoulder", "elbow", "roll"}, m.Joints())
}

func TestInitAddsFloatingBaseSensor(t *testing.T) {
	m := newTestModule(t)
	require.Len(t, m.BodySensors, 1)
	assert.Equal(t, FloatingBaseSensor, m.BodySensors[0].Name)
	assert.Equal(t, "base", m.BodySensors[0].Body)
}

func TestUpdateLimits(t *testing.T) {
	m := newTestModule(t)

	require.NoError(t, m.UpdateJointLimit("shoulder", -1.0, 1.25))
	require.NoError(t, m.UpdateVelocityLimit("shoulder", 0.5))
	require.NoError(t, m.UpdateTorqueLimit("shoulder", 12))

	if diff := cmp.Diff([]float64{-1.0}, m.Bounds.PositionLower["shoulder"]); diff != "" {
		t.Errorf("position lower mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []float64{1.25}, m.Bounds.PositionUpper["shoulder"])
	assert.Equal(t, []float64{-0.5}, m.Bounds.VelocityLower["shoulder"])
	assert.Equal(t, []float64{0.5}, m.Bounds.VelocityUpper["shoulder"])
	assert.Equal(t, []float64{-12}, m.Bounds.TorqueLower["shoulder"])
	assert.Equal(t, []float64{12}, m.Bounds.TorqueUpper["shoulder"])

	// Other joints are untouched.
	assert.Equal(t, []float64{0.5}, m.Bounds.PositionLower["elbow"])
}

func TestUpdateLimitsFailLoudly(t *testing.T) {
	m := newTestModule(t)

	tests := []struct {
		name string
		fn   func() error
		msg  string
	}{
		{"unknown joint position", func() error { return m.UpdateJointLimit("nope", -1, 1) }, `no joint named "nope"`},
		{"unknown joint velocity", func() error { return m.UpdateVelocityLimit("nope", 1) }, `no joint named "nope"`},
		{"unknown joint torque", func() error { return m.UpdateTorqueLimit("nope", 1) }, `no joint named "nope"`},
		{"fixed joint", func() error { return m.UpdateVelocityLimit("flange", 1) }, "has 0 dof"},
		{"lower not negative", func() error { return m.UpdateJointLimit("shoulder", 0, 1) }, "low < 0 < up"},
		{"upper not positive", func() error { return m.UpdateJointLimit("shoulder", -1, 0) }, "low < 0 < up"},
		{"zero velocity", func() error { return m.UpdateVelocityLimit("shoulder", 0) }, "must be positive"},
		{"negative torque", func() error { return m.UpdateTorqueLimit("shoulder", -3) }, "must be positive"},
		{"NaN velocity", func() error { return m.UpdateVelocityLimit("shoulder", math.NaN()) }, "must be positive"},
		{"unknown gear ratio", func() error { return m.SetGearRatio("nope", 100) }, `no joint named "nope"`},
		{"zero gear ratio", func() error { return m.SetGearRatio("shoulder", 0) }, "must be positive"},
		{"fixed rotor inertia", func() error { return m.SetRotorInertia("flange", 1e-6) }, "has 0 dof"},
		{"zero rotor inertia", func() error { return m.SetRotorInertia("shoulder", 0) }, "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestActuatorParameters(t *testing.T) {
	m := newTestModule(t)
	require.NoError(t, m.SetGearRatio("elbow", 100))
	require.NoError(t, m.SetRotorInertia("elbow", 1.5e-6))

	i, err := m.MB.JointIndexByName("elbow")
	require.NoError(t, err)
	assert.Equal(t, 100.0, m.MB.Joints[i].GearRatio)
	assert.Equal(t, 1.5e-6, m.MB.Joints[i].RotorInertia)

	j, err := m.MB.JointIndexByName("shoulder")
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.MB.Joints[j].GearRatio)
	assert.Zero(t, m.MB.Joints[j].RotorInertia)
}

func TestUninitialisedModule(t *testing.T) {
	m := New("/tmp/arm", "arm")
	assert.Error(t, m.Validate())
	assert.Error(t, m.SetGearRatio("shoulder", 1))
	assert.Error(t, m.UpdateVelocityLimit("shoulder", 1))
	_, err := m.Snapshot()
	assert.Error(t, err)
	assert.Nil(t, m.Joints())
}

func TestInitFromURDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arm.urdf")
	require.NoError(t, os.WriteFile(path, []byte(armURDF), 0644))

	m := New(filepath.Dir(path), "arm")
	assert.Error(t, m.InitFromURDF(true))

	m.URDFPath = path
	require.NoError(t, m.InitFromURDF(true))
	assert.Equal(t, rbd.Fixed, m.MB.Joints[0].Type)

	m.URDFPath = filepath.Join(t.TempDir(), "missing.urdf")
	assert.Error(t, m.InitFromURDF(true))
}

func TestSelfCollisions(t *testing.T) {
	m := newTestModule(t)

	minimal := []Collision{{Body1: "base", Body2: "wrist", IDist: 0.03, SDist: 0.015}}
	require.NoError(t, m.SetSelfCollisions(minimal, minimal))
	assert.Equal(t, minimal, m.MinimalSelfCollisions)
	assert.Equal(t, minimal, m.CommonSelfCollisions)

	minimal[0].Body1 = "upper"
	assert.Equal(t, "base", m.MinimalSelfCollisions[0].Body1, "stored sets are copies")

	err := m.SetSelfCollisions([]Collision{{Body1: "base", Body2: "ghost", IDist: 0.03, SDist: 0.015}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown body "ghost"`)

	err = m.SetSelfCollisions(nil, []Collision{{Body1: "base", Body2: "base", IDist: 0.03, SDist: 0.015}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "common self collisions")

	err = m.SetSelfCollisions([]Collision{{Body1: "base", Body2: "tool", IDist: 0.01, SDist: 0.02}}, nil)
	assert.Error(t, err)
}

func TestValidateCatchesBadSensor(t *testing.T) {
	m := newTestModule(t)
	m.ForceSensors = append(m.ForceSensors, ForceSensor{Name: "FT", ParentBody: "ghost", Transform: rbd.Identity()})
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestDevices(t *testing.T) {
	m := newTestModule(t)
	ext := NewExternalTorqueSensor("ext", 3)
	m.Devices = append(m.Devices, ext.Clone(), NewVirtualTorqueSensor("virt", 3).Clone())

	d, ok := m.Device("ext")
	require.True(t, ok)
	assert.Equal(t, "ExternalTorqueSensor", d.Kind())
	assert.NotSame(t, ext, d)

	d, ok = m.Device("virt")
	require.True(t, ok)
	assert.Equal(t, 3, d.(*VirtualTorqueSensor).Size)

	_, ok = m.Device("missing")
	assert.False(t, ok)
}
