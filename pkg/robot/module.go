// Package robot describes a robot for a modeling framework: the kinematic
// skeleton, joint bounds, actuator parameters, sensors, self-collision pairs
// and default posture. Robot descriptions register themselves by name.
package robot

import (
	"github.com/pkg/errors"

	"github.com/gwillem/kinova/pkg/rbd"
	"github.com/gwillem/kinova/pkg/urdf"
)

// Module is a robot description. It is filled once by a constructor and only
// read afterwards.
type Module struct {
	Name            string
	DescriptionPath string
	URDFPath        string
	// RealURDF is the URDF describing the physical robot, which may differ
	// from URDFPath when the model is simplified.
	RealURDF string

	MB     *rbd.MultiBody
	Bounds Bounds

	ConvexHulls  map[string]ConvexHull
	ForceSensors []ForceSensor
	BodySensors  []BodySensor
	Devices      []Device

	MinimalSelfCollisions []Collision
	CommonSelfCollisions  []Collision

	// DefaultAttitude is the floating base pose: quaternion w, x, y, z then
	// translation x, y, z.
	DefaultAttitude [7]float64
	// Stance holds the explicit default joint values. Joints absent from it
	// fall back to DefaultJointValue.
	Stance map[string][]float64
}

// New returns an empty module for the robot description at path.
func New(path, name string) *Module {
	return &Module{
		Name:            name,
		DescriptionPath: path,
		ConvexHulls:     make(map[string]ConvexHull),
		Stance:          make(map[string][]float64),
		DefaultAttitude: [7]float64{1, 0, 0, 0, 0, 0, 0},
	}
}

// InitFromURDF parses the URDF at URDFPath and initialises the module from it.
func (m *Module) InitFromURDF(fixedBase bool) error {
	if m.URDFPath == "" {
		return errors.New("urdf path not set")
	}
	parsed, err := urdf.ParseFile(m.URDFPath)
	if err != nil {
		return err
	}
	mb, limits, err := rbd.FromURDF(parsed, fixedBase)
	if err != nil {
		return errors.Wrap(err, "build skeleton")
	}
	return m.Init(mb, limits)
}

// Init sets the skeleton and fills the bounds of every joint from limits. A
// body sensor named FloatingBase is attached to the root body.
func (m *Module) Init(mb *rbd.MultiBody, limits *rbd.Limits) error {
	if mb == nil || len(mb.Bodies) == 0 {
		return errors.New("skeleton has no bodies")
	}
	if limits == nil {
		return errors.New("no joint limits")
	}
	m.MB = mb
	m.Bounds = newBounds(mb, limits)
	m.BodySensors = []BodySensor{{
		Name:      FloatingBaseSensor,
		Body:      mb.Bodies[0].Name,
		Transform: rbd.Identity(),
	}}
	return nil
}

// SetGearRatio sets the actuator gear ratio of a one-DoF joint.
func (m *Module) SetGearRatio(name string, gr float64) error {
	if gr <= 0 {
		return errors.Errorf("joint %q: gear ratio must be positive, got %g", name, gr)
	}
	i, err := m.singleDoFJoint(name)
	if err != nil {
		return err
	}
	return m.MB.SetJointGearRatio(i, gr)
}

// SetRotorInertia sets the actuator rotor inertia of a one-DoF joint.
func (m *Module) SetRotorInertia(name string, ir float64) error {
	if ir <= 0 {
		return errors.Errorf("joint %q: rotor inertia must be positive, got %g", name, ir)
	}
	i, err := m.singleDoFJoint(name)
	if err != nil {
		return err
	}
	return m.MB.SetJointRotorInertia(i, ir)
}

func (m *Module) singleDoFJoint(name string) (int, error) {
	if m.MB == nil {
		return -1, errors.New("module not initialised")
	}
	i, err := m.MB.JointIndexByName(name)
	if err != nil {
		return -1, err
	}
	if dof := m.MB.Joints[i].DoF(); dof != 1 {
		return -1, errors.Errorf("joint %q has %d dof, expected 1", name, dof)
	}
	return i, nil
}

// Joints returns the names of the joints that carry at least one DoF, in
// skeleton order.
func (m *Module) Joints() []string {
	if m.MB == nil {
		return nil
	}
	var names []string
	for _, j := range m.MB.Joints {
		if j.DoF() > 0 {
			names = append(names, j.Name)
		}
	}
	return names
}

// Validate checks that every actuated joint has complete bounds and positive
// actuator parameters, and that sensors and collisions refer to known bodies.
func (m *Module) Validate() error {
	if m.MB == nil {
		return errors.New("module not initialised")
	}
	for _, j := range m.MB.Joints {
		dof := j.DoF()
		for i, table := range m.Bounds.tables() {
			if got := len(table[j.Name]); got != dof {
				return errors.Errorf("joint %q: bound table %d has %d entries, expected %d", j.Name, i, got, dof)
			}
		}
		if dof > 0 && j.GearRatio <= 0 {
			return errors.Errorf("joint %q: non-positive gear ratio %g", j.Name, j.GearRatio)
		}
	}
	for _, fs := range m.ForceSensors {
		if !m.MB.HasBody(fs.ParentBody) {
			return errors.Errorf("force sensor %q: unknown body %q", fs.Name, fs.ParentBody)
		}
	}
	for _, bs := range m.BodySensors {
		if !m.MB.HasBody(bs.Body) {
			return errors.Errorf("body sensor %q: unknown body %q", bs.Name, bs.Body)
		}
	}
	if err := m.checkCollisions(m.MinimalSelfCollisions); err != nil {
		return err
	}
	return m.checkCollisions(m.CommonSelfCollisions)
}
