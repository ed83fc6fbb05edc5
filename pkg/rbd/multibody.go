// Package rbd holds the kinematic skeleton of a robot: bodies, the joints that
// connect them and per-joint actuator parameters.
package rbd

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gwillem/kinova/pkg/urdf"
)

// RootJoint is the name of the joint attaching the root body to the world.
const RootJoint = "Root"

// JointType is the kind of motion a joint allows.
type JointType int

const (
	Fixed JointType = iota
	Revolute
	Prismatic
	Free
	Planar
)

func (t JointType) String() string {
	switch t {
	case Fixed:
		return "fixed"
	case Revolute:
		return "revolute"
	case Prismatic:
		return "prismatic"
	case Free:
		return "free"
	case Planar:
		return "planar"
	}
	return "unknown"
}

// Body is a rigid body of the skeleton.
type Body struct {
	Name         string
	Mass         float64
	CenterOfMass r3.Vec
	Inertia      [3][3]float64
}

// Joint connects a predecessor body to a successor body.
type Joint struct {
	Name         string
	Type         JointType
	Axis         r3.Vec
	Continuous   bool
	GearRatio    float64
	RotorInertia float64
}

// DoF returns the number of position parameters of the joint.
func (j Joint) DoF() int {
	switch j.Type {
	case Revolute, Prismatic:
		return 1
	case Planar:
		return 3
	case Free:
		return 7
	}
	return 0
}

// MultiBody is a tree of bodies. Joint i moves body i; Pred[i] is the index of
// the body it is attached to, or -1 for the root joint.
type MultiBody struct {
	Bodies []Body
	Joints []Joint
	Pred   []int
	// X_p_i is the static transform from the predecessor body to joint i.
	Transforms []PTransform

	jointIndex map[string]int
	bodyIndex  map[string]int
}

// JointIndexByName returns the index of the named joint.
func (mb *MultiBody) JointIndexByName(name string) (int, error) {
	i, ok := mb.jointIndex[name]
	if !ok {
		return -1, errors.Errorf("no joint named %q", name)
	}
	return i, nil
}

// BodyIndexByName returns the index of the named body.
func (mb *MultiBody) BodyIndexByName(name string) (int, error) {
	i, ok := mb.bodyIndex[name]
	if !ok {
		return -1, errors.Errorf("no body named %q", name)
	}
	return i, nil
}

// HasJoint reports whether the skeleton contains the named joint.
func (mb *MultiBody) HasJoint(name string) bool {
	_, ok := mb.jointIndex[name]
	return ok
}

// HasBody reports whether the skeleton contains the named body.
func (mb *MultiBody) HasBody(name string) bool {
	_, ok := mb.bodyIndex[name]
	return ok
}

// SetJointGearRatio sets the actuator gear ratio of joint i.
func (mb *MultiBody) SetJointGearRatio(i int, gr float64) error {
	if i < 0 || i >= len(mb.Joints) {
		return errors.Errorf("joint index %d out of range", i)
	}
	mb.Joints[i].GearRatio = gr
	return nil
}

// SetJointRotorInertia sets the actuator rotor inertia of joint i.
func (mb *MultiBody) SetJointRotorInertia(i int, ir float64) error {
	if i < 0 || i >= len(mb.Joints) {
		return errors.Errorf("joint index %d out of range", i)
	}
	mb.Joints[i].RotorInertia = ir
	return nil
}

// Limits are the URDF joint limits keyed by joint name, one value per DoF.
// Missing limits are infinite.
type Limits struct {
	Lower    map[string][]float64
	Upper    map[string][]float64
	Velocity map[string][]float64
	Torque   map[string][]float64
}

// FromURDF builds the skeleton of a parsed URDF. Bodies are ordered depth-first
// from the root link, following the joint order of the document.
func FromURDF(robot *urdf.Robot, fixedBase bool) (*MultiBody, *Limits, error) {
	root, err := robot.RootLink()
	if err != nil {
		return nil, nil, err
	}

	children := make(map[string][]*urdf.Joint)
	for i := range robot.Joints {
		j := &robot.Joints[i]
		children[j.ParentLink()] = append(children[j.ParentLink()], j)
	}

	mb := &MultiBody{
		jointIndex: make(map[string]int),
		bodyIndex:  make(map[string]int),
	}
	limits := &Limits{
		Lower:    make(map[string][]float64),
		Upper:    make(map[string][]float64),
		Velocity: make(map[string][]float64),
		Torque:   make(map[string][]float64),
	}

	rootType := Free
	if fixedBase {
		rootType = Fixed
	}
	if err := mb.addBody(robot, root); err != nil {
		return nil, nil, err
	}
	mb.addJoint(Joint{Name: RootJoint, Type: rootType, GearRatio: 1}, -1, Identity())
	limits.add(mb.Joints[0], nil)

	var walk func(link string) error
	walk = func(link string) error {
		pred := mb.bodyIndex[link]
		for _, uj := range children[link] {
			if err := mb.addBody(robot, uj.ChildLink()); err != nil {
				return err
			}
			j, X, err := jointFromURDF(uj)
			if err != nil {
				return err
			}
			mb.addJoint(j, pred, X)
			limits.add(j, uj.Limit)
			if err := walk(uj.ChildLink()); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, nil, err
	}

	if len(mb.Bodies) != len(robot.Links) {
		return nil, nil, errors.Errorf("%d links are not connected to root %q", len(robot.Links)-len(mb.Bodies), root)
	}
	return mb, limits, nil
}

func (mb *MultiBody) addBody(robot *urdf.Robot, name string) error {
	if _, ok := mb.bodyIndex[name]; ok {
		return errors.Errorf("body %q reached twice", name)
	}
	link, _ := robot.Link(name)
	b := Body{Name: name}
	if link != nil && link.Inertial != nil {
		com, err := link.Inertial.Origin.Translation()
		if err != nil {
			return errors.Wrapf(err, "link %q inertial origin", name)
		}
		in := link.Inertial.Inertia
		b.Mass = link.Inertial.Mass.Value
		b.CenterOfMass = vec(com)
		b.Inertia = [3][3]float64{
			{in.IXX, in.IXY, in.IXZ},
			{in.IXY, in.IYY, in.IYZ},
			{in.IXZ, in.IYZ, in.IZZ},
		}
	}
	mb.bodyIndex[name] = len(mb.Bodies)
	mb.Bodies = append(mb.Bodies, b)
	return nil
}

func (mb *MultiBody) addJoint(j Joint, pred int, X PTransform) {
	mb.jointIndex[j.Name] = len(mb.Joints)
	mb.Joints = append(mb.Joints, j)
	mb.Pred = append(mb.Pred, pred)
	mb.Transforms = append(mb.Transforms, X)
}

func jointFromURDF(uj *urdf.Joint) (Joint, PTransform, error) {
	j := Joint{Name: uj.Name, GearRatio: 1}
	switch uj.Type {
	case urdf.Revolute:
		j.Type = Revolute
	case urdf.Continuous:
		j.Type = Revolute
		j.Continuous = true
	case urdf.Prismatic:
		j.Type = Prismatic
	case urdf.Fixed:
		j.Type = Fixed
	case urdf.Floating:
		j.Type = Free
	case urdf.Planar:
		j.Type = Planar
	default:
		return j, PTransform{}, errors.Errorf("joint %q: unsupported type %q", uj.Name, uj.Type)
	}

	axis, err := uj.Axis.Vector()
	if err != nil {
		return j, PTransform{}, errors.Wrapf(err, "joint %q axis", uj.Name)
	}
	j.Axis = vec(axis)

	xyz, err := uj.Origin.Translation()
	if err != nil {
		return j, PTransform{}, errors.Wrapf(err, "joint %q origin", uj.Name)
	}
	rpy, err := uj.Origin.Rotation()
	if err != nil {
		return j, PTransform{}, errors.Wrapf(err, "joint %q origin", uj.Name)
	}
	return j, PTransform{Rotation: RPYToRotation(vec(rpy)), Translation: vec(xyz)}, nil
}

func (l *Limits) add(j Joint, ul *urdf.Limit) {
	dof := j.DoF()
	lower := filled(dof, math.Inf(-1))
	upper := filled(dof, math.Inf(1))
	velocity := filled(dof, math.Inf(1))
	torque := filled(dof, math.Inf(1))
	if ul != nil && dof == 1 {
		if !j.Continuous {
			lower[0] = ul.Lower
			upper[0] = ul.Upper
		}
		if ul.Velocity > 0 {
			velocity[0] = ul.Velocity
		}
		if ul.Effort > 0 {
			torque[0] = ul.Effort
		}
	}
	l.Lower[j.Name] = lower
	l.Upper[j.Name] = upper
	l.Velocity[j.Name] = velocity
	l.Torque[j.Name] = torque
}

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
