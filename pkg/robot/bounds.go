package robot

import (
	"github.com/pkg/errors"

	"github.com/gwillem/kinova/pkg/rbd"
)

// Bounds holds the joint limits keyed by joint name, one value per DoF.
type Bounds struct {
	PositionLower map[string][]float64
	PositionUpper map[string][]float64
	VelocityLower map[string][]float64
	VelocityUpper map[string][]float64
	TorqueLower   map[string][]float64
	TorqueUpper   map[string][]float64
}

// Bound is the range of a single-DoF joint.
type Bound struct {
	Lower float64
	Upper float64
}

// Contains reports whether v lies within the closed range.
func (b Bound) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// Mid returns the middle of the range.
func (b Bound) Mid() float64 {
	return (b.Lower + b.Upper) / 2
}

func newBounds(mb *rbd.MultiBody, limits *rbd.Limits) Bounds {
	b := Bounds{
		PositionLower: make(map[string][]float64, len(mb.Joints)),
		PositionUpper: make(map[string][]float64, len(mb.Joints)),
		VelocityLower: make(map[string][]float64, len(mb.Joints)),
		VelocityUpper: make(map[string][]float64, len(mb.Joints)),
		TorqueLower:   make(map[string][]float64, len(mb.Joints)),
		TorqueUpper:   make(map[string][]float64, len(mb.Joints)),
	}
	for _, j := range mb.Joints {
		b.PositionLower[j.Name] = copyOrEmpty(limits.Lower[j.Name], j.DoF())
		b.PositionUpper[j.Name] = copyOrEmpty(limits.Upper[j.Name], j.DoF())
		b.VelocityLower[j.Name] = negated(copyOrEmpty(limits.Velocity[j.Name], j.DoF()))
		b.VelocityUpper[j.Name] = copyOrEmpty(limits.Velocity[j.Name], j.DoF())
		b.TorqueLower[j.Name] = negated(copyOrEmpty(limits.Torque[j.Name], j.DoF()))
		b.TorqueUpper[j.Name] = copyOrEmpty(limits.Torque[j.Name], j.DoF())
	}
	return b
}

func copyOrEmpty(v []float64, dof int) []float64 {
	out := make([]float64, dof)
	copy(out, v)
	return out
}

func negated(v []float64) []float64 {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

func (b *Bounds) tables() []map[string][]float64 {
	return []map[string][]float64{
		b.PositionLower, b.PositionUpper,
		b.VelocityLower, b.VelocityUpper,
		b.TorqueLower, b.TorqueUpper,
	}
}

// Position returns the position range of a single-DoF joint.
func (b *Bounds) Position(name string) (Bound, error) {
	return pick(b.PositionLower, b.PositionUpper, name)
}

// Velocity returns the velocity range of a single-DoF joint.
func (b *Bounds) Velocity(name string) (Bound, error) {
	return pick(b.VelocityLower, b.VelocityUpper, name)
}

// Torque returns the torque range of a single-DoF joint.
func (b *Bounds) Torque(name string) (Bound, error) {
	return pick(b.TorqueLower, b.TorqueUpper, name)
}

func pick(lower, upper map[string][]float64, name string) (Bound, error) {
	lo, ok := lower[name]
	if !ok {
		return Bound{}, errors.Errorf("no bounds for joint %q", name)
	}
	up := upper[name]
	if len(lo) != 1 || len(up) != 1 {
		return Bound{}, errors.Errorf("joint %q has %d dof, expected 1", name, len(lo))
	}
	return Bound{Lower: lo[0], Upper: up[0]}, nil
}

// UpdateJointLimit overrides the position range of a single-DoF joint. The
// range must contain zero strictly.
func (m *Module) UpdateJointLimit(name string, low, up float64) error {
	if !(low < 0) || !(up > 0) {
		return errors.Errorf("joint %q: position range [%g, %g] must satisfy low < 0 < up", name, low, up)
	}
	if err := checkBoundSlot(m.Bounds.PositionLower, m.Bounds.PositionUpper, name); err != nil {
		return err
	}
	m.Bounds.PositionLower[name][0] = low
	m.Bounds.PositionUpper[name][0] = up
	return nil
}

// UpdateVelocityLimit overrides the velocity range of a single-DoF joint to
// [-limit, limit].
func (m *Module) UpdateVelocityLimit(name string, limit float64) error {
	if !(limit > 0) {
		return errors.Errorf("joint %q: velocity limit must be positive, got %g", name, limit)
	}
	if err := checkBoundSlot(m.Bounds.VelocityLower, m.Bounds.VelocityUpper, name); err != nil {
		return err
	}
	m.Bounds.VelocityLower[name][0] = -limit
	m.Bounds.VelocityUpper[name][0] = limit
	return nil
}

// UpdateTorqueLimit overrides the torque range of a single-DoF joint to
// [-limit, limit].
func (m *Module) UpdateTorqueLimit(name string, limit float64) error {
	if !(limit > 0) {
		return errors.Errorf("joint %q: torque limit must be positive, got %g", name, limit)
	}
	if err := checkBoundSlot(m.Bounds.TorqueLower, m.Bounds.TorqueUpper, name); err != nil {
		return err
	}
	m.Bounds.TorqueLower[name][0] = -limit
	m.Bounds.TorqueUpper[name][0] = limit
	return nil
}

func checkBoundSlot(lower, upper map[string][]float64, name string) error {
	lo, ok := lower[name]
	if !ok {
		return errors.Errorf("no joint named %q", name)
	}
	if len(lo) != 1 || len(upper[name]) != 1 {
		return errors.Errorf("joint %q has %d dof, expected 1", name, len(lo))
	}
	return nil
}
