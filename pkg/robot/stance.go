package robot

import "github.com/pkg/errors"

// SetStance records an explicit default value for a single-DoF joint. The
// value must lie within the joint's position range.
func (m *Module) SetStance(name string, value float64) error {
	b, err := m.Bounds.Position(name)
	if err != nil {
		return err
	}
	if !b.Contains(value) {
		return errors.Errorf("joint %q: stance %g outside [%g, %g]", name, value, b.Lower, b.Upper)
	}
	m.Stance[name] = []float64{value}
	return nil
}

// DefaultJointValue returns the default configuration of a single-DoF joint:
// the stance value when one was set, otherwise 0, or the middle of the
// position range when 0 is out of range.
func (m *Module) DefaultJointValue(name string) (float64, error) {
	if v, ok := m.Stance[name]; ok && len(v) == 1 {
		return v[0], nil
	}
	b, err := m.Bounds.Position(name)
	if err != nil {
		return 0, err
	}
	if b.Contains(0) {
		return 0, nil
	}
	return b.Mid(), nil
}
