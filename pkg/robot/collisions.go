package robot

import "github.com/pkg/errors"

// Collision is a pair of bodies kept apart by the controller. iDist is the
// distance at which the constraint starts acting, sDist the security distance
// never to be crossed, and Damping 0 lets the solver choose one.
type Collision struct {
	Body1   string
	Body2   string
	IDist   float64
	SDist   float64
	Damping float64
}

func (m *Module) checkCollisions(cols []Collision) error {
	for _, c := range cols {
		if c.Body1 == c.Body2 {
			return errors.Errorf("collision %s/%s: a body cannot collide with itself", c.Body1, c.Body2)
		}
		for _, b := range []string{c.Body1, c.Body2} {
			if !m.MB.HasBody(b) {
				return errors.Errorf("collision %s/%s: unknown body %q", c.Body1, c.Body2, b)
			}
		}
		if !(c.IDist > c.SDist) || c.SDist < 0 {
			return errors.Errorf("collision %s/%s: need iDist > sDist >= 0, got %g and %g", c.Body1, c.Body2, c.IDist, c.SDist)
		}
	}
	return nil
}

// SetSelfCollisions validates the minimal and common self-collision sets and
// stores them.
func (m *Module) SetSelfCollisions(minimal, common []Collision) error {
	if m.MB == nil {
		return errors.New("module not initialised")
	}
	if err := m.checkCollisions(minimal); err != nil {
		return errors.Wrap(err, "minimal self collisions")
	}
	if err := m.checkCollisions(common); err != nil {
		return errors.Wrap(err, "common self collisions")
	}
	m.MinimalSelfCollisions = append([]Collision(nil), minimal...)
	m.CommonSelfCollisions = append([]Collision(nil), common...)
	return nil
}
