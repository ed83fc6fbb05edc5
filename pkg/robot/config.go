package robot

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Snapshot is the serialisable view of a module.
type Snapshot struct {
	Name            string                `yaml:"name"`
	DescriptionPath string                `yaml:"path"`
	URDFPath        string                `yaml:"urdf_path"`
	Joints          []JointSnapshot       `yaml:"joints"`
	ForceSensors    []ForceSensorSnapshot `yaml:"forceSensors,omitempty"`
	BodySensors     []string              `yaml:"bodySensors,omitempty"`
	Devices         []DeviceSnapshot      `yaml:"devices,omitempty"`
	ConvexHulls     map[string]string     `yaml:"convexHulls,omitempty"`
	MinimalSelfCols []CollisionSnapshot   `yaml:"minimalSelfCollisions"`
	CommonSelfCols  []CollisionSnapshot   `yaml:"commonSelfCollisions"`
	DefaultAttitude []float64             `yaml:"default_attitude"`
	Stance          map[string][]float64  `yaml:"stance"`
}

// JointSnapshot holds the limits and actuator parameters of one joint.
type JointSnapshot struct {
	Name         string     `yaml:"name"`
	Type         string     `yaml:"type"`
	Position     [2]float64 `yaml:"position"`
	Velocity     [2]float64 `yaml:"velocity"`
	Torque       [2]float64 `yaml:"torque"`
	GearRatio    float64    `yaml:"gear_ratio"`
	RotorInertia float64    `yaml:"rotor_inertia"`
}

// ForceSensorSnapshot names a force sensor and the body it is mounted on.
type ForceSensorSnapshot struct {
	Name string `yaml:"name"`
	Body string `yaml:"body"`
}

// DeviceSnapshot names a device and its kind.
type DeviceSnapshot struct {
	Name string `yaml:"name"`
	Kind string `yaml:"type"`
}

// CollisionSnapshot is one self-collision pair with its distances.
type CollisionSnapshot struct {
	Body1   string  `yaml:"body1"`
	Body2   string  `yaml:"body2"`
	IDist   float64 `yaml:"iDist"`
	SDist   float64 `yaml:"sDist"`
	Damping float64 `yaml:"damping"`
}

// Snapshot captures the module. Only single-DoF joints are listed.
func (m *Module) Snapshot() (*Snapshot, error) {
	if m.MB == nil {
		return nil, errors.New("module not initialised")
	}
	s := &Snapshot{
		Name:            m.Name,
		DescriptionPath: m.DescriptionPath,
		URDFPath:        m.URDFPath,
		DefaultAttitude: m.DefaultAttitude[:],
		Stance:          make(map[string][]float64, len(m.Stance)),
	}

	for _, j := range m.MB.Joints {
		if j.DoF() != 1 {
			continue
		}
		q, err := m.Bounds.Position(j.Name)
		if err != nil {
			return nil, err
		}
		v, err := m.Bounds.Velocity(j.Name)
		if err != nil {
			return nil, err
		}
		t, err := m.Bounds.Torque(j.Name)
		if err != nil {
			return nil, err
		}
		kind := j.Type.String()
		if j.Continuous {
			kind = "continuous"
		}
		s.Joints = append(s.Joints, JointSnapshot{
			Name:         j.Name,
			Type:         kind,
			Position:     [2]float64{q.Lower, q.Upper},
			Velocity:     [2]float64{v.Lower, v.Upper},
			Torque:       [2]float64{t.Lower, t.Upper},
			GearRatio:    j.GearRatio,
			RotorInertia: j.RotorInertia,
		})
	}

	for _, fs := range m.ForceSensors {
		s.ForceSensors = append(s.ForceSensors, ForceSensorSnapshot{Name: fs.Name, Body: fs.ParentBody})
	}
	for _, bs := range m.BodySensors {
		s.BodySensors = append(s.BodySensors, bs.Name)
	}
	for _, d := range m.Devices {
		s.Devices = append(s.Devices, DeviceSnapshot{Name: d.Name(), Kind: d.Kind()})
	}
	if len(m.ConvexHulls) > 0 {
		s.ConvexHulls = make(map[string]string, len(m.ConvexHulls))
		for body, ch := range m.ConvexHulls {
			s.ConvexHulls[body] = ch.Path
		}
	}
	s.MinimalSelfCols = collisionSnapshots(m.MinimalSelfCollisions)
	s.CommonSelfCols = collisionSnapshots(m.CommonSelfCollisions)
	for name, v := range m.Stance {
		s.Stance[name] = append([]float64(nil), v...)
	}
	return s, nil
}

func collisionSnapshots(cols []Collision) []CollisionSnapshot {
	out := make([]CollisionSnapshot, 0, len(cols))
	for _, c := range cols {
		out = append(out, CollisionSnapshot(c))
	}
	return out
}

// Joint returns the snapshot of the named joint.
func (s *Snapshot) Joint(name string) (JointSnapshot, bool) {
	for _, j := range s.Joints {
		if j.Name == name {
			return j, true
		}
	}
	return JointSnapshot{}, false
}

// YAML encodes the module snapshot.
func (m *Module) YAML() ([]byte, error) {
	s, err := m.Snapshot()
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "encode yaml")
	}
	return data, nil
}

// SaveTo writes the module snapshot to path as YAML.
func (m *Module) SaveTo(path string) error {
	data, err := m.YAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSnapshot reads a snapshot written by SaveTo.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read snapshot")
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse snapshot")
	}
	return &s, nil
}
