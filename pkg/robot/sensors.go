package robot

import "github.com/gwillem/kinova/pkg/rbd"

// FloatingBaseSensor is the body sensor attached to the root body by Init.
const FloatingBaseSensor = "FloatingBase"

// ForceSensor is a wrench sensor attached to a body.
type ForceSensor struct {
	Name       string
	ParentBody string
	// Transform is the sensor frame relative to the parent body.
	Transform rbd.PTransform
}

// BodySensor measures the pose and velocity of a body.
type BodySensor struct {
	Name      string
	Body      string
	Transform rbd.PTransform
}

// Device is a named piece of hardware attached to the robot that is not a
// joint or a body sensor.
type Device interface {
	Name() string
	Kind() string
	Clone() Device
}

// ExternalTorqueSensor reports the measured external torque on each of Size
// joints.
type ExternalTorqueSensor struct {
	name string
	Size int
}

// NewExternalTorqueSensor returns a sensor covering size joints.
func NewExternalTorqueSensor(name string, size int) *ExternalTorqueSensor {
	return &ExternalTorqueSensor{name: name, Size: size}
}

// Name returns the sensor name.
func (s *ExternalTorqueSensor) Name() string { return s.name }

// Kind returns "ExternalTorqueSensor".
func (s *ExternalTorqueSensor) Kind() string { return "ExternalTorqueSensor" }

// Clone returns an independent copy of the sensor.
func (s *ExternalTorqueSensor) Clone() Device {
	c := *s
	return &c
}

// VirtualTorqueSensor reports torques estimated from the model rather than
// measured, for Size joints.
type VirtualTorqueSensor struct {
	name string
	Size int
}

// NewVirtualTorqueSensor returns a sensor covering size joints.
func NewVirtualTorqueSensor(name string, size int) *VirtualTorqueSensor {
	return &VirtualTorqueSensor{name: name, Size: size}
}

// Name returns the sensor name.
func (s *VirtualTorqueSensor) Name() string { return s.name }

// Kind returns "VirtualTorqueSensor".
func (s *VirtualTorqueSensor) Kind() string { return "VirtualTorqueSensor" }

// Clone returns an independent copy of the sensor.
func (s *VirtualTorqueSensor) Clone() Device {
	c := *s
	return &c
}

// Device returns the device with the given name.
func (m *Module) Device(name string) (Device, bool) {
	for _, d := range m.Devices {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

// ForceSensor returns the force sensor with the given name.
func (m *Module) ForceSensor(name string) (ForceSensor, bool) {
	for _, fs := range m.ForceSensors {
		if fs.Name == name {
			return fs, true
		}
	}
	return ForceSensor{}, false
}
