// Package kinova describes the Kinova Gen3 7-DoF arm and registers it as the
// "kinova" robot module.
package kinova

import (
	"maps"
	"slices"

	"github.com/pkg/errors"

	"github.com/gwillem/kinova/pkg/log"
	"github.com/gwillem/kinova/pkg/rbd"
	"github.com/gwillem/kinova/pkg/robot"
)

// Name is the registry key of the module.
const Name = "kinova"

// PositionLimit is an asymmetric position range override.
type PositionLimit struct {
	Lower float64
	Upper float64
}

// Overrides of the URDF bounds. Position limits only apply to the
// non-continuous joints.
var (
	PositionLimits = map[string]PositionLimit{
		Joint2: {-2.15, 2.15},
		Joint4: {-2.45, 2.45},
		Joint6: {-2.0, 2.0},
	}

	VelocityLimits = map[string]float64{
		Joint1: 2.0944,
		Joint2: 2.0944,
		Joint3: 2.0944,
		Joint4: 2.0944,
		Joint5: 3.049,
		Joint6: 3.049,
		Joint7: 3.049,
	}

	TorqueLimits = map[string]float64{
		Joint1: 95,
		Joint2: 95,
		Joint3: 95,
		Joint4: 95,
		Joint5: 26,
		Joint6: 45,
		Joint7: 26,
	}
)

// Actuator parameters.
var (
	GearRatios = map[string]float64{
		Joint1: 100,
		Joint2: 100,
		Joint3: 100,
		Joint4: 100,
		Joint5: 100,
		Joint6: 100,
		Joint7: 100,
	}

	RotorInertias = map[string]float64{
		Joint1: 19.28e-7,
		Joint2: 19.28e-7,
		Joint3: 19.28e-7,
		Joint4: 19.28e-7,
		Joint5: 15e-7,
		Joint6: 15e-7,
		Joint7: 15e-7,
	}
)

// Stance is the default joint configuration.
var Stance = map[string]float64{
	Joint1: 0.0,
	Joint2: 0.2618,
	Joint3: 3.14,
	Joint4: -2.269,
	Joint5: 0.0,
	Joint6: 0.959878729,
	Joint7: 1.57,
}

// Self-collision margins shared by every pair.
const (
	CollisionIDist   = 0.03
	CollisionSDist   = 0.015
	CollisionDamping = 0.
)

// Sensor and device names.
const (
	ForceSensorName          = "EEForceSensor"
	ExternalTorqueSensorName = "externalTorqueSensor"
	VirtualTorqueSensorName  = "virtualTorqueSensor"
)

// MinimalSelfCollisions keeps the wrist and bracelet away from the base and
// upper arm.
func MinimalSelfCollisions() []robot.Collision {
	var cols []robot.Collision
	for _, wrist := range []string{SphericalWrist1Link, SphericalWrist2Link, BraceletLink} {
		for _, body := range []string{BaseLink, ShoulderLink, HalfArm1Link, HalfArm2Link} {
			cols = append(cols, robot.Collision{
				Body1:   body,
				Body2:   wrist,
				IDist:   CollisionIDist,
				SDist:   CollisionSDist,
				Damping: CollisionDamping,
			})
		}
	}
	return cols
}

func init() {
	robot.Register(Name, func() (*robot.Module, error) {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		return New(cfg)
	})
}

// New loads the Gen3 URDF and applies the Kinova tables. Any joint or body
// named in the tables must exist in the URDF.
func New(cfg Config) (*robot.Module, error) {
	logger := log.WithComponent("robot")

	m := robot.New(cfg.DescriptionPath, Name)
	logger.Info().Str("module", m.Name).Msg("robot module loaded")

	m.URDFPath = cfg.URDFPath
	m.RealURDF = cfg.URDFPath
	if err := m.InitFromURDF(true); err != nil {
		return nil, err
	}

	for _, name := range sortedKeys(PositionLimits) {
		l := PositionLimits[name]
		if err := m.UpdateJointLimit(name, l.Lower, l.Upper); err != nil {
			return nil, errors.Wrap(err, "position limit")
		}
	}
	for _, name := range sortedKeys(VelocityLimits) {
		if err := m.UpdateVelocityLimit(name, VelocityLimits[name]); err != nil {
			return nil, errors.Wrap(err, "velocity limit")
		}
	}
	for _, name := range sortedKeys(TorqueLimits) {
		if err := m.UpdateTorqueLimit(name, TorqueLimits[name]); err != nil {
			return nil, errors.Wrap(err, "torque limit")
		}
	}
	for _, name := range sortedKeys(GearRatios) {
		if err := m.SetGearRatio(name, GearRatios[name]); err != nil {
			return nil, err
		}
	}
	for _, name := range sortedKeys(RotorInertias) {
		if err := m.SetRotorInertia(name, RotorInertias[name]); err != nil {
			return nil, err
		}
	}

	convexDir := cfg.ConvexPath(m.Name)
	n, err := m.LoadConvexHulls(convexDir)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("dir", convexDir).Int("hulls", n).Msg("convex hulls")

	m.ForceSensors = []robot.ForceSensor{{
		Name:       ForceSensorName,
		ParentBody: ForceSensorBody,
		Transform:  rbd.Identity(),
	}}
	m.Devices = []robot.Device{
		robot.NewExternalTorqueSensor(ExternalTorqueSensorName, len(AllJoints())).Clone(),
		robot.NewVirtualTorqueSensor(VirtualTorqueSensorName, len(AllJoints())).Clone(),
	}
	m.BodySensors = nil

	minimal := MinimalSelfCollisions()
	if err := m.SetSelfCollisions(minimal, minimal); err != nil {
		return nil, err
	}

	m.DefaultAttitude = [7]float64{1, 0, 0, 0, 0, 0, 0}
	for _, name := range sortedKeys(Stance) {
		if err := m.SetStance(name, Stance[name]); err != nil {
			return nil, err
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	logger.Info().Str("urdf_path", m.URDFPath).Msg("robot module uses urdf")
	return m, nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
