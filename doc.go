// Package kinova describes the Kinova Gen3 7-DoF arm for robot-modeling
// frameworks.
//
// The description is built from the Gen3 URDF and then refined with the
// joint limits, actuator gear ratios, rotor inertias, sensors, self-collision
// pairs and default posture of the real arm. It registers itself as the
// "kinova" robot module.
//
// # Installation
//
//	go install github.com/gwillem/kinova/cmd/kinova@latest
//
// # Usage
//
// Point the module at the robot description, then inspect it:
//
//	export KINOVA_DESCRIPTION_PATH=/usr/local/share/kortex_description
//	kinova info
//	kinova collisions
//	kinova export -o kinova.yaml
//
// Programs embedding the module import pkg/kinova for its side effect and
// call robot.Create("kinova").
//
// # Packages
//
// The module is organized into the following packages:
//
//   - cmd/kinova: CLI to list, inspect and export robot modules
//   - pkg/kinova: Gen3 tables and the registered constructor
//   - pkg/robot: Robot module record, bounds, sensors, collisions, registry
//   - pkg/rbd: Kinematic skeleton built from a URDF
//   - pkg/urdf: URDF reader
//   - pkg/log: Process-wide zerolog configuration
package kinova
