package kinova

// Joint names of the Gen3 7-DoF arm.
const (
	Joint1 = "joint_1"
	Joint2 = "joint_2"
	Joint3 = "joint_3"
	Joint4 = "joint_4"
	Joint5 = "joint_5"
	Joint6 = "joint_6"
	Joint7 = "joint_7"
)

// Body names used by the sensors and self-collisions.
const (
	BaseLink            = "base_link"
	ShoulderLink        = "shoulder_link"
	HalfArm1Link        = "half_arm_1_link"
	HalfArm2Link        = "half_arm_2_link"
	ForearmLink         = "forearm_link"
	SphericalWrist1Link = "spherical_wrist_1_link"
	SphericalWrist2Link = "spherical_wrist_2_link"
	BraceletLink        = "bracelet_link"
	ForceSensorBody     = "FT_sensor_wrench"
)

// AllJoints returns the actuated joints from base to wrist.
func AllJoints() []string {
	return []string{
		Joint1,
		Joint2,
		Joint3,
		Joint4,
		Joint5,
		Joint6,
		Joint7,
	}
}
