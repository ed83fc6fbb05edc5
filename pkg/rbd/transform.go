package rbd

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	xAxis = r3.Vec{X: 1}
	yAxis = r3.Vec{Y: 1}
	zAxis = r3.Vec{Z: 1}
)

// PTransform is a rigid transform: Rotation followed by Translation.
type PTransform struct {
	Rotation    r3.Rotation
	Translation r3.Vec
}

// Identity returns the identity transform.
func Identity() PTransform {
	return PTransform{Rotation: r3.NewRotation(0, zAxis)}
}

// Apply maps p from the child frame into the parent frame.
func (t PTransform) Apply(p r3.Vec) r3.Vec {
	return r3.Add(t.Rotation.Rotate(p), t.Translation)
}

// IsIdentity reports whether t is the identity within tol.
func (t PTransform) IsIdentity(tol float64) bool {
	if r3.Norm(t.Translation) > tol {
		return false
	}
	for _, e := range []r3.Vec{xAxis, yAxis, zAxis} {
		if r3.Norm(r3.Sub(t.Rotation.Rotate(e), e)) > tol {
			return false
		}
	}
	return true
}

// RPYToRotation converts URDF fixed-axis roll, pitch, yaw (X, Y, Z of rpy) to
// a rotation: roll about x, then pitch about y, then yaw about z.
func RPYToRotation(rpy r3.Vec) r3.Rotation {
	roll := quat.Number(r3.NewRotation(rpy.X, xAxis))
	pitch := quat.Number(r3.NewRotation(rpy.Y, yAxis))
	yaw := quat.Number(r3.NewRotation(rpy.Z, zAxis))
	return r3.Rotation(quat.Mul(yaw, quat.Mul(pitch, roll)))
}

func vec(v [3]float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
