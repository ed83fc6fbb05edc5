// Package urdf reads the subset of the Unified Robot Description Format needed
// to build a kinematic skeleton: links with their inertial data and joints with
// their origin, axis and limits.
package urdf

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// JointType is the URDF joint type attribute.
type JointType string

// Joint types understood by the reader.
const (
	Revolute   JointType = "revolute"
	Continuous JointType = "continuous"
	Prismatic  JointType = "prismatic"
	Fixed      JointType = "fixed"
	Floating   JointType = "floating"
	Planar     JointType = "planar"
)

// Robot is a parsed URDF document.
type Robot struct {
	XMLName xml.Name `xml:"robot"`
	Name    string   `xml:"name,attr"`
	Links   []Link   `xml:"link"`
	Joints  []Joint  `xml:"joint"`
}

// Link is a rigid body of the robot.
type Link struct {
	Name     string    `xml:"name,attr"`
	Inertial *Inertial `xml:"inertial"`
}

// Inertial holds the mass properties of a link.
type Inertial struct {
	Origin  *Origin `xml:"origin"`
	Mass    Mass    `xml:"mass"`
	Inertia Inertia `xml:"inertia"`
}

// Mass is the link mass in kilograms.
type Mass struct {
	Value float64 `xml:"value,attr"`
}

// Inertia is the rotational inertia matrix expressed at the inertial origin.
type Inertia struct {
	IXX float64 `xml:"ixx,attr"`
	IXY float64 `xml:"ixy,attr"`
	IXZ float64 `xml:"ixz,attr"`
	IYY float64 `xml:"iyy,attr"`
	IYZ float64 `xml:"iyz,attr"`
	IZZ float64 `xml:"izz,attr"`
}

// Origin is a transform given as "x y z" translation and "r p y" rotation.
type Origin struct {
	XYZ string `xml:"xyz,attr"`
	RPY string `xml:"rpy,attr"`
}

// Joint connects a parent link to a child link.
type Joint struct {
	Name   string    `xml:"name,attr"`
	Type   JointType `xml:"type,attr"`
	Origin *Origin   `xml:"origin"`
	Parent frame     `xml:"parent"`
	Child  frame     `xml:"child"`
	Axis   *Axis     `xml:"axis"`
	Limit  *Limit    `xml:"limit"`
}

type frame struct {
	Link string `xml:"link,attr"`
}

// Axis is the joint axis in the joint frame, "x y z".
type Axis struct {
	XYZ string `xml:"xyz,attr"`
}

// Limit holds joint limits. Lower and upper are radians for revolute joints and
// meters for prismatic joints; effort and velocity are always absolute values.
type Limit struct {
	Lower    float64 `xml:"lower,attr"`
	Upper    float64 `xml:"upper,attr"`
	Effort   float64 `xml:"effort,attr"`
	Velocity float64 `xml:"velocity,attr"`
}

// ParentLink returns the name of the joint's parent link.
func (j *Joint) ParentLink() string { return j.Parent.Link }

// ChildLink returns the name of the joint's child link.
func (j *Joint) ChildLink() string { return j.Child.Link }

// Translation parses the xyz attribute. An absent origin is the zero vector.
func (o *Origin) Translation() ([3]float64, error) {
	if o == nil {
		return [3]float64{}, nil
	}
	return parseTriple(o.XYZ)
}

// Rotation parses the rpy attribute. An absent origin is the zero rotation.
func (o *Origin) Rotation() ([3]float64, error) {
	if o == nil {
		return [3]float64{}, nil
	}
	return parseTriple(o.RPY)
}

// Vector parses the axis. URDF defaults the axis to (1, 0, 0).
func (a *Axis) Vector() ([3]float64, error) {
	if a == nil || strings.TrimSpace(a.XYZ) == "" {
		return [3]float64{1, 0, 0}, nil
	}
	return parseTriple(a.XYZ)
}

func parseTriple(s string) ([3]float64, error) {
	var out [3]float64
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return out, nil
	}
	if len(fields) != 3 {
		return out, errors.Errorf("expected 3 values, got %q", s)
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return out, errors.Wrapf(err, "parse %q", s)
		}
		out[i] = v
	}
	return out, nil
}

// ParseFile reads and parses the URDF file at path.
func ParseFile(path string) (*Robot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open urdf")
	}
	defer f.Close()

	r, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return r, nil
}

// Parse decodes a URDF document and checks that it describes a tree.
func Parse(r io.Reader) (*Robot, error) {
	var robot Robot
	if err := xml.NewDecoder(r).Decode(&robot); err != nil {
		return nil, errors.Wrap(err, "decode urdf")
	}
	if err := robot.validate(); err != nil {
		return nil, err
	}
	return &robot, nil
}

// Link returns the link with the given name.
func (r *Robot) Link(name string) (*Link, bool) {
	for i := range r.Links {
		if r.Links[i].Name == name {
			return &r.Links[i], true
		}
	}
	return nil, false
}

// Joint returns the joint with the given name.
func (r *Robot) Joint(name string) (*Joint, bool) {
	for i := range r.Joints {
		if r.Joints[i].Name == name {
			return &r.Joints[i], true
		}
	}
	return nil, false
}

// RootLink returns the only link that is not the child of any joint.
func (r *Robot) RootLink() (string, error) {
	children := make(map[string]bool, len(r.Joints))
	for _, j := range r.Joints {
		children[j.ChildLink()] = true
	}
	var roots []string
	for _, l := range r.Links {
		if !children[l.Name] {
			roots = append(roots, l.Name)
		}
	}
	if len(roots) != 1 {
		return "", errors.Errorf("expected a single root link, found %d %v", len(roots), roots)
	}
	return roots[0], nil
}

func (r *Robot) validate() error {
	if len(r.Links) == 0 {
		return errors.New("urdf has no links")
	}

	links := make(map[string]bool, len(r.Links))
	for _, l := range r.Links {
		if l.Name == "" {
			return errors.New("link without a name")
		}
		if links[l.Name] {
			return errors.Errorf("duplicate link %q", l.Name)
		}
		links[l.Name] = true
	}

	joints := make(map[string]bool, len(r.Joints))
	parents := make(map[string]string, len(r.Joints))
	for _, j := range r.Joints {
		if j.Name == "" {
			return errors.New("joint without a name")
		}
		if joints[j.Name] {
			return errors.Errorf("duplicate joint %q", j.Name)
		}
		joints[j.Name] = true

		switch j.Type {
		case Revolute, Continuous, Prismatic, Fixed, Floating, Planar:
		default:
			return errors.Errorf("joint %q: unknown type %q", j.Name, j.Type)
		}
		if !links[j.ParentLink()] {
			return errors.Errorf("joint %q: unknown parent link %q", j.Name, j.ParentLink())
		}
		if !links[j.ChildLink()] {
			return errors.Errorf("joint %q: unknown child link %q", j.Name, j.ChildLink())
		}
		if prev, ok := parents[j.ChildLink()]; ok {
			return errors.Errorf("link %q is the child of both %q and %q", j.ChildLink(), prev, j.Name)
		}
		parents[j.ChildLink()] = j.Name

		if _, err := j.Origin.Translation(); err != nil {
			return errors.Wrapf(err, "joint %q origin", j.Name)
		}
		if _, err := j.Origin.Rotation(); err != nil {
			return errors.Wrapf(err, "joint %q origin", j.Name)
		}
		if _, err := j.Axis.Vector(); err != nil {
			return errors.Wrapf(err, "joint %q axis", j.Name)
		}
	}

	_, err := r.RootLink()
	return err
}
