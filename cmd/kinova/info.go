package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/gwillem/kinova/pkg/robot"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type ListCommand struct{}

func (c *ListCommand) Execute(args []string) error {
	for _, name := range robot.Names() {
		fmt.Println(name)
	}
	return nil
}

type InfoCommand struct{}

func (c *InfoCommand) Execute(args []string) error {
	m, err := loadModule()
	if err != nil {
		return err
	}
	out, err := renderInfo(m)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func renderInfo(m *robot.Module) (string, error) {
	s, err := m.Snapshot()
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(s.Joints))
	for _, j := range s.Joints {
		stance := dimStyle.Render("-")
		if v, ok := s.Stance[j.Name]; ok && len(v) == 1 {
			stance = formatFloat(v[0])
		}
		rows = append(rows, []string{
			j.Name,
			j.Type,
			fmt.Sprintf("[%s, %s]", formatFloat(j.Position[0]), formatFloat(j.Position[1])),
			"±" + formatFloat(j.Velocity[1]),
			"±" + formatFloat(j.Torque[1]),
			formatFloat(j.GearRatio),
			strconv.FormatFloat(j.RotorInertia, 'e', 3, 64),
			stance,
		})
	}

	t := newTable("joint", "type", "position (rad)", "velocity (rad/s)", "torque (N·m)", "gear", "rotor inertia", "stance").
		Rows(rows...)

	title := headerStyle.Render(fmt.Sprintf("Robot module %q", m.Name))
	urdf := dimStyle.Render("urdf: " + m.URDFPath)
	return lipgloss.JoinVertical(lipgloss.Left, title, urdf, t.String()), nil
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
