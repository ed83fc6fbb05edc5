package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gwillem/kinova/pkg/robot"
)

var subHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

type CollisionsCommand struct{}

func (c *CollisionsCommand) Execute(args []string) error {
	m, err := loadModule()
	if err != nil {
		return err
	}
	fmt.Println(renderCollisions(m))
	return nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
}

func renderCollisions(m *robot.Module) string {
	var sb strings.Builder

	sb.WriteString(subHeaderStyle.Render("Self collisions"))
	sb.WriteString("\n")
	cols := newTable("body 1", "body 2", "iDist", "sDist", "damping")
	for _, c := range m.CommonSelfCollisions {
		cols.Row(c.Body1, c.Body2, formatFloat(c.IDist), formatFloat(c.SDist), formatFloat(c.Damping))
	}
	sb.WriteString(cols.String())
	sb.WriteString("\n\n")

	sb.WriteString(subHeaderStyle.Render("Sensors"))
	sb.WriteString("\n")
	sensors := newTable("name", "kind", "attached to")
	for _, fs := range m.ForceSensors {
		sensors.Row(fs.Name, "ForceSensor", fs.ParentBody)
	}
	for _, bs := range m.BodySensors {
		sensors.Row(bs.Name, "BodySensor", bs.Body)
	}
	for _, d := range m.Devices {
		sensors.Row(d.Name(), d.Kind(), "-")
	}
	sb.WriteString(sensors.String())
	sb.WriteString("\n\n")

	sb.WriteString(subHeaderStyle.Render("Convex hulls"))
	sb.WriteString("\n")
	if len(m.ConvexHulls) == 0 {
		sb.WriteString(dimStyle.Render("none found"))
		return sb.String()
	}
	bodies := make([]string, 0, len(m.ConvexHulls))
	for body := range m.ConvexHulls {
		bodies = append(bodies, body)
	}
	sort.Strings(bodies)
	hulls := newTable("body", "file")
	for _, body := range bodies {
		hulls.Row(body, m.ConvexHulls[body].Path)
	}
	sb.WriteString(hulls.String())
	return sb.String()
}
