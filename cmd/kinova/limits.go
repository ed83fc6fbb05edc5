package main

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gwillem/kinova/pkg/robot"
)

type LimitsCommand struct {
	Torque bool `long:"torque" description:"Start on the torque view"`
}

const (
	headerHeight = 2 // title + blank line
	footerHeight = 2 // help line + blank
	borderSize   = 2 // chart border
)

// Joint colors, base to wrist
var jointColors = []string{"196", "208", "226", "46", "51", "33", "201"}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chartStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type limitView int

const (
	velocityView limitView = iota
	torqueView
)

func (v limitView) String() string {
	if v == torqueView {
		return "torque (N·m)"
	}
	return "velocity (rad/s)"
}

type limitsModel struct {
	snapshot *robot.Snapshot
	view     limitView
	chart    barchart.Model
	width    int
	height   int
}

func newLimitsModel(s *robot.Snapshot, view limitView) limitsModel {
	m := limitsModel{snapshot: s, view: view}
	w, h := m.chartSize()
	m.chart = barchart.New(w, h)
	m.draw()
	return m
}

// barData returns one bar per joint for the current view.
func (m *limitsModel) barData() []barchart.BarData {
	data := make([]barchart.BarData, 0, len(m.snapshot.Joints))
	for i, j := range m.snapshot.Joints {
		value := j.Velocity[1]
		if m.view == torqueView {
			value = j.Torque[1]
		}
		color := jointColors[i%len(jointColors)]
		data = append(data, barchart.BarData{
			Label: strings.TrimPrefix(j.Name, "joint_"),
			Values: []barchart.BarValue{{
				Name:  j.Name,
				Value: value,
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(color)),
			}},
		})
	}
	return data
}

func (m *limitsModel) chartSize() (width, height int) {
	if m.width == 0 || m.height == 0 {
		return 60, 16 // default size before we know terminal size
	}
	width = m.width - borderSize - 2
	if width < 30 {
		width = 30
	}
	height = m.height - headerHeight - footerHeight - borderSize - 2
	if height < 8 {
		height = 8
	}
	return width, height
}

func (m *limitsModel) draw() {
	m.chart.Clear()
	m.chart.PushAll(m.barData())
	m.chart.Draw()
}

func (m limitsModel) Init() tea.Cmd {
	return nil
}

func (m limitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chart.Resize(m.chartSize())
		m.draw()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "left", "right":
			if m.view == velocityView {
				m.view = torqueView
			} else {
				m.view = velocityView
			}
			m.draw()
			return m, nil
		}
	}
	return m, nil
}

func (m limitsModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s limits", m.snapshot.Name)))
	sb.WriteString(statusStyle.Render(" - " + m.view.String()))
	sb.WriteString("\n\n")

	sb.WriteString(chartStyle.Render(m.chart.View()))
	sb.WriteString("\n")

	var legend []string
	for i, j := range m.snapshot.Joints {
		value := j.Velocity[1]
		if m.view == torqueView {
			value = j.Torque[1]
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(jointColors[i%len(jointColors)])).Bold(true)
		legend = append(legend, style.Render("━━")+" "+fmt.Sprintf("%s %s", j.Name, formatFloat(value)))
	}
	sb.WriteString(strings.Join(legend, "  "))
	sb.WriteString("\n\n")
	sb.WriteString(statusStyle.Render("tab: switch velocity/torque   q: quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (c *LimitsCommand) Execute(args []string) error {
	m, err := loadModule()
	if err != nil {
		return err
	}
	s, err := m.Snapshot()
	if err != nil {
		return err
	}

	view := velocityView
	if c.Torque {
		view = torqueView
	}
	p := tea.NewProgram(newLimitsModel(s, view), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run limits viewer: %w", err)
	}
	return nil
}
