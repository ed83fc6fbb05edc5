package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

type ExportCommand struct {
	Output string `short:"o" long:"output" description:"Output file (stdout when empty)"`
	Force  bool   `short:"f" long:"force" description:"Overwrite an existing file without asking"`
}

func (c *ExportCommand) Execute(args []string) error {
	m, err := loadModule()
	if err != nil {
		return err
	}

	if c.Output == "" {
		data, err := m.YAML()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if _, err := os.Stat(c.Output); err == nil && !c.Force {
		overwrite, err := confirmOverwrite(c.Output)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println(dimStyle.Render("Export cancelled."))
			return nil
		}
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := m.SaveTo(c.Output); err != nil {
		return fmt.Errorf("save %s: %w", c.Output, err)
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("✓ %s written to %s", m.Name, c.Output)))
	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
				Affirmative("Overwrite").
				Negative("Cancel").
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}
