package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/gwillem/kinova/pkg/log"
	"github.com/gwillem/kinova/pkg/robot"

	// Registers the "kinova" robot module.
	_ "github.com/gwillem/kinova/pkg/kinova"
)

type Options struct {
	Module  string `short:"m" long:"module" default:"kinova" description:"Registered robot module to load"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`

	List       ListCommand       `command:"list" description:"List registered robot modules"`
	Info       InfoCommand       `command:"info" description:"Show joint limits, actuator parameters and stance"`
	Collisions CollisionsCommand `command:"collisions" alias:"cols" description:"Show self-collision pairs, sensors and convex hulls"`
	Export     ExportCommand     `command:"export" description:"Write the robot module as YAML"`
	Limits     LimitsCommand     `command:"limits" description:"Browse velocity and torque limits as a bar chart"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.LongDescription = "kinova - inspect the Kinova Gen3 robot module"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}

// loadModule configures logging and builds the selected module.
func loadModule() (*robot.Module, error) {
	level := "info"
	if opts.Verbose {
		level = "debug"
	}
	log.Configure(log.Config{Level: level, Console: true})
	return robot.Create(opts.Module)
}
