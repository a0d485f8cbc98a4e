// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package cmd wires the CLI subcommand dispatch. Grounded on
// jrepp-hermes/internal/cmd/main.go's -version-flag-and-Commands-map
// shape.
package cmd

import (
	"github.com/mitchellh/cli"

	"github.com/doculens/doculens/internal/cmd/command"
)

// Main runs the CLI with the given arguments and returns the exit code.
// start (alias run) and migrate accept no arguments, per spec.md §6.
func Main(cliName string, args []string, buildVersion string, start *command.StartCommand, migrate *command.MigrateCommand) int {
	if len(args) == 1 {
		args = append(args, "start")
	}

	startFactory := func() (cli.Command, error) { return start, nil }

	c := &cli.CLI{
		Name:    cliName,
		Args:    args[1:],
		Version: buildVersion,
		Commands: map[string]cli.CommandFactory{
			"start": startFactory,
			"run":   startFactory,
			"migrate": func() (cli.Command, error) {
				return migrate, nil
			},
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		panic(err)
	}
	return exitCode
}
