// Command wardsched is a thin external collaborator around the pure
// ward/beam core. Built with github.com/hashicorp/cli, the same
// command-tree library Nomad's own command package is built on.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	c := cli.NewCLI("wardsched", version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"schedule": func() (cli.Command, error) {
			return &ScheduleCommand{}, nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return exitStatus
}
