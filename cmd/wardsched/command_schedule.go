package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/posener/complete"

	"github.com/tansey/nurse-scheduling/internal/wardjson"
	"github.com/tansey/nurse-scheduling/pkg/ward"
	"github.com/tansey/nurse-scheduling/pkg/ward/beam"
	"github.com/tansey/nurse-scheduling/pkg/ward/report"
)

// ScheduleCommand implements `wardsched schedule`: positional problem
// descriptor path, flags --beam-width, --seed, --format. Exit codes:
// 0 ok, 1 infeasible, 2 malformed input or usage error.
type ScheduleCommand struct{}

func (c *ScheduleCommand) Help() string {
	return `Usage: wardsched schedule [options] <problem.json>

  Runs the beam-search scheduler over a problem descriptor and prints
  the resulting schedule.

Options:

  --beam-width=N    Override the problem descriptor's beam width
  --seed=N          Override the problem descriptor's random seed
  --format=FORMAT   "task" (default) or "block"
`
}

func (c *ScheduleCommand) Synopsis() string {
	return "Compute a ward staff schedule from a problem descriptor"
}

func (c *ScheduleCommand) Run(args []string) int {
	var beamWidth int
	var seed int64
	var format string

	flags := flag.NewFlagSet("schedule", flag.ContinueOnError)
	flags.IntVar(&beamWidth, "beam-width", 0, "override beam width")
	flags.Int64Var(&seed, "seed", 0, "override random seed")
	flags.StringVar(&format, "format", "task", "output format: task or block")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	rest := flags.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "wardsched schedule: expected exactly one problem descriptor path")
		return 2
	}

	f, err := os.Open(rest[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer f.Close()

	p, err := wardjson.Decode(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if beamWidth > 0 {
		p.BeamWidth = beamWidth
	}
	if seed != 0 {
		p.RandomSeed = seed
	}

	fm, err := report.ParseFormat(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "wardsched",
		Level: hclog.Warn,
	})

	outcome, err := beam.Schedule(p, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if _, infeasible := err.(*ward.NoFeasibleAssignmentError); infeasible {
			return 1
		}
		return 2
	}

	fmt.Println(report.Render(p, outcome.Assignment, fm))
	fmt.Printf("score: %.2f\n", outcome.Score)
	return 0
}

// AutocompleteArgs and AutocompleteFlags implement
// cli.CommandAutocomplete, wiring github.com/posener/complete for
// shell completion the way Nomad's own commands do.
func (c *ScheduleCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictFiles("*.json")
}

func (c *ScheduleCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{
		"-beam-width": complete.PredictAnything,
		"-seed":       complete.PredictAnything,
		"-format":     complete.PredictSet("task", "block"),
	}
}
