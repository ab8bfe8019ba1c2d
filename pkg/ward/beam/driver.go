// Package beam implements the sequential beam-search driver that
// iterates blocks in order, expands each beam entry through the
// enumerator and scorer, and retains the top-K partial schedules at
// every step.
package beam

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/tansey/nurse-scheduling/pkg/ward"
	"github.com/tansey/nurse-scheduling/pkg/ward/enumerate"
	"github.com/tansey/nurse-scheduling/pkg/ward/problem"
	"github.com/tansey/nurse-scheduling/pkg/ward/score"
)

// entry is one partial schedule in the beam: a committed prefix and
// its cumulative score.
type entry struct {
	prefix ward.Assignment
	score  float64
}

// Schedule validates p and, if sound, runs the beam search to
// completion. It is a pure function from Problem to Outcome.
func Schedule(p *ward.Problem, logger hclog.Logger) (ward.Outcome, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if err := problem.Validate(p); err != nil {
		return ward.Outcome{}, err
	}
	return run(p, logger)
}

func run(p *ward.Problem, logger hclog.Logger) (ward.Outcome, error) {
	weights := score.DefaultWeights()
	rng := rand.New(rand.NewSource(p.RandomSeed))

	beamSet := []entry{{prefix: ward.NewAssignment(), score: 0}}

	for block := 0; block < p.Blocks; block++ {
		logger.Debug("expanding block", "block", block, "beam_size", len(beamSet))

		expanded, err := expandBlock(p, weights, beamSet, block)
		if err != nil {
			return ward.Outcome{}, err
		}
		if len(expanded) == 0 {
			best := bestOf(beamSet)
			return ward.Outcome{}, &ward.NoFeasibleAssignmentError{
				Block:      block,
				BestPrefix: best.prefix,
				BestScore:  best.score,
			}
		}

		rng.Shuffle(len(expanded), func(i, j int) { expanded[i], expanded[j] = expanded[j], expanded[i] })
		beamSet = boundedTopK(expanded, p.BeamWidth)
	}

	best := bestOf(beamSet)
	return ward.Outcome{Assignment: best.prefix, Score: best.score}, nil
}

// expandBlock expands every entry in the current beam at block,
// concurrently: per-entry expansion shares no mutable state (each
// reads the immutable Problem and its own immutable prefix), which
// makes the fan-out embarrassingly parallel. At most GOMAXPROCS
// expansions run at once.
func expandBlock(p *ward.Problem, w score.Weights, beamSet []entry, block int) ([]entry, error) {
	results := make([][]entry, len(beamSet))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range beamSet {
		i, e := i, e
		g.Go(func() error {
			pens := score.BuildPenalties(p, e.prefix, block, w)
			candidates := enumerate.Enumerate(p, block, e.prefix)

			out := make([]entry, 0, len(candidates))
			for _, c := range candidates {
				delta := score.Score(p, c, w, pens)
				batch := e.prefix.NewBatch()
				for key, sid := range c {
					batch.Set(key, sid)
				}
				out = append(out, entry{prefix: batch.Commit(), score: e.score + delta})
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []entry
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}

func bestOf(entries []entry) entry {
	best := entries[0]
	for _, e := range entries[1:] {
		if e.score < best.score {
			best = e
		}
	}
	return best
}
