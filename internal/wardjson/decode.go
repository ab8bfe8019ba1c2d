// Package wardjson decodes a JSON problem descriptor into a
// ward.Problem. This is the thinnest possible realization of the
// "parsing the input" collaborator, kept deliberately out of the
// scheduling core — it carries no scheduling logic, only enough shape
// to make cmd/wardsched runnable end to end.
package wardjson

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tansey/nurse-scheduling/pkg/ward"
)

type document struct {
	Blocks           int      `json:"blocks"`
	BlockTimes       []string `json:"block_times"`
	MinBreakBlock    int      `json:"min_break_block"`
	MaxBreakBlock    int      `json:"max_break_block"`
	MaxOnBreak       int      `json:"max_on_break"`
	ShiftStartBlocks []int    `json:"shift_start_blocks"`
	BeamWidth        int      `json:"beam_width"`
	RandomSeed       int64    `json:"random_seed"`
	Staffers         []staffer `json:"staffers"`
	Tasks            []task    `json:"tasks"`
}

type staffer struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"` // "nurse" | "assistant"
	Sex       string `json:"sex"`  // "male" | "female"
	Available []int  `json:"available"`
}

type task struct {
	Type      string `json:"type"` // "medication" | "general_observation" | "patient_observation"
	ID        string `json:"id"`
	Patient   string `json:"patient,omitempty"`
	Blocks    []int  `json:"blocks"`
	Headcount int    `json:"headcount,omitempty"`
	MaleOnly  bool   `json:"male_only,omitempty"`
}

// Decode reads a JSON problem descriptor from r and builds a
// ward.Problem. It does not validate cross-field invariants — that is
// pkg/ward/problem.Validate's job, run by beam.Schedule before the
// driver starts.
func Decode(r io.Reader) (*ward.Problem, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("wardjson: decode: %w", err)
	}

	p := &ward.Problem{
		Blocks:           doc.Blocks,
		BlockTimes:       doc.BlockTimes,
		MinBreakBlock:    doc.MinBreakBlock,
		MaxBreakBlock:    doc.MaxBreakBlock,
		MaxOnBreak:       doc.MaxOnBreak,
		ShiftStartBlocks: ward.NewBlockSet(doc.ShiftStartBlocks...),
		BeamWidth:        doc.BeamWidth,
		RandomSeed:       doc.RandomSeed,
	}

	for _, s := range doc.Staffers {
		role, err := parseRole(s.Role)
		if err != nil {
			return nil, fmt.Errorf("wardjson: staffer %q: %w", s.Name, err)
		}
		sex, err := parseSex(s.Sex)
		if err != nil {
			return nil, fmt.Errorf("wardjson: staffer %q: %w", s.Name, err)
		}
		p.Staffers = append(p.Staffers, &ward.Staffer{
			ID:        ward.StafferID(s.ID),
			Name:      s.Name,
			Role:      role,
			Sex:       sex,
			Available: ward.NewBlockSet(s.Available...),
		})
	}

	for _, t := range doc.Tasks {
		built, err := buildTask(t)
		if err != nil {
			return nil, err
		}
		p.Tasks = append(p.Tasks, built)
	}

	return p, nil
}

func buildTask(t task) (ward.Task, error) {
	blocks := ward.NewBlockSet(t.Blocks...)
	switch t.Type {
	case "medication":
		return ward.NewMedication(ward.TaskID(t.ID), blocks), nil
	case "general_observation":
		return ward.NewGeneralObservation(ward.TaskID(t.ID), blocks), nil
	case "patient_observation":
		headcount := t.Headcount
		if headcount == 0 {
			headcount = 1
		}
		return ward.NewPatientObservation(ward.TaskID(t.ID), t.Patient, blocks, headcount, t.MaleOnly), nil
	default:
		return nil, fmt.Errorf("wardjson: task %q: unknown type %q", t.ID, t.Type)
	}
}

func parseRole(s string) (ward.Role, error) {
	switch s {
	case "nurse", "rmn", "RMN":
		return ward.Nurse, nil
	case "assistant", "hca", "HCA":
		return ward.Assistant, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

func parseSex(s string) (ward.Sex, error) {
	switch s {
	case "male":
		return ward.Male, nil
	case "female":
		return ward.Female, nil
	default:
		return 0, fmt.Errorf("unknown sex %q", s)
	}
}
