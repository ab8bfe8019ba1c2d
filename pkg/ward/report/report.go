// Package report implements purely presentational rendering of a
// finished Assignment. Two layouts are supported: task-wise (one block
// list per task) and block-wise (one row per block, one column per
// task).
package report

import (
	"fmt"
	"strings"

	"github.com/tansey/nurse-scheduling/pkg/ward"
)

// Format selects a reporter layout.
type Format int

const (
	TaskWise Format = iota
	BlockWise
)

// ParseFormat maps the CLI's --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "task", "":
		return TaskWise, nil
	case "block":
		return BlockWise, nil
	default:
		return 0, fmt.Errorf("unknown format %q, want \"task\" or \"block\"", s)
	}
}

// Render formats the outcome's assignment according to format.
func Render(p *ward.Problem, a ward.Assignment, format Format) string {
	switch format {
	case BlockWise:
		return renderBlockWise(p, a)
	default:
		return renderTaskWise(p, a)
	}
}

func staffName(p *ward.Problem, id ward.StafferID) string {
	if id == ward.NoStaffer {
		return "-"
	}
	if s := p.StafferByID(id); s != nil {
		return s.Name
	}
	return fmt.Sprintf("staffer#%d", id)
}

func renderTaskWise(p *ward.Problem, a ward.Assignment) string {
	var b strings.Builder
	for _, t := range p.Tasks {
		fmt.Fprintln(&b, t)
		for _, block := range t.Blocks().Slice() {
			names := make([]string, t.Headcount())
			for i := 0; i < t.Headcount(); i++ {
				sid, _ := a.Get(ward.TaskKey(block, t.ID(), i))
				names[i] = staffName(p, sid)
			}
			fmt.Fprintf(&b, "%s: %s\n", blockLabel(p, block), strings.Join(names, ", "))
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, "Breaks")
	for block := p.MinBreakBlock; block <= p.MaxBreakBlock+1 && block < p.Blocks; block++ {
		var names []string
		for i := 0; i < p.MaxOnBreak; i++ {
			sid, ok := a.Get(ward.BreakKey(block, i))
			if ok && sid != ward.NoStaffer {
				names = append(names, staffName(p, sid))
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(&b, "%s: %s\n", blockLabel(p, block), strings.Join(names, ", "))
		}
	}
	return b.String()
}

func renderBlockWise(p *ward.Problem, a ward.Assignment) string {
	var b strings.Builder

	header := []string{"Block"}
	for _, t := range p.Tasks {
		header = append(header, t.String())
	}
	header = append(header, "Breaks")
	fmt.Fprintln(&b, strings.Join(header, "\t"))

	for block := 0; block < p.Blocks; block++ {
		row := []string{blockLabel(p, block)}
		for _, t := range p.Tasks {
			if !t.Blocks().Contains(block) {
				row = append(row, "")
				continue
			}
			names := make([]string, t.Headcount())
			for i := 0; i < t.Headcount(); i++ {
				sid, _ := a.Get(ward.TaskKey(block, t.ID(), i))
				names[i] = staffName(p, sid)
			}
			row = append(row, strings.Join(names, ", "))
		}

		var onBreak []string
		if p.BreaksActiveAt(block) {
			for i := 0; i < p.MaxOnBreak; i++ {
				sid, ok := a.Get(ward.BreakKey(block, i))
				if ok && sid != ward.NoStaffer {
					onBreak = append(onBreak, staffName(p, sid))
				}
			}
		}
		row = append(row, strings.Join(onBreak, ", "))
		fmt.Fprintln(&b, strings.Join(row, "\t"))
	}
	return b.String()
}

func blockLabel(p *ward.Problem, block int) string {
	if block >= 0 && block < len(p.BlockTimes) {
		return p.BlockTimes[block]
	}
	return fmt.Sprintf("block %d", block)
}
