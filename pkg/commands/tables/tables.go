// Package tables renders the decision tables of the sync operations as
// markdown.
package tables

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/operator"
	"github.com/arthur-debert/sdsync/pkg/types"
)

// Cell is one entry of a decision table.
type Cell struct {
	Action operator.Action
	// Code is set when the operation refuses the pair.
	Code errors.ErrorCode
	// Forced is the outcome with --force when it differs.
	Forced *Cell
}

// Table is the decision table of one operation, indexed by local then
// remote state.
type Table struct {
	Op    operator.Op
	Cells map[types.LocalState]map[types.RemoteState]Cell
}

// Build computes the table for op by asking operator.Decide about every
// state pair.
func Build(op operator.Op) Table {
	t := Table{Op: op, Cells: map[types.LocalState]map[types.RemoteState]Cell{}}
	for _, l := range types.AllLocalStates {
		t.Cells[l] = map[types.RemoteState]Cell{}
		for _, r := range types.AllRemoteStates {
			s := types.SyncStatus{LocalState: l, RemoteState: r}
			cell := decide(op, s, false)
			forced := decide(op, s, true)
			if forced != cell {
				cell.Forced = &forced
			}
			t.Cells[l][r] = cell
		}
	}
	return t
}

func decide(op operator.Op, s types.SyncStatus, force bool) Cell {
	action, err := operator.Decide(op, s, force)
	if err != nil {
		return Cell{Action: action, Code: errors.GetErrorCode(err)}
	}
	return Cell{Action: action}
}

func (c Cell) text() string {
	var b strings.Builder
	if c.Code != "" {
		fmt.Fprintf(&b, "refuse `%s`", c.Code)
	} else {
		fmt.Fprintf(&b, "**%s**: %s", c.Action, operator.Describe(c.Action))
	}
	if c.Forced != nil {
		fmt.Fprintf(&b, "; with --force %s", c.Forced.text())
	}
	return b.String()
}

// Markdown writes the table as a markdown section.
func (t Table) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", t.Op)
	b.WriteString("| local \\ remote |")
	for _, r := range types.AllRemoteStates {
		fmt.Fprintf(&b, " %s |", r)
	}
	b.WriteString("\n|---|")
	for range types.AllRemoteStates {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, l := range types.AllLocalStates {
		fmt.Fprintf(&b, "| %s |", l)
		for _, r := range types.AllRemoteStates {
			fmt.Fprintf(&b, " %s |", t.Cells[l][r].text())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Markdown renders the tables of ops, or of every sync operation when ops
// is empty.
func Markdown(ops ...operator.Op) (string, error) {
	if len(ops) == 0 {
		ops = operator.SyncOps
	}
	sections := make([]string, 0, len(ops))
	for _, op := range ops {
		switch op {
		case operator.OpPut, operator.OpGet, operator.OpCut:
		default:
			return "", errors.Newf(errors.ErrInvalidInput, "%q has no decision table", string(op))
		}
		sections = append(sections, Build(op).Markdown())
	}
	return "# Decision tables\n\n" + strings.Join(sections, "\n"), nil
}
