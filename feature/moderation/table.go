package moderation

import (
	"fmt"
	"io"

	"moderation-diff/core/reconcile"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NoChangesNotice is printed instead of tables when a result is empty.
const NoChangesNotice = "No changes in this moderation request."

// Cell renders a value for display. Markers render as plain labels.
func Cell(v reconcile.Value) string {
	switch v.Kind() {
	case reconcile.KindDeleted:
		return "deleted"
	case reconcile.KindUnavailable:
		return "unavailable"
	default:
		return v.String()
	}
}

// RenderTable writes the added, deleted and changed entities of a result as
// text tables. Changed rows whose suggested value differs from the current
// one are marked with an asterisk.
func RenderTable(w io.Writer, r *reconcile.Result) error {
	if _, err := fmt.Fprintln(w, r.Summary().String()); err != nil {
		return err
	}
	if !r.HasChanges() {
		_, err := fmt.Fprintln(w, NoChangesNotice)
		return err
	}

	if len(r.Added) > 0 {
		renderEntries(w, "Added", r.Fields, r.Added)
	}
	if len(r.Deleted) > 0 {
		renderEntries(w, "Deleted", r.Fields, r.Deleted)
	}
	for _, c := range r.Changed {
		renderChange(w, c)
	}

	if len(r.Warnings) > 0 {
		t := newTable(w)
		t.SetTitle("Warnings")
		t.AppendHeader(table.Row{"ID", "Field", "Slot", "Error"})
		for _, fe := range r.Warnings {
			t.AppendRow(table.Row{fe.ID, fe.Field, fe.Slot, fe.Err})
		}
		t.Render()
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Format = text.FormatDefault
	return t
}

func renderEntries(w io.Writer, title string, fields []string, entries []reconcile.Entry) {
	t := newTable(w)
	t.SetTitle(fmt.Sprintf("%s (%d)", title, len(entries)))

	header := table.Row{"ID"}
	for _, f := range fields {
		header = append(header, f)
	}
	t.AppendHeader(header)

	for _, e := range entries {
		row := table.Row{e.ID}
		for _, v := range e.Values {
			row = append(row, Cell(v))
		}
		t.AppendRow(row)
	}
	t.Render()
}

func renderChange(w io.Writer, c reconcile.Change) {
	t := newTable(w)
	title := "Changed " + c.ID
	if c.Baseline != reconcile.BaselinePresent {
		title += fmt.Sprintf(" (baseline %s)", c.Baseline)
	}
	t.SetTitle(title)
	t.AppendHeader(table.Row{"", "Field", "Current", "Former", "Suggested"})

	for _, row := range c.Rows {
		mark := ""
		if row.Changed() {
			mark = "*"
		}
		t.AppendRow(table.Row{mark, row.Field, Cell(row.Current), Cell(row.Former), Cell(row.Suggested)})
	}
	t.Render()
}
