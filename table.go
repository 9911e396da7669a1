package exposure

import (
	"fmt"
	"io"
	"strings"

	"github.com/cloudfoundry/bytefmt"
	log "github.com/sirupsen/logrus"
)

const noFilterLabel = "no ND"

// Table is the cross product of shutter speeds (rows) and filter stacks
// (columns).
type Table struct {
	Filters  FilterList
	Shutters []Shutter
}

// Row is one shutter speed rendered without a filter and behind every
// filter stack of the table, in column order.
type Row struct {
	Shutter string   `json:"shutter"`
	Cells   []string `json:"cells"`
}

// Document is the JSON form of a table: the filter columns and the
// rendered rows.
type Document struct {
	Filters FilterList `json:"filters"`
	Rows    []Row      `json:"rows"`
}

// NewTable returns the table for the camera's shutter speeds and the
// generated filter combinations.
func NewTable() *Table {
	return &Table{
		Filters:  Combinations,
		Shutters: Shutters,
	}
}

// Rows computes every cell of the table. Both output formats are
// rendered from it.
func (t *Table) Rows() []Row {
	rows := make([]Row, 0, len(t.Shutters))
	for _, s := range t.Shutters {
		cells := make([]string, 0, len(t.Filters))
		for _, f := range t.Filters {
			cells = append(cells, s.StringWithStops(f.Stops))
		}
		rows = append(rows, Row{Shutter: s.String(), Cells: cells})
	}
	return rows
}

func (t *Table) Document() *Document {
	return &Document{
		Filters: t.Filters,
		Rows:    t.Rows(),
	}
}

// WriteGrid writes the table as pipe delimited rows with a dash
// separator under the header, ready to paste into a markdown document.
func (t *Table) WriteGrid(w io.Writer) error {
	out := &tableWriter{w: w}

	out.printf("| %s | ", padRight(noFilterLabel))
	for _, f := range t.Filters {
		out.printf("%s | ", f)
	}
	out.printf("\n")

	out.printf("| %s | ", strings.Repeat("-", ColumnWidth))
	for range t.Filters {
		out.printf("%s | ", strings.Repeat("-", ColumnWidth))
	}
	out.printf("\n")

	for _, row := range t.Rows() {
		out.printf("| %s | ", row.Shutter)
		for _, cell := range row.Cells {
			out.printf("%s | ", cell)
		}
		out.printf("\n")
	}

	return out.done("grid", len(t.Shutters), len(t.Filters))
}

// WriteCSV writes the table as comma delimited rows. The header, preceded
// by a blank line, is written before the first row and again at the
// middle row so a printout of either half has its own header.
func (t *Table) WriteCSV(w io.Writer) error {
	out := &tableWriter{w: w}
	rows := t.Rows()

	middle := len(rows) / 2
	if len(rows) == 0 {
		t.writeCSVHeader(out)
	}
	for i, row := range rows {
		if (middle == 0 && i == 0) || (middle != 0 && i%middle == 0) {
			t.writeCSVHeader(out)
		}
		out.printf("%s", row.Shutter)
		for _, cell := range row.Cells {
			out.printf(",  %s", cell)
		}
		out.printf("\n")
	}

	return out.done("csv", len(t.Shutters), len(t.Filters))
}

func (t *Table) writeCSVHeader(out *tableWriter) {
	out.printf("\n")
	out.printf("%s", padLeft(noFilterLabel))
	for _, f := range t.Filters {
		out.printf(",  %s", f)
	}
	out.printf("\n")
}

// tableWriter keeps the first write error and stops writing after it.
type tableWriter struct {
	w       io.Writer
	written int
	err     error
}

func (tw *tableWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	n, err := fmt.Fprintf(tw.w, format, args...)
	tw.written += n
	tw.err = err
}

func (tw *tableWriter) done(format string, rows, columns int) error {
	fields := log.Fields{
		"action":  "render_table",
		"status":  "ok",
		"format":  format,
		"rows":    rows,
		"columns": columns,
		"size":    bytefmt.ByteSize(uint64(tw.written)),
	}
	if tw.err != nil {
		fields["status"] = "error"
		fields["error"] = tw.err
		log.WithFields(fields).Debug("Error rendering table")
		return fmt.Errorf("writing %s table: %w", format, tw.err)
	}
	log.WithFields(fields).Debug("Rendered table")
	return nil
}
