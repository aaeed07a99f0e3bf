package jobrole

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/darianmavgo/jobrolesql/converters/common"
)

// DefaultTable is the table the script inserts into.
const DefaultTable = "karmafy_jobrole"

const emptyNotice = "-- No jobroles found in input; nothing to import.\n"

// Script is the generated import script.
type Script struct {
	Table  string
	Tuples []Tuple
}

// NewScript returns an empty script for table. An empty table name means DefaultTable.
func NewScript(table string) *Script {
	if table == "" {
		table = DefaultTable
	}
	return &Script{Table: table}
}

// Add appends the tuple for r.
func (s *Script) Add(r Record) {
	s.Tuples = append(s.Tuples, r.Tuple())
}

// Len returns the number of value tuples.
func (s *Script) Len() int {
	return len(s.Tuples)
}

// ColumnList returns the parenthesized column list used by the INSERT.
func ColumnList() string {
	quoted := make([]string, len(Fields))
	for i, f := range Fields {
		quoted[i] = common.QuoteIdent(f)
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

// WriteTo writes the script to w. With no tuples the INSERT is replaced by a notice
// so the output stays valid SQL.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	fmt.Fprint(cw, "-- AUTO-GENERATED: Import all jobroles\n")
	fmt.Fprint(cw, "-- Supabase will auto-generate IDs\n\n")

	if len(s.Tuples) == 0 {
		fmt.Fprint(cw, emptyNotice)
	} else {
		fmt.Fprintf(cw, "INSERT INTO %s %s\n", common.QuoteIdent(s.Table), ColumnList())
		fmt.Fprint(cw, "VALUES\n")
		for i, t := range s.Tuples {
			if i > 0 {
				fmt.Fprint(cw, ",\n")
			}
			fmt.Fprintf(cw, "  %s", t)
		}
		fmt.Fprint(cw, ";\n")
	}

	fmt.Fprint(cw, "\n-- Verify import\n")
	fmt.Fprintf(cw, "SELECT COUNT(*) as total_imported FROM %s;\n", common.QuoteIdent(s.Table))

	if cw.err != nil {
		return cw.n, fmt.Errorf("failed to write script: %w", cw.err)
	}
	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("failed to flush script: %w", err)
	}
	return cw.n, nil
}

// String renders the script.
func (s *Script) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}

// countingWriter keeps the first write error so callers can check once at the end.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
