// Package dataset: the row-oriented collaborator surface. A separate
// persistence component may serialize the table without knowing how the
// records were computed; all it relies on is the stable order guaranteed
// by Build and the sorted value lists.
package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// csvHeader is the fixed column layout of the exported table.
var csvHeader = []string{"p", "n", "a", "cardinality", "is_permutation", "values"}

// WriteCSV serializes the table to w in its stable record order:
// primes ascending, then n ascending, then a ascending. Value sets are
// emitted as ";"-joined ascending residues, so repeated runs over the
// same configuration produce byte-identical output.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	row := make([]string, len(csvHeader))
	for _, r := range d.records {
		row[0] = strconv.FormatInt(r.P, 10)
		row[1] = strconv.FormatInt(r.N, 10)
		row[2] = strconv.FormatInt(r.A, 10)
		row[3] = strconv.FormatInt(r.Cardinality, 10)
		row[4] = strconv.FormatBool(r.IsPermutation)
		row[5] = joinValues(r.Values)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// joinValues renders a sorted value list as "v0;v1;...".
func joinValues(values []int64) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}

	return b.String()
}
