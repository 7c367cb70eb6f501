package formatter

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	tt "github.com/gnolang/tlogic/internal/types"
)

// ResultColumn is the header of the last CSV column.
const ResultColumn = "RESULT"

var errNoTable = errors.New("report has no truth table")

// WriteCSV writes the truth table of report: a header of the variable names
// followed by RESULT, then one 0/1 line per assignment in enumeration order.
func WriteCSV(w io.Writer, report tt.Report) error {
	if report.Failed() {
		return errors.New(report.Error)
	}
	if len(report.Rows) == 0 {
		return errNoTable
	}

	cw := csv.NewWriter(w)

	header := make([]string, 0, len(report.Variables)+1)
	header = append(header, report.Variables...)
	header = append(header, ResultColumn)
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, row := range report.Rows {
		for i, v := range row.Values {
			record[i] = strconv.Itoa(v)
		}
		record[len(record)-1] = strconv.Itoa(row.Result)
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
