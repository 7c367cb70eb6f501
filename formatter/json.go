package formatter

import (
	"encoding/json"
	"io"

	tt "github.com/gnolang/tlogic/internal/types"
)

// WriteJSON writes reports as an indented JSON array. The truth table rows
// are dropped unless withRows is set.
func WriteJSON(w io.Writer, reports []tt.Report, withRows bool) error {
	out := make([]tt.Report, len(reports))
	copy(out, reports)
	if !withRows {
		for i := range out {
			out[i].Rows = nil
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
