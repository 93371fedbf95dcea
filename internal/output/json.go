package output

import (
	"encoding/json"
	"io"

	"github.com/readably/readably/internal/analyze"
)

// JSONFormatter outputs reports as a JSON array.
type JSONFormatter struct{}

type jsonReport struct {
	Path   string         `json:"path"`
	Result analyze.Result `json:"result"`
}

// Format writes reports as a pretty-printed JSON array. No reports
// produces [].
func (f *JSONFormatter) Format(w io.Writer, reports []Report) error {
	items := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		items = append(items, jsonReport{Path: r.Path, Result: r.Result})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
