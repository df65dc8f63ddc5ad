package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dgrist/revu/internal/review"
)

// JSONWriter serializes the report snapshot directly: findings keep their
// category-insertion order, no severity sorting is applied.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *review.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
