package render

import (
	"encoding/json"
	"io"

	"github.com/biokg/snp2kg/pkg/pipeline"
)

// WriteReport emits the run report as indented JSON.
func WriteReport(w io.Writer, report pipeline.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
