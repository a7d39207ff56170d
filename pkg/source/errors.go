package source

import "fmt"

// RowError records one rejected source row. Row rejection is never fatal;
// the driver reports the accumulated errors at the end of the run.
type RowError struct {
	Table  string
	Row    int // 1-based position within the snapshot
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("malformed record %s row %d: %s", e.Table, e.Row, e.Reason)
}
