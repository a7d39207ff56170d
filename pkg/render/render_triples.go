package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biokg/snp2kg/pkg/model"
)

// WriteTriples emits the triples map as TSV with a header row.
func WriteTriples(w io.Writer, entries []model.TripleEntry) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "subject\tpredicate\tobject"); err != nil {
		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", e.Subject, e.Predicate, e.Object); err != nil {
			return err
		}
	}

	return bw.Flush()
}
