package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biokg/snp2kg/pkg/model"
)

// WriteChromosomeMap emits the chromosome map as TSV with a header row.
// Entries are written in the order given; the mapper already sorted them.
func WriteChromosomeMap(w io.Writer, entries []model.ChromosomeMapEntry) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "variant_id\tchromosome\tposition\tgene_id"); err != nil {
		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%d\t%s\n", e.VariantID, e.Chromosome, e.Position, e.GeneID); err != nil {
			return err
		}
	}

	return bw.Flush()
}
