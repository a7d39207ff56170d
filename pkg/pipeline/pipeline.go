// One-shot pipeline: adapters -> reconciler -> mappers -> outputs.
// Row-level problems accumulate into the run report; the only fatal
// condition is a mandatory source producing no usable records.

package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/biokg/snp2kg/logger"
	"github.com/biokg/snp2kg/pkg/chrommap"
	"github.com/biokg/snp2kg/pkg/model"
	"github.com/biokg/snp2kg/pkg/reconcile"
	"github.com/biokg/snp2kg/pkg/source"
	"github.com/biokg/snp2kg/pkg/triples"
	"go.uber.org/zap"
)

// AbortError is the single fatal condition of a run.
type AbortError struct {
	Table string
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("pipeline aborted: mandatory source %s produced no usable records", e.Table)
}

// Inputs are the three upstream snapshots. All three are mandatory.
type Inputs struct {
	SymbolGenes  source.Table
	NumericGenes source.Table
	Associations source.Table
}

// Report is the aggregate outcome of one run. Every non-fatal condition
// category shows up as a count so nothing is lost silently.
type Report struct {
	RunID                    string                    `json:"run_id"`
	TotalRows                int                       `json:"total_rows"`
	RejectedRows             int                       `json:"rejected_rows"`
	Genes                    int                       `json:"genes"`
	ReconciliationCollisions int                       `json:"reconciliation_collisions"`
	ReconciliationConflicts  int                       `json:"reconciliation_conflicts"`
	UnmappedVariants         int                       `json:"unmapped_variants"`
	UnknownGeneKeys          int                       `json:"unknown_gene_keys"`
	DuplicateTriples         int                       `json:"duplicate_triples_collapsed"`
	ChromosomeMapEntries     int                       `json:"chromosome_map_entries"`
	TripleEntries            int                       `json:"triple_entries"`
	PerChromosome            map[string]int            `json:"entries_per_chromosome"`
	CrossChromosome          []chrommap.ChromosomePair `json:"cross_chromosome_pairs"`
	Warnings                 []string                  `json:"warnings,omitempty"`
}

type Outputs struct {
	ChromosomeMap []model.ChromosomeMapEntry
	Triples       []model.TripleEntry
	Genes         *reconcile.Result
	Report        Report
}

func Run(in Inputs) (*Outputs, error) {
	report := Report{
		RunID:         "run-" + uuid.New().String(),
		PerChromosome: map[string]int{},
	}
	logger.Info("pipeline run starting", zap.String("run_id", report.RunID))

	symbol := source.SymbolGenes(in.SymbolGenes)
	numeric := source.NumericGenes(in.NumericGenes)
	assoc := source.Associations(in.Associations)

	report.TotalRows = symbol.Total + numeric.Total + assoc.Total
	for _, res := range [][]*source.RowError{symbol.Rejected, numeric.Rejected, assoc.Rejected} {
		report.RejectedRows += len(res)
		for _, rowErr := range res {
			report.Warnings = append(report.Warnings, rowErr.Error())
			logger.Warn("rejected source row", zap.String("reason", rowErr.Error()))
		}
	}

	if len(symbol.Records) == 0 {
		return nil, &AbortError{Table: in.SymbolGenes.Name}
	}
	if len(numeric.Records) == 0 {
		return nil, &AbortError{Table: in.NumericGenes.Name}
	}
	if len(assoc.Assocs) == 0 {
		return nil, &AbortError{Table: in.Associations.Name}
	}

	records := make([]model.IdentifierRecord, 0, len(symbol.Records)+len(numeric.Records))
	records = append(records, symbol.Records...)
	records = append(records, numeric.Records...)

	rec := reconcile.Reconcile(records)
	report.Genes = len(rec.Keys)
	report.ReconciliationCollisions = len(rec.Collisions)
	report.ReconciliationConflicts = len(rec.Conflicts)
	for _, conflict := range rec.Conflicts {
		report.Warnings = append(report.Warnings, conflict.Error())
	}

	entries, stats := chrommap.Build(rec, assoc.Assocs)
	report.UnmappedVariants = stats.UnmappedVariants
	report.UnknownGeneKeys = stats.UnknownGeneKeys
	report.ChromosomeMapEntries = len(entries)
	for _, entry := range entries {
		report.PerChromosome[entry.Chromosome]++
	}
	report.CrossChromosome = chrommap.CrossChromosomePairs(rec, assoc.Assocs)

	tripleEntries, duplicates := triples.Build(rec, assoc.Assocs)
	report.DuplicateTriples = duplicates
	report.TripleEntries = len(tripleEntries)

	logger.Info("pipeline run finished",
		zap.String("run_id", report.RunID),
		zap.Int("genes", report.Genes),
		zap.Int("chromosome_map_entries", report.ChromosomeMapEntries),
		zap.Int("triple_entries", report.TripleEntries),
		zap.Int("rejected_rows", report.RejectedRows),
		zap.Int("unmapped_variants", report.UnmappedVariants))

	return &Outputs{
		ChromosomeMap: entries,
		Triples:       tripleEntries,
		Genes:         rec,
		Report:        report,
	}, nil
}
