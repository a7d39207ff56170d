// Placement of variants onto chromosomal loci via their reconciled genes.

package chrommap

import (
	"sort"

	"github.com/biokg/snp2kg/logger"
	"github.com/biokg/snp2kg/pkg/model"
	"github.com/biokg/snp2kg/pkg/reconcile"
	"go.uber.org/zap"
)

// Stats counts associations the mapper had to leave out. They surface in the
// run report; none of them aborts a run.
type Stats struct {
	UnmappedVariants int // no associated gene carries a usable locus
	UnknownGeneKeys  int // association points at a gene key reconciliation never saw
}

// Build places each variant on one chromosome. A variant associated with
// several locatable genes takes the lowest locus: karyotype chromosome order
// first, then position, then canonical id. Output is sorted by
// (chromosome, position, variant_id) and holds each variant at most once.
func Build(rec *reconcile.Result, assocs []model.VariantAssociation) ([]model.ChromosomeMapEntry, Stats) {
	var stats Stats

	variants := make(map[string]bool)
	byVariant := make(map[string][]model.CanonicalGene)
	for _, assoc := range assocs {
		variants[assoc.VariantID] = true
		gene, ok := rec.Genes[assoc.GeneKey]
		if !ok {
			continue
		}
		if gene.Chromosome == "" || gene.Position <= 0 {
			continue
		}
		byVariant[assoc.VariantID] = append(byVariant[assoc.VariantID], gene)
	}

	stats.UnknownGeneKeys = countUnknownKeys(rec, assocs)

	entries := make([]model.ChromosomeMapEntry, 0, len(byVariant))
	for variantID := range variants {
		genes := byVariant[variantID]
		if len(genes) == 0 {
			stats.UnmappedVariants++
			logger.Debug("variant has no locatable gene, skipping",
				zap.String("variant_id", variantID))
			continue
		}

		gene := selectGene(genes)
		entries = append(entries, model.ChromosomeMapEntry{
			VariantID:  variantID,
			Chromosome: gene.Chromosome,
			Position:   gene.Position,
			GeneID:     gene.CanonicalID,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if ai, bi := model.ChromosomeIndex(a.Chromosome), model.ChromosomeIndex(b.Chromosome); ai != bi {
			return ai < bi
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.VariantID < b.VariantID
	})

	return entries, stats
}

// selectGene is the documented tie-break for variants hitting overlapping
// genes: lowest chromosome in karyotype order, then lowest position, then
// lowest canonical id.
func selectGene(genes []model.CanonicalGene) model.CanonicalGene {
	best := genes[0]
	for _, g := range genes[1:] {
		bi, gi := model.ChromosomeIndex(best.Chromosome), model.ChromosomeIndex(g.Chromosome)
		switch {
		case gi < bi:
			best = g
		case gi == bi && g.Position < best.Position:
			best = g
		case gi == bi && g.Position == best.Position && g.CanonicalID < best.CanonicalID:
			best = g
		}
	}
	return best
}

func countUnknownKeys(rec *reconcile.Result, assocs []model.VariantAssociation) int {
	seen := make(map[string]bool)
	count := 0
	for _, assoc := range assocs {
		if _, ok := rec.Genes[assoc.GeneKey]; ok || seen[assoc.GeneKey] {
			continue
		}
		seen[assoc.GeneKey] = true
		count++
		logger.Debug("association references unknown gene key",
			zap.String("gene_key", assoc.GeneKey))
	}
	return count
}
