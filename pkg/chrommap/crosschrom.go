// Cross-chromosome counts: variants whose associated genes span two
// chromosomes, bucketed per chromosome pair.

package chrommap

import (
	"sort"

	"github.com/biokg/snp2kg/pkg/model"
	"github.com/biokg/snp2kg/pkg/reconcile"
)

// ChromosomePair is one cross-chromosome bucket: the number of variants that
// link a gene on Source to a gene on Target. Source always precedes Target
// in karyotype order.
type ChromosomePair struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Count  int    `json:"count"`
}

// CrossChromosomePairs counts, for every variant associated with locatable
// genes on two different chromosomes, each chromosome pair the variant
// spans. Output is sorted by karyotype order of (Source, Target).
func CrossChromosomePairs(rec *reconcile.Result, assocs []model.VariantAssociation) []ChromosomePair {
	byVariant := make(map[string][]string)
	for _, assoc := range assocs {
		gene, ok := rec.Genes[assoc.GeneKey]
		if !ok || gene.Chromosome == "" || gene.Position <= 0 {
			continue
		}
		byVariant[assoc.VariantID] = append(byVariant[assoc.VariantID], gene.Chromosome)
	}

	counts := make(map[[2]string]int)
	for _, chromosomes := range byVariant {
		distinct := distinctChromosomes(chromosomes)
		for i := 0; i < len(distinct); i++ {
			for j := i + 1; j < len(distinct); j++ {
				counts[[2]string{distinct[i], distinct[j]}]++
			}
		}
	}

	pairs := make([]ChromosomePair, 0, len(counts))
	for pair, count := range counts {
		pairs = append(pairs, ChromosomePair{Source: pair[0], Target: pair[1], Count: count})
	}

	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if ai, bi := model.ChromosomeIndex(a.Source), model.ChromosomeIndex(b.Source); ai != bi {
			return ai < bi
		}
		return model.ChromosomeIndex(a.Target) < model.ChromosomeIndex(b.Target)
	})

	return pairs
}

// distinctChromosomes dedups and orders a variant's chromosomes so each pair
// is emitted once, lower karyotype chromosome first.
func distinctChromosomes(chromosomes []string) []string {
	seen := make(map[string]bool, len(chromosomes))
	var out []string
	for _, c := range chromosomes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return model.ChromosomeIndex(out[i]) < model.ChromosomeIndex(out[j])
	})
	return out
}
