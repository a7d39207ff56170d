// The triples map: subject-predicate-object statements linking variants to
// canonical gene identifiers, ready for knowledge-graph ingestion.

package triples

import (
	"sort"

	"github.com/biokg/snp2kg/pkg/model"
	"github.com/biokg/snp2kg/pkg/reconcile"
)

// Build turns the association stream into deduplicated triples in
// (subject, predicate, object) lexicographic order. Repeated associations
// collapse to one statement; Duplicates reports how many were folded.
func Build(rec *reconcile.Result, assocs []model.VariantAssociation) (entries []model.TripleEntry, duplicates int) {
	seen := make(map[model.TripleEntry]bool, len(assocs))

	for _, assoc := range assocs {
		gene, ok := rec.Genes[assoc.GeneKey]
		if !ok {
			// Counted once per key by the chromosome mapper stats.
			continue
		}

		predicate := assoc.Relation
		if predicate == "" {
			predicate = model.PredicateAssociatedWith
		}

		triple := model.TripleEntry{
			Subject:   assoc.VariantID,
			Predicate: predicate,
			Object:    gene.CanonicalID,
		}
		if seen[triple] {
			duplicates++
			continue
		}
		seen[triple] = true
		entries = append(entries, triple)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Subject != b.Subject {
			return a.Subject < b.Subject
		}
		if a.Predicate != b.Predicate {
			return a.Predicate < b.Predicate
		}
		return a.Object < b.Object
	})

	return entries, duplicates
}
