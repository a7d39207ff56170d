// Namespace reconciliation merges symbol-authority and numeric-authority
// records into one CanonicalGene per gene key. The numeric authority wins
// attribute conflicts; losing values are kept in the collision log rather
// than dropped silently.

package reconcile

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/biokg/snp2kg/logger"
	"github.com/biokg/snp2kg/pkg/model"
	"go.uber.org/zap"
)

// Collision records an attribute value that lost an arbitrated conflict.
type Collision struct {
	GeneKey string
	Field   string
	Kept    string
	Dropped string
}

// ConflictError marks a gene key whose attribute values disagree with no
// priority source to arbitrate. The gene key survives with the attribute
// unset.
type ConflictError struct {
	GeneKey string
	Field   string
	Values  []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("reconciliation conflict on %s.%s: %v", e.GeneKey, e.Field, e.Values)
}

// Result is the reconciled namespace. Keys holds the gene keys in ascending
// order; every downstream ordering guarantee starts from it.
type Result struct {
	Genes      map[string]model.CanonicalGene
	Keys       []string
	Collisions []Collision
	Conflicts  []*ConflictError
}

// Reconcile groups the concatenated adapter output by gene key. The result
// depends only on the set of records, never on their arrival order.
func Reconcile(records []model.IdentifierRecord) *Result {
	groups := make(map[string][]model.IdentifierRecord)
	for _, rec := range records {
		groups[rec.GeneKey] = append(groups[rec.GeneKey], rec)
	}

	res := &Result{
		Genes: make(map[string]model.CanonicalGene, len(groups)),
		Keys:  make([]string, 0, len(groups)),
	}
	for key := range groups {
		res.Keys = append(res.Keys, key)
	}
	sort.Strings(res.Keys)

	for _, key := range res.Keys {
		res.Genes[key] = res.mergeGroup(key, groups[key])
	}

	return res
}

func (res *Result) mergeGroup(key string, group []model.IdentifierRecord) model.CanonicalGene {
	gene := model.CanonicalGene{
		CanonicalID: canonicalID(group),
		GeneKey:     key,
		Aliases:     aliases(group),
	}

	gene.Chromosome = res.mergeField(key, "chromosome", group, func(rec model.IdentifierRecord) string {
		return rec.Chromosome
	})

	pos := res.mergeField(key, "position", group, func(rec model.IdentifierRecord) string {
		if rec.Position <= 0 {
			return ""
		}
		return strconv.Itoa(rec.Position)
	})
	if pos != "" {
		gene.Position, _ = strconv.Atoi(pos)
	}

	return gene
}

// mergeField picks one attribute value for a gene key. Numeric-authority
// values take priority; disagreement inside the deciding source is
// unarbitrable and leaves the attribute unset.
func (res *Result) mergeField(key, field string, group []model.IdentifierRecord, get func(model.IdentifierRecord) string) string {
	numeric := distinctValues(group, model.SourceNumericAuthority, get)
	symbol := distinctValues(group, model.SourceSymbolAuthority, get)
	sortFieldValues(field, numeric)
	sortFieldValues(field, symbol)

	deciding, losers := numeric, symbol
	if len(numeric) == 0 {
		deciding, losers = symbol, nil
	}

	if len(deciding) == 0 {
		return ""
	}

	if len(deciding) > 1 {
		conflict := &ConflictError{GeneKey: key, Field: field, Values: deciding}
		res.Conflicts = append(res.Conflicts, conflict)
		logger.Warn("unarbitrable attribute conflict, leaving unset",
			zap.String("gene_key", key),
			zap.String("field", field),
			zap.Strings("values", deciding))
		return ""
	}

	kept := deciding[0]
	for _, dropped := range losers {
		if dropped == kept {
			continue
		}
		res.Collisions = append(res.Collisions, Collision{
			GeneKey: key,
			Field:   field,
			Kept:    kept,
			Dropped: dropped,
		})
		logger.Debug("attribute collision resolved by source priority",
			zap.String("gene_key", key),
			zap.String("field", field),
			zap.String("kept", kept),
			zap.String("dropped", dropped))
	}

	return kept
}

// canonicalID is a stable function of the record set: the lowest numeric
// cross-reference when the numeric authority contributes one, else the
// lowest symbol-authority external id.
func canonicalID(group []model.IdentifierRecord) string {
	best := 0
	haveNumeric := false
	for _, rec := range group {
		if rec.NumericID == "" {
			continue
		}
		n, err := strconv.Atoi(rec.NumericID)
		if err != nil {
			continue // adapters only emit digit ids
		}
		if !haveNumeric || n < best {
			best = n
			haveNumeric = true
		}
	}
	if haveNumeric {
		return "ncbigene:" + strconv.Itoa(best)
	}

	bestID := ""
	for _, rec := range group {
		if rec.Source != model.SourceSymbolAuthority {
			continue
		}
		if bestID == "" || rec.ExternalID < bestID {
			bestID = rec.ExternalID
		}
	}
	return "hgnc:" + bestID
}

func aliases(group []model.IdentifierRecord) []string {
	seen := make(map[string]bool, len(group))
	out := make([]string, 0, len(group))
	for _, rec := range group {
		if !seen[rec.ExternalID] {
			seen[rec.ExternalID] = true
			out = append(out, rec.ExternalID)
		}
	}
	sort.Strings(out)
	return out
}

func distinctValues(group []model.IdentifierRecord, src model.Source, get func(model.IdentifierRecord) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range group {
		v := get(rec)
		if rec.Source != src || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// sortFieldValues orders attribute values deterministically: positions by
// integer value so conflict reports read in locus order, everything else as
// strings.
func sortFieldValues(field string, values []string) {
	if field == "position" {
		sort.Slice(values, func(i, j int) bool {
			a, _ := strconv.Atoi(values[i])
			b, _ := strconv.Atoi(values[j])
			return a < b
		})
		return
	}
	sort.Strings(values)
}
