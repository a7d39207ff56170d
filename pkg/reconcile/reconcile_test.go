package reconcile

import (
	"testing"

	"github.com/biokg/snp2kg/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbolRec(externalID, geneKey, chromosome string, position int) model.IdentifierRecord {
	return model.IdentifierRecord{
		ExternalID: externalID,
		GeneKey:    geneKey,
		Source:     model.SourceSymbolAuthority,
		Chromosome: chromosome,
		Position:   position,
	}
}

func numericRec(externalID, geneKey string, position int) model.IdentifierRecord {
	return model.IdentifierRecord{
		ExternalID: externalID,
		GeneKey:    geneKey,
		Source:     model.SourceNumericAuthority,
		NumericID:  externalID,
		Position:   position,
	}
}

func TestMergeAcrossSources(t *testing.T) {
	// Symbol authority knows the locus, numeric authority only the id.
	res := Reconcile([]model.IdentifierRecord{
		symbolRec("HGNC:1100", "BRCA1", "17", 43044295),
		numericRec("672", "BRCA1", 0),
	})

	require.Equal(t, []string{"BRCA1"}, res.Keys)
	gene := res.Genes["BRCA1"]
	assert.Equal(t, "ncbigene:672", gene.CanonicalID)
	assert.Equal(t, "17", gene.Chromosome)
	assert.Equal(t, 43044295, gene.Position)
	assert.Equal(t, []string{"672", "HGNC:1100"}, gene.Aliases)
	assert.Empty(t, res.Collisions)
	assert.Empty(t, res.Conflicts)
}

func TestOrderIndependence(t *testing.T) {
	records := []model.IdentifierRecord{
		symbolRec("HGNC:1100", "BRCA1", "17", 43044295),
		symbolRec("HGNC:0001", "BRCA1", "17", 0),
		numericRec("672", "BRCA1", 43044296),
		numericRec("100", "BRCA1", 0),
		symbolRec("HGNC:11998", "TP53", "17", 7668402),
	}

	forward := Reconcile(records)

	reversed := make([]model.IdentifierRecord, len(records))
	for i, rec := range records {
		reversed[len(records)-1-i] = rec
	}
	backward := Reconcile(reversed)

	assert.Equal(t, forward.Genes, backward.Genes)
	assert.Equal(t, forward.Keys, backward.Keys)
	assert.ElementsMatch(t, forward.Collisions, backward.Collisions)
}

func TestCanonicalIDPrefersLowestNumeric(t *testing.T) {
	res := Reconcile([]model.IdentifierRecord{
		numericRec("9100", "GENE", 0),
		numericRec("672", "GENE", 0),
	})

	// Integer order, not string order: 672 < 9100.
	assert.Equal(t, "ncbigene:672", res.Genes["GENE"].CanonicalID)
}

func TestCanonicalIDFallsBackToSymbol(t *testing.T) {
	res := Reconcile([]model.IdentifierRecord{
		symbolRec("HGNC:2", "GENE", "", 0),
		symbolRec("HGNC:1", "GENE", "", 0),
	})

	assert.Equal(t, "hgnc:HGNC:1", res.Genes["GENE"].CanonicalID)
}

func TestNumericPriorityLogsCollision(t *testing.T) {
	res := Reconcile([]model.IdentifierRecord{
		symbolRec("HGNC:1100", "BRCA1", "17", 43044000),
		numericRec("672", "BRCA1", 43044295),
	})

	gene := res.Genes["BRCA1"]
	assert.Equal(t, 43044295, gene.Position)

	require.Len(t, res.Collisions, 1)
	collision := res.Collisions[0]
	assert.Equal(t, "BRCA1", collision.GeneKey)
	assert.Equal(t, "position", collision.Field)
	assert.Equal(t, "43044295", collision.Kept)
	assert.Equal(t, "43044000", collision.Dropped)
}

func TestUnarbitrableConflictLeavesAttributeUnset(t *testing.T) {
	// Two symbol-authority positions disagree and no numeric value exists.
	res := Reconcile([]model.IdentifierRecord{
		symbolRec("HGNC:1", "GENE", "17", 100),
		symbolRec("HGNC:2", "GENE", "17", 200),
	})

	gene := res.Genes["GENE"]
	assert.Equal(t, 0, gene.Position)
	assert.Equal(t, "17", gene.Chromosome) // chromosome still agrees

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "position", res.Conflicts[0].Field)
	assert.Equal(t, []string{"100", "200"}, res.Conflicts[0].Values)

	// The gene key itself survives.
	assert.Contains(t, res.Keys, "GENE")
}

func TestConflictPositionValuesInLocusOrder(t *testing.T) {
	res := Reconcile([]model.IdentifierRecord{
		symbolRec("HGNC:1", "GENE", "17", 1000),
		symbolRec("HGNC:2", "GENE", "17", 200),
	})

	// Integer order, not string order: "1000" would sort before "200".
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, []string{"200", "1000"}, res.Conflicts[0].Values)
}

func TestOneCanonicalGenePerKey(t *testing.T) {
	res := Reconcile([]model.IdentifierRecord{
		symbolRec("HGNC:1", "A", "", 0),
		symbolRec("HGNC:2", "A", "", 0),
		numericRec("10", "B", 0),
	})

	assert.Equal(t, []string{"A", "B"}, res.Keys)
	assert.Len(t, res.Genes, 2)
}
