package source

import (
	"strings"
	"testing"

	"github.com/biokg/snp2kg/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTable(t *testing.T, name, tsv string) Table {
	t.Helper()
	table, err := LoadTSV(name, strings.NewReader(tsv))
	require.NoError(t, err)
	return table
}

func TestLoadTSVSkipsBlankAndComments(t *testing.T) {
	table := loadTable(t, "symbol_genes", "# header comment\nHGNC:1100\tBRCA1\t17q21.31\t43044295\n\nHGNC:1101\tBRCA2\n")

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"HGNC:1100", "BRCA1", "17q21.31", "43044295"}, table.Rows[0])
}

func TestSymbolGenesOneRecordPerRow(t *testing.T) {
	table := loadTable(t, "symbol_genes",
		"HGNC:1100\tBRCA1\t17q21.31\t43044295\n"+
			"HGNC:1101\tBRCA2\t13q13.1\t32315086\n"+
			"HGNC:11998\tTP53\t17p13.1\n")

	res := SymbolGenes(table)

	require.Equal(t, 3, res.Total)
	require.Empty(t, res.Rejected)
	require.Len(t, res.Records, 3)

	first := res.Records[0]
	assert.Equal(t, "HGNC:1100", first.ExternalID)
	assert.Equal(t, "BRCA1", first.GeneKey)
	assert.Equal(t, model.SourceSymbolAuthority, first.Source)
	assert.Equal(t, "17", first.Chromosome)
	assert.Equal(t, 43044295, first.Position)

	// No position column is fine, position stays unset.
	assert.Equal(t, 0, res.Records[2].Position)
	assert.Equal(t, "17", res.Records[2].Chromosome)
}

func TestSymbolGenesRejectsMalformedRowsAndKeepsGoing(t *testing.T) {
	table := loadTable(t, "symbol_genes",
		"HGNC:1100\tBRCA1\t17q21.31\t43044295\n"+
			"HGNC:9999\n"+ // missing gene_key column
			"\tORPHAN\n"+ // empty external_id
			"HGNC:1100\tBRCA1\n"+ // duplicate external_id
			"HGNC:2\tA2M\t12p13.31\tnot-a-number\n"+
			"HGNC:3\tA2MP1\t12p13.31\t9232268\n")

	res := SymbolGenes(table)

	assert.Equal(t, 6, res.Total)
	assert.Len(t, res.Records, 2)
	require.Len(t, res.Rejected, 4)

	// Rows in = records out + rejected.
	assert.Equal(t, res.Total, len(res.Records)+len(res.Rejected))

	assert.Contains(t, res.Rejected[0].Error(), "symbol_genes row 2")
	assert.Contains(t, res.Rejected[2].Error(), "duplicate external_id")
	assert.Contains(t, res.Rejected[3].Error(), "bad position")
}

func TestSymbolGenesDropsUnparseableLocation(t *testing.T) {
	table := loadTable(t, "symbol_genes",
		"HGNC:1\tA1BG\t19q13.43\n"+
			"HGNC:2\tA2M\tXp22.2\n"+
			"HGNC:3\tWEIRD\treserved\n"+
			"HGNC:4\tMTGENE\tmitochondria\n")

	res := SymbolGenes(table)

	require.Empty(t, res.Rejected)
	assert.Equal(t, "19", res.Records[0].Chromosome)
	assert.Equal(t, "X", res.Records[1].Chromosome)
	assert.Equal(t, "", res.Records[2].Chromosome) // attribute dropped, row kept
	assert.Equal(t, "MT", res.Records[3].Chromosome)
}

func TestNumericGenes(t *testing.T) {
	table := loadTable(t, "numeric_genes",
		"672\tBRCA1\t43044295\n"+
			"675\tBRCA2\n"+
			"abc\tBADID\n")

	res := NumericGenes(table)

	require.Len(t, res.Records, 2)
	require.Len(t, res.Rejected, 1)
	assert.Contains(t, res.Rejected[0].Error(), "not numeric")

	first := res.Records[0]
	assert.Equal(t, model.SourceNumericAuthority, first.Source)
	assert.Equal(t, "672", first.NumericID)
	assert.Equal(t, 43044295, first.Position)
	assert.Equal(t, "", first.Chromosome) // numeric authority carries no location
}

func TestAssociations(t *testing.T) {
	table := loadTable(t, "variant_associations",
		"rs123\tBRCA1\n"+
			"rs123\tBRCA1\tassociated_with\n"+
			"rs456\tTP53\ttranscribed_to\n"+
			"rs789\tBRCA2\tcauses\n"+
			"\tBRCA1\n")

	res := Associations(table)

	require.Len(t, res.Assocs, 3)
	require.Len(t, res.Rejected, 2)

	assert.Equal(t, model.PredicateAssociatedWith, res.Assocs[0].Relation)
	assert.Equal(t, model.PredicateAssociatedWith, res.Assocs[1].Relation)
	assert.Equal(t, model.PredicateTranscribedTo, res.Assocs[2].Relation)
	assert.Contains(t, res.Rejected[0].Error(), `unknown relation "causes"`)
}

func TestAdaptersAreRestartable(t *testing.T) {
	table := loadTable(t, "symbol_genes", "HGNC:1100\tBRCA1\t17q21.31\t43044295\n")

	a := SymbolGenes(table)
	b := SymbolGenes(table)

	assert.Equal(t, a.Records, b.Records)
	assert.Equal(t, a.Rejected, b.Rejected)
}
