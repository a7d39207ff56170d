// Adapters normalize the upstream identifier tables into IdentifierRecord /
// VariantAssociation streams. All three table kinds end up in the same shape
// so the later stages never branch on where a record came from.

package source

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/biokg/snp2kg/logger"
	"github.com/biokg/snp2kg/pkg/model"
	"go.uber.org/zap"
)

// Cytogenetic locations look like 17q21.31 or Xp22.2; the chromosome is
// whatever comes before the first arm letter.
var chromosomeArmRE = regexp.MustCompile(`[pq]`)

// LoadResult is the output of one identifier-table adapter pass.
type LoadResult struct {
	Records  []model.IdentifierRecord
	Rejected []*RowError
	Total    int
}

// AssocResult is the output of the variant-association adapter pass.
type AssocResult struct {
	Assocs   []model.VariantAssociation
	Rejected []*RowError
	Total    int
}

// SymbolGenes normalizes the gene-symbol authority table.
// Columns: external_id, gene_key, location (optional), position (optional).
func SymbolGenes(t Table) *LoadResult {
	res := &LoadResult{Total: len(t.Rows)}
	seen := make(map[string]bool, len(t.Rows))

	for i, fields := range t.Rows {
		rec, err := symbolRecord(fields)
		if err != nil {
			res.Rejected = append(res.Rejected, reject(t.Name, i, err))
			continue
		}
		if seen[rec.ExternalID] {
			res.Rejected = append(res.Rejected, reject(t.Name, i, fmt.Errorf("duplicate external_id %q", rec.ExternalID)))
			continue
		}
		seen[rec.ExternalID] = true
		res.Records = append(res.Records, rec)
	}

	return res
}

// NumericGenes normalizes the numeric gene-identifier authority table.
// Columns: external_id (numeric), gene_key, position (optional).
func NumericGenes(t Table) *LoadResult {
	res := &LoadResult{Total: len(t.Rows)}
	seen := make(map[string]bool, len(t.Rows))

	for i, fields := range t.Rows {
		rec, err := numericRecord(fields)
		if err != nil {
			res.Rejected = append(res.Rejected, reject(t.Name, i, err))
			continue
		}
		if seen[rec.ExternalID] {
			res.Rejected = append(res.Rejected, reject(t.Name, i, fmt.Errorf("duplicate external_id %q", rec.ExternalID)))
			continue
		}
		seen[rec.ExternalID] = true
		res.Records = append(res.Records, rec)
	}

	return res
}

// Associations normalizes the variant-association table.
// Columns: variant_id, gene_key, relation (optional, closed vocabulary).
func Associations(t Table) *AssocResult {
	res := &AssocResult{Total: len(t.Rows)}

	for i, fields := range t.Rows {
		assoc, err := associationRecord(fields)
		if err != nil {
			res.Rejected = append(res.Rejected, reject(t.Name, i, err))
			continue
		}
		res.Assocs = append(res.Assocs, assoc)
	}

	return res
}

func symbolRecord(fields []string) (model.IdentifierRecord, error) {
	if len(fields) < 2 {
		return model.IdentifierRecord{}, fmt.Errorf("want at least 2 columns, got %d", len(fields))
	}

	externalID := strings.TrimSpace(fields[0])
	geneKey := strings.TrimSpace(fields[1])
	if externalID == "" {
		return model.IdentifierRecord{}, fmt.Errorf("missing external_id")
	}
	if geneKey == "" {
		return model.IdentifierRecord{}, fmt.Errorf("missing gene_key")
	}

	rec := model.IdentifierRecord{
		ExternalID: externalID,
		GeneKey:    geneKey,
		Source:     model.SourceSymbolAuthority,
	}

	if len(fields) >= 3 {
		rec.Chromosome = chromosomeFromLocation(strings.TrimSpace(fields[2]))
	}
	if len(fields) >= 4 && strings.TrimSpace(fields[3]) != "" {
		pos, err := parsePosition(fields[3])
		if err != nil {
			return model.IdentifierRecord{}, err
		}
		rec.Position = pos
	}

	return rec, nil
}

func numericRecord(fields []string) (model.IdentifierRecord, error) {
	if len(fields) < 2 {
		return model.IdentifierRecord{}, fmt.Errorf("want at least 2 columns, got %d", len(fields))
	}

	externalID := strings.TrimSpace(fields[0])
	geneKey := strings.TrimSpace(fields[1])
	if externalID == "" {
		return model.IdentifierRecord{}, fmt.Errorf("missing external_id")
	}
	if _, err := strconv.Atoi(externalID); err != nil {
		return model.IdentifierRecord{}, fmt.Errorf("external_id %q is not numeric", externalID)
	}
	if geneKey == "" {
		return model.IdentifierRecord{}, fmt.Errorf("missing gene_key")
	}

	rec := model.IdentifierRecord{
		ExternalID: externalID,
		GeneKey:    geneKey,
		Source:     model.SourceNumericAuthority,
		NumericID:  externalID,
	}

	if len(fields) >= 3 && strings.TrimSpace(fields[2]) != "" {
		pos, err := parsePosition(fields[2])
		if err != nil {
			return model.IdentifierRecord{}, err
		}
		rec.Position = pos
	}

	return rec, nil
}

func associationRecord(fields []string) (model.VariantAssociation, error) {
	if len(fields) < 2 {
		return model.VariantAssociation{}, fmt.Errorf("want at least 2 columns, got %d", len(fields))
	}

	variantID := strings.TrimSpace(fields[0])
	geneKey := strings.TrimSpace(fields[1])
	if variantID == "" {
		return model.VariantAssociation{}, fmt.Errorf("missing variant_id")
	}
	if geneKey == "" {
		return model.VariantAssociation{}, fmt.Errorf("missing gene_key")
	}

	relation := model.PredicateAssociatedWith
	if len(fields) >= 3 && strings.TrimSpace(fields[2]) != "" {
		relation = strings.TrimSpace(fields[2])
		if !model.KNOWN_PREDICATES[relation] {
			return model.VariantAssociation{}, fmt.Errorf("unknown relation %q", relation)
		}
	}

	return model.VariantAssociation{
		VariantID: variantID,
		GeneKey:   geneKey,
		Relation:  relation,
	}, nil
}

// chromosomeFromLocation extracts the chromosome from a cytogenetic location.
// A location that does not name a known chromosome just drops the attribute;
// the row itself stays valid.
func chromosomeFromLocation(location string) string {
	if location == "" {
		return ""
	}

	token := chromosomeArmRE.Split(location, 2)[0]
	chromosome, ok := model.NormalizeChromosome(token)
	if !ok {
		logger.Debug("unparseable location, dropping chromosome attribute",
			zap.String("location", location))
		return ""
	}

	return chromosome
}

func parsePosition(raw string) (int, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("bad position %q", raw)
	}
	if pos <= 0 {
		return 0, fmt.Errorf("bad position %d", pos)
	}
	return pos, nil
}

func reject(table string, row int, err error) *RowError {
	return &RowError{Table: table, Row: row + 1, Reason: err.Error()}
}
