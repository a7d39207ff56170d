package model

// Source marks which upstream authority a record came from.
type Source string

const (
	SourceSymbolAuthority  Source = "symbol"
	SourceNumericAuthority Source = "numeric"
)

// One normalized row from an upstream identifier table.
// Position == 0 means the source gave no position (genomic coordinates are 1-based).
type IdentifierRecord struct {
	ExternalID string `json:"external_id"`
	GeneKey    string `json:"gene_key"`
	Source     Source `json:"source"`
	Chromosome string `json:"chromosome,omitempty"`
	Position   int    `json:"position,omitempty"`
	NumericID  string `json:"numeric_id,omitempty"`
}

// CanonicalGene is the reconciled view of one gene key across all sources.
type CanonicalGene struct {
	CanonicalID string   `json:"canonical_id"`
	GeneKey     string   `json:"gene_key"`
	Chromosome  string   `json:"chromosome,omitempty"`
	Position    int      `json:"position,omitempty"`
	Aliases     []string `json:"aliases"`
}

// One row of the variant-association table.
type VariantAssociation struct {
	VariantID string `json:"variant_id"`
	GeneKey   string `json:"gene_key"`
	Relation  string `json:"relation"`
}

type ChromosomeMapEntry struct {
	VariantID  string `json:"variant_id"`
	Chromosome string `json:"chromosome"`
	Position   int    `json:"position"`
	GeneID     string `json:"gene_id"`
}

type TripleEntry struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}
