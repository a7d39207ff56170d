package model

var (
	// Karyotype order: autosomes 1-22, then X, Y, MT.
	// This is the chromosome sort key, not lexicographic order.
	CHROMOSOMES = []string{
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
		"11", "12", "13", "14", "15", "16", "17", "18", "19", "20",
		"21", "22", "X", "Y", "MT",
	}

	CHROMOSOME_TO_INDEX = map[string]int{}

	// Alternative spellings seen in upstream tables.
	CHROMOSOME_ALIASES = map[string]string{
		"M":             "MT",
		"mitochondria":  "MT",
		"mitochondrial": "MT",
	}
)

func init() {
	for i, chromosome := range CHROMOSOMES {
		CHROMOSOME_TO_INDEX[chromosome] = i
	}
}

// NormalizeChromosome resolves aliases and reports whether the token names a
// known chromosome.
func NormalizeChromosome(token string) (string, bool) {
	if alias, ok := CHROMOSOME_ALIASES[token]; ok {
		token = alias
	}
	_, ok := CHROMOSOME_TO_INDEX[token]
	return token, ok
}

// ChromosomeIndex returns the karyotype position of a chromosome, or
// len(CHROMOSOMES) for anything unknown so unknowns sort last.
func ChromosomeIndex(chromosome string) int {
	if i, ok := CHROMOSOME_TO_INDEX[chromosome]; ok {
		return i
	}
	return len(CHROMOSOMES)
}
