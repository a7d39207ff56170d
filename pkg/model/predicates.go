package model

// Closed predicate vocabulary for the triples map. Association rows either
// leave the relation column empty (default) or name one of these.
const (
	PredicateAssociatedWith = "associated_with"
	PredicateTranscribedTo  = "transcribed_to"
	PredicateTranslatedTo   = "translated_to"
)

var KNOWN_PREDICATES = map[string]bool{
	PredicateAssociatedWith: true,
	PredicateTranscribedTo:  true,
	PredicateTranslatedTo:   true,
}
