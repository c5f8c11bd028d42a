package engine

import "strings"

// ============================================================================
// AGGREGATOR DETECTOR
// ============================================================================

type aggregatorMatch struct {
	key    Aggregator
	phrase string
}

// detectAggregator scans the query for an aggregation keyword phrase in
// fixed priority order (count, sum, mean, max, min). First whole-word match
// wins. Returns nil when nothing matches; the resolver infers a default
// aggregator later.
func detectAggregator(query string) *aggregatorMatch {
	lowered := strings.ToLower(query)
	for _, entry := range aggregatorTable {
		for _, phrase := range entry.phrases {
			if phrasePatterns[phrase].MatchString(lowered) {
				return &aggregatorMatch{key: entry.key, phrase: phrase}
			}
		}
	}
	return nil
}

// stripAggregatorPhrases removes every synonym phrase for every aggregator
// (not just the matched one) so aggregator words don't leak into
// field-matching tokens. No-op when nothing was detected.
func stripAggregatorPhrases(text string, match *aggregatorMatch) string {
	if match == nil {
		return text
	}
	updated := text
	for _, entry := range aggregatorTable {
		for _, phrase := range entry.phrases {
			updated = phrasePatterns[phrase].ReplaceAllString(updated, " ")
		}
	}
	return updated
}
