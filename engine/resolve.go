package engine

import "go.uber.org/zap"

// ============================================================================
// ROLE RESOLVER — the core heuristic
// ============================================================================
// Scores every field against clause token sets and the whole-query token
// set, then assigns the primary dimension, secondary (color) dimension and
// measure roles. Clause evidence wins over whole-query evidence; whole-query
// bindings are remembered so the narrator can flag them as weak matches.
// ============================================================================

type resolution struct {
	primary   *processedField
	secondary *processedField
	measure   *processedField

	aggregator          Aggregator
	detected            *aggregatorMatch
	aggregatorDefaulted bool

	clauses      []string
	separator    string
	globalTokens []string
	hasTrendHint bool

	// Which roles were bound from whole-query evidence rather than an
	// explicit clause.
	primaryFromGlobal   bool
	secondaryFromGlobal bool
	measureFromGlobal   bool

	processed []processedField
	used      map[string]bool
}

func (r *resolution) claim(pf *processedField) {
	r.used[pf.field.ID] = true
}

func resolveRoles(query string, processed []processedField, logger *zap.Logger) *resolution {
	res := &resolution{
		processed:    processed,
		used:         make(map[string]bool),
		hasTrendHint: trendHintPattern.MatchString(query),
	}

	res.detected = detectAggregator(query)
	if res.detected != nil {
		res.aggregator = res.detected.key
	}
	cleaned := stripAggregatorPhrases(query, res.detected)

	seg := segmentQuery(cleaned)
	res.clauses = seg.clauses
	res.separator = seg.separator
	res.globalTokens = Tokenize(cleaned)

	logger.Debug("resolver input",
		zap.String("query", query),
		zap.Strings("clauses", res.clauses),
		zap.Strings("tokens", res.globalTokens),
		zap.String("aggregator", string(res.aggregator)),
	)

	if len(res.clauses) >= 2 {
		resolveFromClauses(res)
	}
	resolveFromWholeQuery(res)
	applyDefaultAggregator(res)

	// A secondary dimension with no primary is promoted; the color channel
	// never carries the only dimension.
	if res.primary == nil && res.secondary != nil {
		res.primary = res.secondary
		res.primaryFromGlobal = res.secondaryFromGlobal
		res.secondary = nil
		res.secondaryFromGlobal = false
	}

	logger.Debug("resolved roles",
		zap.String("primary", fieldID(res.primary)),
		zap.String("secondary", fieldID(res.secondary)),
		zap.String("measure", fieldID(res.measure)),
		zap.String("aggregator", string(res.aggregator)),
		zap.Bool("defaulted", res.aggregatorDefaulted),
	)
	return res
}

// resolveFromClauses assigns the first two clauses to roles. Aggregator-first
// queries ("average revenue by region") read measure-then-dimension; default
// queries read dimension-then-measure, with a non-numeric second match
// becoming the secondary (color) dimension instead of the measure.
func resolveFromClauses(res *resolution) {
	firstTokens := Tokenize(res.clauses[0])
	secondTokens := Tokenize(res.clauses[1])

	if res.aggregator != "" && res.aggregator != AggCount {
		if pf, score := pickBest(res.processed, firstTokens, preferMeasure, res.used); pf != nil && score >= minFieldScore {
			res.measure = pf
			res.claim(pf)
		}
		if pf, score := pickBest(res.processed, secondTokens, preferDimension, res.used); pf != nil && score >= minFieldScore {
			res.primary = pf
			res.claim(pf)
		}
		return
	}

	if pf, score := pickBest(res.processed, firstTokens, preferDimension, res.used); pf != nil && score >= minFieldScore {
		res.primary = pf
		res.claim(pf)
	}
	if pf, score := pickBest(res.processed, secondTokens, preferMeasure, res.used); pf != nil && score >= minFieldScore {
		if pf.isNumeric {
			res.measure = pf
		} else {
			res.secondary = pf
		}
		res.claim(pf)
	}
}

// resolveFromWholeQuery fills any role still empty from the whole-query
// token set. The secondary dimension needs a stricter score here so weak
// matches don't crowd the color channel.
func resolveFromWholeQuery(res *resolution) {
	if res.primary == nil {
		pref := preferDimension
		if res.hasTrendHint {
			pref = preferTemporal
		}
		if pf, score := pickBest(res.processed, res.globalTokens, pref, res.used); pf != nil && score >= minFieldScore {
			res.primary = pf
			res.primaryFromGlobal = true
			res.claim(pf)
		}
	}

	if res.measure == nil {
		if pf, score := pickBest(res.processed, res.globalTokens, preferMeasure, res.used); pf != nil && score >= minFieldScore {
			res.measure = pf
			res.measureFromGlobal = true
			res.claim(pf)
		}
	}

	if res.secondary == nil {
		tokens := unclaimedTokens(res)
		if pf, score := pickBest(res.processed, tokens, preferDimension, res.used); pf != nil && score > secondaryGlobalScore {
			res.secondary = pf
			res.secondaryFromGlobal = true
			res.claim(pf)
		}
	}
}

// unclaimedTokens drops tokens already explained by a claimed field, so the
// secondary-dimension search only sees leftover query words.
func unclaimedTokens(res *resolution) []string {
	var out []string
	for _, tok := range res.globalTokens {
		claimed := false
		for i := range res.processed {
			pf := &res.processed[i]
			if !res.used[pf.field.ID] {
				continue
			}
			for _, ft := range pf.tokens {
				if ft == tok {
					claimed = true
					break
				}
			}
			if claimed {
				break
			}
		}
		if !claimed {
			out = append(out, tok)
		}
	}
	return out
}

// applyDefaultAggregator infers an aggregator when the query named none:
// sum over a bound dimension and numeric measure, count for a pure grouping,
// raw values for a lone measure, count otherwise.
func applyDefaultAggregator(res *resolution) {
	if res.aggregator != "" {
		return
	}
	res.aggregatorDefaulted = true
	switch {
	case res.measure != nil && res.measure.isNumeric && res.primary != nil:
		res.aggregator = AggSum
	case res.primary != nil && res.secondary != nil:
		res.aggregator = AggCount
	case res.measure != nil && res.primary == nil:
		res.aggregator = AggNone
	default:
		res.aggregator = AggCount
	}
}

// reresolveNumericMeasure searches the whole query for a numeric measure,
// ignoring earlier claims. Used when the resolved aggregator needs a numeric
// measure and the bound one was discarded.
func reresolveNumericMeasure(res *resolution) *processedField {
	var best *processedField
	bestScore := 0
	for i := range res.processed {
		pf := &res.processed[i]
		if !pf.isNumeric {
			continue
		}
		score := scoreField(*pf, res.globalTokens)
		if score <= 0 {
			continue
		}
		score += preferenceBonus(*pf, preferMeasure)
		if score > bestScore {
			best = pf
			bestScore = score
		}
	}
	if bestScore < minFieldScore {
		return nil
	}
	return best
}

func fieldID(pf *processedField) string {
	if pf == nil {
		return ""
	}
	return pf.field.ID
}
