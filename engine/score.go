package engine

import (
	"strings"

	"github.com/vizquery-org/vizquery/schema"
)

// ============================================================================
// FIELD SCORING
// ============================================================================
// Flat heuristic scoring instead of a grammar: a field earns points for
// exact-name, substring and token-overlap matches against a clause's tokens,
// plus a role-preference bonus. Sub-threshold matches are discarded so
// contentless queries don't bind arbitrary fields.
// ============================================================================

type preference int

const (
	preferAny preference = iota
	preferDimension
	preferMeasure
	preferTemporal
)

// scoreField rates how well a field matches a token set:
//
//	+20 exact normalized-name match
//	+10 one string contains the other
//	 +6 per overlapping token
//	 +5 when every field token is covered
func scoreField(pf processedField, tokens []string) int {
	if len(tokens) == 0 {
		return 0
	}
	joined := strings.Join(tokens, " ")

	score := 0
	if joined == pf.normalized {
		score += 20
	}
	if strings.Contains(pf.normalized, joined) || strings.Contains(joined, pf.normalized) {
		score += 10
	}

	overlap := 0
	for _, ft := range pf.tokens {
		for _, t := range tokens {
			if ft == t {
				overlap++
				break
			}
		}
	}
	score += overlap * 6
	if overlap > 0 && overlap == len(pf.tokens) {
		score += 5
	}
	return score
}

// preferenceBonus is added only on top of a positive base score, so a role
// preference can break ties but never invent a match.
func preferenceBonus(pf processedField, pref preference) int {
	switch pref {
	case preferDimension:
		if pf.role == schema.RoleDimension {
			return 6
		}
	case preferMeasure:
		if pf.role == schema.RoleMeasure {
			return 6
		}
	case preferTemporal:
		if pf.isTemporal {
			return 8
		}
	}
	return 0
}

// pickBest returns the highest-scoring unused field for a token set, or nil
// with score 0 when nothing scores. Ties keep the earlier schema field, which
// keeps resolution deterministic.
func pickBest(fields []processedField, tokens []string, pref preference, used map[string]bool) (*processedField, int) {
	var best *processedField
	bestScore := 0
	for i := range fields {
		pf := &fields[i]
		if used[pf.field.ID] {
			continue
		}
		score := scoreField(*pf, tokens)
		if score <= 0 {
			continue
		}
		score += preferenceBonus(*pf, pref)
		if score > bestScore {
			best = pf
			bestScore = score
		}
	}
	return best, bestScore
}

// rankNumeric orders the unused numeric fields by whole-query token overlap,
// best first; zero scorers keep schema order at the tail. Used to complete
// scatter axes.
func rankNumeric(fields []processedField, tokens []string, used map[string]bool) []*processedField {
	var out []*processedField
	for i := range fields {
		pf := &fields[i]
		if used[pf.field.ID] || !pf.isNumeric {
			continue
		}
		out = append(out, pf)
	}
	// Insertion sort by score, stable over schema order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && scoreField(*out[j], tokens) > scoreField(*out[j-1], tokens); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
