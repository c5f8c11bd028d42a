package engine

import (
	"strings"

	"github.com/vizquery-org/vizquery/schema"
)

// ============================================================================
// FIELD INDEXER
// ============================================================================
// Precomputes a normalized, tokenized, semantically-typed view of each schema
// field. Built fresh per invocation and read-only for the rest of the
// pipeline.
// ============================================================================

type processedField struct {
	field      schema.FieldDescriptor
	normalized string
	tokens     []string
	semantic   schema.SemanticType
	role       schema.AnalyticRole
	isNumeric  bool
	isTemporal bool
}

// indexFields resolves missing semantic types and roles and tokenizes field
// names. Field-name tokens are not stop-word filtered; fields keep their own
// vocabulary.
func indexFields(fields []schema.FieldDescriptor) []processedField {
	out := make([]processedField, 0, len(fields))
	for _, f := range fields {
		normalized := Normalize(f.Name())

		semantic := f.SemanticType
		if semantic == "" {
			if f.AnalyticRole == schema.RoleMeasure {
				semantic = schema.Quantitative
			} else {
				semantic = schema.Nominal
			}
		}
		role := f.AnalyticRole
		if role == "" {
			if semantic == schema.Quantitative {
				role = schema.RoleMeasure
			} else {
				role = schema.RoleDimension
			}
		}

		out = append(out, processedField{
			field:      f,
			normalized: normalized,
			tokens:     strings.Fields(normalized),
			semantic:   semantic,
			role:       role,
			isNumeric:  semantic == schema.Quantitative || role == schema.RoleMeasure,
			isTemporal: semantic == schema.Temporal || temporalHintPattern.MatchString(normalized),
		})
	}
	return out
}
