package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizquery-org/vizquery/schema"
)

func processedFor(t *testing.T, fields ...schema.FieldDescriptor) []processedField {
	t.Helper()
	return indexFields(fields)
}

func TestScoreField(t *testing.T) {
	pf := processedFor(t, schema.FieldDescriptor{ID: "order_date", DisplayName: "Order Date"})[0]

	tests := []struct {
		name     string
		tokens   []string
		expected int
	}{
		// 20 exact + 10 substring + 12 overlap + 5 full coverage
		{"exact name", []string{"order", "date"}, 47},
		// 6 for one overlapping token
		{"single token overlap", []string{"date", "revenue"}, 6},
		// 10 substring + 12 overlap + 5 coverage
		{"superset of name", []string{"order", "date", "region"}, 27},
		{"no overlap", []string{"revenue"}, 0},
		{"empty tokens", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoreField(pf, tt.tokens))
		})
	}
}

func TestPickBestPrefersEarlierFieldOnTie(t *testing.T) {
	fields := processedFor(t,
		schema.FieldDescriptor{ID: "uom_a", DisplayName: "Alpha UOM"},
		schema.FieldDescriptor{ID: "uom_b", DisplayName: "Beta UOM"},
	)

	// 10 substring + 6 overlap for both fields; the tie keeps schema order.
	best, score := pickBest(fields, []string{"uom"}, preferAny, map[string]bool{})
	require.NotNil(t, best)
	assert.Equal(t, "uom_a", best.field.ID)
	assert.Equal(t, 16, score)
}

func TestPickBestSkipsUsedFields(t *testing.T) {
	fields := processedFor(t,
		schema.FieldDescriptor{ID: "region", DisplayName: "Region"},
		schema.FieldDescriptor{ID: "subregion", DisplayName: "Sub Region"},
	)

	used := map[string]bool{"region": true}
	best, _ := pickBest(fields, []string{"region"}, preferAny, used)
	require.NotNil(t, best)
	assert.Equal(t, "subregion", best.field.ID)
}

func TestPreferenceBonusNeedsPositiveBase(t *testing.T) {
	fields := processedFor(t,
		schema.FieldDescriptor{ID: "revenue", SemanticType: schema.Quantitative, AnalyticRole: schema.RoleMeasure},
	)

	// No token overlap: the measure preference alone must not elect a field.
	best, score := pickBest(fields, []string{"unrelated"}, preferMeasure, map[string]bool{})
	assert.Nil(t, best)
	assert.Zero(t, score)
}

func TestPreferenceBonusBreaksTies(t *testing.T) {
	fields := processedFor(t,
		schema.FieldDescriptor{ID: "sales_team", DisplayName: "Sales Team"},
		schema.FieldDescriptor{ID: "sales_total", DisplayName: "Sales Total", SemanticType: schema.Quantitative, AnalyticRole: schema.RoleMeasure},
	)

	best, _ := pickBest(fields, []string{"sales"}, preferMeasure, map[string]bool{})
	require.NotNil(t, best)
	assert.Equal(t, "sales_total", best.field.ID)

	best, _ = pickBest(fields, []string{"sales"}, preferDimension, map[string]bool{})
	require.NotNil(t, best)
	assert.Equal(t, "sales_team", best.field.ID)
}
