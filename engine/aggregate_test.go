package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectAggregator(t *testing.T) {
	tests := []struct {
		query    string
		expected Aggregator
		phrase   string
	}{
		{"count orders by status", AggCount, "count"},
		{"how many orders failed", AggCount, "how many"},
		{"total rows per region", AggCount, "total rows"},
		{"total revenue by region", AggSum, "total"},
		{"sum of sales", AggSum, "sum"},
		{"add up the revenue", AggSum, "add up"},
		{"average revenue by region", AggMean, "average"},
		{"avg score per team", AggMean, "avg"},
		{"highest price by product", AggMax, "highest"},
		{"minimum cost per order", AggMin, "minimum"},
	}

	for _, tt := range tests {
		match := detectAggregator(tt.query)
		require.NotNil(t, match, "detectAggregator(%q)", tt.query)
		assert.Equal(t, tt.expected, match.key, "detectAggregator(%q)", tt.query)
		assert.Equal(t, tt.phrase, match.phrase, "detectAggregator(%q)", tt.query)
	}
}

func TestDetectAggregatorNoMatch(t *testing.T) {
	// "totally" must not trip the whole-word "total" pattern.
	assert.Nil(t, detectAggregator("make something totally unrelated"))
	assert.Nil(t, detectAggregator("revenue by region"))
}

func TestStripAggregatorPhrases(t *testing.T) {
	match := detectAggregator("average revenue by region")
	require.NotNil(t, match)

	stripped := stripAggregatorPhrases("average revenue by region", match)
	assert.NotContains(t, stripped, "average")
	assert.Contains(t, stripped, "revenue")
	assert.Contains(t, stripped, "region")

	// All synonym phrases go, not just the matched one.
	stripped = stripAggregatorPhrases("average and total revenue", match)
	assert.NotContains(t, stripped, "average")
	assert.NotContains(t, stripped, "total")
}

func TestStripAggregatorPhrasesNoDetection(t *testing.T) {
	// Without a detection the text passes through untouched.
	assert.Equal(t, "sum-free text", stripAggregatorPhrases("sum-free text", nil))
}
