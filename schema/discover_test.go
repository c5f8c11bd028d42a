package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersCSV = `Order ID,Region,Order Date,Revenue,Notes
ord-1001,North,2025-01-15,1200.50,first
ord-1002,South,2025-02-03,"1,850.00",second
ord-1003,North,2025-02-19,$940.25,third
ord-1004,West,2025-03-07,2100.00,fourth
ord-1005,South,2025-03-22,675.80,fifth
`

func TestDiscoverCSV(t *testing.T) {
	config, err := DiscoverCSV([]byte(ordersCSV))
	require.NoError(t, err)

	assert.Equal(t, "Auto-discovered Dataset", config.Name)
	assert.Equal(t, "csv", config.DiscoveredFrom)

	byID := make(map[string]FieldDescriptor)
	for _, f := range config.Fields {
		byID[f.ID] = f
	}

	region, ok := byID["region"]
	require.True(t, ok, "region should be discovered")
	assert.Equal(t, Nominal, region.SemanticType)
	assert.Equal(t, RoleDimension, region.AnalyticRole)
	assert.Equal(t, "Region", region.DisplayName)

	orderDate, ok := byID["order_date"]
	require.True(t, ok, "order_date should be discovered")
	assert.Equal(t, Temporal, orderDate.SemanticType)
	assert.Equal(t, RoleDimension, orderDate.AnalyticRole)

	revenue, ok := byID["revenue"]
	require.True(t, ok, "revenue should be discovered")
	assert.Equal(t, Quantitative, revenue.SemanticType)
	assert.Equal(t, RoleMeasure, revenue.AnalyticRole)

	// Order ID and Notes are unique per row: skipped, not charted.
	assert.NotContains(t, byID, "order_id")
	assert.NotContains(t, byID, "notes")
	require.Len(t, config.SkippedColumns, 2)
	assert.Equal(t, "Order ID", config.SkippedColumns[0].Column)
	assert.Equal(t, "values are unique per row", config.SkippedColumns[0].Reason)
}

func TestDiscoverCSVRecoverColumns(t *testing.T) {
	config, err := DiscoverCSV([]byte(ordersCSV), DiscoverOptions{
		RecoverColumns: []string{"order_id"},
		Name:           "Orders",
	})
	require.NoError(t, err)
	assert.Equal(t, "Orders", config.Name)

	var found bool
	for _, f := range config.Fields {
		if f.ID == "order_id" {
			found = true
			assert.Equal(t, Nominal, f.SemanticType)
		}
	}
	assert.True(t, found, "recovered column should be included")

	for _, skipped := range config.SkippedColumns {
		assert.NotEqual(t, "Order ID", skipped.Column)
	}
}

func TestDiscoverCSVTemporalNameHint(t *testing.T) {
	// Values don't look like dates, but the header names a time unit.
	csvData := "Fiscal Quarter,Amount\nFQ one,10\nFQ two,20\nFQ three,30\n"

	config, err := DiscoverCSV([]byte(csvData))
	require.NoError(t, err)
	require.Len(t, config.Fields, 2)
	assert.Equal(t, Temporal, config.Fields[0].SemanticType)
}

func TestDiscoverCSVErrors(t *testing.T) {
	_, err := DiscoverCSV([]byte("a,b,c\n"))
	assert.ErrorContains(t, err, "no data rows")
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Story Points", "story_points"},
		{"storyPoints", "story_points"},
		{"StoryPoints", "story_points"},
		{"TemperatureUOM", "temperature_uom"},
		{"XMLParser", "xml_parser"},
		{"already_snake", "already_snake"},
		{"kebab-case", "kebab_case"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, toSnakeCase(tt.input), "toSnakeCase(%q)", tt.input)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"story_points", "Story Points"},
		{"revenue", "Revenue"},
		{"orderDate", "Order Date"},
		{"Already Readable", "Already Readable"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, toDisplayName(tt.input), "toDisplayName(%q)", tt.input)
	}
}

func TestIsTemporalValue(t *testing.T) {
	for _, v := range []string{"Jan-2026", "2025-01", "2025-01-15", "15/01/2025", "Q1-2026", "q3 2025", "2024"} {
		assert.True(t, isTemporalValue(v), "%q should look temporal", v)
	}
	for _, v := range []string{"North", "1200.50", "1825", "widget-42"} {
		assert.False(t, isTemporalValue(v), "%q should not look temporal", v)
	}
}
