package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ReadingValue", "reading value"},
		{"TemperatureUOM", "temperature uom"},
		{"XMLParser", "xml parser"},
		{"snake_case_name", "snake case name"},
		{"kebab-case-name", "kebab case name"},
		{"Hello, World!", "hello world"},
		{"  collapse   spaces  ", "collapse spaces"},
		{"Order Date", "order date"},
		{"store2Region", "store2 region"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func TestTokenizeDropsStopWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"show me the revenue by region", []string{"revenue", "region"}},
		{"please plot sales vs cost", []string{"sales", "cost"}},
		{"compare all records", nil},
		{"revenue", []string{"revenue"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Tokenize(tt.input), "Tokenize(%q)", tt.input)
	}
}
