package schema

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ============================================================================
// AUTO-DISCOVERY — Heuristic Field Classification
// ============================================================================
// Inspects raw CSV data and generates field descriptors automatically.
// No AI needed. Good enough for well-structured tabular exports.
//
// Classification pipeline per column:
//   1. Sample values → detect value kind (numeric, temporal, string)
//   2. Kind + cardinality → semantic type and analytic role
//   3. Unique IDs and free text → skipped (the engine can't chart them)
// ============================================================================

// DiscoverOptions controls discovery behavior.
type DiscoverOptions struct {
	SampleSize     int      // Max rows to inspect (0 = default 1000)
	RecoverColumns []string // Force-include columns that were auto-skipped
	Name           string   // Dataset name override
}

// DiscoverCSV generates a Config by inspecting CSV data.
func DiscoverCSV(data []byte, opts ...DiscoverOptions) (*Config, error) {
	opt := DiscoverOptions{SampleSize: 1000}
	if len(opts) > 0 {
		opt = opts[0]
		if opt.SampleSize <= 0 {
			opt.SampleSize = 1000
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("CSV has no columns")
	}

	var rows [][]string
	for i := 0; i < opt.SampleSize; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV has no data rows")
	}

	recoverSet := make(map[string]bool)
	for _, col := range opt.RecoverColumns {
		recoverSet[strings.ToLower(col)] = true
	}

	config := &Config{
		Name:           opt.Name,
		Version:        "1.0",
		DiscoveredFrom: "csv",
	}
	if config.Name == "" {
		config.Name = "Auto-discovered Dataset"
	}

	for i, header := range headers {
		col := analyzeColumn(header, i, rows)
		if col.skipReason != "" && !recoverSet[strings.ToLower(header)] && !recoverSet[col.field.ID] {
			config.SkippedColumns = append(config.SkippedColumns, SkippedColumn{
				Column: header,
				Reason: col.skipReason,
			})
			continue
		}
		config.Fields = append(config.Fields, col.field)
	}

	return config, nil
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

type columnAnalysis struct {
	field      FieldDescriptor
	skipReason string
}

func analyzeColumn(header string, index int, rows [][]string) columnAnalysis {
	values := make([]string, 0, len(rows))
	distinct := make(map[string]bool)
	numeric := 0
	temporal := 0

	for _, row := range rows {
		if index >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[index])
		if v == "" {
			continue
		}
		values = append(values, v)
		distinct[v] = true
		if isNumericValue(v) {
			numeric++
		}
		if isTemporalValue(v) {
			temporal++
		}
	}

	field := FieldDescriptor{
		ID:          toSnakeCase(header),
		DisplayName: toDisplayName(header),
	}

	if len(values) == 0 {
		return columnAnalysis{field: field, skipReason: "column is empty"}
	}

	// Mostly numeric → quantitative measure
	if numeric*10 >= len(values)*9 {
		field.SemanticType = Quantitative
		field.AnalyticRole = RoleMeasure
		return columnAnalysis{field: field}
	}

	// Mostly temporal-looking samples, or a temporal keyword in the name
	if temporal*10 >= len(values)*9 || temporalNameHint.MatchString(strings.ToLower(header)) {
		field.SemanticType = Temporal
		field.AnalyticRole = RoleDimension
		return columnAnalysis{field: field}
	}

	field.SemanticType = Nominal
	field.AnalyticRole = RoleDimension

	// Every value distinct → unique ID or free text, useless for grouping.
	// Still classified so a recovered column is usable.
	if len(distinct) == len(values) && len(values) > 3 {
		return columnAnalysis{field: field, skipReason: "values are unique per row"}
	}

	return columnAnalysis{field: field}
}

func isNumericValue(v string) bool {
	cleaned := strings.ReplaceAll(v, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "$")
	_, err := strconv.ParseFloat(cleaned, 64)
	return err == nil
}

// Sample patterns that mark a column as temporal: "Jan-2026", "2025-01",
// "2025-01-15", "Q1-2026", plain four-digit years.
var temporalValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[-/ ]?\d{2,4}$`),
	regexp.MustCompile(`^\d{4}[-/]\d{1,2}([-/]\d{1,2})?$`),
	regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}$`),
	regexp.MustCompile(`(?i)^q[1-4][-/ ]?\d{4}$`),
	regexp.MustCompile(`^(19|20)\d{2}$`),
}

var temporalNameHint = regexp.MustCompile(`(date|time|year|month|day|week|quarter)`)

func isTemporalValue(v string) bool {
	for _, p := range temporalValuePatterns {
		if p.MatchString(v) {
			return true
		}
	}
	return false
}

// ============================================================================
// NAMING HELPERS
// ============================================================================

// toSnakeCase converts "Story Points" / "storyPoints" / "StoryPoints" to
// "story_points".
func toSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(strings.TrimSpace(s))
	for i, r := range runes {
		switch {
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				b.WriteRune('_')
			} else if i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1]) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return strings.Trim(out, "_")
}

// toDisplayName converts "story_points" to "Story Points". Already-readable
// headers pass through unchanged.
func toDisplayName(s string) string {
	s = strings.TrimSpace(s)
	if strings.Contains(s, " ") {
		return s
	}
	parts := strings.Split(toSnakeCase(s), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
