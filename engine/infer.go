package engine

import "strings"

// ============================================================================
// CHART TYPE INFERENCE & OVERRIDE
// ============================================================================

// inferChartType derives the default chart type from the resolved roles:
// temporal or trending dimensions draw lines, grouped counts draw bars,
// unaggregated values draw points, everything else draws bars.
func inferChartType(res *resolution) ChartType {
	if res.primary == nil && res.measure != nil && res.aggregator == AggNone {
		return ChartPoint
	}
	if res.primary != nil && (res.primary.isTemporal || res.hasTrendHint) {
		return ChartLine
	}
	if res.secondary != nil && res.aggregator == AggCount {
		return ChartBar
	}
	if res.aggregator == AggNone {
		return ChartPoint
	}
	return ChartBar
}

// normalizePreference maps a caller-supplied chart type string through the
// alias table. Unknown strings and "auto" mean no preference.
func normalizePreference(s string) (ChartType, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" || key == "auto" {
		return "", false
	}
	t, ok := chartTypeAliases[key]
	return t, ok
}

// scatterAxes picks the two numeric X/Y fields for a point chart: reuse
// whichever bound roles are numeric, in encounter order (primary dimension,
// measure, secondary dimension), then fill from the best remaining numeric
// fields by whole-query score. Returns fewer than two entries when the
// schema can't support a scatter.
func scatterAxes(res *resolution) []*processedField {
	axes := make([]*processedField, 0, 2)
	seen := make(map[string]bool)

	for _, pf := range []*processedField{res.primary, res.measure, res.secondary} {
		if len(axes) == 2 {
			return axes
		}
		if pf != nil && pf.isNumeric && !seen[pf.field.ID] {
			axes = append(axes, pf)
			seen[pf.field.ID] = true
		}
	}

	for _, pf := range rankNumeric(res.processed, res.globalTokens, seen) {
		if len(axes) == 2 {
			break
		}
		axes = append(axes, pf)
		seen[pf.field.ID] = true
	}
	return axes
}
