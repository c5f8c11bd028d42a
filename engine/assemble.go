package engine

import (
	"fmt"

	"github.com/vizquery-org/vizquery/schema"
)

// ============================================================================
// SPECIFICATION ASSEMBLER & NARRATOR
// ============================================================================
// Turns resolved roles into the final encoding channels and synthesizes the
// plain-language explanation of what was plotted.
// ============================================================================

const rowCountFieldID = "row_count"

// rowCountMeasure synthesizes the pseudo-measure used when counting records
// without a real numeric field.
func rowCountMeasure() EncodedField {
	return EncodedField{
		ID:           rowCountFieldID,
		Name:         "Row Count",
		SemanticType: schema.Quantitative,
		AnalyticRole: schema.RoleMeasure,
		Aggregation:  string(AggCount),
		Synthetic:    true,
	}
}

func encodeDimension(pf *processedField) EncodedField {
	return EncodedField{
		ID:           pf.field.ID,
		Name:         pf.field.Name(),
		SemanticType: pf.semantic,
		AnalyticRole: schema.RoleDimension,
	}
}

func encodeMeasure(pf *processedField, agg Aggregator) EncodedField {
	out := EncodedField{
		ID:           pf.field.ID,
		Name:         pf.field.Name(),
		SemanticType: schema.Quantitative,
		AnalyticRole: schema.RoleMeasure,
	}
	if agg != AggNone {
		out.Aggregation = string(agg)
	}
	return out
}

// assembleSpecification builds the chart specification for the final type.
// For point charts the two scatter axes land on columns/rows as raw
// measures; otherwise primary dimension → columns, measure → rows,
// secondary dimension → color.
func assembleSpecification(res *resolution, chartType ChartType, stacked bool, axes []*processedField, id string) *ChartSpecification {
	spec := &ChartSpecification{
		ID:         id,
		Type:       chartType,
		Aggregator: res.aggregator,
		Hints: RenderHints{
			Aggregated: res.aggregator != AggNone,
			Stacked:    stacked,
		},
	}

	if chartType == ChartPoint {
		x := encodeMeasure(axes[0], AggNone)
		y := encodeMeasure(axes[1], AggNone)
		spec.Encoding.Columns = []EncodedField{x}
		spec.Encoding.Rows = []EncodedField{y}
		spec.Encoding.Measures = []EncodedField{x, y}
		spec.Measure = &y
		if res.secondary != nil && !res.secondary.isNumeric {
			color := encodeDimension(res.secondary)
			spec.Encoding.Color = []EncodedField{color}
			spec.Encoding.Dimensions = []EncodedField{color}
			f := res.secondary.field
			spec.SecondaryDimension = &f
		}
		return spec
	}

	if res.primary != nil {
		dim := encodeDimension(res.primary)
		spec.Encoding.Columns = []EncodedField{dim}
		spec.Encoding.Dimensions = append(spec.Encoding.Dimensions, dim)
		f := res.primary.field
		spec.PrimaryDimension = &f
	}

	var measureView *EncodedField
	switch {
	case res.aggregator == AggCount && res.measure == nil:
		m := rowCountMeasure()
		measureView = &m
	case res.measure != nil:
		m := encodeMeasure(res.measure, res.aggregator)
		measureView = &m
	}
	if measureView != nil {
		spec.Encoding.Rows = []EncodedField{*measureView}
		spec.Encoding.Measures = []EncodedField{*measureView}
		spec.Measure = measureView
	}

	if res.secondary != nil {
		color := encodeDimension(res.secondary)
		spec.Encoding.Color = []EncodedField{color}
		spec.Encoding.Dimensions = append(spec.Encoding.Dimensions, color)
		f := res.secondary.field
		spec.SecondaryDimension = &f
	}

	return spec
}

// ============================================================================
// NARRATOR
// ============================================================================

// describeChart produces the explanation string from fixed templates keyed
// by chart type and aggregator.
func describeChart(res *resolution, chartType ChartType, axes []*processedField) string {
	if chartType == ChartPoint {
		if len(axes) == 2 {
			return fmt.Sprintf("Plotting %s versus %s.", axes[1].field.Name(), axes[0].field.Name())
		}
		if res.measure != nil {
			return fmt.Sprintf("Comparing %s across records.", res.measure.field.Name())
		}
	}

	if res.primary != nil && res.measure != nil && res.aggregator != AggCount {
		return fmt.Sprintf("Showing the %s %s by %s.",
			aggregatorDisplay[res.aggregator], res.measure.field.Name(), res.primary.field.Name())
	}
	if res.primary != nil && res.aggregator == AggCount {
		if res.secondary != nil {
			return fmt.Sprintf("Counting records by %s and highlighting %s.",
				res.primary.field.Name(), res.secondary.field.Name())
		}
		return fmt.Sprintf("Counting records by %s.", res.primary.field.Name())
	}
	return fmt.Sprintf("Generating a %s chart.", chartType)
}

// Note templates for heuristic substitutions. One note per role bound from
// whole-query evidence, plus aggregation and scatter-fallback notices.
func noteWeakMatch(role string, pf *processedField) string {
	return fmt.Sprintf("Matched %s as the %s from the overall query wording; name it explicitly for more control.",
		pf.field.Name(), role)
}

func noteDefaultedAggregator(res *resolution) string {
	switch res.aggregator {
	case AggCount:
		return "No aggregation was mentioned, so records are counted."
	case AggNone:
		return ""
	default:
		return fmt.Sprintf("No aggregation was mentioned, so the %s %s is shown.",
			aggregatorDisplay[res.aggregator], res.measure.field.Name())
	}
}

func noteDroppedAggregator(match *aggregatorMatch) string {
	return fmt.Sprintf("Ignored %q to plot individual values instead of an aggregate.", match.phrase)
}

func noteForcedAggregator(agg Aggregator) string {
	return fmt.Sprintf("Stacked bars need an aggregate, so values are combined with %s.", agg)
}

const noteScatterFallback = "A scatter plot needs two numeric fields, so a bar chart is shown instead."
