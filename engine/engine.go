package engine

import (
	"go.uber.org/zap"

	"github.com/vizquery-org/vizquery/schema"
)

// ============================================================================
// ENTRY POINT — Generate(query, fields, opts...)
// ============================================================================
// Single-pass, synchronous, stateless pipeline:
//
//	normalize → detect aggregator → segment → score/assign roles
//	         → infer chart type → apply preference → assemble
//
// Pure function of its inputs apart from the display id; safe to call
// concurrently. Ambiguous input is never an error: failures come back as
// Result values with a fixed user-facing message.
// ============================================================================

// Generate translates a free-text query plus field metadata into a chart
// specification.
func Generate(query string, fields []schema.FieldDescriptor, opts ...Option) *Result {
	cfg := applyOptions(opts)
	logger := cfg.logger

	if len(fields) == 0 {
		return failure(msgNoDataset)
	}

	processed := indexFields(fields)
	res := resolveRoles(query, processed, logger)

	var notes []string
	prefType, hasPref := normalizePreference(cfg.preferredType)

	// An explicit point request means raw values; relax the aggregator
	// before the admission checks so it doesn't demand a measure.
	if hasPref && prefType == ChartPoint && res.aggregator != AggNone {
		if res.detected != nil {
			notes = append(notes, noteDroppedAggregator(res.detected))
		}
		res.aggregator = AggNone
		res.aggregatorDefaulted = false
	}

	// Aggregators beyond count need a numeric measure bound.
	if res.aggregator != AggCount && res.aggregator != AggNone {
		if res.measure != nil && !res.measure.isNumeric {
			res.measure = nil
		}
		if res.measure == nil {
			pf := reresolveNumericMeasure(res)
			if pf == nil {
				return failure(msgNoNumericField)
			}
			res.measure = pf
			res.measureFromGlobal = true
			res.claim(pf)
		}
	}
	// Counting ignores a non-numeric measure; the row counter covers it.
	if res.aggregator == AggCount && res.measure != nil && !res.measure.isNumeric {
		res.measure = nil
	}

	if res.primary == nil && res.aggregator != AggNone {
		return failure(msgNoAxisField)
	}

	chartType := inferChartType(res)
	explicitScatter := false
	stacked := res.secondary != nil && res.aggregator == AggCount

	if hasPref {
		chartType = prefType
		switch prefType {
		case ChartPoint:
			explicitScatter = true
		case ChartStackedBar:
			forced := AggCount
			if res.measure != nil && res.measure.isNumeric {
				forced = AggSum
			}
			if res.aggregator != forced {
				if res.detected != nil {
					notes = append(notes, noteForcedAggregator(forced))
				}
				res.aggregator = forced
			}
			stacked = true
		}
	}

	// Point charts need two numeric axes. Reuse numeric roles, complete from
	// the schema, or degrade gracefully.
	var axes []*processedField
	if chartType == ChartPoint {
		axes = scatterAxes(res)
		if len(axes) < 2 {
			if explicitScatter {
				return failure(msgScatterNeedsTwo)
			}
			chartType = ChartBar
			if res.measure != nil && res.measure.isNumeric && res.primary != nil {
				res.aggregator = AggSum
			} else {
				res.aggregator = AggCount
			}
			notes = append(notes, noteScatterFallback)
			axes = nil
		}
	}

	if chartType != ChartPoint && res.primary == nil {
		return failure(msgNoAxisField)
	}

	// Narrate heuristic substitutions.
	if chartType != ChartPoint && res.primary != nil && res.primaryFromGlobal {
		notes = append(notes, noteWeakMatch("axis field", res.primary))
	}
	if res.measure != nil && res.measureFromGlobal {
		notes = append(notes, noteWeakMatch("measure", res.measure))
	}
	if res.secondary != nil && res.secondaryFromGlobal {
		notes = append(notes, noteWeakMatch("grouping", res.secondary))
	}
	if res.aggregatorDefaulted {
		if note := noteDefaultedAggregator(res); note != "" {
			notes = append(notes, note)
		}
	}

	spec := assembleSpecification(res, chartType, stacked, axes, cfg.idSource())
	explanation := describeChart(res, chartType, axes)
	spec.Explanation = explanation
	spec.Notes = notes

	logger.Debug("chart generated",
		zap.String("id", spec.ID),
		zap.String("type", string(chartType)),
		zap.String("aggregator", string(res.aggregator)),
		zap.Int("notes", len(notes)),
	)

	return &Result{
		Success:     true,
		Chart:       spec,
		Explanation: explanation,
		Notes:       notes,
	}
}
