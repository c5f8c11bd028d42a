// Package vizquery turns free-text questions into renderable chart
// specifications.
//
// Usage:
//
//	import "github.com/vizquery-org/vizquery/engine"
//
//	result := engine.Generate("average revenue by region", fields,
//	    engine.WithPreferredChartType("bar"),
//	)
//
// The engine takes a natural-language query and a dataset's field
// descriptors, and returns a render-ready chart specification (chart type,
// axis encoding, aggregation) plus a plain-language explanation of what was
// plotted. Resolution is a deterministic, rule-based heuristic: no AI, no
// network, no query execution. The caller's rendering layer consumes the
// specification; the caller's data layer runs the actual aggregation.
package vizquery
