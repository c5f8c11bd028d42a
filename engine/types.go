package engine

import "github.com/vizquery-org/vizquery/schema"

// ============================================================================
// ENGINE TYPES — Query → Chart Specification
// ============================================================================

// Aggregator is the summarization applied to a measure across grouped rows.
// AggNone means unaggregated row-level values.
type Aggregator string

const (
	AggNone  Aggregator = "none"
	AggCount Aggregator = "count"
	AggSum   Aggregator = "sum"
	AggMean  Aggregator = "mean"
	AggMax   Aggregator = "max"
	AggMin   Aggregator = "min"
)

// ChartType identifies the mark the renderer should draw. ChartStackedBar is
// a bar chart with the stacking hint set.
type ChartType string

const (
	ChartBar        ChartType = "bar"
	ChartLine       ChartType = "line"
	ChartArea       ChartType = "area"
	ChartPoint      ChartType = "point"
	ChartStackedBar ChartType = "stacked-bar"
)

// EncodedField is a field bound to an encoding channel, carrying the
// aggregation applied to it. Synthetic marks generated pseudo-measures such
// as the row counter.
type EncodedField struct {
	ID           string              `json:"fid"`
	Name         string              `json:"name"`
	SemanticType schema.SemanticType `json:"semanticType"`
	AnalyticRole schema.AnalyticRole `json:"analyticType"`
	Aggregation  string              `json:"aggName,omitempty"`
	Synthetic    bool                `json:"computed,omitempty"`
}

// AxisEncoding is the resolved channel layout. Columns/Rows are the X/Y
// axes; Color is the grouping channel; Dimensions and Measures list every
// bound field by role.
type AxisEncoding struct {
	Columns    []EncodedField `json:"columns"`
	Rows       []EncodedField `json:"rows"`
	Color      []EncodedField `json:"color"`
	Dimensions []EncodedField `json:"dimensions"`
	Measures   []EncodedField `json:"measures"`
}

// RenderHints carries renderer flags distilled from the resolution.
type RenderHints struct {
	Aggregated bool `json:"defaultAggregated"`
	Stacked    bool `json:"stacked"`
}

// ChartSpecification is the fully resolved, renderer-agnostic description of
// what to draw. Immutable once returned.
type ChartSpecification struct {
	ID         string       `json:"visId"`
	Type       ChartType    `json:"type"`
	Aggregator Aggregator   `json:"aggregator"`
	Encoding   AxisEncoding `json:"encoding"`
	Hints      RenderHints  `json:"config"`

	PrimaryDimension   *schema.FieldDescriptor `json:"primaryDimension,omitempty"`
	SecondaryDimension *schema.FieldDescriptor `json:"secondaryDimension,omitempty"`
	Measure            *EncodedField           `json:"measureField,omitempty"`

	Explanation string   `json:"explanation,omitempty"`
	Notes       []string `json:"notes,omitempty"`
}

// Result is the engine's output. Failures are expected outcomes, not errors:
// Success=false simply means the query needs rephrasing, with Message holding
// a fixed user-facing reason.
type Result struct {
	Success     bool                `json:"success"`
	Chart       *ChartSpecification `json:"chart,omitempty"`
	Explanation string              `json:"explanation,omitempty"`
	Notes       []string            `json:"notes,omitempty"`
	Message     string              `json:"message,omitempty"`
}

func failure(message string) *Result {
	return &Result{Success: false, Message: message}
}
