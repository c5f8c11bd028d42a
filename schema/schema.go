package schema

// ============================================================================
// SCHEMA — Describes the shape of a dataset for the chart engine
// ============================================================================
// Auto-discovered from CSV data or built by consumer apps. The engine reads
// field descriptors to resolve which columns a query is talking about; it
// never touches row values.
// ============================================================================

// SemanticType classifies the kind of values a field holds.
type SemanticType string

const (
	Nominal      SemanticType = "nominal"
	Ordinal      SemanticType = "ordinal"
	Quantitative SemanticType = "quantitative"
	Temporal     SemanticType = "temporal"
)

// AnalyticRole says how a field participates in analysis.
type AnalyticRole string

const (
	RoleDimension AnalyticRole = "dimension"
	RoleMeasure   AnalyticRole = "measure"
)

// FieldDescriptor describes one column of a dataset.
//
// SemanticType and AnalyticRole may be left empty; the engine resolves
// missing values from each other (quantitative means measure, measure means
// quantitative, otherwise nominal dimension).
type FieldDescriptor struct {
	ID           string       `json:"fid" yaml:"fid"`
	DisplayName  string       `json:"name,omitempty" yaml:"name,omitempty"`
	SemanticType SemanticType `json:"semanticType,omitempty" yaml:"semanticType,omitempty"`
	AnalyticRole AnalyticRole `json:"analyticType,omitempty" yaml:"analyticType,omitempty"`
}

// Name returns the display name, falling back to the field id.
func (f FieldDescriptor) Name() string {
	if f.DisplayName != "" {
		return f.DisplayName
	}
	return f.ID
}

// Config describes the complete shape of a dataset.
type Config struct {
	Name    string            `json:"name" yaml:"name"`
	Version string            `json:"version,omitempty" yaml:"version,omitempty"`
	Fields  []FieldDescriptor `json:"fields" yaml:"fields"`

	// Auto-discovery metadata
	DiscoveredFrom string          `json:"discoveredFrom,omitempty" yaml:"discoveredFrom,omitempty"`
	SkippedColumns []SkippedColumn `json:"skippedColumns,omitempty" yaml:"skippedColumns,omitempty"`
}

// SkippedColumn records why a column was excluded during auto-discovery.
type SkippedColumn struct {
	Column string `json:"column" yaml:"column"`
	Reason string `json:"reason" yaml:"reason"`
}

// FieldIDs returns all field ids in schema order.
func (c Config) FieldIDs() []string {
	ids := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		ids[i] = f.ID
	}
	return ids
}

// Dimensions returns the fields whose analytic role is dimension.
func (c Config) Dimensions() []FieldDescriptor {
	var out []FieldDescriptor
	for _, f := range c.Fields {
		if f.AnalyticRole != RoleMeasure {
			out = append(out, f)
		}
	}
	return out
}

// Measures returns the fields whose analytic role is measure.
func (c Config) Measures() []FieldDescriptor {
	var out []FieldDescriptor
	for _, f := range c.Fields {
		if f.AnalyticRole == RoleMeasure {
			out = append(out, f)
		}
	}
	return out
}

// Validate reports the first structural problem with the schema, if any.
func (c Config) Validate() error {
	seen := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if f.ID == "" {
			return errEmptyFieldID
		}
		if seen[f.ID] {
			return &DuplicateFieldError{ID: f.ID}
		}
		seen[f.ID] = true
	}
	return nil
}

// DuplicateFieldError reports a repeated field id.
type DuplicateFieldError struct {
	ID string
}

func (e *DuplicateFieldError) Error() string {
	return "schema: duplicate field id " + e.ID
}

type schemaError string

func (e schemaError) Error() string { return string(e) }

const errEmptyFieldID = schemaError("schema: field with empty id")
