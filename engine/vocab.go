package engine

import "regexp"

// ============================================================================
// VOCABULARY — Static lookup tables
// ============================================================================
// Process-wide immutable configuration: stop words, aggregator synonyms,
// separator patterns, chart-type aliases, hint regexes, score thresholds.
// Built once at init and read-only afterwards, so the pipeline stays safe to
// call from concurrent requests.
// ============================================================================

// Function words and chart-command words removed from query tokens before
// field matching. Field names keep their own tokens.
var stopWords = map[string]struct{}{
	"show": {}, "make": {}, "give": {}, "please": {}, "chart": {},
	"an": {}, "a": {}, "the": {}, "of": {}, "for": {}, "with": {},
	"and": {}, "all": {}, "data": {}, "records": {}, "record": {},
	"rows": {}, "row": {}, "me": {}, "compare": {}, "display": {},
	"plot": {}, "lets": {}, "let's": {}, "versus": {}, "vs": {},
	"against": {}, "by": {}, "per": {},
}

type aggregatorSynonyms struct {
	key     Aggregator
	phrases []string
}

// Priority order matters: count's "total rows" must win before sum's "total"
// gets a chance to match.
var aggregatorTable = []aggregatorSynonyms{
	{AggCount, []string{"count", "number of", "how many", "total rows"}},
	{AggSum, []string{"sum", "total", "add up"}},
	{AggMean, []string{"average", "avg", "mean"}},
	{AggMax, []string{"maximum", "max", "highest"}},
	{AggMin, []string{"minimum", "min", "lowest"}},
}

// phrasePattern matches a synonym phrase on whole-word boundaries.
var phrasePatterns = buildPhrasePatterns()

func buildPhrasePatterns() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp)
	for _, entry := range aggregatorTable {
		for _, phrase := range entry.phrases {
			out[phrase] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
		}
	}
	return out
}

type separator struct {
	key     string
	pattern *regexp.Regexp
}

// Separator priority: first separator present in the query wins.
var separatorTable = []separator{
	{"vs", regexp.MustCompile(`(?i)\b(?:vs\.?|versus)\b`)},
	{"by", regexp.MustCompile(`(?i)\bby\b`)},
	{"per", regexp.MustCompile(`(?i)\bper\b`)},
	{"over", regexp.MustCompile(`(?i)\bover\b`)},
	{"against", regexp.MustCompile(`(?i)\bagainst\b`)},
}

var (
	temporalHintPattern = regexp.MustCompile(`(?i)(date|time|year|month|day|week|quarter)`)
	trendHintPattern    = regexp.MustCompile(`(?i)(over time|trend|timeline|progression)`)
)

// Recognized preferred-chart-type spellings. Anything else means auto.
var chartTypeAliases = map[string]ChartType{
	"bar":            ChartBar,
	"column":         ChartBar,
	"histogram":      ChartBar,
	"line":           ChartLine,
	"trend":          ChartLine,
	"area":           ChartArea,
	"scatter":        ChartPoint,
	"scatterplot":    ChartPoint,
	"point":          ChartPoint,
	"dots":           ChartPoint,
	"bubble":         ChartPoint,
	"stacked":        ChartStackedBar,
	"stacked bar":    ChartStackedBar,
	"stacked column": ChartStackedBar,
}

// Score thresholds for role admission.
const (
	minFieldScore        = 6 // a field must score at least this to fill a role
	secondaryGlobalScore = 8 // whole-query secondary dimension must beat this
)

var aggregatorDisplay = map[Aggregator]string{
	AggCount: "count of records",
	AggSum:   "sum of",
	AggMean:  "average of",
	AggMax:   "maximum of",
	AggMin:   "minimum of",
	AggNone:  "",
}

// Fixed user-facing failure messages.
const (
	msgNoDataset       = "Load a dataset first so I know which fields to use."
	msgNoAxisField     = "I couldn't identify which field should go on the axis. Try mentioning the category or dimension explicitly."
	msgNoNumericField  = "I couldn't find a numeric field to summarize. Try asking for the sum or average of a numeric column."
	msgScatterNeedsTwo = "A scatter plot needs two numeric fields. Try naming two numeric columns to compare."
)
