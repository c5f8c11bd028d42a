package engine

import "strings"

// ============================================================================
// SEGMENTER
// ============================================================================

type segmentation struct {
	clauses   []string
	separator string
}

// segmentQuery splits the (aggregator-stripped) query into up to three
// clauses on separator keywords, tried in fixed priority order: vs/versus,
// by, per, over, against. Fewer than two non-empty clauses means
// segmentation failed and role resolution falls back to whole-query scoring.
func segmentQuery(text string) segmentation {
	for _, sep := range separatorTable {
		if !sep.pattern.MatchString(text) {
			continue
		}
		var clauses []string
		for _, part := range sep.pattern.Split(text, -1) {
			part = strings.TrimSpace(part)
			if part != "" {
				clauses = append(clauses, part)
			}
		}
		if len(clauses) >= 2 {
			if len(clauses) > 3 {
				clauses = clauses[:3]
			}
			return segmentation{clauses: clauses, separator: sep.key}
		}
	}
	return segmentation{}
}
