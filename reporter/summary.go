package reporter

import (
	"fmt"
	"math"
	"strings"
)

// Category is an outcome of a (scenario, case tag, project) combination.
type Category string

// Outcome categories.
const (
	// CategoryPassed counts results added to TestRail.
	CategoryPassed Category = "passed"
	// CategoryFailed is rendered from the failed cases list.
	CategoryFailed Category = "failed"
	// CategorySkipped counts results not sent because of the branch policy or an untested status.
	CategorySkipped   Category = "skipped"
	CategoryUndefined Category = "undefined"
	// CategoryUntested counts case tags not found in a project's suite.
	CategoryUntested Category = "untested"
)

var categoryOrder = []Category{CategoryPassed, CategoryFailed, CategorySkipped, CategoryUndefined, CategoryUntested}

// FailedCase is a case whose result could not be added.
type FailedCase struct {
	CaseID int
	Err    error
}

// Summary accumulates the outcomes of a reporting session.
type Summary struct {
	counts      map[Category]int
	FailedCases []FailedCase
}

// NewSummary ...
func NewSummary() *Summary {
	return &Summary{
		counts: map[Category]int{
			CategoryPassed:   0,
			CategoryFailed:   0,
			CategorySkipped:  0,
			CategoryUntested: 0,
		},
	}
}

// Add ...
func (s *Summary) Add(category Category) {
	s.counts[category]++
}

// Count ...
func (s *Summary) Count(category Category) int {
	if category == CategoryFailed {
		return len(s.FailedCases)
	}
	return s.counts[category]
}

// RecordFailure ...
func (s *Summary) RecordFailure(caseID int, err error) {
	s.FailedCases = append(s.FailedCases, FailedCase{CaseID: caseID, Err: err})
}

// Format renders the counts like "3 testrail test cases passed, 1 failed, 0 skipped".
// The label is pluralised on the first part only, categories missing from the summary are left out
// and a zero untested count is suppressed.
func (s *Summary) Format(label string) string {
	var parts []string
	for _, category := range categoryOrder {
		if _, ok := s.counts[category]; !ok {
			continue
		}

		count := s.Count(category)
		if category == CategoryUntested && count == 0 {
			continue
		}

		if len(parts) == 0 {
			if count != 1 {
				label += "s"
			}
			parts = append(parts, fmt.Sprintf("%d %s %s", count, label, category))
		} else {
			parts = append(parts, fmt.Sprintf("%d %s", count, category))
		}
	}
	return strings.Join(parts, ", ")
}

// FormatDuration renders seconds as minutes and seconds, like "Took 1m5.250s".
func FormatDuration(seconds float64) string {
	return fmt.Sprintf("Took %dm%02.3fs", int(seconds/60), math.Mod(seconds, 60))
}
