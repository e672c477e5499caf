package reporter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryFormat(t *testing.T) {
	tests := []struct {
		name     string
		passed   int
		failed   int
		skipped  int
		untested int
		want     string
	}{
		{
			name: "Empty session",
			want: "0 testrail test cases passed, 0 failed, 0 skipped",
		},
		{
			name:   "Single passed case",
			passed: 1,
			want:   "1 testrail test case passed, 0 failed, 0 skipped",
		},
		{
			name:     "Untested shown when non zero",
			passed:   2,
			failed:   1,
			skipped:  3,
			untested: 4,
			want:     "2 testrail test cases passed, 1 failed, 3 skipped, 4 untested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSummary()
			for i := 0; i < tt.passed; i++ {
				s.Add(CategoryPassed)
			}
			for i := 0; i < tt.failed; i++ {
				s.RecordFailure(100+i, errors.New("boom"))
			}
			for i := 0; i < tt.skipped; i++ {
				s.Add(CategorySkipped)
			}
			for i := 0; i < tt.untested; i++ {
				s.Add(CategoryUntested)
			}

			assert.Equal(t, tt.want, s.Format(summaryLabel))
		})
	}
}

func TestSummaryFormatSkipsAbsentCategories(t *testing.T) {
	s := &Summary{counts: map[Category]int{CategorySkipped: 1, CategoryUndefined: 0}}

	assert.Equal(t, "1 testrail test case skipped, 0 undefined", s.Format(summaryLabel))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{seconds: 0, want: "Took 0m0.000s"},
		{seconds: 5.25, want: "Took 0m5.250s"},
		{seconds: 65.5, want: "Took 1m5.500s"},
		{seconds: 130, want: "Took 2m10.000s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}

func TestCommentAndElapsed(t *testing.T) {
	scenario := passedScenario("Valid login")
	scenario.Steps[1].Status = "failed"

	assert.Equal(t, "Valid login\n-> Given a registered user [passed]\n-> When the user logs in [failed]", buildComment(scenario))
	assert.Equal(t, "3s", formatElapsed(3.9))
	assert.Equal(t, "0s", formatElapsed(0.4))
}
