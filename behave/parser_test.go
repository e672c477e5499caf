package behave

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		format Format
		want   []Feature
	}{
		{
			name:   "behave report with outline and background",
			file:   "behave_report.json",
			format: FormatBehave,
			want: []Feature{
				{
					Name:     "Login",
					Tags:     []string{"smoke"},
					Duration: 4.5,
					Elements: []Runnable{
						Scenario{
							Name: "Valid login",
							Tags: []string{"testrail-C100"},
							Steps: []Step{
								{Keyword: "Given", Name: "a registered user", Status: StatusPassed, Duration: 1.25},
								{Keyword: "When", Name: "the user logs in", Status: StatusPassed, Duration: 2.5},
							},
							Status:   StatusPassed,
							Duration: 3.75,
						},
						ScenarioOutline{
							Name: "Login as <role>",
							Scenarios: []Scenario{
								{
									Name:     "Login as <role> -- @1.1 roles",
									Tags:     []string{"testrail-C101"},
									Steps:    []Step{{Keyword: "Given", Name: "a admin", Status: StatusPassed, Duration: 0.5}},
									Status:   StatusPassed,
									Duration: 0.5,
								},
								{
									Name: "Login as <role> -- @1.2 roles",
									Tags: []string{"testrail-C101"},
									Steps: []Step{
										{Keyword: "Given", Name: "a guest", Status: StatusFailed, Duration: 0.25},
										{Keyword: "Then", Name: "the dashboard is shown", Status: StatusUntested},
									},
									Status:   StatusFailed,
									Duration: 0.25,
								},
							},
						},
					},
				},
			},
		},
		{
			name:   "cucumber report",
			file:   "cucumber_report.json",
			format: FormatCucumber,
			want: []Feature{
				{
					Name:     "Checkout",
					Tags:     []string{"web"},
					Duration: 1.5,
					Elements: []Runnable{
						Scenario{
							Name: "Pay by card",
							Tags: []string{"testrail-C200"},
							Steps: []Step{
								{Keyword: "Given", Name: "a basket", Status: StatusPassed, Duration: 1.5},
								{Keyword: "When", Name: "the user pays", Status: StatusUndefined},
								{Keyword: "Then", Name: "the order is placed", Status: StatusSkipped},
							},
							Status:   StatusUndefined,
							Duration: 1.5,
						},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFile(filepath.Join("testdata", tt.file), tt.format)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseFile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		format      Format
		wantMessage string
	}{
		{
			name:        "Unsupported format",
			data:        `[]`,
			format:      "junit",
			wantMessage: "unsupported report format: junit",
		},
		{
			name:        "Unknown step status",
			data:        `[{"name": "F", "elements": [{"type": "scenario", "keyword": "Scenario", "name": "S", "steps": [{"keyword": "Given", "name": "x", "result": {"status": "exploded"}}]}]}]`,
			format:      FormatBehave,
			wantMessage: `feature "F": step "x": unknown status: exploded`,
		},
		{
			name:        "Not a report",
			data:        `{"name": "F"}`,
			format:      FormatBehave,
			wantMessage: "cannot unmarshal object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		want  Status
	}{
		{name: "No steps", steps: nil, want: StatusUntested},
		{name: "All passed", steps: []Step{{Status: StatusPassed}, {Status: StatusPassed}}, want: StatusPassed},
		{name: "Failed wins", steps: []Step{{Status: StatusUndefined}, {Status: StatusFailed}}, want: StatusFailed},
		{name: "Undefined before skipped", steps: []Step{{Status: StatusSkipped}, {Status: StatusUndefined}}, want: StatusUndefined},
		{name: "Skipped", steps: []Step{{Status: StatusPassed}, {Status: StatusSkipped}}, want: StatusSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveStatus(tt.steps))
		})
	}
}

func TestOutlineInstances(t *testing.T) {
	outline := ScenarioOutline{Scenarios: []Scenario{{Name: "a"}, {Name: "b"}, {Name: "c"}}}
	assert.Len(t, outline.Instances(), 3)

	scenario := Scenario{Name: "single"}
	assert.Equal(t, []Scenario{scenario}, scenario.Instances())
}
