package testrail

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StatusID is a TestRail result status.
type StatusID int

// Built-in TestRail result statuses.
const (
	StatusPassed   StatusID = 1
	StatusBlocked  StatusID = 2
	StatusUntested StatusID = 3
	StatusRetest   StatusID = 4
	StatusFailed   StatusID = 5
)

func (s StatusID) String() string {
	switch s {
	case StatusPassed:
		return "Passed"
	case StatusBlocked:
		return "Blocked"
	case StatusUntested:
		return "Untested"
	case StatusRetest:
		return "Retest"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Run ...
type Run struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	SuiteID     int    `json:"suite_id"`
	ProjectID   int    `json:"project_id"`
	IsCompleted bool   `json:"is_completed"`
	URL         string `json:"url"`
}

// Case ...
type Case struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	SuiteID int    `json:"suite_id"`
}

// CreateRunParameters ...
type CreateRunParameters struct {
	SuiteID    int    `json:"suite_id"`
	Name       string `json:"name"`
	IncludeAll bool   `json:"include_all"`
}

// ResultParams is a single result submission for a case of a run.
type ResultParams struct {
	RunID    int      `json:"-"`
	CaseID   int      `json:"-"`
	StatusID StatusID `json:"status_id"`
	Comment  string   `json:"comment,omitempty"`
	// Elapsed is a TestRail timespan, like "30s". TestRail rejects "0s".
	Elapsed string `json:"elapsed,omitempty"`
}

type links struct {
	Next *string `json:"next"`
}

// nextEndpoint converts the "_links.next" value (/api/v2/get_cases/1&offset=250) into an endpoint.
func (l links) nextEndpoint() string {
	if l.Next == nil {
		return ""
	}
	return strings.TrimPrefix(*l.Next, "/api/v2/")
}

// runsPage accepts both the paginated (TestRail 6.7+) and the legacy bare array response.
type runsPage struct {
	Links links `json:"_links"`
	Runs  []Run `json:"runs"`
}

func (p *runsPage) UnmarshalJSON(data []byte) error {
	if isJSONArray(data) {
		return json.Unmarshal(data, &p.Runs)
	}

	type page runsPage
	var decoded page
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = runsPage(decoded)
	return nil
}

type casesPage struct {
	Links links  `json:"_links"`
	Cases []Case `json:"cases"`
}

func (p *casesPage) UnmarshalJSON(data []byte) error {
	if isJSONArray(data) {
		return json.Unmarshal(data, &p.Cases)
	}

	type page casesPage
	var decoded page
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = casesPage(decoded)
	return nil
}

func isJSONArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}
