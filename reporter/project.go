package reporter

import (
	"context"
	"fmt"
	"regexp"

	"github.com/bitrise-steplib/steps-testrail-reporter/config"
	"github.com/bitrise-steplib/steps-testrail-reporter/testrail"
)

// caseSet is Unloaded until the first lookup, then Loaded for the rest of the session.
type caseSet struct {
	loaded bool
	byID   map[int]testrail.Case
}

// runState moves from NoRun to Active once a run is found or created.
type runState struct {
	active bool
	run    testrail.Run
}

// Project is a configured TestRail project and its session state.
type Project struct {
	ID      int
	Name    string
	SuiteID int
	// RunName is the configured run name, empty when the run is named after the branch.
	RunName string

	branchPattern string
	branchRegexp  *regexp.Regexp

	cases caseSet
	run   runState
}

// NewProject ...
func NewProject(cfg config.Project) (*Project, error) {
	re, err := config.CompileBranchPattern(cfg.AllowedBranchPattern)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", cfg.Name, err)
	}

	return &Project{
		ID:            cfg.ID,
		Name:          cfg.Name,
		SuiteID:       cfg.SuiteID,
		RunName:       cfg.TestRunName,
		branchPattern: cfg.AllowedBranchPattern,
		branchRegexp:  re,
	}, nil
}

// HasCase reports whether the project's suite contains the case.
// The suite's cases are fetched on the first call only.
func (p *Project) HasCase(ctx context.Context, client testrail.ClientAPI, caseID int) (bool, error) {
	if !p.cases.loaded {
		cases, err := client.GetCases(ctx, p.ID, p.SuiteID)
		if err != nil {
			return false, fmt.Errorf("failed to list cases of project %s (suite %d): %w", p.Name, p.SuiteID, err)
		}

		byID := make(map[int]testrail.Case, len(cases))
		for _, c := range cases {
			byID[c.ID] = c
		}
		p.cases = caseSet{loaded: true, byID: byID}
	}

	_, ok := p.cases.byID[caseID]
	return ok, nil
}
