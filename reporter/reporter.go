// Package reporter pushes the scenario results of a behaviour-driven test run to TestRail.
//
// Scenarios reference TestRail cases through tags (testrail-C1234). For every case tag and every
// configured project the reporter records exactly one outcome: the result is added to the project's
// run for the branch, it is skipped (untested status or branch not allowed), or the case is not part
// of the project's suite.
package reporter

import (
	"context"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-reporter/behave"
	"github.com/bitrise-steplib/steps-testrail-reporter/config"
	"github.com/bitrise-steplib/steps-testrail-reporter/testrail"
	"github.com/pkg/errors"
)

const summaryLabel = "testrail test case"

// Reporter is not safe for concurrent use; the test engine reports one feature at a time.
type Reporter struct {
	client   testrail.ClientAPI
	logger   log.Logger
	branch   string
	projects []*Project
	runs     runManager
	summary  *Summary
	duration float64

	// ShowFailedCases lists the cases whose result could not be added at the end of the session.
	ShowFailedCases bool
}

// New ...
func New(cfg config.Config, branch string, client testrail.ClientAPI, logger log.Logger) (*Reporter, error) {
	if len(cfg.Projects) == 0 {
		return nil, &config.Error{Problems: []string{"projects: at least one project must be configured"}}
	}

	var projects []*Project
	for _, projectConfig := range cfg.Projects {
		project, err := NewProject(projectConfig)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return &Reporter{
		client:   client,
		logger:   logger,
		branch:   branch,
		projects: projects,
		runs: runManager{
			client: client,
			logger: logger,
			branch: branch,
		},
		summary:         NewSummary(),
		ShowFailedCases: true,
	}, nil
}

// Feature reports every scenario of the feature, expanding scenario outlines.
func (r *Reporter) Feature(ctx context.Context, feature behave.Feature) error {
	r.duration += feature.Duration

	for _, element := range feature.Elements {
		for _, scenario := range element.Instances() {
			if err := r.ProcessScenario(ctx, feature, scenario); err != nil {
				return errors.Wrapf(err, "scenario %q", scenario.Name)
			}
		}
	}

	return nil
}

// ProcessScenario reports the scenario to every project containing one of its cases.
func (r *Reporter) ProcessScenario(ctx context.Context, feature behave.Feature, scenario behave.Scenario) error {
	tags := append(append([]string{}, scenario.Tags...), feature.Tags...)

	for _, tag := range tags {
		caseID, ok, err := ParseCaseTag(tag)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		for _, project := range r.projects {
			if err := r.processCase(ctx, project, caseID, scenario); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Reporter) processCase(ctx context.Context, project *Project, caseID int, scenario behave.Scenario) error {
	found, err := project.HasCase(ctx, r.client, caseID)
	if err != nil {
		return err
	}
	if !found {
		r.logger.Debugf("Case C%d is not in project %s", caseID, project.Name)
		r.summary.Add(CategoryUntested)
		return nil
	}

	status, err := MapStatus(scenario.Status)
	if err != nil {
		return err
	}

	// TestRail does not accept results with the untested status.
	if status == testrail.StatusUntested {
		r.logger.Debugf("Skipping case C%d: scenario is %s", caseID, scenario.Status)
		r.summary.Add(CategorySkipped)
		return nil
	}

	if !project.AllowsBranch(r.branch) {
		r.logger.Debugf("Skipping case C%d: branch %s does not match %q of project %s", caseID, r.branch, project.branchPattern, project.Name)
		r.summary.Add(CategorySkipped)
		return nil
	}

	return r.submit(ctx, project, caseID, status, scenario)
}

// Summary ...
func (r *Reporter) Summary() *Summary {
	return r.summary
}

// Duration is the total duration of the reported features in seconds.
func (r *Reporter) Duration() float64 {
	return r.duration
}

// End prints the failed cases, the summary counts and the total duration.
func (r *Reporter) End() {
	if r.ShowFailedCases && len(r.summary.FailedCases) > 0 {
		r.logger.Println()
		r.logger.Errorf("TestRail test results failed for test cases:")
		for _, failed := range r.summary.FailedCases {
			r.logger.Printf("case_id: %d (%s)", failed.CaseID, failed.Err)
		}
		r.logger.Println()
	}

	r.logger.Printf("%s", r.summary.Format(summaryLabel))
	r.logger.Printf("%s", FormatDuration(r.duration))
}
