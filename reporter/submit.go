package reporter

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitrise-steplib/steps-testrail-reporter/behave"
	"github.com/bitrise-steplib/steps-testrail-reporter/testrail"
)

// buildComment renders the scenario name followed by one line per step.
func buildComment(scenario behave.Scenario) string {
	lines := []string{scenario.Name}
	for _, step := range scenario.Steps {
		lines = append(lines, fmt.Sprintf("-> %s %s [%s]", step.Keyword, step.Name, step.Status))
	}
	return strings.Join(lines, "\n")
}

// formatElapsed renders seconds as a TestRail timespan, truncating the fraction.
func formatElapsed(seconds float64) string {
	return fmt.Sprintf("%ds", int(seconds))
}

// submit adds the scenario's result to the project's run.
// A failed run setup is returned, a failed result submission is only recorded in the summary.
func (r *Reporter) submit(ctx context.Context, p *Project, caseID int, status testrail.StatusID, scenario behave.Scenario) error {
	run, err := r.runs.ensureRun(ctx, p)
	if err != nil {
		return err
	}

	params := testrail.ResultParams{
		RunID:    run.ID,
		CaseID:   caseID,
		StatusID: status,
		Comment:  buildComment(scenario),
		Elapsed:  formatElapsed(scenario.Duration),
	}

	if err := r.client.CreateResult(ctx, params); err != nil {
		r.logger.Warnf("Failed to add result of case C%d to run %d: %s", caseID, run.ID, err)
		r.summary.RecordFailure(caseID, err)
		return nil
	}

	r.logger.Debugf("Added %s result of case C%d to run %d (project %s)", status, caseID, run.ID, p.Name)
	r.summary.Add(CategoryPassed)
	return nil
}
