package reporter

import (
	"context"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-reporter/testrail"
	"github.com/pkg/errors"
)

// runManager makes sure every project has a run for the branch before results are added.
type runManager struct {
	client testrail.ClientAPI
	logger log.Logger
	branch string
}

func (m runManager) runName(p *Project) string {
	if p.RunName != "" {
		return p.RunName
	}
	return m.branch
}

// ensureRun returns the project's run, looking up or creating it on the first call.
func (m runManager) ensureRun(ctx context.Context, p *Project) (testrail.Run, error) {
	if p.run.active {
		return p.run.run, nil
	}

	name := m.runName(p)
	existing, err := m.client.GetRunForBranch(ctx, p.ID, p.SuiteID, name)
	if err != nil {
		return testrail.Run{}, errors.Wrapf(err, "failed to look up run %q of project %s", name, p.Name)
	}

	run := testrail.Run{}
	if existing != nil {
		m.logger.Printf("Using run %q (%d) of project %s", existing.Name, existing.ID, p.Name)
		run = *existing
	} else {
		run, err = m.client.CreateRun(ctx, p.ID, p.SuiteID, name)
		if err != nil {
			return testrail.Run{}, errors.Wrapf(err, "failed to create run %q in project %s", name, p.Name)
		}
		m.logger.Donef("Created run %q (%d) in project %s", run.Name, run.ID, p.Name)
	}

	p.run = runState{active: true, run: run}
	return run, nil
}
