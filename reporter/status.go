package reporter

import (
	"fmt"

	"github.com/bitrise-steplib/steps-testrail-reporter/behave"
	"github.com/bitrise-steplib/steps-testrail-reporter/testrail"
)

var statusMap = map[behave.Status]testrail.StatusID{
	behave.StatusPassed:    testrail.StatusPassed,
	behave.StatusFailed:    testrail.StatusFailed,
	behave.StatusSkipped:   testrail.StatusUntested,
	behave.StatusUndefined: testrail.StatusUntested,
	behave.StatusExecuting: testrail.StatusUntested,
	behave.StatusUntested:  testrail.StatusUntested,
}

// MapStatus maps an engine status to a TestRail result status.
// Any status outside of the engine's fixed set is an error.
func MapStatus(status behave.Status) (testrail.StatusID, error) {
	id, ok := statusMap[status]
	if !ok {
		return 0, fmt.Errorf("unknown scenario status: %q", status)
	}
	return id, nil
}

// MustMapStatus is like MapStatus but panics on an unknown status.
func MustMapStatus(status behave.Status) testrail.StatusID {
	id, err := MapStatus(status)
	if err != nil {
		panic(err)
	}
	return id
}
