package behave

// Status is the execution status of a scenario or step.
type Status string

// Statuses reported by the test engine.
const (
	StatusPassed    Status = "passed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
	StatusUndefined Status = "undefined"
	StatusExecuting Status = "executing"
	StatusUntested  Status = "untested"
)

// Step ...
type Step struct {
	Keyword  string
	Name     string
	Status   Status
	Duration float64
}

// Scenario is a single executed scenario. Duration is in seconds.
type Scenario struct {
	Name     string
	Tags     []string
	Steps    []Step
	Status   Status
	Duration float64
}

// ScenarioOutline is a templated scenario, expanded into one scenario per example row.
type ScenarioOutline struct {
	Name      string
	Scenarios []Scenario
}

// Runnable is an element of a feature which yields the scenarios that were executed.
type Runnable interface {
	Instances() []Scenario
}

// Instances ...
func (s Scenario) Instances() []Scenario {
	return []Scenario{s}
}

// Instances ...
func (o ScenarioOutline) Instances() []Scenario {
	return o.Scenarios
}

// Feature ...
type Feature struct {
	Name     string
	Tags     []string
	Elements []Runnable
	Duration float64
}
