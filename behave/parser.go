// Package behave reads the JSON report of a behaviour-driven test run into features and scenarios.
//
// Two report flavours are supported: the behave JSON formatter output (durations in seconds,
// plain string tags) and the cucumber JSON format used by cucumber and godog
// (durations in nanoseconds, tags as {"name": "@tag"} objects).
package behave

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/fileutil"
)

// Format is the flavour of the JSON report.
type Format string

// Supported report formats.
const (
	FormatBehave   Format = "behave"
	FormatCucumber Format = "cucumber"
)

const outlineInstanceSeparator = " -- @"

type jsonFeature struct {
	Name     string        `json:"name"`
	Tags     tagList       `json:"tags"`
	Elements []jsonElement `json:"elements"`
}

type jsonElement struct {
	Type    string     `json:"type"`
	Keyword string     `json:"keyword"`
	Name    string     `json:"name"`
	Tags    tagList    `json:"tags"`
	Steps   []jsonStep `json:"steps"`
	Status  string     `json:"status"`
}

type jsonStep struct {
	Keyword string      `json:"keyword"`
	Name    string      `json:"name"`
	Result  *jsonResult `json:"result"`
}

type jsonResult struct {
	Status   string  `json:"status"`
	Duration float64 `json:"duration"`
}

type tagList []string

// UnmarshalJSON accepts both plain string tags and cucumber tag objects, dropping the leading @.
func (t *tagList) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	for _, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err != nil {
			var tag struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(item, &tag); err != nil {
				return fmt.Errorf("unsupported tag: %s", string(item))
			}
			name = tag.Name
		}
		*t = append(*t, strings.TrimPrefix(name, "@"))
	}

	return nil
}

// ParseFile reads the report at pth.
func ParseFile(pth string, format Format) ([]Feature, error) {
	data, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return nil, fmt.Errorf("failed to read report (%s): %w", pth, err)
	}

	features, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report (%s): %w", pth, err)
	}
	return features, nil
}

// Parse converts a JSON report into features.
func Parse(data []byte, format Format) ([]Feature, error) {
	var durationUnit float64
	switch format {
	case FormatBehave, "":
		durationUnit = 1
	case FormatCucumber:
		durationUnit = 1e9
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}

	var decoded []jsonFeature
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}

	var features []Feature
	for _, f := range decoded {
		feature := Feature{
			Name: f.Name,
			Tags: []string(f.Tags),
		}

		for _, element := range f.Elements {
			if element.Type == "background" {
				continue
			}

			scenario, err := convertScenario(element, durationUnit)
			if err != nil {
				return nil, fmt.Errorf("feature %q: %w", f.Name, err)
			}
			feature.Duration += scenario.Duration

			if !isOutline(element.Keyword) {
				feature.Elements = append(feature.Elements, scenario)
				continue
			}

			outlineName := strings.SplitN(element.Name, outlineInstanceSeparator, 2)[0]
			if last := len(feature.Elements) - 1; last >= 0 {
				if outline, ok := feature.Elements[last].(ScenarioOutline); ok && outline.Name == outlineName {
					outline.Scenarios = append(outline.Scenarios, scenario)
					feature.Elements[last] = outline
					continue
				}
			}
			feature.Elements = append(feature.Elements, ScenarioOutline{
				Name:      outlineName,
				Scenarios: []Scenario{scenario},
			})
		}

		features = append(features, feature)
	}

	return features, nil
}

func convertScenario(element jsonElement, durationUnit float64) (Scenario, error) {
	scenario := Scenario{
		Name: element.Name,
		Tags: []string(element.Tags),
	}

	for _, s := range element.Steps {
		step := Step{
			Keyword: strings.TrimSpace(s.Keyword),
			Name:    s.Name,
			Status:  StatusUntested,
		}

		if s.Result != nil {
			status, err := normalizeStatus(s.Result.Status)
			if err != nil {
				return Scenario{}, fmt.Errorf("step %q: %w", s.Name, err)
			}
			step.Status = status
			step.Duration = s.Result.Duration / durationUnit
		}

		scenario.Steps = append(scenario.Steps, step)
		scenario.Duration += step.Duration
	}

	if element.Status != "" {
		status, err := normalizeStatus(element.Status)
		if err != nil {
			return Scenario{}, fmt.Errorf("scenario %q: %w", element.Name, err)
		}
		scenario.Status = status
	} else {
		scenario.Status = deriveStatus(scenario.Steps)
	}

	return scenario, nil
}

func isOutline(keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	return keyword == "Scenario Outline" || keyword == "Scenario Template"
}

// normalizeStatus maps the statuses of the supported report formats onto the engine statuses.
func normalizeStatus(raw string) (Status, error) {
	switch status := Status(strings.ToLower(raw)); status {
	case StatusPassed, StatusFailed, StatusSkipped, StatusUndefined, StatusExecuting, StatusUntested:
		return status, nil
	case "pending":
		return StatusUndefined, nil
	case "ambiguous":
		return StatusFailed, nil
	case "":
		return StatusUntested, nil
	default:
		return "", fmt.Errorf("unknown status: %s", raw)
	}
}

func deriveStatus(steps []Step) Status {
	if len(steps) == 0 {
		return StatusUntested
	}

	var firstNotPassed Status
	undefined := false
	for _, step := range steps {
		switch step.Status {
		case StatusFailed:
			return StatusFailed
		case StatusUndefined:
			undefined = true
		}
		if step.Status != StatusPassed && firstNotPassed == "" {
			firstNotPassed = step.Status
		}
	}

	if undefined {
		return StatusUndefined
	}
	if firstNotPassed != "" {
		return firstNotPassed
	}
	return StatusPassed
}
