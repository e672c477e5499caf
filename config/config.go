// Package config loads and validates the testrail.yml project configuration.
package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/bitrise-io/go-utils/fileutil"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the configuration is looked up when no path is given.
const DefaultPath = "testrail.yml"

// MatchAllBranches is the conventional pattern allowing every branch.
const MatchAllBranches = "*"

// Config ...
type Config struct {
	BaseURL  string    `yaml:"base_url"`
	Projects []Project `yaml:"projects"`
}

// Project binds a TestRail project and suite to a branch policy.
type Project struct {
	ID                   int    `yaml:"id"`
	Name                 string `yaml:"name"`
	SuiteID              int    `yaml:"suite_id"`
	AllowedBranchPattern string `yaml:"allowed_branch_pattern"`
	// TestRunName overrides the run name, which defaults to the branch name.
	TestRunName string `yaml:"test_run_name"`
}

// Error is returned for a missing, unreadable or invalid configuration file.
type Error struct {
	Path     string
	Problems []string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid TestRail config (%s): %s", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid TestRail config (%s):\n- %s", e.Path, strings.Join(e.Problems, "\n- "))
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads and validates the configuration file at pth.
func Load(pth string) (Config, error) {
	if pth == "" {
		pth = DefaultPath
	}

	data, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return Config{}, &Error{Path: pth, Err: fmt.Errorf("could not read the file, check it exists: %w", err)}
	}

	cfg, err := Parse(data)
	if err != nil {
		if cfgErr, ok := err.(*Error); ok {
			cfgErr.Path = pth
			return Config{}, cfgErr
		}
		return Config{}, &Error{Path: pth, Err: err}
	}

	return cfg, nil
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &Error{Err: fmt.Errorf("failed to parse yaml: %w", err)}
	}

	if problems := cfg.Validate(); len(problems) > 0 {
		return Config{}, &Error{Problems: problems}
	}

	return cfg, nil
}

// Validate returns every problem found in the configuration.
func (c Config) Validate() []string {
	var problems []string

	if strings.TrimSpace(c.BaseURL) == "" {
		problems = append(problems, "base_url: required")
	} else if u, err := url.Parse(c.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("base_url: %q is not an absolute http(s) URL", c.BaseURL))
	}

	if len(c.Projects) == 0 {
		problems = append(problems, "projects: at least one project must be configured")
	}

	for i, project := range c.Projects {
		path := fmt.Sprintf("projects[%d]", i)

		if project.ID <= 0 {
			problems = append(problems, path+".id: required, must be a positive number")
		}
		if strings.TrimSpace(project.Name) == "" {
			problems = append(problems, path+".name: required")
		}
		if project.SuiteID <= 0 {
			problems = append(problems, path+".suite_id: required, must be a positive number")
		}
		if project.AllowedBranchPattern == "" {
			problems = append(problems, path+".allowed_branch_pattern: required")
		} else if _, err := CompileBranchPattern(project.AllowedBranchPattern); err != nil {
			problems = append(problems, fmt.Sprintf("%s.allowed_branch_pattern: %s", path, err))
		}
	}

	return problems
}

// CompileBranchPattern compiles an allowed_branch_pattern into a regular expression
// anchored at the start of the branch name.
// MatchAllBranches returns a nil expression, meaning every branch is allowed.
func CompileBranchPattern(pattern string) (*regexp.Regexp, error) {
	if pattern == MatchAllBranches {
		return nil, nil
	}

	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression %q: %w", pattern, err)
	}
	return re, nil
}
