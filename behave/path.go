package behave

import (
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/pathutil"
)

// ReportPathResolver turns the report path input into an absolute path of an existing file.
// The input may reference an environment variable ($REPORT_PATH).
type ReportPathResolver struct {
	envRepo      env.Repository
	pathModifier pathutil.PathModifier
	pathChecker  pathutil.PathChecker
}

// NewReportPathResolver ...
func NewReportPathResolver(envRepo env.Repository, modifier pathutil.PathModifier, checker pathutil.PathChecker) ReportPathResolver {
	return ReportPathResolver{
		envRepo:      envRepo,
		pathModifier: modifier,
		pathChecker:  checker,
	}
}

// Resolve ...
func (r ReportPathResolver) Resolve(pth string) (string, error) {
	pth = strings.TrimSpace(pth)
	if pth == "" {
		return "", fmt.Errorf("report path is empty")
	}

	if strings.HasPrefix(pth, "$") {
		value := r.envRepo.Get(strings.TrimPrefix(pth, "$"))
		if value == "" {
			return "", fmt.Errorf("invalid report path (%s): environment variable isn't set", pth)
		}
		pth = value
	}

	absPth, err := r.pathModifier.AbsPath(pth)
	if err != nil {
		return "", err
	}

	exists, err := r.pathChecker.IsPathExists(absPth)
	if err != nil {
		return "", fmt.Errorf("failed to check if report (%s) exists: %w", absPth, err)
	}
	if !exists {
		return "", fmt.Errorf("report (%s) does not exist", absPth)
	}

	isDir, err := r.pathChecker.IsDirExists(absPth)
	if err != nil {
		return "", fmt.Errorf("failed to check if report (%s) is a directory: %w", absPth, err)
	}
	if isDir {
		return "", fmt.Errorf("report path (%s) is a directory, please provide the JSON report file", absPth)
	}

	return absPth, nil
}
