package main

import (
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
)

// gitBranchEnvKey is set by the CI for every build triggered from a branch.
const gitBranchEnvKey = "BITRISE_GIT_BRANCH"

type branchFunc func() (string, error)

// gitCurrentBranch asks git for the checked out branch of the working directory.
func gitCurrentBranch(factory command.Factory) branchFunc {
	return func() (string, error) {
		cmd := factory.Create("git", []string{"rev-parse", "--abbrev-ref", "HEAD"}, nil)
		out, err := cmd.RunAndReturnTrimmedOutput()
		if err != nil {
			return "", fmt.Errorf("%s failed: %w", cmd.PrintableCommandArgs(), err)
		}
		return out, nil
	}
}

// resolveBranch returns the branch input, then the CI provided branch, then what git reports.
func resolveBranch(input string, envRepo env.Repository, gitBranch branchFunc) (string, error) {
	if branch := strings.TrimSpace(input); branch != "" {
		return branch, nil
	}

	if branch := strings.TrimSpace(envRepo.Get(gitBranchEnvKey)); branch != "" {
		return branch, nil
	}

	branch, err := gitBranch()
	if err != nil {
		return "", fmt.Errorf("failed to determine the current branch: %w", err)
	}
	if branch == "" || branch == "HEAD" {
		return "", fmt.Errorf("failed to determine the current branch: detached HEAD, set the branch input")
	}

	return branch, nil
}
