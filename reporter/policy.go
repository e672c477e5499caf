package reporter

// AllowsBranch reports whether results of the branch may be submitted to the project.
//
// The allowed_branch_pattern is a regular expression matched from the start of the branch name,
// it is not a glob: "release/*" matches "release" followed by any number of slashes,
// so it also allows "release/1.0" and "releases". The single "*" pattern allows every branch.
func (p *Project) AllowsBranch(branch string) bool {
	if p.branchRegexp == nil {
		return true
	}
	return p.branchRegexp.MatchString(branch)
}
