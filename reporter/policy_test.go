package reporter

import (
	"testing"

	"github.com/bitrise-steplib/steps-testrail-reporter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowsBranch(t *testing.T) {
	tests := []struct {
		pattern string
		branch  string
		want    bool
	}{
		{pattern: "*", branch: "anything/goes", want: true},
		{pattern: "master", branch: "master", want: true},
		{pattern: "master", branch: "feature/master", want: false},
		{pattern: "release/*", branch: "release/2.0", want: true},
		{pattern: "(master|develop)$", branch: "develop", want: true},
		{pattern: "(master|develop)$", branch: "develop-old", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.branch, func(t *testing.T) {
			project, err := NewProject(config.Project{ID: 1, Name: "Web", SuiteID: 2, AllowedBranchPattern: tt.pattern})
			require.NoError(t, err)

			assert.Equal(t, tt.want, project.AllowsBranch(tt.branch))
		})
	}
}

func TestNewProjectRejectsInvalidPattern(t *testing.T) {
	_, err := NewProject(config.Project{ID: 1, Name: "Web", SuiteID: 2, AllowedBranchPattern: "**"})
	assert.Error(t, err)
}
