package behave

import (
	"testing"

	"github.com/bitrise-steplib/steps-testrail-reporter/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_ResolveReportPath(t *testing.T) {
	workDir := "/bitrise/src"
	tests := []struct {
		name      string
		input     string
		output    string
		outputErr string
		envs      map[string]string
		dirs      []string
		missing   []string
	}{
		{
			name:      "Empty input",
			input:     "  ",
			outputErr: "report path is empty",
		},
		{
			name:   "Relative path",
			input:  "reports/behave.json",
			output: workDir + "/reports/behave.json",
		},
		{
			name:   "Expand env var",
			input:  "$BEHAVE_REPORT",
			output: workDir + "/reports/behave.json",
			envs: map[string]string{
				"BEHAVE_REPORT": "reports/behave.json",
			},
		},
		{
			name:      "Missing env var",
			input:     "$BEHAVE_REPORT",
			outputErr: "invalid report path ($BEHAVE_REPORT): environment variable isn't set",
		},
		{
			name:      "Missing file",
			input:     "reports/behave.json",
			missing:   []string{workDir + "/reports/behave.json"},
			outputErr: "report (/bitrise/src/reports/behave.json) does not exist",
		},
		{
			name:      "Directory",
			input:     "reports/behave.json",
			dirs:      []string{workDir + "/reports/behave.json"},
			outputErr: "report path (/bitrise/src/reports/behave.json) is a directory, please provide the JSON report file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepository := new(mocks.Repository)
			for key, val := range tt.envs {
				mockRepository.On("Get", key).Return(val)
			}
			mockRepository.On("Get", mock.Anything).Return("")

			mockModifier := new(mocks.PathModifier)
			mockModifier.On("AbsPath", "reports/behave.json").Return(workDir+"/reports/behave.json", nil)

			mockChecker := new(mocks.PathChecker)
			for _, pth := range tt.missing {
				mockChecker.On("IsPathExists", pth).Return(false, nil)
			}
			mockChecker.On("IsPathExists", mock.Anything).Return(true, nil)
			for _, pth := range tt.dirs {
				mockChecker.On("IsDirExists", pth).Return(true, nil)
			}
			mockChecker.On("IsDirExists", mock.Anything).Return(false, nil)

			resolver := NewReportPathResolver(mockRepository, mockModifier, mockChecker)
			result, err := resolver.Resolve(tt.input)

			if tt.outputErr != "" {
				assert.EqualError(t, err, tt.outputErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.output, result)
		})
	}
}
