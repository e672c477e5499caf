package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCaseTag(t *testing.T) {
	tests := []struct {
		tag     string
		wantID  int
		wantOK  bool
		wantErr string
	}{
		{tag: "testrail-C100", wantID: 100, wantOK: true},
		{tag: "@testrail-C42", wantID: 42, wantOK: true},
		{tag: "smoke", wantOK: false},
		{tag: "testrail-c100", wantOK: false},
		{tag: "testrail-C", wantErr: `malformed TestRail case tag "testrail-C": "" is not a case id`},
		{tag: "testrail-C12a", wantErr: `malformed TestRail case tag "testrail-C12a": "12a" is not a case id`},
		{tag: "testrail-C-5", wantErr: `malformed TestRail case tag "testrail-C-5": "-5" is not a case id`},
		{tag: "testrail-C+5", wantErr: `malformed TestRail case tag "testrail-C+5": "+5" is not a case id`},
		{tag: "testrail-C 5", wantErr: `malformed TestRail case tag "testrail-C 5": " 5" is not a case id`},
		{tag: "testrail-C0", wantErr: `malformed TestRail case tag "testrail-C0": "0" is not a case id`},
		{tag: "testrail-C007", wantID: 7, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			id, ok, err := ParseCaseTag(tt.tag)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
