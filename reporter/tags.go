package reporter

import (
	"fmt"
	"strconv"
	"strings"
)

// CaseTagPrefix marks a tag referencing a TestRail case, like testrail-C1234.
const CaseTagPrefix = "testrail-C"

// ParseCaseTag extracts the TestRail case id from a tag.
// ok is false when the tag does not reference a case.
// A tag with the prefix but a non-numeric remainder is an error.
func ParseCaseTag(tag string) (caseID int, ok bool, err error) {
	tag = strings.TrimPrefix(tag, "@")
	if !strings.HasPrefix(tag, CaseTagPrefix) {
		return 0, false, nil
	}

	remainder := strings.TrimPrefix(tag, CaseTagPrefix)
	if !isDigits(remainder) {
		return 0, false, fmt.Errorf("malformed TestRail case tag %q: %q is not a case id", tag, remainder)
	}

	caseID, err = strconv.Atoi(remainder)
	if err != nil || caseID <= 0 {
		return 0, false, fmt.Errorf("malformed TestRail case tag %q: %q is not a case id", tag, remainder)
	}

	return caseID, true, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
