package studyspotRepo

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingRegexQuotesMetacharacters(t *testing.T) {
	cases := []struct {
		name     string
		building string
		match    string
		noMatch  string
	}{
		{"plus signs", "C++ Lab", "c++ lab", "CxX Lab"},
		{"open paren", "Price (Main", "price (main", "Price Main"},
		{"dot stays literal", "A.B Hall", "a.b hall", "AXB Hall"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pattern, ok := buildingRegex(tc.building)["$regex"].(string)
			require.True(t, ok)

			re, err := regexp.Compile("(?i)" + pattern)
			require.NoError(t, err, "pattern must compile for building %q", tc.building)
			assert.True(t, re.MatchString(tc.match))
			assert.False(t, re.MatchString(tc.noMatch))
		})
	}
}
