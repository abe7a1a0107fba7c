package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeEscaperNeutralizesWildcards(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"machine learning", "machine learning"},
		{"100%", `100\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
		{"%_", `\%\_`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, likeEscaper.Replace(tc.in), "query %q", tc.in)
	}
}
