package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strip renders indicators as "1 … 9 10 11 … 20" for compact expectations.
func strip(in []Indicator) string {
	parts := make([]string, len(in))
	for i, ind := range in {
		parts[i] = ind.String()
	}
	return strings.Join(parts, " ")
}

func TestPageIndicators(t *testing.T) {
	cases := []struct {
		current, total int
		want           string
	}{
		{1, 5, "1 2 3 4 5"},
		{3, 5, "1 2 3 4 5"},
		{5, 5, "1 2 3 4 5"},
		{1, 6, "1 2 … 6"},
		{3, 6, "1 2 3 4 … 6"},
		{4, 6, "1 … 3 4 5 6"},
		{6, 6, "1 … 5 6"},
		{1, 20, "1 2 … 20"},
		{10, 20, "1 … 9 10 11 … 20"},
		{20, 20, "1 … 19 20"},
		{2, 3, "1 2 3"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, strip(PageIndicators(tc.current, tc.total)), "current=%d total=%d", tc.current, tc.total)
	}
}

func TestPageIndicators_HiddenForSinglePage(t *testing.T) {
	assert.Nil(t, PageIndicators(1, 1))
	assert.Nil(t, PageIndicators(1, 0))
}

func TestPageIndicators_MonotonicWithoutDuplicates(t *testing.T) {
	for total := 2; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			last := 0
			for _, ind := range PageIndicators(current, total) {
				if ind.Ellipsis {
					continue
				}
				require.Greater(t, ind.Page, last, "current=%d total=%d", current, total)
				last = ind.Page
			}
			require.Equal(t, total, last)
		}
	}
}

func TestIndicator_JSON(t *testing.T) {
	raw, err := json.Marshal(PageIndicators(10, 20))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"…",9,10,11,"…",20]`, string(raw))
}
