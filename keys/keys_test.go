package keys

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"60A-4", "60a-4"},
		{"  60A-4  ", "60a-4"},
		{"60 A - 4", "60a-4"},
		{"60P-12", "60p-12"},
		{"60a-4", "60a-4"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.raw), "Normalize(%q)", c.raw)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"60A-4", " 60 P - 12 ", "ROUND 61"} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNormalizeFilename(t *testing.T) {
	assert.Equal(t, "60a-4", NormalizeFilename("60A-4.png"))
	assert.Equal(t, "60a-4", NormalizeFilename("60A-4"))
	assert.Equal(t, "60p-12", NormalizeFilename(" 60P-12.JPEG "))
	// only the final extension is stripped
	assert.Equal(t, "60a-4.fig", NormalizeFilename("60A-4.fig.png"))
	// filename-derived and hand-typed keys must agree
	assert.Equal(t, Normalize("60A-4"), NormalizeFilename("60a-4.png"))
}

func TestSortWeight(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"60A-2", 2},
		{"60A-10", 10},
		{"60P-1", 1001},
		{"60p-12", 1012},
		{"61A-100", 100},
		{"no-number-", math.MaxInt},
		{"", math.MaxInt},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SortWeight(c.raw), "SortWeight(%q)", c.raw)
	}
}

func TestSortWeightOrdersSessions(t *testing.T) {
	// morning ascending, then afternoon ascending
	assert.Less(t, SortWeight("60A-2"), SortWeight("60A-10"))
	assert.Less(t, SortWeight("60A-10"), SortWeight("60P-1"))
	assert.Less(t, SortWeight("60P-1"), SortWeight("60P-2"))
}
