package guard_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contractkit/pkg/guard"
)

func TestOrdinal(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0:   "0th",
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		23:  "23rd",
		101: "101st",
		111: "111th",
		112: "112th",
	}
	for n, want := range tests {
		assert.Equal(t, want, guard.Ordinal(n), "n=%d", n)
	}
}

func TestOrdinalProperties(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("keeps the number as prefix", prop.ForAll(
		func(n int) bool {
			return strings.HasPrefix(guard.Ordinal(n), strconv.Itoa(n))
		},
		gen.IntRange(0, 100000),
	))

	properties.Property("teens always take th", prop.ForAll(
		func(hundreds, teen int) bool {
			return strings.HasSuffix(guard.Ordinal(hundreds*100+teen), "th")
		},
		gen.IntRange(0, 100),
		gen.IntRange(10, 19),
	))

	properties.Property("suffix depends on last two digits only", prop.ForAll(
		func(n, k int) bool {
			a := guard.Ordinal(n)
			b := guard.Ordinal(n + 100*k)
			return a[len(a)-2:] == b[len(b)-2:]
		},
		gen.IntRange(0, 1000),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}
