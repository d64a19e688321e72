package pure_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/on-the-ground/closure_cacher/pure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCacher_ReturnsCalculatorOutput(t *testing.T) {
	c := pure.New(func(x int) int { return x + 1 })
	assert.Equal(t, 2, *c.Get(1))
}

func TestCacher_CallsCalculatorOncePerInput(t *testing.T) {
	count := 0
	c := pure.New(func(x int) int {
		count++
		return x + 1
	})

	assert.Equal(t, 6, *c.Get(5))
	assert.Equal(t, 6, *c.Get(5)) // cached
	assert.Equal(t, 1, count)
}

func TestCacher_DistinctInputs(t *testing.T) {
	count := 0
	c := pure.New(func(x int) int {
		count++
		return x * x
	})

	assert.Equal(t, 4, *c.Get(2))
	assert.Equal(t, 9, *c.Get(3))
	assert.Equal(t, 4, *c.Get(2))
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, c.Len())
}

func TestCacher_MatchesIndependentComputation(t *testing.T) {
	square := func(x int) int { return x * x }
	c := pure.New(square)
	for x := -50; x <= 50; x++ {
		assert.Equal(t, square(x), *c.Get(x))
	}
	assert.Equal(t, 101, c.Len())
}

func TestCacher_ReturnsSamePointerForEqualInputs(t *testing.T) {
	c := pure.New(func(s string) []string { return strings.Split(s, ",") })

	first := c.Get("a,b")
	second := c.Get(strings.Join([]string{"a", "b"}, ","))

	assert.Same(t, first, second)
	assert.Equal(t, []string{"a", "b"}, *first)
}

func TestCacher_PointerSurvivesGrowth(t *testing.T) {
	c := pure.New(func(x int) int { return x * 10 })
	first := c.Get(1)
	for x := 2; x < 2000; x++ {
		c.Get(x)
	}
	assert.Same(t, first, c.Get(1))
	assert.Equal(t, 10, *first)
}

func TestCacher_KeepsFirstOutputOfNondeterministicCalculator(t *testing.T) {
	calls := 0
	c := pure.New(func(x int) int {
		calls++
		return x + calls
	})

	assert.Equal(t, 11, *c.Get(10))
	assert.Equal(t, 11, *c.Get(10))
	assert.Equal(t, 1, calls)
}

func TestCacher_CalculatorPanicPropagatesAndCachesNothing(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	c := pure.New(func(x int) int {
		if fail {
			panic(boom)
		}
		return x
	})

	assert.PanicsWithValue(t, boom, func() { c.Get(7) })
	assert.Equal(t, 0, c.Len())

	fail = false
	assert.Equal(t, 7, *c.Get(7))
	assert.Equal(t, 1, c.Len())
}

func TestCacher_Stats(t *testing.T) {
	c := pure.New(func(x int) int { return x })
	c.Get(1)
	c.Get(1)
	c.Get(2)
	c.Get(1)

	assert.Equal(t, pure.Stats{Hits: 2, Misses: 2}, c.Stats())
}

func TestCacher_RecursiveCalculator(t *testing.T) {
	calls := 0
	var fib *pure.Cacher[int, int]
	fib = pure.New(func(n int) int {
		calls++
		if n <= 1 {
			return n
		}
		return *fib.Get(n-1) + *fib.Get(n-2)
	})

	assert.Equal(t, 832040, *fib.Get(30))
	assert.Equal(t, 31, calls)
	assert.Equal(t, 31, fib.Len())
}

func TestCacher_NilCalculatorPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic on nil calculator")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, pure.ErrNilCalculator)
	}()
	pure.New[int, int](nil)
}

func TestCacher_NilStrategyPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic on nil strategy")
		assert.ErrorIs(t, r.(error), pure.ErrNilStrategy)
	}()
	pure.NewWith[int, int, int](func(x int) int { return x }, nil)
}

type point struct {
	X, Y int
}

func TestCacher_StructInputsAreCopied(t *testing.T) {
	count := 0
	c := pure.New(func(p point) int {
		count++
		return p.X + p.Y
	})

	p := point{X: 1, Y: 2}
	assert.Equal(t, 3, *c.Get(p))
	p.X = 10
	assert.Equal(t, 12, *c.Get(p))
	assert.Equal(t, 3, *c.Get(point{X: 1, Y: 2}))
	assert.Equal(t, 2, count)
}

type tags []string

func (t tags) String() string { return strings.Join(t, "|") }

func TestCacher_Stringer(t *testing.T) {
	count := 0
	c := pure.NewStringer(func(t tags) int {
		count++
		return len(t)
	})

	assert.Equal(t, 2, *c.Get(tags{"a", "b"}))
	assert.Equal(t, 2, *c.Get(tags{"a", "b"}))
	assert.Equal(t, 3, *c.Get(tags{"a", "b", "c"}))
	assert.Equal(t, 2, count)
}

func TestCacher_LogsCreationAndMisses(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := pure.New(func(x int) int { return x },
		pure.WithLogger(zap.New(core)),
		pure.WithName("identity"),
		pure.WithCapacity(8),
	)

	c.Get(1)
	c.Get(1)
	c.Get(2)

	created := logs.FilterMessage("created cacher").All()
	require.Len(t, created, 1)
	fields := created[0].ContextMap()
	assert.Equal(t, "identity", fields["name"])
	assert.Equal(t, "by-value", fields["strategy"])
	assert.Equal(t, c.ID(), fields["id"])

	misses := logs.FilterMessage("memo miss").All()
	require.Len(t, misses, 2)
	assert.Equal(t, int64(2), misses[1].ContextMap()["size"])
	assert.Equal(t, "identity", c.Name())
}

func TestCacher_DefaultsAndUniqueIDs(t *testing.T) {
	a := pure.New(func(x int) int { return x }, pure.WithCapacity(-1), nil)
	b := pure.New(func(x int) int { return x })

	assert.Equal(t, "cacher", a.Name())
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 1, *a.Get(1))
}
