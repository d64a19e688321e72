package pure

import "fmt"

// TryCacher memoizes a pure calculator that can fail.
//
// Only successful outputs are remembered. A failed input is retried on its
// next Get, and the calculator's error reaches the caller untouched.
type TryCacher[I any, O any] struct {
	base
	memo memo[I, O]
	calc func(I) (O, error)
}

// NewTry returns a by-value TryCacher.
func NewTry[I comparable, O any](calc func(I) (O, error), opts ...Option) *TryCacher[I, O] {
	return NewTryWith[I, I, O](calc, ByValue[I](), opts...)
}

// NewTryWith returns a TryCacher that files inputs with the given strategy.
// It panics if calc or keys is nil.
func NewTryWith[I any, K comparable, O any](calc func(I) (O, error), keys KeyStrategy[I, K], opts ...Option) *TryCacher[I, O] {
	if calc == nil {
		panic(fmt.Errorf("%w: NewTryWith", ErrNilCalculator))
	}
	if keys == nil {
		panic(fmt.Errorf("%w: NewTryWith", ErrNilStrategy))
	}
	cfg := newConfig(opts)
	return &TryCacher[I, O]{
		base: newBase(cfg, strategyName(keys)),
		memo: newTable[I, K, O](keys, cfg.capacity),
		calc: calc,
	}
}

// Get returns the output for in. On a miss the calculator runs once; if it
// fails, its error is returned as is and nothing is cached.
func (c *TryCacher[I, O]) Get(in I) (*O, error) {
	if out, ok := c.memo.load(in); ok {
		c.stats.Hits++
		return out, nil
	}
	c.stats.Misses++
	v, err := c.calc(in)
	if err != nil {
		c.stats.Failures++
		c.logFailure(err)
		return nil, err
	}
	out, _ := c.memo.loadOrStore(in, v)
	c.logMiss(c.memo.len())
	return out, nil
}

// Len returns the number of distinct inputs remembered.
func (c *TryCacher[I, O]) Len() int {
	return c.memo.len()
}
