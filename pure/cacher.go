package pure

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Stats counts how a cacher's lookups were served.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Failures uint64
}

type base struct {
	id     string
	name   string
	logger *zap.Logger
	stats  Stats
}

func newBase(cfg config, strategy string) base {
	b := base{
		id:     uuid.New().String(),
		name:   cfg.name,
		logger: cfg.logger,
	}
	b.logger.Debug("created cacher",
		zap.String("id", b.id),
		zap.String("name", b.name),
		zap.String("strategy", strategy),
	)
	return b
}

// ID returns the identifier the cacher logs under.
func (b *base) ID() string { return b.id }

// Name returns the name given with WithName.
func (b *base) Name() string { return b.name }

// Stats returns the lookup counters so far.
func (b *base) Stats() Stats { return b.stats }

func (b *base) logMiss(size int) {
	if ce := b.logger.Check(zap.DebugLevel, "memo miss"); ce != nil {
		ce.Write(
			zap.String("id", b.id),
			zap.String("name", b.name),
			zap.Int("size", size),
		)
	}
}

func (b *base) logFailure(err error) {
	if ce := b.logger.Check(zap.DebugLevel, "calculator failed"); ce != nil {
		ce.Write(
			zap.String("id", b.id),
			zap.String("name", b.name),
			zap.Error(err),
		)
	}
}

// Cacher memoizes a pure single-argument calculator.
//
// The calculator runs at most once per distinct input; every later Get for an
// equal input returns the pointer to the first output. The calculator must be
// deterministic: a cached output is never recomputed or replaced. Entries are
// never evicted.
//
// A Cacher is not safe for concurrent use.
type Cacher[I any, O any] struct {
	base
	memo memo[I, O]
	calc func(I) O
}

// New returns a by-value Cacher: each input is remembered as its own copy.
func New[I comparable, O any](calc func(I) O, opts ...Option) *Cacher[I, O] {
	return NewWith[I, I, O](calc, ByValue[I](), opts...)
}

// NewStringer returns a Cacher that files inputs under their String() form.
func NewStringer[I fmt.Stringer, O any](calc func(I) O, opts ...Option) *Cacher[I, O] {
	return NewWith[I, string, O](calc, ByStringer[I](), opts...)
}

// NewRef returns a by-reference Cacher. It remembers the pointers it is given
// rather than copies of the values behind them, so large inputs are not
// duplicated. Lookups still match by value: a different pointer to an equal
// value is a hit.
//
// The memo keeps every remembered pointee reachable for as long as the Cacher
// is, so a borrowed input can never be collected out from under it. Mutating a
// pointee after it was remembered breaks the memo.
func NewRef[T comparable, O any](calc func(*T) O, opts ...Option) *Cacher[*T, O] {
	return NewWith[*T, uint64, O](calc, ByRef[T](), opts...)
}

// NewRefString is NewRef for string-like inputs.
func NewRefString[T ~string, O any](calc func(*T) O, opts ...Option) *Cacher[*T, O] {
	return NewWith[*T, uint64, O](calc, ByRefString[T](), opts...)
}

// NewRefBytes is NewRef for byte-slice inputs, which are not comparable.
func NewRefBytes[T ~[]byte, O any](calc func(*T) O, opts ...Option) *Cacher[*T, O] {
	return NewWith[*T, uint64, O](calc, ByRefBytes[T](), opts...)
}

// NewWith returns a Cacher that files inputs with the given strategy.
// It panics if calc or keys is nil.
func NewWith[I any, K comparable, O any](calc func(I) O, keys KeyStrategy[I, K], opts ...Option) *Cacher[I, O] {
	if calc == nil {
		panic(fmt.Errorf("%w: NewWith", ErrNilCalculator))
	}
	if keys == nil {
		panic(fmt.Errorf("%w: NewWith", ErrNilStrategy))
	}
	cfg := newConfig(opts)
	return &Cacher[I, O]{
		base: newBase(cfg, strategyName(keys)),
		memo: newTable[I, K, O](keys, cfg.capacity),
		calc: calc,
	}
}

// Get returns the output for in, running the calculator only if no equal
// input was seen before. The returned pointer must be treated as read-only.
//
// A panic in the calculator propagates to the caller and nothing is cached.
func (c *Cacher[I, O]) Get(in I) *O {
	if out, ok := c.memo.load(in); ok {
		c.stats.Hits++
		return out
	}
	c.stats.Misses++
	out, _ := c.memo.loadOrStore(in, c.calc(in))
	c.logMiss(c.memo.len())
	return out
}

// Len returns the number of distinct inputs remembered.
func (c *Cacher[I, O]) Len() int {
	return c.memo.len()
}
