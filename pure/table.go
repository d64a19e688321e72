package pure

type entry[I any, O any] struct {
	in  I
	out O
}

// memo is the K-erased view of a table the cacher types hold.
type memo[I any, O any] interface {
	load(in I) (*O, bool)
	loadOrStore(in I, out O) (*O, bool)
	len() int
}

// table is an append-only hash table of input/output entries. Entries are
// heap-allocated once and never moved, so a returned *O stays valid for the
// table's lifetime.
type table[I any, K comparable, O any] struct {
	keys    KeyStrategy[I, K]
	buckets map[K][]*entry[I, O]
	size    int
}

func newTable[I any, K comparable, O any](keys KeyStrategy[I, K], capacity int) *table[I, K, O] {
	return &table[I, K, O]{
		keys:    keys,
		buckets: make(map[K][]*entry[I, O], capacity),
	}
}

func (t *table[I, K, O]) find(k K, in I) *entry[I, O] {
	for _, e := range t.buckets[k] {
		if t.keys.Equal(e.in, in) {
			return e
		}
	}
	return nil
}

func (t *table[I, K, O]) load(in I) (*O, bool) {
	if e := t.find(t.keys.Key(in), in); e != nil {
		return &e.out, true
	}
	return nil, false
}

// loadOrStore keeps the first output ever stored for in. A calculator that
// re-enters its own cacher may have filed in already.
func (t *table[I, K, O]) loadOrStore(in I, out O) (*O, bool) {
	k := t.keys.Key(in)
	if e := t.find(k, in); e != nil {
		return &e.out, true
	}
	e := &entry[I, O]{in: in, out: out}
	t.buckets[k] = append(t.buckets[k], e)
	t.size++
	return &e.out, false
}

func (t *table[I, K, O]) len() int {
	return t.size
}
