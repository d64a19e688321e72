package pure

import (
	"bytes"
	"fmt"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// KeyStrategy decides how an input is filed in the memo.
//
// Key maps an input to its bucket. Equal tells apart inputs that land in the
// same bucket; stored is the input remembered by the memo, in is the one being
// looked up. Two inputs are the same memo entry iff their keys are equal and
// Equal reports true.
type KeyStrategy[I any, K comparable] interface {
	Key(in I) K
	Equal(stored, in I) bool
}

type byValue[I comparable] struct{}

func (byValue[I]) Key(in I) I { return in }
func (byValue[I]) Equal(_, _ I) bool { return true }
func (byValue[I]) String() string { return "by-value" }

// ByValue files each input under an independent copy of itself.
func ByValue[I comparable]() KeyStrategy[I, I] {
	return byValue[I]{}
}

type byStringer[I fmt.Stringer] struct{}

func (byStringer[I]) Key(in I) string { return in.String() }
func (byStringer[I]) Equal(_, _ I) bool { return true }
func (byStringer[I]) String() string { return "by-stringer" }

// ByStringer files each input under its String() form. Use it for inputs that
// are not comparable but render to a canonical string.
func ByStringer[I fmt.Stringer]() KeyStrategy[I, string] {
	return byStringer[I]{}
}

// nilBucket is where every by-reference strategy files a nil pointer.
const nilBucket uint64 = 0

type byRef[T comparable] struct {
	seed maphash.Seed
}

func (s byRef[T]) Key(in *T) uint64 {
	if in == nil {
		return nilBucket
	}
	return maphash.Comparable(s.seed, *in)
}

func (byRef[T]) Equal(stored, in *T) bool {
	if stored == nil || in == nil {
		return stored == in
	}
	return stored == in || *stored == *in
}

func (byRef[T]) String() string { return "by-reference" }

// ByRef files each input under the pointer the caller handed in. The pointee is
// hashed and compared but never copied.
func ByRef[T comparable]() KeyStrategy[*T, uint64] {
	return byRef[T]{seed: maphash.MakeSeed()}
}

type byRefString[T ~string] struct{}

func (byRefString[T]) Key(in *T) uint64 {
	if in == nil {
		return nilBucket
	}
	return xxhash.Sum64String(string(*in))
}

func (byRefString[T]) Equal(stored, in *T) bool {
	if stored == nil || in == nil {
		return stored == in
	}
	return stored == in || *stored == *in
}

func (byRefString[T]) String() string { return "by-reference-string" }

// ByRefString is ByRef for string-like inputs, hashing the content with xxhash.
func ByRefString[T ~string]() KeyStrategy[*T, uint64] {
	return byRefString[T]{}
}

type byRefBytes[T ~[]byte] struct{}

func (byRefBytes[T]) Key(in *T) uint64 {
	if in == nil {
		return nilBucket
	}
	return xxhash.Sum64([]byte(*in))
}

func (byRefBytes[T]) Equal(stored, in *T) bool {
	if stored == nil || in == nil {
		return stored == in
	}
	return stored == in || bytes.Equal([]byte(*stored), []byte(*in))
}

func (byRefBytes[T]) String() string { return "by-reference-bytes" }

// ByRefBytes files byte-slice inputs by reference. Content is hashed with
// xxhash and compared with bytes.Equal, so a nil slice and an empty slice are
// the same entry.
func ByRefBytes[T ~[]byte]() KeyStrategy[*T, uint64] {
	return byRefBytes[T]{}
}

func strategyName(s any) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}
