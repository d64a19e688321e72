package pure

import "fmt"

// ComparableOrStringer is an argument Tableize can key: either a comparable
// value or a fmt.Stringer.
type ComparableOrStringer any

// ComparableOrString is the form an argument takes inside a table key.
type ComparableOrString any

// tableCall holds the arguments of one call, unused positions left nil.
type tableCall [4]ComparableOrStringer

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

// tableKeys files a call under its arguments, each replaced by its String()
// form when it has one. Hashing a key that still holds a non-comparable value
// panics.
type tableKeys struct{}

func (tableKeys) Key(c tableCall) tableCall {
	var k tableCall
	for i, a := range c {
		k[i] = tableKey(a)
	}
	return k
}

func (tableKeys) Equal(_, _ tableCall) bool { return true }

func (tableKeys) String() string { return "tableize" }

func arg[T any](v ComparableOrStringer) T {
	t, _ := v.(T)
	return t
}

func tableize[O any](pureFn func(tableCall) O, opts []Option) func(tableCall) O {
	cacher := NewWith[tableCall, tableCall, O](pureFn, tableKeys{}, append([]Option{WithName("tableize")}, opts...)...)
	return func(c tableCall) O {
		return *cacher.Get(c)
	}
}

// TableizeI1O1 memoizes a pure one-argument function. The returned closure
// may be called from inside pureFn itself, which is how recursive definitions
// are tabled.
func TableizeI1O1[I1 ComparableOrStringer, O1 any](pureFn func(I1) O1, opts ...Option) func(I1) O1 {
	tableized := tableize(func(c tableCall) O1 {
		return pureFn(arg[I1](c[0]))
	}, opts)
	return func(i1 I1) O1 {
		return tableized(tableCall{i1})
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](pureFn func(I1, I2) O1, opts ...Option) func(I1, I2) O1 {
	tableized := tableize(func(c tableCall) O1 {
		return pureFn(arg[I1](c[0]), arg[I2](c[1]))
	}, opts)
	return func(i1 I1, i2 I2) O1 {
		return tableized(tableCall{i1, i2})
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](pureFn func(I1, I2, I3) O1, opts ...Option) func(I1, I2, I3) O1 {
	tableized := tableize(func(c tableCall) O1 {
		return pureFn(arg[I1](c[0]), arg[I2](c[1]), arg[I3](c[2]))
	}, opts)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(tableCall{i1, i2, i3})
	}
}

func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](pureFn func(I1, I2, I3, I4) O1, opts ...Option) func(I1, I2, I3, I4) O1 {
	tableized := tableize(func(c tableCall) O1 {
		return pureFn(arg[I1](c[0]), arg[I2](c[1]), arg[I3](c[2]), arg[I4](c[3]))
	}, opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(tableCall{i1, i2, i3, i4})
	}
}
