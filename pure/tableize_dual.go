package pure

type pair[O1 any, O2 any] struct {
	first  O1
	second O2
}

func tableizeDual[O1, O2 any](pureFn func(tableCall) (O1, O2), opts []Option) func(tableCall) (O1, O2) {
	tableized := tableize(func(c tableCall) pair[O1, O2] {
		v1, v2 := pureFn(c)
		return pair[O1, O2]{first: v1, second: v2}
	}, opts)
	return func(c tableCall) (O1, O2) {
		p := tableized(c)
		return p.first, p.second
	}
}

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](pureFn func(I1) (O1, O2), opts ...Option) func(I1) (O1, O2) {
	tableized := tableizeDual(func(c tableCall) (O1, O2) {
		return pureFn(arg[I1](c[0]))
	}, opts)
	return func(i1 I1) (O1, O2) {
		return tableized(tableCall{i1})
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](pureFn func(I1, I2) (O1, O2), opts ...Option) func(I1, I2) (O1, O2) {
	tableized := tableizeDual(func(c tableCall) (O1, O2) {
		return pureFn(arg[I1](c[0]), arg[I2](c[1]))
	}, opts)
	return func(i1 I1, i2 I2) (O1, O2) {
		return tableized(tableCall{i1, i2})
	}
}

func TableizeI3O2[I1, I2, I3 ComparableOrStringer, O1, O2 any](pureFn func(I1, I2, I3) (O1, O2), opts ...Option) func(I1, I2, I3) (O1, O2) {
	tableized := tableizeDual(func(c tableCall) (O1, O2) {
		return pureFn(arg[I1](c[0]), arg[I2](c[1]), arg[I3](c[2]))
	}, opts)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return tableized(tableCall{i1, i2, i3})
	}
}

func TableizeI4O2[I1, I2, I3, I4 ComparableOrStringer, O1, O2 any](pureFn func(I1, I2, I3, I4) (O1, O2), opts ...Option) func(I1, I2, I3, I4) (O1, O2) {
	tableized := tableizeDual(func(c tableCall) (O1, O2) {
		return pureFn(arg[I1](c[0]), arg[I2](c[1]), arg[I3](c[2]), arg[I4](c[3]))
	}, opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return tableized(tableCall{i1, i2, i3, i4})
	}
}
