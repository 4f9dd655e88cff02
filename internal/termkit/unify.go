package termkit

// unify attempts to unify x and y under the bindings accumulated so far
// in acc, returning the extended bindings on success. It performs no
// occurs check.
func unify(x, y Value, acc *Bindings) (*Bindings, bool) {
	x = acc.walk(x)
	y = acc.walk(y)

	if xv, ok := x.(*Var); ok {
		if yv, ok := y.(*Var); ok && xv.key() == yv.key() {
			return acc, true
		}
		return acc.bind(xv, y), true
	}
	if yv, ok := y.(*Var); ok {
		return acc.bind(yv, x), true
	}

	switch xt := x.(type) {
	case Atom:
		yt, ok := y.(Atom)
		return acc, ok && xt.Equal(yt)
	case *Compound:
		yt, ok := y.(*Compound)
		if !ok || xt.Functor != yt.Functor || len(xt.Args) != len(yt.Args) {
			return nil, false
		}
		cur := acc
		for i := range xt.Args {
			var matched bool
			cur, matched = unify(xt.Args[i], yt.Args[i], cur)
			if !matched {
				return nil, false
			}
		}
		return cur, true
	default:
		return nil, false
	}
}
