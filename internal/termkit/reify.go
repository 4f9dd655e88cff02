package termkit

import "github.com/clauseforge/sldcore/pkg/sld"

// Reify fully walks v through env and returns the resulting term, with
// any remaining unbound variables left in place. It is a read-only
// convenience for inspecting answers; the engine itself never calls it.
func Reify(v Value, env sld.Env) Value {
	b, ok := env.(*Bindings)
	if !ok {
		panic("termkit: Reify called with a foreign Env implementation")
	}
	return substValue(v, b)
}
