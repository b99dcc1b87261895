// Package symenv implements the Language's Environment model: an immutable
// mapping from identifier to value with a per-lookup default. Every update
// returns a new Env; the receiver is never mutated, so an Env can be shared
// freely across branched symbolic states.
package symenv

// Env is an immutable mapping from K to V. The zero value is a valid, empty
// Env. K must be a type usable as a Go map key (e.g. ast.Identifier).
type Env[K comparable, V any] struct {
	m map[K]V
}

// New returns an empty Env.
func New[K comparable, V any]() Env[K, V] {
	return Env[K, V]{}
}

// Lookup returns the bound value and true, or the zero value and false if K
// is unbound.
func (e Env[K, V]) Lookup(k K) (V, bool) {
	v, ok := e.m[k]
	return v, ok
}

// Get returns the bound value, or def if K is unbound.
func (e Env[K, V]) Get(k K, def V) V {
	if v, ok := e.m[k]; ok {
		return v
	}
	return def
}

// With returns a new Env with k bound to v, leaving the receiver untouched.
func (e Env[K, V]) With(k K, v V) Env[K, V] {
	m := make(map[K]V, len(e.m)+1)
	for k2, v2 := range e.m {
		m[k2] = v2
	}
	m[k] = v
	return Env[K, V]{m: m}
}

// Without returns a new Env with k unbound, leaving the receiver untouched.
func (e Env[K, V]) Without(k K) Env[K, V] {
	if _, ok := e.m[k]; !ok {
		return e
	}
	m := make(map[K]V, len(e.m))
	for k2, v2 := range e.m {
		if k2 != k {
			m[k2] = v2
		}
	}
	return Env[K, V]{m: m}
}

// Len reports the number of bound keys.
func (e Env[K, V]) Len() int { return len(e.m) }

// EqualFunc reports whether e and o bind exactly the same keys, with values
// compared pairwise by eq.
func (e Env[K, V]) EqualFunc(o Env[K, V], eq func(V, V) bool) bool {
	if len(e.m) != len(o.m) {
		return false
	}
	for k, v := range e.m {
		v2, ok := o.m[k]
		if !ok || !eq(v, v2) {
			return false
		}
	}
	return true
}

// Each calls f for every bound key, in unspecified order, matching the
// interpreter's set-lifted iteration-order independence.
func (e Env[K, V]) Each(f func(K, V)) {
	for k, v := range e.m {
		f(k, v)
	}
}
