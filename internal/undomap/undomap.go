package undomap

// Map wraps a native Go map of comparable keys to comparable values. It adds
// no synchronization of its own; callers in this module use one Map per
// search run, shared by every branch and restored on backtrack.
type Map[K comparable, V comparable] struct {
	entries map[K]V
}

// New returns an empty Map.
func New[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V)}
}

// Len returns the number of bindings currently held.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Get returns the value bound to key and whether a binding exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Keys returns the map's keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// Clone returns a shallow copy of m whose bindings can be mutated
// independently of the original.
func (m *Map[K, V]) Clone() *Map[K, V] {
	cloned := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		cloned[k] = v
	}
	return &Map[K, V]{entries: cloned}
}

// WithBinding installs key=value on m, runs body, then restores m to its
// prior state before returning — whether key was previously absent, or bound
// to a different value.
//
// present asserts the caller's own belief about whether key was already
// bound in m; it must agree with m's actual state, or WithBinding panics.
// Search code tracks presence alongside its own bookkeeping (e.g. a free-net
// worklist), and this assertion catches that bookkeeping drifting out of
// sync with the map it describes.
//
// If key is already bound to value, installing the binding is a no-op: body
// is not invoked, and ran is reported false. This lets callers skip
// redundant recursion along a search path that revisits the same binding.
//
// body is required to unwind every binding it installs before returning —
// the entire discipline this package exists for. WithBinding checks this:
// after body returns, m must have the same size it had right after key=value
// was installed, and key must still be bound to value. A callee that left
// an extra binding in place, or rebound key itself, trips this check and
// WithBinding panics rather than let the corrupted state propagate upward.
func WithBinding[K comparable, V comparable, R any](m *Map[K, V], key K, value V, present bool, body func() R) (result R, ran bool) {
	prevValue, hadPrev := m.entries[key]
	if present != hadPrev {
		panic("undomap: present does not match map's actual binding state")
	}

	if hadPrev && prevValue == value {
		var zero R
		return zero, false
	}

	m.entries[key] = value
	lenAfterInstall := len(m.entries)

	defer func() {
		if hadPrev {
			m.entries[key] = prevValue
		} else {
			delete(m.entries, key)
		}
	}()

	result = body()

	if len(m.entries) != lenAfterInstall {
		panic("undomap: body left the map's size changed — a callee failed to unwind its own binding")
	}
	if v, ok := m.entries[key]; !ok || v != value {
		panic("undomap: body rebound key instead of leaving it for WithBinding to restore")
	}

	return result, true
}

// WithRemoved temporarily deletes key's binding, runs body, then restores it
// to its previous value. key must already be present in m; WithRemoved
// panics otherwise, since removing an absent key indicates a bookkeeping
// error in the caller (the search only ever removes nets it has verified
// are present and free).
func WithRemoved[K comparable, V comparable, R any](m *Map[K, V], key K, body func() R) R {
	value, present := m.entries[key]
	if !present {
		panic("undomap: WithRemoved called with an absent key")
	}

	delete(m.entries, key)
	defer func() { m.entries[key] = value }()

	return body()
}
