package gioplot

// objectBag tracks a set of keys with reference counts and per-key data,
// preserving insertion order. Adding a key already present bumps its
// count instead of inserting a duplicate, so shared components (an axis
// used by several datasets, say) only appear once but survive until
// every user has removed them.
type objectBag[K comparable, D any] struct {
	refs  map[K]int
	data  map[K]D
	order []K
}

// add inserts key with data, or bumps its reference count if already
// present. It reports whether the key was already in the bag; when it
// was, the existing data is kept and the supplied data ignored.
func (b *objectBag[K, D]) add(key K, data D) bool {
	if b.refs == nil {
		b.refs = make(map[K]int)
		b.data = make(map[K]D)
	}
	if _, ok := b.refs[key]; ok {
		b.refs[key]++
		return true
	}
	b.refs[key] = 1
	b.data[key] = data
	b.order = append(b.order, key)
	return false
}

// remove drops one reference to key and reports whether that was the
// last reference, removing the key entirely when it was. Removing an
// absent key reports false.
func (b *objectBag[K, D]) remove(key K) bool {
	n, ok := b.refs[key]
	if !ok {
		return false
	}
	if n > 1 {
		b.refs[key] = n - 1
		return false
	}
	delete(b.refs, key)
	delete(b.data, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// contains reports whether key is in the bag.
func (b *objectBag[K, D]) contains(key K) bool {
	_, ok := b.refs[key]
	return ok
}

// get returns the data stored with key.
func (b *objectBag[K, D]) get(key K) (D, bool) {
	d, ok := b.data[key]
	return d, ok
}

// len returns the number of distinct keys in the bag.
func (b *objectBag[K, D]) len() int {
	return len(b.order)
}

// each calls fn for every key in insertion order until fn returns
// false.
func (b *objectBag[K, D]) each(fn func(key K, data D) bool) {
	for _, k := range b.order {
		if !fn(k, b.data[k]) {
			return
		}
	}
}
