package gioplot

// updateList is a list of callbacks fired whenever a component changes
// in a way that requires its owners to redraw.
type updateList struct {
	seq       int
	callbacks map[int]func()
}

// add registers fn and returns a cancel func that unregisters it.
func (u *updateList) add(fn func()) func() {
	if u.callbacks == nil {
		u.callbacks = make(map[int]func())
	}
	id := u.seq
	u.seq++
	u.callbacks[id] = fn
	return func() {
		delete(u.callbacks, id)
	}
}

func (u *updateList) notify() {
	for _, fn := range u.callbacks {
		fn()
	}
}
