package state

// Listeners is a set of callbacks notified with the latest value. The zero
// value is ready to use. It is not safe for concurrent use.
type Listeners[T any] struct {
	next    int
	entries []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

// Add registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (l *Listeners[T]) Add(fn func(T)) func() {
	l.next++
	id := l.next
	l.entries = append(l.entries, listener[T]{id: id, fn: fn})
	return func() {
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every registered listener in registration order
func (l *Listeners[T]) Notify(v T) {
	for _, e := range append([]listener[T](nil), l.entries...) {
		e.fn(v)
	}
}

func (l *Listeners[T]) Len() int {
	return len(l.entries)
}
