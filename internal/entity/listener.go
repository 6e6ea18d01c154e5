package entity

import "reflect"

// FieldChangeListener is notified after every effective cell change.
// Listeners are compared by identity. A listener whose type cannot be
// compared is never registered; pointer receivers always can be.
type FieldChangeListener interface {
	OnFieldChanged(field *Field)
}

// ListenerFunc is a pointer handle around a plain callback, so the same
// callback can be added and removed again.
type ListenerFunc struct {
	fn func(field *Field)
}

func NewListener(fn func(field *Field)) *ListenerFunc {
	return &ListenerFunc{fn: fn}
}

func (that *ListenerFunc) OnFieldChanged(field *Field) {
	if that.fn != nil {
		that.fn(field)
	}
}

// listenerSet keeps registrations unique and in insertion order.
type listenerSet struct {
	items []FieldChangeListener
}

func (that *listenerSet) add(listener FieldChangeListener) {
	if !isComparable(listener) || that.contains(listener) {
		return
	}

	that.items = append(that.items, listener)
}

func (that *listenerSet) remove(listener FieldChangeListener) {
	if !isComparable(listener) {
		return
	}

	for i, item := range that.items {
		if item == listener {
			that.items = append(that.items[:i:i], that.items[i+1:]...)
			return
		}
	}
}

func (that *listenerSet) contains(listener FieldChangeListener) bool {
	if !isComparable(listener) {
		return false
	}

	for _, item := range that.items {
		if item == listener {
			return true
		}
	}

	return false
}

// snapshot copies the registrations so a notification round is not affected
// by listeners that add or remove registrations from inside their callback.
func (that *listenerSet) snapshot() []FieldChangeListener {
	if len(that.items) == 0 {
		return nil
	}

	out := make([]FieldChangeListener, len(that.items))
	copy(out, that.items)

	return out
}

func (that *listenerSet) clear() {
	that.items = nil
}

// isComparable reports whether listener can be matched with ==. Comparing
// values of a type holding a func, map or slice would panic.
func isComparable(listener FieldChangeListener) bool {
	return listener != nil && reflect.TypeOf(listener).Comparable()
}
