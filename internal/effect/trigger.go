package effect

// Watcher observes an externally supplied comparable trigger value and
// reports exactly once per value change, regardless of how often it is
// polled. The first observation arms the watcher without firing. There is
// no debouncing: rapid successive changes each report true once.
type Watcher[T comparable] struct {
	last  T
	armed bool
}

// Changed records v and reports whether it differs from the previously
// observed value.
func (w *Watcher[T]) Changed(v T) bool {
	if !w.armed {
		w.armed = true
		w.last = v
		return false
	}
	if v == w.last {
		return false
	}
	w.last = v
	return true
}
