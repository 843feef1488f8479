package wait

// Condition adapts a plain boolean check into a Predicate. The result
// value is the boolean itself.
func Condition(cond func() bool) Predicate[bool] {
	return func() (bool, bool, error) {
		ok := cond()
		return ok, ok, nil
	}
}

// CountReached is satisfied once get reports at least target. The
// result value is the count observed on the satisfying evaluation.
// get owns its counter; typically it reads an atomic or takes a lock.
func CountReached(get func() int, target int) Predicate[int] {
	return func() (int, bool, error) {
		n := get()
		return n, n >= target, nil
	}
}

// EventOccurred scans a snapshot of caller-owned events and is
// satisfied by the first one match accepts. snapshot is re-invoked
// every cycle, so events appended between evaluations are seen; it
// owns whatever locking a consistent read needs.
func EventOccurred[E any](snapshot func() []E, match func(E) bool) Predicate[E] {
	return func() (E, bool, error) {
		for _, e := range snapshot() {
			if match(e) {
				return e, true, nil
			}
		}
		var zero E
		return zero, false, nil
	}
}
