package occbox

// txLeg is one Box's participation in a multi-commit transaction. Go has no
// variadic or heterogeneous generic tuples, so ApplyTo cannot accept
// []*Box[T] for differing T; instead each call site builds a txLeg closure
// via ValueStep or PointerStep, type-erasing the Box's T behind plain
// functions, and ApplyTo drives a slice of those.
type txLeg struct {
	tryBegin func() bool
	release  func()
	prepare  func()
	diverged func() bool
	commit   func()
}

// ValueStep builds a txLeg over a Cloneable-valued Box for use with ApplyTo.
// f receives a private clone of the box's current value at prepare time and
// mutates it in place; the mutated clone becomes the committed value if the
// transaction succeeds.
func ValueStep[T Cloneable[T]](b *Box[T], f func(T)) txLeg {
	var (
		base    *state[T]
		pending T
	)
	return txLeg{
		tryBegin: func() bool {
			return b.txFlag.CompareAndSwap(false, true)
		},
		release: func() {
			b.txFlag.Store(false)
		},
		prepare: func() {
			base = b.cur.Load()
			pending = base.data.Clone()
			f(pending)
		},
		diverged: func() bool {
			return b.cur.Load() != base
		},
		commit: func() {
			b.cur.Store(&state[T]{version: base.version + 1, data: pending})
		},
	}
}

// PointerStep builds a txLeg over any Box for use with ApplyTo. f receives
// the box's current value at prepare time and returns the replacement
// directly, skipping the intermediate deep copy - the ApplyTo analogue of
// WritePtr.
func PointerStep[T any](b *Box[T], f func(T) T) txLeg {
	var (
		base    *state[T]
		pending T
	)
	return txLeg{
		tryBegin: func() bool {
			return b.txFlag.CompareAndSwap(false, true)
		},
		release: func() {
			b.txFlag.Store(false)
		},
		prepare: func() {
			base = b.cur.Load()
			pending = f(base.data)
		},
		diverged: func() bool {
			return b.cur.Load() != base
		},
		commit: func() {
			b.cur.Store(&state[T]{version: base.version + 1, data: pending})
		},
	}
}

// ApplyTo runs a multi-box atomic transaction: every leg's Box is marked
// busy, each leg computes its pending value from a consistent snapshot, and
// if no participating Box changed underneath the transaction, every leg
// commits. If any Box was touched by a concurrent writer - detected via its
// version pointer changing between prepare and commit - the whole attempt
// aborts, all flags are released, and nothing is committed; the caller is
// expected to retry by calling ApplyTo again with fresh legs.
//
// Boxes participating in a transaction reject concurrent Write/WritePtr and
// make Read/TryRead retry for the duration, so a transaction that keeps
// losing the race against itself (same goroutine set, same boxes) will
// still make progress: only outside writers can make it abort, and each
// abort means at least one outside commit landed.
//
// Returns false without attempting any commit if any leg's Box is already
// marked (tryBegin fails): either another ApplyTo on an overlapping box set
// is in progress, or two legs of this call name the same Box.
func ApplyTo(legs ...txLeg) bool {
	began := make([]txLeg, 0, len(legs))
	defer func() {
		for _, l := range began {
			l.release()
		}
	}()

	for _, l := range legs {
		if !l.tryBegin() {
			return false
		}
		began = append(began, l)
	}

	for _, l := range legs {
		l.prepare()
	}

	for _, l := range legs {
		if l.diverged() {
			return false
		}
	}

	for _, l := range legs {
		l.commit()
	}
	return true
}
