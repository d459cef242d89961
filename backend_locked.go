package wideatomic

import (
	"sync/atomic"
	"unsafe"

	"github.com/llxisdsh/wideatomic/internal/opt"
)

// lockStripes is the number of sequence locks shared by all Wide values
// under the lock-based fallback. Must be a power of 2.
const lockStripes = 64

var stripes [lockStripes]opt.Stripe_

// stripeOf returns the sequence lock guarding the pair at p.
//
//go:nosplit
func stripeOf(p *[2]uintptr) *uintptr {
	h := uintptr(unsafe.Pointer(p)) / wordAlign
	h ^= h >> 6
	h ^= h >> 12
	return &stripes[h&(lockStripes-1)].Seq
}

// lockedBackend emulates wide atomics with a striped sequence lock.
//
// Writers make the stripe odd, store both halves and publish it even again.
// Readers copy the halves while the stripe is even and unchanged, so loads
// never block writers. Every access to the halves is a word-sized atomic,
// which keeps the race detector informed without annotations.
type lockedBackend struct{}

func (lockedBackend) Kind() Kind {
	return KindLocked
}

func (lockedBackend) Load(w *Wide, o Order) Word {
	checkOrder(o)
	p := w.addr()
	seq := stripeOf(p)
	if s1 := atomic.LoadUintptr(seq); s1&1 == 0 {
		v := loadHalves(p)
		if atomic.LoadUintptr(seq) == s1 {
			return v
		}
	}
	return loadLockedSlow(p, seq)
}

func loadLockedSlow(p *[2]uintptr, seq *uintptr) Word {
	var spins int
	for {
		if s1 := atomic.LoadUintptr(seq); s1&1 == 0 {
			v := loadHalves(p)
			if atomic.LoadUintptr(seq) == s1 {
				return v
			}
			continue
		}
		delay(&spins)
	}
}

func (lockedBackend) CompareExchange(
	w *Wide,
	expected *Word,
	desired Word,
	success, failure Order,
) bool {
	checkOrders(success, failure)
	p := w.addr()
	seq := stripeOf(p)
	s1 := beginWrite(seq)
	old := loadHalves(p)
	ok := old == *expected
	if ok {
		atomic.StoreUintptr(&p[0], desired.Lo)
		atomic.StoreUintptr(&p[1], desired.Hi)
	}
	atomic.StoreUintptr(seq, s1+2)
	*expected = old
	return ok
}

func (lockedBackend) LockFree(ops *Ops) Level {
	return reportLockFree(false, ops)
}

// beginWrite spins until the stripe is even and moves it to odd.
// It returns the even sequence observed.
func beginWrite(seq *uintptr) uintptr {
	s1 := atomic.LoadUintptr(seq)
	if s1&1 == 0 && atomic.CompareAndSwapUintptr(seq, s1, s1|1) {
		return s1
	}
	var spins int
	for {
		s1 = atomic.LoadUintptr(seq)
		if s1&1 == 0 && atomic.CompareAndSwapUintptr(seq, s1, s1|1) {
			return s1
		}
		delay(&spins)
	}
}

//go:nosplit
func loadHalves(p *[2]uintptr) Word {
	return Word{
		Lo: atomic.LoadUintptr(&p[0]),
		Hi: atomic.LoadUintptr(&p[1]),
	}
}
