//go:build 386 || arm || mips || mipsle

package wideatomic

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"
)

// builtinLockFree is the toolchain's answer for 64-bit atomics: 386 has
// CMPXCHG8B. mips and mipsle always go through a runtime spinlock. arm is
// reported conservatively: the runtime uses LDREXD/STREXD only when GOARM is
// at least 7 and takes a lock below that, and the GOARM level is not visible
// to this package at compile time.
const builtinLockFree = runtime.GOARCH == "386"

// builtinBackend delegates to sync/atomic's 64-bit operations, which are
// sequentially consistent for every requested order.
type builtinBackend struct{}

func newArchBackend(kind Kind) (Backend, error) {
	if kind != KindBuiltin {
		return nil, fmt.Errorf("%w: %v on %s", ErrUnsupportedKind, kind, runtime.GOARCH)
	}
	return builtinBackend{}, nil
}

//go:nosplit
func word64(w *Wide) *uint64 {
	return (*uint64)(unsafe.Pointer(w.addr()))
}

//go:nosplit
func pack(v Word) uint64 {
	return uint64(v.Lo) | uint64(v.Hi)<<32
}

//go:nosplit
func unpack(u uint64) Word {
	return Word{Lo: uintptr(uint32(u)), Hi: uintptr(u >> 32)}
}

func (builtinBackend) Kind() Kind {
	return KindBuiltin
}

func (builtinBackend) Load(w *Wide, o Order) Word {
	checkOrder(o)
	return unpack(atomic.LoadUint64(word64(w)))
}

// CompareExchange re-reads after a lost race, so the value stored into
// *expected on failure is always one that was atomically observed.
func (builtinBackend) CompareExchange(
	w *Wide,
	expected *Word,
	desired Word,
	success, failure Order,
) bool {
	checkOrders(success, failure)
	p := word64(w)
	exp, neu := pack(*expected), pack(desired)
	for {
		cur := atomic.LoadUint64(p)
		if cur != exp {
			*expected = unpack(cur)
			return false
		}
		if atomic.CompareAndSwapUint64(p, exp, neu) {
			return true
		}
	}
}

func (builtinBackend) LockFree(ops *Ops) Level {
	return reportLockFree(builtinLockFree, ops)
}
