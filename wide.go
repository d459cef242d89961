// Package wideatomic provides atomic load and compare-and-exchange on values
// twice the width of the native machine word, with explicit memory ordering.
//
// The implementation behind the operations is a Backend fixed at build time:
// a native paired-register compare-and-swap (CMPXCHG16B on amd64, CASP on
// arm64 with LSE), a load-link/store-conditional loop (LDXP/STXP on arm64),
// the toolchain's double-word atomics (32-bit targets), or a lock-based
// fallback that reports itself as not lock-free.
package wideatomic

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// Word is a value twice the width of the native machine word: 128 bits on
// 64-bit targets, 64 bits on 32-bit targets.
//
// Lo is the less significant half for Add; no other operation gives either
// half a meaning.
type Word struct {
	Lo uintptr
	Hi uintptr
}

// MakeWord returns the Word with the given halves.
//
//go:nosplit
func MakeWord(lo, hi uintptr) Word {
	return Word{Lo: lo, Hi: hi}
}

// IsZero reports whether both halves are zero.
//
//go:nosplit
func (v Word) IsZero() bool {
	return v.Lo|v.Hi == 0
}

func (v Word) String() string {
	return fmt.Sprintf("{%#x %#x}", v.Lo, v.Hi)
}

// addWords adds b to a, carrying from Lo into Hi.
//
//go:nosplit
func addWords(a, b Word) Word {
	lo, carry := bits.Add(uint(a.Lo), uint(b.Lo), 0)
	hi, _ := bits.Add(uint(a.Hi), uint(b.Hi), carry)
	return Word{Lo: uintptr(lo), Hi: uintptr(hi)}
}

// wordAlign is the natural alignment of a Word in memory.
const wordAlign = unsafe.Sizeof(Word{})

// Wide is the storage of a wide atomic value.
//
// It is owned by the caller and may be embedded anywhere: the naturally
// aligned two-word window inside it is chosen by address, so paired
// instructions never see a misaligned operand.
// The zero value holds Word{0, 0}. Wide must not be copied after first use,
// and must only be modified through this package.
type Wide struct {
	_ noCopy
	d [3]uintptr
}

// addr returns the aligned two-word window of w.
//
//go:nosplit
func (w *Wide) addr() *[2]uintptr {
	if uintptr(unsafe.Pointer(&w.d[0]))%wordAlign == 0 {
		return (*[2]uintptr)(unsafe.Pointer(&w.d[0]))
	}
	return (*[2]uintptr)(unsafe.Pointer(&w.d[1]))
}

// Load atomically loads the value of w.
func (w *Wide) Load(o Order) Word {
	return defaultBackend.Load(w, o)
}

// CompareExchange is CompareExchangeStrong on w.
func (w *Wide) CompareExchange(expected *Word, desired Word, success, failure Order) bool {
	return defaultBackend.CompareExchange(w, expected, desired, success, failure)
}

// CompareAndSwap is CompareAndSwap on w.
func (w *Wide) CompareAndSwap(old, new Word, o Order) bool {
	return compareAndSwap(defaultBackend, w, old, new, o)
}

// Init is Init on w.
func (w *Wide) Init(v Word) {
	store(defaultBackend, w, v, Relaxed)
}

// Store is Store on w.
func (w *Wide) Store(v Word, o Order) {
	store(defaultBackend, w, v, o)
}

// Swap is Swap on w.
func (w *Wide) Swap(v Word, o Order) Word {
	return swap(defaultBackend, w, v, o)
}

// Add is Add on w.
func (w *Wide) Add(delta Word, o Order) Word {
	return add(defaultBackend, w, delta, o)
}

// Load atomically loads the value of w.
//
// The result was written in full by a single compare-exchange; halves of
// different writes are never combined. A Release order is accepted and
// degrades to a relaxed read.
func Load(w *Wide, o Order) Word {
	return defaultBackend.Load(w, o)
}

// CompareExchangeStrong atomically replaces the value of w with desired if
// it equals *expected, and reports whether it did.
//
// On return *expected holds the value observed atomically in w, on success
// and on failure alike. The success order applies to the whole operation;
// the failure order is validated but has no further effect. The operation
// never fails spuriously.
func CompareExchangeStrong(w *Wide, expected *Word, desired Word, success, failure Order) bool {
	return defaultBackend.CompareExchange(w, expected, desired, success, failure)
}

// CompareAndSwap is CompareExchangeStrong without the observed value, with a
// relaxed failure order.
func CompareAndSwap(w *Wide, old, new Word, o Order) bool {
	return compareAndSwap(defaultBackend, w, old, new, o)
}

// Init sets the value of w before it is shared. It is not atomic with
// respect to concurrent operations on w.
func Init(w *Wide, v Word) {
	store(defaultBackend, w, v, Relaxed)
}

// Store atomically replaces the value of w with v.
func Store(w *Wide, v Word, o Order) {
	store(defaultBackend, w, v, o)
}

// Swap atomically replaces the value of w with v and returns the previous
// value.
func Swap(w *Wide, v Word, o Order) Word {
	return swap(defaultBackend, w, v, o)
}

// Add atomically adds delta to w, carrying from Lo into Hi, and returns the
// new value.
func Add(w *Wide, delta Word, o Order) Word {
	return add(defaultBackend, w, delta, o)
}

func compareAndSwap(b Backend, w *Wide, old, new Word, o Order) bool {
	return b.CompareExchange(w, &old, new, o, Relaxed)
}

func store(b Backend, w *Wide, v Word, o Order) {
	checkOrder(o)
	old := b.Load(w, Relaxed)
	for !b.CompareExchange(w, &old, v, o, Relaxed) {
	}
}

func swap(b Backend, w *Wide, v Word, o Order) Word {
	checkOrder(o)
	old := b.Load(w, Relaxed)
	for !b.CompareExchange(w, &old, v, o, Relaxed) {
	}
	return old
}

func add(b Backend, w *Wide, delta Word, o Order) Word {
	checkOrder(o)
	old := b.Load(w, Relaxed)
	for {
		n := addWords(old, delta)
		if b.CompareExchange(w, &old, n, o, Relaxed) {
			return n
		}
	}
}
