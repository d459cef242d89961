package wideatomic

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// Exclusive pair loops, one per (load, store) order. Each retries
// LDXP/LDAXP + STXP/STLXP until the store-conditional succeeds, writing
// back new when the loaded pair equals old and the loaded pair otherwise.
// They return the loaded pair of the successful attempt.

//go:noescape
func ldxpStxp(addr *[2]uintptr, oldLo, oldHi, newLo, newHi uintptr) (lo, hi uintptr)

//go:noescape
func ldaxpStxp(addr *[2]uintptr, oldLo, oldHi, newLo, newHi uintptr) (lo, hi uintptr)

//go:noescape
func ldxpStlxp(addr *[2]uintptr, oldLo, oldHi, newLo, newHi uintptr) (lo, hi uintptr)

//go:noescape
func ldaxpStlxp(addr *[2]uintptr, oldLo, oldHi, newLo, newHi uintptr) (lo, hi uintptr)

// Paired-register compare-and-swap: CASP, CASPA, CASPL, CASPAL with
// old/observed in x0:x1 and new in x2:x3.

//go:noescape
func casp(addr *[2]uintptr, oldLo, oldHi, newLo, newHi uintptr) (lo, hi uintptr)

//go:noescape
func caspa(addr *[2]uintptr, oldLo, oldHi, newLo, newHi uintptr) (lo, hi uintptr)

//go:noescape
func caspl(addr *[2]uintptr, oldLo, oldHi, newLo, newHi uintptr) (lo, hi uintptr)

//go:noescape
func caspal(addr *[2]uintptr, oldLo, oldHi, newLo, newHi uintptr) (lo, hi uintptr)

func casLLSC(p *[2]uintptr, old, new Word, o Order) Word {
	load, store := splitOrder(o)
	return exclusiveCompareExchange(p, old, new, load, store)
}

// exclusiveCompareExchange runs the exclusive loop whose load half has the
// order load and whose store half has the order store.
// An exclusive load is only Relaxed or Acquire and a conditional store is
// only Relaxed or Release; anything else panics.
func exclusiveCompareExchange(p *[2]uintptr, old, new Word, load, store Order) Word {
	var lo, hi uintptr
	switch {
	case load == Relaxed && store == Relaxed:
		lo, hi = ldxpStxp(p, old.Lo, old.Hi, new.Lo, new.Hi)
	case load == Acquire && store == Relaxed:
		lo, hi = ldaxpStxp(p, old.Lo, old.Hi, new.Lo, new.Hi)
	case load == Relaxed && store == Release:
		lo, hi = ldxpStlxp(p, old.Lo, old.Hi, new.Lo, new.Hi)
	case load == Acquire && store == Release:
		lo, hi = ldaxpStlxp(p, old.Lo, old.Hi, new.Lo, new.Hi)
	default:
		panic(fmt.Sprintf(
			"wideatomic: exclusive pair needs a Relaxed or Acquire load and a Relaxed or Release store, got %v/%v",
			load, store,
		))
	}
	return Word{Lo: lo, Hi: hi}
}

// casCASP maps the order directly to one instruction form; no split is
// needed because CASP is a single atomic access.
func casCASP(p *[2]uintptr, old, new Word, o Order) Word {
	var lo, hi uintptr
	switch o {
	case Relaxed:
		lo, hi = casp(p, old.Lo, old.Hi, new.Lo, new.Hi)
	case Acquire:
		lo, hi = caspa(p, old.Lo, old.Hi, new.Lo, new.Hi)
	case Release:
		lo, hi = caspl(p, old.Lo, old.Hi, new.Lo, new.Hi)
	case AcqRel:
		lo, hi = caspal(p, old.Lo, old.Hi, new.Lo, new.Hi)
	default:
		panic(fmt.Sprintf("wideatomic: invalid memory order %d", uint8(o)))
	}
	return Word{Lo: lo, Hi: hi}
}

func newArchBackend(kind Kind) (Backend, error) {
	switch kind {
	case KindLLSC:
		return &nativeBackend{kind: KindLLSC, cas: casLLSC}, nil
	case KindCASPair:
		if !cpu.ARM64.HasATOMICS {
			return nil, fmt.Errorf("%w: %v requires the LSE atomics extension", ErrUnsupportedCPU, kind)
		}
		return &nativeBackend{kind: KindCASPair, cas: casCASP}, nil
	}
	return nil, fmt.Errorf("%w: %v on arm64", ErrUnsupportedKind, kind)
}
