package wideatomic

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
)

// cmpxchg16b issues LOCK CMPXCHG16B on the 16-byte aligned pair at addr,
// with old in RDX:RAX and new in RCX:RBX, and returns RDX:RAX afterwards:
// old on success, the observed value on failure.
//
//go:noescape
func cmpxchg16b(addr *[2]uintptr, oldLo, oldHi, newLo, newHi uintptr) (lo, hi uintptr)

// casCX16 ignores the order: a locked instruction is a full barrier on
// x86, at least as strong as AcqRel.
func casCX16(p *[2]uintptr, old, new Word, _ Order) Word {
	lo, hi := cmpxchg16b(p, old.Lo, old.Hi, new.Lo, new.Hi)
	return Word{Lo: lo, Hi: hi}
}

func newArchBackend(kind Kind) (Backend, error) {
	if kind != KindCASPair {
		return nil, fmt.Errorf("%w: %v on amd64", ErrUnsupportedKind, kind)
	}
	if !cpuid.CPU.Supports(cpuid.CX16) {
		return nil, fmt.Errorf("%w: %v requires CMPXCHG16B", ErrUnsupportedCPU, kind)
	}
	return &nativeBackend{kind: KindCASPair, cas: casCX16}, nil
}
