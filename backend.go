package wideatomic

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/llxisdsh/wideatomic/internal/opt"
)

// Kind identifies a backend strategy.
type Kind uint8

const (
	// KindLocked emulates wide atomics with striped sequence locks.
	// It is available everywhere and is not lock-free.
	KindLocked Kind = iota
	// KindBuiltin delegates to the toolchain's double-word atomics
	// (sync/atomic 64-bit operations on 32-bit targets).
	KindBuiltin
	// KindLLSC retries an exclusive load / store-conditional pair
	// (LDXP/STXP on arm64).
	KindLLSC
	// KindCASPair issues a single paired-register compare-and-swap
	// (CMPXCHG16B on amd64, CASP on arm64 with LSE).
	KindCASPair

	numKinds
)

var kindNames = [numKinds]string{
	KindLocked:  "Locked",
	KindBuiltin: "Builtin",
	KindLLSC:    "LLSC",
	KindCASPair: "CASPair",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

var (
	// ErrUnsupportedKind is returned for a backend that is not built for the
	// target architecture.
	ErrUnsupportedKind = errors.New("wideatomic: backend not built for this architecture")
	// ErrUnsupportedCPU is returned for a backend that is built, but whose
	// instructions the running CPU does not implement.
	ErrUnsupportedCPU = errors.New("wideatomic: backend not supported by this CPU")
)

// Backend implements the wide atomic primitives for one strategy.
//
// All backends share one contract: Load never observes a torn value,
// CompareExchange is strong and always stores the observed value into
// *expected, and LockFree depends only on the strategy.
// Invalid orders panic.
type Backend interface {
	Kind() Kind
	Load(w *Wide, o Order) Word
	CompareExchange(w *Wide, expected *Word, desired Word, success, failure Order) bool
	LockFree(ops *Ops) Level
}

// NewBackend returns the backend of the given kind.
//
// It fails with ErrUnsupportedKind when the kind is not built for this
// architecture and with ErrUnsupportedCPU when the CPU lacks the required
// instructions. A Wide must be accessed through a single backend for its
// whole life.
func NewBackend(kind Kind) (Backend, error) {
	switch kind {
	case KindLocked:
		return lockedBackend{}, nil
	case KindBuiltin, KindLLSC, KindCASPair:
		return newArchBackend(kind)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, kind)
}

// Available returns the kinds NewBackend can construct on this build and CPU.
func Available() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := range numKinds {
		if _, err := NewBackend(k); err == nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// DefaultKind returns the kind of the default backend: the one selected for
// this build, or the next weaker kind the CPU supports (KindLLSC for CASPair
// on arm64 without LSE, KindLocked otherwise).
func DefaultKind() Kind {
	return defaultBackend.Kind()
}

// Default returns the backend used by the package-level operations.
func Default() Backend {
	return defaultBackend
}

var defaultBackend = newDefaultBackend(defaultKind, NewBackend)

// newDefaultBackend returns the backend of kind, or the strongest weaker kind
// the CPU supports: kinds are declared from weakest to strongest, and
// KindLocked always builds.
func newDefaultBackend(kind Kind, build func(Kind) (Backend, error)) Backend {
	for k := kind; k > KindLocked; k-- {
		if b, err := build(k); err == nil {
			return b
		}
	}
	return lockedBackend{}
}

// casFunc performs one strong compare-and-exchange of the aligned pair at p
// with the success order o and returns the value observed there.
// The exchange succeeded iff the result equals old.
type casFunc func(p *[2]uintptr, old, new Word, o Order) Word

// nativeBackend is shared by the assembly strategies. They differ only in
// the casFunc; the self-compare load is common to all of them.
type nativeBackend struct {
	kind Kind
	cas  casFunc
}

func (b *nativeBackend) Kind() Kind {
	return b.kind
}

func (b *nativeBackend) CompareExchange(
	w *Wide,
	expected *Word,
	desired Word,
	success, failure Order,
) bool {
	checkOrders(success, failure)
	p := w.addr()
	if opt.Race_ && hasRelease(success) {
		opt.RaceReleaseMerge(unsafe.Pointer(p))
	}
	exp := *expected
	old := b.cas(p, exp, desired, success)
	if opt.Race_ && hasAcquire(success) {
		opt.RaceAcquire(unsafe.Pointer(p))
	}
	*expected = old
	return old == exp
}

// Load reads a candidate, which may be torn, and compare-exchanges it with
// itself. Either the exchange succeeds and writes the candidate back
// unchanged, or it fails and reports the atomically observed value; both
// leave the result in candidate.
func (b *nativeBackend) Load(w *Wide, o Order) Word {
	candidate := loadHalves(w.addr())
	b.CompareExchange(w, &candidate, candidate, o, Relaxed)
	return candidate
}

func (b *nativeBackend) LockFree(ops *Ops) Level {
	return reportLockFree(true, ops)
}
