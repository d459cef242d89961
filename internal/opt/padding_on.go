//go:build !(386 || arm || mips || mipsle || wasm) && !wideatomic_disable_padding && !wideatomic_enable_padding

package opt

import (
	"unsafe"
)

const Padded_ = true

// Stripe_ is one sequence-lock stripe of the lock-based fallback.
// Padding is automatically enabled for 64-bit architectures, where the
// fallback is the default backend for riscv64, ppc64x, s390x, loong64 and
// mips64x and stripes are written by every compare-exchange.
type Stripe_ struct {
	Seq uintptr // Sequence, accessed atomically
	_   [(CacheLineSize_ - unsafe.Sizeof(struct {
		Seq uintptr
	}{})%CacheLineSize_) % CacheLineSize_]byte
}
