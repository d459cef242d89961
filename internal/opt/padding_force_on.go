//go:build wideatomic_enable_padding && !wideatomic_disable_padding

package opt

import (
	"unsafe"
)

const Padded_ = true

// Stripe_ is one sequence-lock stripe of the lock-based fallback.
// Padding is force-enabled via the wideatomic_enable_padding build tag.
// Use: go build -tags=wideatomic_enable_padding
type Stripe_ struct {
	Seq uintptr // Sequence, accessed atomically
	_   [(CacheLineSize_ - unsafe.Sizeof(struct {
		Seq uintptr
	}{})%CacheLineSize_) % CacheLineSize_]byte
}
