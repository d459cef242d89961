//go:build wideatomic_disable_padding

package opt

const Padded_ = false

// Stripe_ is one sequence-lock stripe of the lock-based fallback.
// Padding is force-disabled via the wideatomic_disable_padding build tag.
// Use: go build -tags=wideatomic_disable_padding
type Stripe_ struct {
	Seq uintptr // Sequence, accessed atomically
}
