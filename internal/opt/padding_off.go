//go:build (386 || arm || mips || mipsle || wasm) && !wideatomic_disable_padding && !wideatomic_enable_padding

package opt

const Padded_ = false

// Stripe_ is one sequence-lock stripe of the lock-based fallback.
// Padding is disabled by default for 32-bit architectures
// (386, arm, mips, mipsle, wasm): smaller cache lines, tighter memory.
type Stripe_ struct {
	Seq uintptr // Sequence, accessed atomically
}
