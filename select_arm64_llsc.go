//go:build arm64 && !wideatomic_casp && !arm64.v8.1 && !wideatomic_locked

package wideatomic

// defaultKind selects the exclusive pair loop, which every ARMv8.0 core
// implements.
const defaultKind = KindLLSC
