//go:build arm64 && (wideatomic_casp || arm64.v8.1) && !wideatomic_locked

package wideatomic

// defaultKind selects CASP when the build targets ARMv8.1 or later.
// Use: go build -tags=wideatomic_casp, or GOARM64=v8.1
const defaultKind = KindCASPair
