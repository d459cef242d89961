//go:build wideatomic_locked || !(amd64 || arm64 || 386 || arm || mips || mipsle)

package wideatomic

// defaultKind falls back to striped sequence locks where no hand-written
// backend exists, or when forced.
// Use: go build -tags=wideatomic_locked
const defaultKind = KindLocked
