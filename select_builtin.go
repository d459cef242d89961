//go:build (386 || arm || mips || mipsle) && !wideatomic_locked

package wideatomic

const defaultKind = KindBuiltin
