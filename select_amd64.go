//go:build !wideatomic_locked

package wideatomic

const defaultKind = KindCASPair
