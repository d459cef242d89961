package wideatomic

import (
	"fmt"
	"strings"
)

// Level reports how many wide operations are lock-free.
type Level uint8

const (
	// LockFreeNone means no operation is lock-free.
	LockFreeNone Level = iota
	// LockFreeSome means only the operations set in Ops are lock-free.
	LockFreeSome
	// LockFreeAll means every operation except OpInit is lock-free.
	LockFreeAll
)

func (l Level) String() string {
	switch l {
	case LockFreeNone:
		return "None"
	case LockFreeSome:
		return "Some"
	case LockFreeAll:
		return "All"
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// Ops is a set of wide operations.
type Ops uint16

const (
	// OpInit is never reported lock-free: Init is not atomic.
	OpInit Ops = 1 << iota
	OpLoad
	OpStore
	OpSwap
	OpAdd
	OpCAS
)

// lockFreeOps is the set reported by a lock-free backend.
const lockFreeOps = OpLoad | OpStore | OpSwap | OpAdd | OpCAS

// Has reports whether all of op is in s.
//
//go:nosplit
func (s Ops) Has(op Ops) bool {
	return s&op == op
}

func (s Ops) String() string {
	if s == 0 {
		return "[]"
	}
	names := [...]string{"Init", "Load", "Store", "Swap", "Add", "CAS"}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, name := range names {
		if s&(1<<i) == 0 {
			continue
		}
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
	}
	sb.WriteByte(']')
	return sb.String()
}

// reportLockFree clears *ops, fills it when every operation is lock-free
// and returns the matching level. ops may be nil.
//
//go:nosplit
func reportLockFree(all bool, ops *Ops) Level {
	if ops != nil {
		*ops = 0
	}
	if !all {
		return LockFreeNone
	}
	if ops != nil {
		*ops = lockFreeOps
	}
	return LockFreeAll
}

// IsLockFree reports whether the default backend is lock-free.
//
// It performs no memory access on any Wide and may be called before any
// concurrent use. ops may be nil; when it is not, it is overwritten with the
// set of lock-free operations. The level does not depend on ops.
func IsLockFree(ops *Ops) Level {
	return defaultBackend.LockFree(ops)
}
