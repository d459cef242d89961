//go:build race

package opt

import (
	"runtime"
	"unsafe"
)

// Race_ reports that the race detector is active. Wide operations executed
// in assembly are invisible to it, so callers annotate their ordering here.
const Race_ = true

// RaceAcquire records an acquire on addr, pairing with an earlier
// RaceReleaseMerge on the same address.
//
//go:nosplit
func RaceAcquire(addr unsafe.Pointer) {
	runtime.RaceAcquire(addr)
}

// RaceReleaseMerge records a release on addr without discarding earlier
// releases, so every writer of a wide word is ordered before later acquirers.
//
//go:nosplit
func RaceReleaseMerge(addr unsafe.Pointer) {
	runtime.RaceReleaseMerge(addr)
}
