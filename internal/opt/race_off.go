//go:build !race

package opt

import "unsafe"

const Race_ = false

// RaceAcquire is a no-op without the race detector.
//
//go:nosplit
func RaceAcquire(_ unsafe.Pointer) {}

// RaceReleaseMerge is a no-op without the race detector.
//
//go:nosplit
func RaceReleaseMerge(_ unsafe.Pointer) {}
