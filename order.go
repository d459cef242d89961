package wideatomic

import "fmt"

// Order is the memory ordering requested of a wide atomic operation.
//
// Sequential consistency has no separate constant; request AcqRel.
type Order uint8

const (
	// Relaxed imposes no ordering beyond the atomicity of the operation.
	Relaxed Order = iota
	// Acquire orders later memory accesses after the read half.
	Acquire
	// Release orders earlier memory accesses before the write half.
	Release
	// AcqRel combines Acquire and Release.
	AcqRel

	numOrders
)

var orderNames = [numOrders]string{
	Relaxed: "Relaxed",
	Acquire: "Acquire",
	Release: "Release",
	AcqRel:  "AcqRel",
}

// String returns the name of the ordering.
func (o Order) String() string {
	if o < numOrders {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// Valid reports whether o is one of the four defined orderings.
//
//go:nosplit
func (o Order) Valid() bool {
	return o < numOrders
}

// splitOrder maps the order requested of a retry loop to the order of its
// exclusive load and the order of its conditional store.
//
//	load  = Acquire if o in {Acquire, AcqRel} else Relaxed
//	store = Release if o in {Release, AcqRel} else Relaxed
//
// The mapping must stay exact: a weaker result breaks callers, a stronger
// one only costs cycles.
//
//go:nosplit
func splitOrder(o Order) (load, store Order) {
	load, store = Relaxed, Relaxed
	if hasAcquire(o) {
		load = Acquire
	}
	if hasRelease(o) {
		store = Release
	}
	return load, store
}

// hasAcquire reports whether the read half of o is Acquire.
//
//go:nosplit
func hasAcquire(o Order) bool {
	return o == Acquire || o == AcqRel
}

// hasRelease reports whether the write half of o is Release.
//
//go:nosplit
func hasRelease(o Order) bool {
	return o == Release || o == AcqRel
}

func checkOrder(o Order) {
	if !o.Valid() {
		panic(fmt.Sprintf("wideatomic: invalid memory order %d", uint8(o)))
	}
}

func checkOrders(success, failure Order) {
	checkOrder(success)
	checkOrder(failure)
}
