package wideatomic

import (
	"testing"

	"github.com/klauspost/cpuid/v2"
)

func TestCMPXCHG16B(t *testing.T) {
	if !cpuid.CPU.Supports(cpuid.CX16) {
		t.Skip("CPU lacks CMPXCHG16B")
	}
	var w Wide
	p := w.addr()
	hi := uintptr(1) << 63
	if lo, h := cmpxchg16b(p, 0, 0, 7, hi); lo != 0 || h != 0 {
		t.Fatalf("observed {%#x %#x} on success", lo, h)
	}
	if lo, h := cmpxchg16b(p, 7, 0, 0, 0); lo != 7 || h != hi {
		t.Fatalf("observed {%#x %#x} on failure", lo, h)
	}
	if got := loadHalves(p); got != (Word{Lo: 7, Hi: hi}) {
		t.Fatalf("failed exchange changed the value to %v", got)
	}
}
