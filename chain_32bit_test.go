//go:build 386 || arm || mips || mipsle

package wideatomic

import (
	"cmp"
	"slices"
	"testing"
)

// checkChainStarts verifies that the starting links of all successful
// exchanges are distinct chain links covering [0, total).
func checkChainStarts(t *testing.T, starts [][]Word, total int) {
	t.Helper()
	all := slices.Concat(starts...)
	if len(all) != total {
		t.Fatalf("%d successful exchanges, want %d", len(all), total)
	}
	slices.SortFunc(all, func(a, b Word) int { return cmp.Compare(a.Lo, b.Lo) })
	for i, k := range all {
		if k != chainLink(uintptr(i)) {
			t.Fatalf("starting link %d is %v, want %v", i, k, chainLink(uintptr(i)))
		}
	}
}
