//go:build !(386 || arm || mips || mipsle)

package wideatomic

import (
	"testing"

	"github.com/llxisdsh/pb"
)

// checkChainStarts verifies that the starting links of all successful
// exchanges are distinct chain links covering [0, total).
func checkChainStarts(t *testing.T, starts [][]Word, total int) {
	t.Helper()
	var seen pb.MapOf[Word, int]
	for id, mine := range starts {
		for _, cur := range mine {
			prev, dup := seen.ProcessEntry(cur, func(e *pb.EntryOf[Word, int]) (*pb.EntryOf[Word, int], int, bool) {
				if e != nil {
					return e, e.Value, true
				}
				return &pb.EntryOf[Word, int]{Value: id}, id, false
			})
			if dup {
				t.Fatalf("goroutines %d and %d both exchanged from %v", prev, id, cur)
			}
		}
	}
	if n := seen.Size(); n != total {
		t.Fatalf("%d distinct starting links, want %d", n, total)
	}
	seen.Range(func(k Word, _ int) bool {
		if k.Lo >= uintptr(total) || k != chainLink(k.Lo) {
			t.Errorf("unexpected starting link %v", k)
			return false
		}
		return true
	})
}
