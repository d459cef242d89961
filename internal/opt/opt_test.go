package opt

import (
	"sync"
	"testing"
	"unsafe"
)

func TestStripeSize(t *testing.T) {
	size := unsafe.Sizeof(Stripe_{})
	t.Logf("CacheLineSize_: %d, Stripe_: %d, Padded_: %v", CacheLineSize_, size, Padded_)
	if Padded_ {
		if size%CacheLineSize_ != 0 {
			t.Fatalf("padded stripe size %d is not a multiple of %d", size, CacheLineSize_)
		}
		return
	}
	if size != unsafe.Sizeof(uintptr(0)) {
		t.Fatalf("unpadded stripe size = %d, want %d", size, unsafe.Sizeof(uintptr(0)))
	}
}

func TestRaceHooks(t *testing.T) {
	var flag uintptr
	var payload int
	var mu sync.Mutex
	done := make(chan struct{})

	go func() {
		payload = 42
		RaceReleaseMerge(unsafe.Pointer(&flag))
		mu.Lock()
		flag = 1
		mu.Unlock()
		close(done)
	}()

	<-done
	RaceAcquire(unsafe.Pointer(&flag))
	mu.Lock()
	f := flag
	mu.Unlock()
	if f != 1 || payload != 42 {
		t.Fatalf("flag=%d payload=%d", f, payload)
	}
}
