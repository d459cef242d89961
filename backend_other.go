//go:build !amd64 && !arm64 && !386 && !arm && !mips && !mipsle

package wideatomic

import (
	"fmt"
	"runtime"
)

func newArchBackend(kind Kind) (Backend, error) {
	return nil, fmt.Errorf("%w: %v on %s", ErrUnsupportedKind, kind, runtime.GOARCH)
}
