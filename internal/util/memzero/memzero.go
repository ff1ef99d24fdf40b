// Package memzero provides best-effort wiping of sensitive byte slices.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros. The write goes through
// subtle.ConstantTimeCopy so it does not branch on the contents, and the
// function is kept out of line so the compiler cannot elide the stores.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(&b)
}
