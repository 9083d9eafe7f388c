package crypto

import "runtime"

// Wipe zeroes b in place. It is best-effort: copies the runtime made
// earlier (for example by string conversion) are not reached.
//
//go:noinline
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(&b)
}
