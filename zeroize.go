package ecc

import "runtime"

// ZeroizeBytes overwrites buf with zeros. runtime.KeepAlive keeps the
// stores from being eliminated (golang/go#33325); copies made elsewhere by
// the runtime are out of reach.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
