package crypto

import "fmt"

// XOR stores x XOR y in buf, which is reallocated if it is too small, and
// returns it. x and y must have the same length.
func XOR(buf, x, y []byte) []byte {
	if len(x) != len(y) {
		panic(fmt.Sprintf("buffers have different length: len(x) = %d, len(y) = %d", len(x), len(y)))
	}
	n := len(x)
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	for i := range x {
		buf[i] = x[i] ^ y[i]
	}
	return buf
}

// XORRepeat is like XOR, but y is repeated to cover x. y must be non-empty
// and no longer than x.
func XORRepeat(buf, x, y []byte) []byte {
	if len(y) == 0 || len(y) > len(x) {
		panic(fmt.Sprintf("key must be non-empty and no longer than input: len(x) = %d, len(y) = %d", len(x), len(y)))
	}
	n := len(x)
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	for i, b := range x {
		buf[i] = b ^ y[i%len(y)]
	}
	return buf
}
