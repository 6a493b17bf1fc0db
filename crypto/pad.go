package crypto

import (
	"errors"
	"fmt"
)

// ErrInvalidPadding is returned when a buffer does not end in valid PKCS#7
// padding. It is the only error Unpad returns; callers that build padding
// oracles branch on it and nothing else.
var ErrInvalidPadding = errors.New("invalid padding")

// Pad appends src to dst followed by PKCS#7 padding for the given block size
// and returns the extended buffer. At least one byte of padding is always
// added, so a message whose length is already a multiple of blockSize gets a
// full block. dst may be src[:0].
func Pad(dst, src []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 255 {
		panic(fmt.Sprintf("block size must be in [1, 255]: block size = %d", blockSize))
	}
	n := blockSize - len(src)%blockSize
	dst = append(dst, src...)
	for i := 0; i < n; i++ {
		dst = append(dst, byte(n))
	}
	return dst
}

// PadLength returns the length of an n-byte message after padding.
func PadLength(n, blockSize int) int {
	return n + blockSize - n%blockSize
}

// Unpad checks the PKCS#7 padding at the end of buf and returns buf with the
// padding removed. The check returns at the first bad byte.
func Unpad(buf []byte) ([]byte, error) {
	if len(buf) == 0 {
		return nil, ErrInvalidPadding
	}
	n := int(buf[len(buf)-1])
	if n == 0 || n > len(buf) {
		return nil, ErrInvalidPadding
	}
	for _, b := range buf[len(buf)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return buf[:len(buf)-n], nil
}
