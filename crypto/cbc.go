package crypto

import (
	"crypto/cipher"
	"fmt"
)

type cbcEncrypter struct {
	c cipher.Block

	// prev is the previous ciphertext block, initially the iv.
	prev []byte
}

func NewCBCEncrypter(c cipher.Block, iv []byte) cipher.BlockMode {
	if len(iv) != c.BlockSize() {
		panic(fmt.Sprintf("iv length is not block size: len(iv) = %d, block size = %d", len(iv), c.BlockSize()))
	}
	return &cbcEncrypter{
		c:    c,
		prev: append([]byte(nil), iv...),
	}
}

func (cr *cbcEncrypter) BlockSize() int {
	return cr.c.BlockSize()
}

func (cr *cbcEncrypter) CryptBlocks(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	n := len(src)
	bs := cr.c.BlockSize()
	if n%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", len(src), bs))
	}

	tmp := make([]byte, bs)
	for i := 0; i < n; i += bs {
		XOR(tmp, src[i:i+bs], cr.prev)
		db := dst[i : i+bs]
		cr.c.Encrypt(db, tmp)
		copy(cr.prev, db)
	}
}

type cbcDecrypter struct {
	c    cipher.Block
	prev []byte
}

func NewCBCDecrypter(c cipher.Block, iv []byte) cipher.BlockMode {
	if len(iv) != c.BlockSize() {
		panic(fmt.Sprintf("iv length is not block size: len(iv) = %d, block size = %d", len(iv), c.BlockSize()))
	}
	return &cbcDecrypter{
		c:    c,
		prev: append([]byte(nil), iv...),
	}
}

func (cr *cbcDecrypter) BlockSize() int {
	return cr.c.BlockSize()
}

func (cr *cbcDecrypter) CryptBlocks(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	n := len(src)
	bs := cr.c.BlockSize()
	if n%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", len(src), bs))
	}

	// The ciphertext block is saved before dst is written, so dst and src
	// may be the same buffer.
	dec := make([]byte, bs)
	next := make([]byte, bs)
	for i := 0; i < n; i += bs {
		sb := src[i : i+bs]
		copy(next, sb)
		cr.c.Decrypt(dec, sb)
		XOR(dst[i:i+bs], dec, cr.prev)
		cr.prev, next = next, cr.prev
	}
}
