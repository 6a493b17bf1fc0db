package crypto

import (
	"crypto/cipher"
	"fmt"
)

// ecbCrypter applies one block function to each block independently.
type ecbCrypter struct {
	blockSize int
	crypt     func(dst, src []byte)
}

// NewECBEncrypter returns a BlockMode that encrypts each block of src with c.
// No state carries between blocks or between calls.
func NewECBEncrypter(c cipher.Block) cipher.BlockMode {
	return &ecbCrypter{
		blockSize: c.BlockSize(),
		crypt:     c.Encrypt,
	}
}

// NewECBDecrypter is the inverse of NewECBEncrypter.
func NewECBDecrypter(c cipher.Block) cipher.BlockMode {
	return &ecbCrypter{
		blockSize: c.BlockSize(),
		crypt:     c.Decrypt,
	}
}

func (cr *ecbCrypter) BlockSize() int {
	return cr.blockSize
}

func (cr *ecbCrypter) CryptBlocks(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	n := len(src)
	bs := cr.blockSize
	if n%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", n, bs))
	}

	for i := 0; i < n; i += bs {
		cr.crypt(dst[i:i+bs], src[i:i+bs])
	}
}

// DetectECB reports whether any 16-byte block of ct repeats. Under ECB,
// identical plaintext blocks encrypt to identical ciphertext blocks.
func DetectECB(ct []byte) bool {
	return RepeatedBlock(ct, BlockSize) >= 0
}

// RepeatedBlock returns the offset of the first bs-byte block of ct that
// appears again later in ct, or -1 if every block is distinct. Attacks use
// the offset to find where attacker-controlled blocks landed.
func RepeatedBlock(ct []byte, bs int) int {
	if bs <= 0 || len(ct)%bs != 0 {
		panic(fmt.Sprintf("ciphertext length (%d) not a multiple of block size %d", len(ct), bs))
	}
	seen := make(map[string]int)
	s := string(ct)
	for i := 0; i < len(ct); i += bs {
		b := s[i : i+bs]
		if j, ok := seen[b]; ok {
			return j
		}
		seen[b] = i
	}
	return -1
}
