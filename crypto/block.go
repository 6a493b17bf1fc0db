package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = aes.BlockSize

	// KeySize is the AES-128 key size in bytes.
	KeySize = 16

	// NonceSize is the length of the nonce prefix of a CTR counter block.
	// The remaining bytes hold a little-endian block counter.
	NonceSize = 8
)

// EncryptBlock encrypts a single block with AES-128.
func EncryptBlock(key []byte, b [BlockSize]byte) [BlockSize]byte {
	var out [BlockSize]byte
	newCipher(key).Encrypt(out[:], b[:])
	return out
}

// DecryptBlock decrypts a single block with AES-128.
func DecryptBlock(key []byte, b [BlockSize]byte) [BlockSize]byte {
	var out [BlockSize]byte
	newCipher(key).Decrypt(out[:], b[:])
	return out
}

func newCipher(key []byte) cipher.Block {
	if len(key) != KeySize {
		panic(fmt.Sprintf("key length is not %d: len(key) = %d", KeySize, len(key)))
	}
	c, err := aes.NewCipher(key)
	if err != nil {
		panic(fmt.Sprintf("aes.NewCipher() failed: %v", err))
	}
	return c
}
