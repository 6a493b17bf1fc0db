package crypto

import (
	"fmt"
)

// Encrypt encrypts pt with AES-128 under key in the given mode.
//
// ECB and CBC pad pt with PKCS#7 first, so the result is always a non-empty
// multiple of BlockSize. CTR does not pad; the result has the same length
// as pt.
//
// A nil iv means the all-zero block. CBC uses iv as the initial chaining
// block. CTR uses the first NonceSize bytes of iv as the nonce, and also
// accepts a NonceSize-byte iv. ECB ignores iv. Encrypt panics if key or iv
// has the wrong length.
func Encrypt(pt, key, iv []byte, mode Mode) []byte {
	c := newCipher(key)
	switch mode {
	case ECB:
		checkIV(iv)
		buf := Pad(make([]byte, 0, PadLength(len(pt), BlockSize)), pt, BlockSize)
		NewECBEncrypter(c).CryptBlocks(buf, buf)
		return buf

	case CBC:
		buf := Pad(make([]byte, 0, PadLength(len(pt), BlockSize)), pt, BlockSize)
		NewCBCEncrypter(c, chainIV(iv)).CryptBlocks(buf, buf)
		return buf

	case CTR:
		buf := make([]byte, len(pt))
		NewCTR(c, ctrNonce(iv)).XORKeyStream(buf, pt)
		return buf

	default:
		panic(fmt.Sprintf("unknown mode %v", mode))
	}
}

// Decrypt reverses Encrypt.
//
// For ECB and CBC, the padding is checked and removed. If it is not valid,
// Decrypt returns a zero-length result and ErrInvalidPadding; no other
// error is ever returned. Decrypt panics if ct is not a multiple of
// BlockSize. An empty ct has no padding to strip and is reported as
// invalid. CTR never fails.
func Decrypt(ct, key, iv []byte, mode Mode) ([]byte, error) {
	c := newCipher(key)
	switch mode {
	case ECB:
		checkIV(iv)
		buf := make([]byte, len(ct))
		NewECBDecrypter(c).CryptBlocks(buf, ct)
		return unpad(buf)

	case CBC:
		buf := make([]byte, len(ct))
		NewCBCDecrypter(c, chainIV(iv)).CryptBlocks(buf, ct)
		return unpad(buf)

	case CTR:
		buf := make([]byte, len(ct))
		NewCTR(c, ctrNonce(iv)).XORKeyStream(buf, ct)
		return buf, nil

	default:
		panic(fmt.Sprintf("unknown mode %v", mode))
	}
}

// PaddingOK reports whether ct decrypts to a message with valid padding.
// This is the padding oracle exposed to attackers; it reveals nothing
// beyond a single bit.
func PaddingOK(ct, key, iv []byte, mode Mode) bool {
	_, err := Decrypt(ct, key, iv, mode)
	return err == nil
}

// Edit returns a CTR ciphertext whose plaintext is that of ct with newText
// written at offset. Plaintext after offset+len(newText) is kept, and the
// buffer grows if newText runs past its end. The result is produced by
// decrypting ct, editing the plaintext and encrypting it again under the
// same key and nonce.
func Edit(ct, key, nonce []byte, offset int, newText []byte) []byte {
	if offset < 0 || offset > len(ct) {
		panic(fmt.Sprintf("edit offset out of range: offset = %d, len(ct) = %d", offset, len(ct)))
	}
	// CTR decryption is encryption.
	pt := Encrypt(ct, key, nonce, CTR)
	if end := offset + len(newText); end > len(pt) {
		pt = append(pt, make([]byte, end-len(pt))...)
	}
	copy(pt[offset:], newText)
	return Encrypt(pt, key, nonce, CTR)
}

// CBCMAC returns the last ciphertext block of the CBC encryption of msg.
func CBCMAC(msg, key, iv []byte) []byte {
	ct := Encrypt(msg, key, iv, CBC)
	return ct[len(ct)-BlockSize:]
}

func unpad(buf []byte) ([]byte, error) {
	pt, err := Unpad(buf)
	if err != nil {
		return []byte{}, err
	}
	return pt, nil
}

func checkIV(iv []byte) {
	if iv != nil && len(iv) != BlockSize {
		panic(fmt.Sprintf("iv length is not block size: len(iv) = %d, block size = %d", len(iv), BlockSize))
	}
}

func chainIV(iv []byte) []byte {
	checkIV(iv)
	if iv == nil {
		return make([]byte, BlockSize)
	}
	return iv
}

func ctrNonce(iv []byte) []byte {
	switch {
	case iv == nil:
		return make([]byte, NonceSize)
	case len(iv) == NonceSize:
		return iv
	case len(iv) == BlockSize:
		return iv[:NonceSize]
	default:
		panic(fmt.Sprintf("nonce length must be %d or %d: len(iv) = %d", NonceSize, BlockSize, len(iv)))
	}
}
