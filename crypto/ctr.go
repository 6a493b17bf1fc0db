package crypto

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
)

type CTRStream struct {
	block cipher.Block

	// in is the next block that, when encrypted, becomes the keystream.
	// The first NonceSize bytes hold the nonce and the rest hold a
	// little-endian block counter starting at zero.
	in []byte

	// out is the next keystream block.
	out []byte

	// off is the number of bytes in out that have been consumed.
	off int
}

// NewCTR returns a stream that XORs data with the keystream
// AES(nonce || le64(0)), AES(nonce || le64(1)), and so on. Encryption and
// decryption are the same operation.
func NewCTR(block cipher.Block, nonce []byte) *CTRStream {
	bs := block.BlockSize()
	if bs != 16 {
		panic(fmt.Sprintf("block.BlockSize() is %d; must be 16", bs))
	}
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("len(nonce) is %d; must be %d", len(nonce), NonceSize))
	}
	in := make([]byte, bs)
	copy(in, nonce)
	cs := &CTRStream{
		block: block,
		in:    in,
		out:   make([]byte, bs),
		off:   0,
	}
	cs.block.Encrypt(cs.out, cs.in)
	return cs
}

func (cs *CTRStream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("len(dst) (%d) less than len(src) (%d)", len(dst), len(src)))
	}

	bs := len(cs.in)
	for len(src) > 0 {
		if cs.off == bs {
			cs.next()
		}
		n := bs - cs.off
		if len(src) < n {
			n = len(src)
		}
		XOR(dst[:n], src[:n], cs.out[cs.off:cs.off+n])
		dst = dst[n:]
		src = src[n:]
		cs.off += n
	}
}

// Seek skips offset bytes of keystream.
func (cs *CTRStream) Seek(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("cannot seek backward with offset %d", offset))
	}
	bs := len(cs.in)
	if offset <= bs-cs.off {
		cs.off += offset
		return
	}
	if cs.off > 0 {
		offset -= bs - cs.off
		cs.add(1)
		cs.off = 0
	}
	cs.add(uint64(offset / bs))
	cs.off = offset % bs
	cs.block.Encrypt(cs.out, cs.in)
}

func (cs *CTRStream) next() {
	cs.add(1)
	cs.off = 0
	cs.block.Encrypt(cs.out, cs.in)
}

// add advances the counter by n blocks. The counter wraps without carrying
// into the nonce.
func (cs *CTRStream) add(n uint64) {
	ctr := cs.in[NonceSize:]
	binary.LittleEndian.PutUint64(ctr, binary.LittleEndian.Uint64(ctr)+n)
}
