package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jayconrod.com/aesmodes/crypto"
)

func TestPad(t *testing.T) {
	for _, test := range []struct {
		src       string
		blockSize int
		want      string
	}{
		{"", 16, "\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10"},
		{"YELLOW SUBMARINE", 20, "YELLOW SUBMARINE\x04\x04\x04\x04"},
		{"YELLOW SUBMARINE", 16, "YELLOW SUBMARINE\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10\x10"},
		{"abc", 4, "abc\x01"},
		{"abcd", 1, "abcd\x01"},
	} {
		got := crypto.Pad(nil, []byte(test.src), test.blockSize)
		assert.Equal(t, test.want, string(got), "Pad(%q, %d)", test.src, test.blockSize)
	}
}

func TestPadAppends(t *testing.T) {
	dst := []byte("iv:")
	got := crypto.Pad(dst, []byte("abc"), 4)
	assert.Equal(t, "iv:abc\x01", string(got))

	// dst may share src's storage.
	buf := make([]byte, 5, 8)
	copy(buf, "hello")
	got = crypto.Pad(buf[:0], buf, 8)
	assert.Equal(t, "hello\x03\x03\x03", string(got))

	assert.Panics(t, func() { crypto.Pad(nil, nil, 0) })
	assert.Panics(t, func() { crypto.Pad(nil, nil, 256) })
}

func TestPadLength(t *testing.T) {
	assert.Equal(t, 16, crypto.PadLength(0, 16))
	assert.Equal(t, 16, crypto.PadLength(15, 16))
	assert.Equal(t, 32, crypto.PadLength(16, 16))
	assert.Equal(t, 32, crypto.PadLength(17, 16))
}

func TestUnpad(t *testing.T) {
	for _, test := range []struct {
		text string
		want string
		ok   bool
	}{
		{"", "", false},
		{"ICE ICE BABY\x04\x04\x04\x04", "ICE ICE BABY", true},
		{"ICE ICE BABY\x05\x05\x05\x05", "", false},
		{"ICE ICE BABY\x01\x02\x03\x04", "", false},
		{"ICE ICE BABY\x00", "", false},
		{"\x02", "", false},
		{"\x01", "", true},
		{"\x03\x03\x03", "", true},
		{"ICE ICE BABY\x04\x04\x04\x04\x01", "ICE ICE BABY\x04\x04\x04\x04", true},
	} {
		got, err := crypto.Unpad([]byte(test.text))
		if !test.ok {
			assert.Equal(t, crypto.ErrInvalidPadding, err, "Unpad(%q)", test.text)
			assert.Empty(t, got)
			continue
		}
		require.NoError(t, err, "Unpad(%q)", test.text)
		assert.Equal(t, test.want, string(got))
	}
}
