package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	for _, test := range []struct {
		format Format
		in     string
		want   string
	}{
		{Raw, "YELLOW SUBMARINE\n", "YELLOW SUBMARINE\n"},
		{Hex, "4943\n45\n", "ICE"},
		{Base64, "SUNF\nIElD\nRQ==\n", "ICE ICE"},
		{Base64, "", ""},
	} {
		got, err := test.format.Decode([]byte(test.in))
		require.NoError(t, err, "%s %q", test.format, test.in)
		assert.Equal(t, test.want, string(got))
	}

	_, err := Hex.Decode([]byte("zz"))
	assert.Error(t, err)
	_, err = Base64.Decode([]byte("!!!!"))
	assert.Error(t, err)
	_, err = Format("rot13").Decode(nil)
	assert.EqualError(t, err, `unknown format "rot13"`)
}

func TestEncode(t *testing.T) {
	for _, test := range []struct {
		format Format
		want   string
	}{
		{Raw, "ICE"},
		{Hex, "494345\n"},
		{Base64, "SUNF\n"},
	} {
		got, err := test.format.Encode([]byte("ICE"))
		require.NoError(t, err)
		assert.Equal(t, test.want, string(got), test.format)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("Base64")
	require.NoError(t, err)
	assert.Equal(t, Base64, f)
	_, err = ParseFormat("binary")
	assert.Error(t, err)
}
