package crypto

import (
	"fmt"
	"strings"
)

// Mode selects how Encrypt and Decrypt chain blocks together.
type Mode int

const (
	// ECB encrypts each block independently.
	ECB Mode = iota

	// CBC XORs each plaintext block with the previous ciphertext block
	// before encrypting it.
	CBC

	// CTR XORs the input with a keystream of encrypted counter blocks.
	// No padding is used.
	CTR
)

var modeNames = [...]string{
	ECB: "ECB",
	CBC: "CBC",
	CTR: "CTR",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode returns the mode with the given name, ignoring case.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("unknown mode %d", int(m))
	}
	return []byte(modeNames[m]), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
