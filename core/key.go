package core

import "strings"

// Key identifies one of the five rhythm input classes
type Key uint8

const (
	KeyNone       Key = iota
	K1                // Directional drum 1
	K2                // Directional drum 2
	K3                // Directional drum 3
	K4                // Directional drum 4
	KeyTerminator     // Closing drum, mandatory in the last slot
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:       "none",
	K1:            "k1",
	K2:            "k2",
	K3:            "k3",
	K4:            "k4",
	KeyTerminator: "terminator",
}

// String returns the canonical lowercase name used in config files
func (k Key) String() string {
	if k >= KeyCount {
		return "invalid"
	}
	return keyNames[k]
}

// IsDirectional reports whether the key may occupy the first three slots
func (k Key) IsDirectional() bool {
	return k >= K1 && k <= K4
}

// IsTerminator reports whether the key closes a sequence
func (k Key) IsTerminator() bool {
	return k == KeyTerminator
}

// ParseKey resolves a config name to a Key, case-insensitive
func ParseKey(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := K1; k < KeyCount; k++ {
		if keyNames[k] == name {
			return k, true
		}
	}
	return KeyNone, false
}
