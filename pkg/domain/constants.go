package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Field constants for JSON standardization across adapters.
const (
	KeyMap        = "map"
	KeyLetters    = "letters"
	KeyCharacters = "characters"
)

// MapKey derives the deterministic cache key for a raw map.
// Identical maps always walk the same way, so results can be shared by key.
func MapKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
