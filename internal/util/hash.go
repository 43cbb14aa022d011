package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

func SHA256Hex(b []byte) string {
	x := sha256.Sum256(b)
	return hex.EncodeToString(x[:])
}

// HashParts hashes the parts joined by "|".
func HashParts(parts ...string) string {
	return SHA256Hex([]byte(strings.Join(parts, "|")))
}
