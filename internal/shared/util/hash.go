package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText returns a stable hex digest of resume text, used to key
// validation-run records without storing the raw text.
func HashText(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
