package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword renders the fleet's password digest: sha256 hex, matching
// the seeded credential data. There is deliberately no salt or work
// factor here; the stored format predates this service and changing it is
// a data migration, not a code change.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// hashEqual compares two digests in constant time so a password probe
// cannot learn prefix lengths from response timing.
func hashEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
