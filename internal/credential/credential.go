// Package credential hashes and checks the administrator password.
//
// The digest is an unsalted SHA-256, base64 encoded. It is only suitable for a
// single operator credential supplied through configuration.
package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// Verifier checks plaintext passwords against stored digests.
type Verifier struct{}

// NewVerifier creates a Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Hash returns the digest stored in configuration for password.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Verify reports whether candidate hashes to storedDigest.
func (v *Verifier) Verify(candidate, storedDigest string) bool {
	if storedDigest == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(Hash(candidate)), []byte(storedDigest)) == 1
}
