package auth

import "crypto/subtle"

// VerifyApiKey compares the caller-supplied key against the configured
// one in constant time.
func VerifyApiKey(provided, expected string) bool {
	if expected == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}
