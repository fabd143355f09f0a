package auth

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. 12 keeps offline brute force
// expensive at current hardware speeds.
const hashCost = 12

// HashPassword produces a salted bcrypt digest of the plaintext. The salt
// is embedded in the output, so verification needs no side channel.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether the plaintext matches the digest. The
// comparison is constant-time, and a malformed digest yields false rather
// than an error that could be mistaken for a match.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
