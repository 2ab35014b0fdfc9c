package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest. Two calls with the same
// plaintext yield different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored digest. A
// malformed digest counts as a mismatch rather than an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
