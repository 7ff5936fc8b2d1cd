// pkg/auth/password.go
package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost matches the provisioning script's 12 rounds.
const BcryptCost = 12

func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches digest. A malformed
// digest is just a non-match, never an error.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
