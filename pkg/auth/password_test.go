// pkg/auth/password_test.go
package auth

import "testing"

func TestHashPassword_RandomSalt(t *testing.T) {
	a, err := HashPassword("securepass")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	b, err := HashPassword("securepass")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical; salt is not random")
	}
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("securepass")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	if !CheckPassword("securepass", digest) {
		t.Error("CheckPassword() = false for the correct password")
	}
	if CheckPassword("wrongpass", digest) {
		t.Error("CheckPassword() = true for a wrong password")
	}
	if CheckPassword("securepass", "not-a-bcrypt-digest") {
		t.Error("CheckPassword() = true for a malformed digest")
	}
	if CheckPassword("securepass", "") {
		t.Error("CheckPassword() = true for an empty digest")
	}
}
