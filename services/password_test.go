package services

import "testing"

func TestHashPassword(t *testing.T) {
	t.Run("matching password verifies", func(t *testing.T) {
		hash, err := HashPassword("S3cret!pass")
		if err != nil {
			t.Fatalf("HashPassword: %v", err)
		}

		ok, err := VerifyPassword(hash, "S3cret!pass")
		if err != nil {
			t.Fatalf("VerifyPassword: %v", err)
		}
		if !ok {
			t.Error("Correct password did not verify")
		}
	})

	t.Run("wrong password fails", func(t *testing.T) {
		hash, err := HashPassword("S3cret!pass")
		if err != nil {
			t.Fatalf("HashPassword: %v", err)
		}

		ok, err := VerifyPassword(hash, "wrong!pass1")
		if err != nil {
			t.Fatalf("VerifyPassword: %v", err)
		}
		if ok {
			t.Error("Wrong password verified")
		}
	})

	t.Run("salts differ between hashes", func(t *testing.T) {
		first, _ := HashPassword("S3cret!pass")
		second, _ := HashPassword("S3cret!pass")
		if first == second {
			t.Error("Two hashes of the same password are identical")
		}
	})

	t.Run("malformed stored hash errors", func(t *testing.T) {
		if _, err := VerifyPassword("no-separator", "whatever"); err == nil {
			t.Error("Expected error for malformed stored hash")
		}
	})
}
