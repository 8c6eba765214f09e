package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	valid := []string{"abc1!x", "Good!pass1", "000000$"}
	for _, p := range valid {
		if !ValidatePassword(p) {
			t.Errorf("ValidatePassword(%q) = false, want true", p)
		}
	}

	invalid := []string{"", "short", "nonumber!", "nosymbol1", "a1!"}
	for _, p := range invalid {
		if ValidatePassword(p) {
			t.Errorf("ValidatePassword(%q) = true, want false", p)
		}
	}
}

func TestGenerateRecoveryCodes(t *testing.T) {
	codes, err := GenerateRecoveryCodes()
	if err != nil {
		t.Fatalf("GenerateRecoveryCodes: %v", err)
	}
	if len(codes) != 10 {
		t.Fatalf("Expected 10 codes, got %d", len(codes))
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		if len(code) != 9 || code[4] != '-' {
			t.Errorf("Code %q not in XXXX-XXXX form", code)
		}
		if seen[code] {
			t.Errorf("Duplicate code %q", code)
		}
		seen[code] = true
	}
}

func TestHashRecoveryCodes(t *testing.T) {
	codes := []string{"AAAA-BBBB", "CCCC-DDDD"}
	hashed := HashRecoveryCodes(codes)
	if len(hashed) != 2 {
		t.Fatalf("Expected 2 hashes, got %d", len(hashed))
	}
	for i, h := range hashed {
		if h == codes[i] {
			t.Errorf("Code %q stored unhashed", codes[i])
		}
		if h != HashString(codes[i]) {
			t.Errorf("Hash mismatch for %q", codes[i])
		}
	}
}
