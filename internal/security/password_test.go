package security

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correcthorse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" {
		t.Fatal("hash should not be empty")
	}
	if hash == "correcthorse" {
		t.Fatal("hash should not equal the plaintext password")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correcthorse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{"correct password", "correcthorse", true},
		{"wrong password", "wronghorse", false},
		{"empty password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := CheckPassword(tt.password, hash); result != tt.expected {
				t.Errorf("CheckPassword(%q) = %v, want %v", tt.password, result, tt.expected)
			}
		})
	}
}

func TestCSRFTokenRoundTrip(t *testing.T) {
	generator := NewCSRFGenerator("test-secret")

	token, err := generator.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if !generator.ValidateToken("session-123", token) {
		t.Error("token should validate for its own session")
	}
	if generator.ValidateToken("session-456", token) {
		t.Error("token should not validate for a different session")
	}
	if generator.ValidateToken("session-123", "forged") {
		t.Error("forged token should not validate")
	}
}

func TestGenerateInviteCode(t *testing.T) {
	codes := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateInviteCode()
		if err != nil {
			t.Fatalf("GenerateInviteCode() error = %v", err)
		}
		if len(code) < 10 {
			t.Errorf("code %q is suspiciously short", code)
		}
		codes[code] = true
	}

	// With 32*24 word pairs and a 4-char suffix, 20 draws should not collide
	if len(codes) < 20 {
		t.Errorf("expected 20 unique codes, got %d", len(codes))
	}
}
