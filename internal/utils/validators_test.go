package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@clinic.org", true},
		{"no-at-sign", false},
		{"user@", false},
		{"Jane Doe <user@example.com>", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsComplexPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets policy", "Passw0rd!", true},
		{"no upper case", "passw0rd!", false},
		{"no lower case", "PASSW0RD!", false},
		{"no digit", "Password!", false},
		{"no symbol", "Passw0rd", false},
		{"too short", "P0r!aB", false},
	}
	for _, tt := range tests {
		if got := IsComplexPassword(tt.password); got != tt.want {
			t.Errorf("%s: IsComplexPassword(%q) = %v, want %v", tt.name, tt.password, got, tt.want)
		}
	}
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken: %v", err)
	}
	b, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken: %v", err)
	}
	if a == b {
		t.Error("two tokens came out identical")
	}
	if len(a) < 32 {
		t.Errorf("token too short: %d chars", len(a))
	}
}
