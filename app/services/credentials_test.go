package services

import (
	"testing"

	"pitstop/app/models"

	"golang.org/x/crypto/bcrypt"
)

func TestValidCodeFormat(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"9999", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"12 4", false},
		{"", false},
		{"١٢٣٤", false}, // non-ASCII digits
		{"-123", false},
	}
	for _, tt := range tests {
		got := ValidCodeFormat(tt.code)
		if got != tt.want {
			t.Errorf("ValidCodeFormat(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestIsBcryptHash(t *testing.T) {
	tests := []struct {
		stored string
		want   bool
	}{
		{"$2a$14$abcdefghijklmnopqrstuv", true},
		{"$2b$10$abcdefghijklmnopqrstuv", true},
		{"$2y$12$abcdefghijklmnopqrstuv", true},
		{"1234", false},
		{"", false},
		{"$1$somethingelse", false},
	}
	for _, tt := range tests {
		if got := IsBcryptHash(tt.stored); got != tt.want {
			t.Errorf("IsBcryptHash(%q) = %v, want %v", tt.stored, got, tt.want)
		}
	}
}

func TestMatchEmployeeCode_LegacyPlaintext(t *testing.T) {
	employees := []*models.Employee{
		{ID: "a", Code: "5678"},
		{ID: "b", Code: "1234"},
	}

	match := MatchEmployeeCode("1234", employees)
	if match == nil || match.ID != "b" {
		t.Fatalf("expected legacy code 1234 to match employee b, got %+v", match)
	}

	if m := MatchEmployeeCode("0000", employees); m != nil {
		t.Errorf("expected no match for 0000, got %+v", m)
	}
}

func TestMatchEmployeeCode_Hashed(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("4321"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	employees := []*models.Employee{
		{ID: "a", Code: string(hash)},
	}

	match := MatchEmployeeCode("4321", employees)
	if match == nil || match.ID != "a" {
		t.Fatalf("expected hashed code to match employee a, got %+v", match)
	}

	// The stored hash itself must never match by string equality
	if m := MatchEmployeeCode(string(hash), employees); m != nil {
		t.Errorf("stored hash matched as input, equality fallback leaked: %+v", m)
	}
}

func TestMatchEmployeeCode_FirstMatchWins(t *testing.T) {
	employees := []*models.Employee{
		{ID: "first", Code: "1111"},
		{ID: "second", Code: "1111"},
	}

	match := MatchEmployeeCode("1111", employees)
	if match == nil || match.ID != "first" {
		t.Errorf("expected first employee to win, got %+v", match)
	}
}
