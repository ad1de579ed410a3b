package auth

import "testing"

func TestJWTCarriesSessionID(t *testing.T) {
	sessionID := GenerateSessionID().String()
	token, err := GenerateJWT("user-1", sessionID, "admin@example.com", "Ada", "Admin")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.SessionID != sessionID {
		t.Errorf("session id = %q, want %q", claims.SessionID, sessionID)
	}
	if claims.UserID != "user-1" {
		t.Errorf("user id = %q, want user-1", claims.UserID)
	}
}

func TestValidateJWT_RejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("garbage token should not validate")
	}
}
