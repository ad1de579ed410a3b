package services

import (
	"regexp"
	"strings"

	"pitstop/app/models"

	"golang.org/x/crypto/bcrypt"
)

var codePattern = regexp.MustCompile(`^[0-9]{4}$`)

// ValidCodeFormat reports whether the input is a 4-digit clock-in code.
// Checked before any database work so malformed input gets a uniform
// "invalid code" error instead of a lookup miss.
func ValidCodeFormat(code string) bool {
	return codePattern.MatchString(code)
}

// IsBcryptHash reports whether a stored credential looks like a bcrypt
// hash rather than a legacy plaintext code.
func IsBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// MatchEmployeeCode scans the employees in order and returns the first
// one whose stored code matches, or nil. Hashed codes are compared with
// bcrypt; bare 4-digit stored values fall back to string equality for
// rows created before codes were hashed.
func MatchEmployeeCode(code string, employees []*models.Employee) *models.Employee {
	for _, e := range employees {
		if IsBcryptHash(e.Code) {
			if bcrypt.CompareHashAndPassword([]byte(e.Code), []byte(code)) == nil {
				return e
			}
			continue
		}
		if codePattern.MatchString(e.Code) && e.Code == code {
			return e
		}
	}
	return nil
}

// HashCode hashes a clock-in code for storage.
func HashCode(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), 14)
	return string(bytes), err
}
