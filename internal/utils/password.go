package utils

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor used for admin passwords.
const PasswordCost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword never errors; an unparsable hash is a mismatch.
func CheckPassword(hashed, plain string) bool {
	if hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
