package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost matches the cost used for existing stored hashes.
const PasswordCost = 12

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), PasswordCost)
	if err != nil {
		panic(err)
	}
	return h
})

// CheckDummyPassword spends the same work as CheckPassword and always
// fails. Callers use it when there is no stored hash, so a missing account
// takes as long to reject as a wrong password.
func CheckDummyPassword(password string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
	return false
}
