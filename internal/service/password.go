// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	// PasswordCost is the bcrypt cost factor for stored password hashes.
	PasswordCost = 10
	// MaxPasswordBytes is bcrypt's input limit, counted in bytes not runes.
	MaxPasswordBytes = 72
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}
