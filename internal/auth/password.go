package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost 为 bcrypt 工作因子（2^10 轮）。
const PasswordCost = bcrypt.DefaultCost

// HashPassword 生成带盐的 bcrypt 哈希。超过 72 字节的密码会返回 bcrypt.ErrPasswordTooLong。
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), PasswordCost)
	return string(b), err
}

// VerifyPassword 比较明文与哈希。密码不匹配时返回 (false, nil)，
// 哈希本身损坏等内部错误才返回 error。
func VerifyPassword(hash, pw string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
