package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyToken = errors.New("token cannot be empty")

type TokenHasher interface {
	Hash(token string) (string, error)
	Compare(hash, token string) bool
}

type BcryptHasher struct{}

func (b *BcryptHasher) Hash(token string) (string, error) {
	if token == "" {
		return "", ErrEmptyToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *BcryptHasher) Compare(hash, token string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token))
	return err == nil
}
