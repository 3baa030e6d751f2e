package auth

import (
	"errors"
	"fmt"

	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/golang-jwt/jwt"
)

// MaxPayloadLength is the largest invoice payload Telegram accepts.
const MaxPayloadLength = 128

var (
	ErrInvalidPayload = errors.New("invalid settlement payload")
	ErrPayloadTooLong = errors.New("settlement payload too long")
)

type PayloadCodec interface {
	Encode(p domain.SettlementPayload) (string, error)
	Decode(token string) (*domain.SettlementPayload, error)
}

// Claim names stay one letter long so the signed token fits into MaxPayloadLength.
type PayloadClaims struct {
	AccountID int64 `json:"u"`
	Amount    int64 `json:"a"`
}

func (c PayloadClaims) Valid() error {
	if c.AccountID == 0 || c.Amount <= 0 {
		return ErrInvalidPayload
	}
	return nil
}

type PayloadSigner struct {
	secret []byte
}

func NewPayloadSigner(secret string) *PayloadSigner {
	return &PayloadSigner{secret: []byte(secret)}
}

func (s *PayloadSigner) Encode(p domain.SettlementPayload) (string, error) {
	claims := PayloadClaims{AccountID: p.AccountID, Amount: p.Amount}
	if err := claims.Valid(); err != nil {
		return "", err
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	if len(token) > MaxPayloadLength {
		return "", fmt.Errorf("%w: %d bytes", ErrPayloadTooLong, len(token))
	}
	return token, nil
}

func (s *PayloadSigner) Decode(tokenString string) (*domain.SettlementPayload, error) {
	claims := &PayloadClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidPayload
	}
	return &domain.SettlementPayload{AccountID: claims.AccountID, Amount: claims.Amount}, nil
}
