package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"dispatch/internal/entities"
)

var jwtSigningMethod = jwt.SigningMethodHS256

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	DriverID int64 `json:"driver_id"`
	IsAdmin  bool  `json:"is_admin"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Manager) IssueToken(actor entities.Actor) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		DriverID: actor.DriverID,
		IsAdmin:  actor.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing jwt: %w", err)
	}

	return signed, expiresAt, nil
}

func (m *Manager) ParseToken(tokenString string) (entities.Actor, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
	)
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return entities.Actor{
		DriverID: claims.DriverID,
		Login:    claims.Subject,
		IsAdmin:  claims.IsAdmin,
	}, nil
}
