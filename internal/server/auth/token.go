// Package auth issues and verifies the signed, self-contained access tokens
// the service hands out on login. Tokens are HS256 JWTs carrying the account
// id and an expiry; there is no refresh or revocation mechanism, expiry is
// the only lifecycle transition.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/malusolero/login-service/internal/common"
)

// Claims is the token payload: the account id plus the registered expiry
// claim. The wire names ("id", "exp") are part of the token format.
type Claims struct {
	jwt.RegisteredClaims
	AccountID int64 `json:"id"`
}

// GenerateToken signs a token binding accountID for the given validity
// window. The secret is process-wide configuration; a signing failure here
// is a configuration problem, not a per-request condition.
func GenerateToken(accountID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		AccountID: accountID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetAccountIDFromToken verifies the signature, algorithm and expiry of the
// token and returns the account id it binds. Every failure mode (malformed
// token, signature mismatch, wrong algorithm, expired) returns
// common.ErrInvalidToken so callers cannot tell the causes apart.
func GetAccountIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	return claims.AccountID, nil
}
