package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the verified session payload issued by the external
// identity provider. The service never mints these tokens, it only validates
// and reads them.
type IdentityClaims struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"picture"`
	jwt.RegisteredClaims
}

// SubjectID is the provider's opaque account identifier.
func (c *IdentityClaims) SubjectID() string {
	return c.Subject
}

func ValidateSessionToken(tokenString string, secret []byte) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}
