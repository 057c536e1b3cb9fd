package stubserver

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type tokenIssuer struct {
	secret []byte
}

func newTokenIssuer(secret string) tokenIssuer {
	return tokenIssuer{secret: []byte(secret)}
}

func (t tokenIssuer) Generate(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t tokenIssuer) Verify(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})

	return err == nil && token.Valid
}
