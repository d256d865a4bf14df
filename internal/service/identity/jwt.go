package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Uid string `json:"uid"`
}

func (s service) generateJWT(uid string) (string, error) {
	claims := jwt.MapClaims{
		"uid": uid,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

func (s service) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token")
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return nil, errors.New("invalid token")
	}

	return &Claims{Uid: uid}, nil
}
