package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionDuration is how long an issued session token stays valid. Tokens are
// stateless: clearing the cookie on logout does not invalidate a token that is
// still presented directly before expiry.
const SessionDuration = 15 * 24 * time.Hour

type SessionClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(userID primitive.ObjectID, secret []byte) (string, error) {
	claims := SessionClaims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseSessionToken(token string, secret []byte) (primitive.ObjectID, error) {
	parsedToken, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}

	claims, ok := parsedToken.Claims.(*SessionClaims)
	if !ok || !parsedToken.Valid {
		return primitive.NilObjectID, jwt.ErrTokenInvalidClaims
	}

	return primitive.ObjectIDFromHex(claims.UserID)
}
