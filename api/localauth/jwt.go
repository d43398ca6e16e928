package localauthapi

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/orgspacehq/orgspace/appconfig"
)

const accessTokenDuration = time.Hour

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func NewAccessToken(userID, email string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenDuration)),
		},
	})
	return token.SignedString(appconfig.Get().JWTSecretKey())
}

// ParseAccessToken verifies the token signature and expiry and returns the
// decoded claims.
func ParseAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return appconfig.Get().JWTSecretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}
	return claims, nil
}

// ContextUserKey is the gin context key holding the *Claims of the
// authenticated request.
const ContextUserKey = "orgspace-user-context"

func ContextUser(c *gin.Context) *Claims {
	claims, _ := c.Get(ContextUserKey)
	userClaims, _ := claims.(*Claims)
	return userClaims
}
