package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	localauthapi "github.com/orgspacehq/orgspace/api/localauth"
	"github.com/orgspacehq/orgspace/api/openapi"
	"github.com/orgspacehq/orgspace/common/log"
)

var errInvalidAuthHeaderErr = fmt.Errorf("invalid authorization header")

// Authenticate gates protected routes. It verifies the bearer token and
// attaches the decoded claims to the request context for downstream handlers.
func (api *Api) Authenticate(c *gin.Context) {
	claims, err := api.validateClaims(c)
	if err != nil {
		tokenHeader := c.GetHeader("Authorization")
		log.Infof("failed authenticating, length=%v, reason=%v", len(tokenHeader), err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, openapi.NewAuthenticationFailed())
		return
	}
	c.Set(localauthapi.ContextUserKey, claims)
	c.Next()
}

func (api *Api) validateClaims(c *gin.Context) (*localauthapi.Claims, error) {
	tokenHeader := c.GetHeader("Authorization")
	tokenParts := strings.Split(tokenHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return nil, errInvalidAuthHeaderErr
	}
	return localauthapi.ParseAccessToken(tokenParts[1])
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Authorization, Origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
