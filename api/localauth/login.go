package localauthapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgspacehq/orgspace/api/openapi"
	"github.com/orgspacehq/orgspace/common/log"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) Login(c *gin.Context) {
	var req openapi.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Login unsuccessful"))
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusUnprocessableEntity, openapi.ValidationErrors{Errors: []openapi.FieldError{
			{Message: "Email and Password is required"},
		}})
		return
	}

	user, err := h.Store.GetUserByEmail(req.Email)
	if err != nil {
		log.Errorf("failed fetching user by email, err=%v", err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Login unsuccessful"))
		return
	}
	// the unknown email and wrong password failures are deliberately
	// indistinguishable to the caller
	if user == nil {
		c.JSON(http.StatusUnauthorized, openapi.NewAuthenticationFailed())
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		log.Debugf("failed comparing password for user %s, %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, openapi.NewAuthenticationFailed())
		return
	}

	accessToken, err := NewAccessToken(user.ID, user.Email)
	if err != nil {
		log.Errorf("failed generating access token, err=%v", err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Login unsuccessful"))
		return
	}

	c.JSON(http.StatusOK, openapi.NewSuccess("Login successful", openapi.AuthData{
		AccessToken: accessToken,
		User: openapi.User{
			UserID:    user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     user.Phone,
		},
	}))
}
