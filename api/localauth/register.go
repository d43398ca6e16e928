package localauthapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/orgspacehq/orgspace/api/openapi"
	apivalidation "github.com/orgspacehq/orgspace/api/validation"
	"github.com/orgspacehq/orgspace/common/log"
	"github.com/orgspacehq/orgspace/models"
	"golang.org/x/crypto/bcrypt"
)

type Store interface {
	GetUserByEmail(email string) (*models.User, error)
	CreateUserWithDefaultOrg(user *models.User, org *models.Organization) error
}

type Handler struct {
	Store Store
}

func (h *Handler) Register(c *gin.Context) {
	var req openapi.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fieldErrors := apivalidation.ParseFieldErrors(err); fieldErrors != nil {
			c.JSON(http.StatusUnprocessableEntity, openapi.ValidationErrors{Errors: fieldErrors})
			return
		}
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Registration unsuccessful"))
		return
	}

	log.Debugf("looking for existing user %v", req.Email)
	existingUser, err := h.Store.GetUserByEmail(req.Email)
	if err != nil {
		log.Errorf("failed fetching user by email, err=%v", err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Registration unsuccessful"))
		return
	}
	if existingUser != nil {
		c.JSON(http.StatusUnprocessableEntity, openapi.ValidationErrors{Errors: []openapi.FieldError{
			{Field: "email", Message: "Email already in use"},
		}})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("failed hashing password, err=%v", err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Registration unsuccessful"))
		return
	}

	user := &models.User{
		ID:             uuid.NewString(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		HashedPassword: string(hashedPassword),
		Phone:          req.Phone,
	}
	org := &models.Organization{
		ID:   uuid.NewString(),
		Name: fmt.Sprintf("%s's Organisation", req.FirstName),
	}
	if err := h.Store.CreateUserWithDefaultOrg(user, org); err != nil {
		log.Errorf("failed creating user, err=%v", err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Registration unsuccessful"))
		return
	}

	accessToken, err := NewAccessToken(user.ID, user.Email)
	if err != nil {
		log.Errorf("failed generating access token, err=%v", err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Registration unsuccessful"))
		return
	}

	c.JSON(http.StatusCreated, openapi.NewSuccess("Registration successful", openapi.AuthData{
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
