package userapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgspacehq/orgspace/api/openapi"
	"github.com/orgspacehq/orgspace/common/log"
	"github.com/orgspacehq/orgspace/models"
)

type Store interface {
	GetUserByID(userID string) (*models.User, error)
}

type Handler struct {
	Store Store
}

func (h *Handler) GetUserByID(c *gin.Context) {
	userID := c.Param("id")
	user, err := h.Store.GetUserByID(userID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, openapi.NewNotFound("User not found"))
		return
	case err != nil:
		log.Errorf("failed getting user %s, err=%v", userID, err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Failed to retrieve user"))
		return
	}

	c.JSON(http.StatusOK, openapi.NewSuccess("User retrieved successfully", openapi.User{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}))
}
