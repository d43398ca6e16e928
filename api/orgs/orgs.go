package orgsapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	localauthapi "github.com/orgspacehq/orgspace/api/localauth"
	"github.com/orgspacehq/orgspace/api/openapi"
	apivalidation "github.com/orgspacehq/orgspace/api/validation"
	"github.com/orgspacehq/orgspace/common/log"
	"github.com/orgspacehq/orgspace/models"
)

type Store interface {
	ListOrganizationsByUserID(userID string) ([]models.Organization, error)
	GetOrganizationForMember(orgID, userID string) (*models.Organization, error)
	IsOrganizationMember(orgID, userID string) (bool, error)
	CreateOrganizationWithMember(org *models.Organization, userID string) error
	AddOrganizationMember(orgID, userID string) error
}

type Handler struct {
	Store Store
}

// List returns the organisations the authenticated user belongs to.
func (h *Handler) List(c *gin.Context) {
	ctx := localauthapi.ContextUser(c)
	orgs, err := h.Store.ListOrganizationsByUserID(ctx.UserID)
	if err != nil {
		log.Errorf("failed listing organisations, err=%v", err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Failed to retrieve organisations"))
		return
	}

	organisations := make([]openapi.Organisation, 0, len(orgs))
	for _, org := range orgs {
		organisations = append(organisations, openapi.Organisation{
			OrgID:       org.ID,
			Name:        org.Name,
			Description: org.Description,
		})
	}
	c.JSON(http.StatusOK, openapi.NewSuccess("Organisations retrieved successfully",
		openapi.OrganisationList{Organisations: organisations}))
}

// Get returns a single organisation. Non-members get the same not found
// response as an unknown id to avoid leaking which organisations exist.
func (h *Handler) Get(c *gin.Context) {
	ctx := localauthapi.ContextUser(c)
	orgID := c.Param("orgId")
	org, err := h.Store.GetOrganizationForMember(orgID, ctx.UserID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, openapi.NewNotFound("Organisation not found"))
		return
	case err != nil:
		log.Errorf("failed getting organisation %s, err=%v", orgID, err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Failed to retrieve organisation"))
		return
	}

	c.JSON(http.StatusOK, openapi.NewSuccess("Organisation retrieved successfully", openapi.Organisation{
		OrgID:       org.ID,
		Name:        org.Name,
		Description: org.Description,
	}))
}

func (h *Handler) Create(c *gin.Context) {
	ctx := localauthapi.ContextUser(c)
	var req openapi.CreateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fieldErrors := apivalidation.ParseFieldErrors(err); fieldErrors != nil {
			c.JSON(http.StatusUnprocessableEntity, openapi.ValidationErrors{Errors: fieldErrors})
			return
		}
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Client error"))
		return
	}

	org := &models.Organization{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.Store.CreateOrganizationWithMember(org, ctx.UserID); err != nil {
		log.Errorf("failed creating organisation, err=%v", err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Client error"))
		return
	}

	c.JSON(http.StatusCreated, openapi.NewSuccess("Organisation created successfully", openapi.Organisation{
		OrgID:       org.ID,
		Name:        org.Name,
		Description: org.Description,
	}))
}

// AddMember adds a user to an organisation. The acting user must be a
// member of the target organisation.
func (h *Handler) AddMember(c *gin.Context) {
	ctx := localauthapi.ContextUser(c)
	orgID := c.Param("orgId")
	var req openapi.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fieldErrors := apivalidation.ParseFieldErrors(err); fieldErrors != nil {
			c.JSON(http.StatusUnprocessableEntity, openapi.ValidationErrors{Errors: fieldErrors})
			return
		}
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Failed to add user to organisation"))
		return
	}

	isMember, err := h.Store.IsOrganizationMember(orgID, ctx.UserID)
	if err != nil {
		log.Errorf("failed checking membership for organisation %s, err=%v", orgID, err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Failed to add user to organisation"))
		return
	}
	if !isMember {
		c.JSON(http.StatusNotFound, openapi.NewNotFound("Organisation not found"))
		return
	}

	err = h.Store.AddOrganizationMember(orgID, req.UserID)
	switch {
	case errors.Is(err, models.ErrAlreadyExists):
		c.JSON(http.StatusUnprocessableEntity, openapi.ValidationErrors{Errors: []openapi.FieldError{
			{Field: "userId", Message: "User is already a member of this organisation"},
		}})
		return
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, openapi.NewNotFound("User not found"))
		return
	case err != nil:
		log.Errorf("failed adding user to organisation %s, err=%v", orgID, err)
		c.JSON(http.StatusBadRequest, openapi.NewBadRequest("Failed to add user to organisation"))
		return
	}

	c.JSON(http.StatusCreated, openapi.NewSuccess("User added to organisation successfully", openapi.Membership{
		UserID: req.UserID,
		OrgID:  orgID,
	}))
}
