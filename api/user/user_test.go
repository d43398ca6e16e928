package userapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/orgspacehq/orgspace/api/openapi"
	"github.com/orgspacehq/orgspace/models"
	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	getUserByID func(userID string) (*models.User, error)
}

func (f *fakeStore) GetUserByID(userID string) (*models.User, error) {
	return f.getUserByID(userID)
}

func getUser(t *testing.T, store Store, userID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	route := gin.New()
	h := &Handler{Store: store}
	route.GET("/api/users/:id", h.GetUserByID)
	req := httptest.NewRequest("GET", "/api/users/"+userID, nil)
	w := httptest.NewRecorder()
	route.ServeHTTP(w, req)
	return w
}

func TestGetUserByID(t *testing.T) {
	store := &fakeStore{
		getUserByID: func(userID string) (*models.User, error) {
			assert.Equal(t, "user-1", userID)
			return &models.User{
				ID:             "user-1",
				FirstName:      "Jon",
				LastName:       "Snow",
				Email:          "jon@example.com",
				HashedPassword: "$2a$10$secret",
				Phone:          "0700000000",
			}, nil
		},
	}

	w := getUser(t, store, "user-1")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string       `json:"message"`
		Data    openapi.User `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User retrieved successfully", resp.Message)
	assert.Equal(t, openapi.User{
		UserID:    "user-1",
		FirstName: "Jon",
		LastName:  "Snow",
		Email:     "jon@example.com",
		Phone:     "0700000000",
	}, resp.Data)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestGetUserByIDNotFound(t *testing.T) {
	store := &fakeStore{
		getUserByID: func(string) (*models.User, error) { return nil, models.ErrNotFound },
	}

	w := getUser(t, store, "user-ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp openapi.HTTPError
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, openapi.HTTPError{Status: "Not found", Message: "User not found", StatusCode: 404}, resp)
}

func TestGetUserByIDStorageFailure(t *testing.T) {
	store := &fakeStore{
		getUserByID: func(string) (*models.User, error) { return nil, assert.AnError },
	}

	w := getUser(t, store, "user-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to retrieve user")
}
