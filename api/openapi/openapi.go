// Package openapi holds the request and response resources of the HTTP API.
package openapi

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateOrganisationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// User is the public view of a user, it never carries the password hash.
type User struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type Organisation struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Membership struct {
	UserID string `json:"userId"`
	OrgID  string `json:"orgId"`
}

type AuthData struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

type OrganisationList struct {
	Organisations []Organisation `json:"organisations"`
}

// SuccessResponse is the envelope of every 2xx response.
type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// HTTPError is the envelope of every non-validation failure.
type HTTPError struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationErrors is the envelope of 422 responses carrying
// field level errors.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func NewSuccess(message string, data any) SuccessResponse {
	return SuccessResponse{Status: "success", Message: message, Data: data}
}

func NewBadRequest(message string) HTTPError {
	return HTTPError{Status: "Bad request", Message: message, StatusCode: 400}
}

func NewNotFound(message string) HTTPError {
	return HTTPError{Status: "Not found", Message: message, StatusCode: 404}
}

func NewAuthenticationFailed() HTTPError {
	return HTTPError{Status: "Bad request", Message: "Authentication failed", StatusCode: 401}
}
