package apivalidation

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/orgspacehq/orgspace/api/openapi"
	"github.com/stretchr/testify/assert"
)

func bindRegister(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	var reg openapi.RegisterRequest
	return c.ShouldBindJSON(&reg)
}

func TestParseFieldErrors(t *testing.T) {
	for _, tt := range []struct {
		msg  string
		body string
		want []openapi.FieldError
	}{
		{
			msg:  "it should report every missing field by its json name",
			body: `{"email": "jon@example.com"}`,
			want: []openapi.FieldError{
				{Field: "firstName", Message: "First name is required"},
				{Field: "lastName", Message: "Last name is required"},
				{Field: "password", Message: "Password is required"},
			},
		},
		{
			msg:  "it should pass a complete body",
			body: `{"firstName": "Jon", "lastName": "Snow", "email": "jon@example.com", "password": "winteriscoming"}`,
			want: nil,
		},
		{
			msg:  "it should not classify malformed json as a validation failure",
			body: `{"firstName": `,
			want: nil,
		},
	} {
		t.Run(tt.msg, func(t *testing.T) {
			err := bindRegister(t, tt.body)
			assert.Equal(t, tt.want, ParseFieldErrors(err))
		})
	}
}

func TestFieldMessageFallback(t *testing.T) {
	type obscure struct {
		Widget string `json:"widget" binding:"required"`
	}
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	var o obscure
	err := c.ShouldBindJSON(&o)
	assert.Equal(t, []openapi.FieldError{{Field: "widget", Message: "widget is required"}}, ParseFieldErrors(err))
}
