package auth

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticToken_Authorize(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		token   string
		wantErr bool
	}{
		{name: "Match", secret: "admin123", token: "admin123"},
		{name: "Mismatch", secret: "admin123", token: "admin124", wantErr: true},
		{name: "Prefix", secret: "admin123", token: "admin", wantErr: true},
		{name: "EmptyToken", secret: "admin123", token: "", wantErr: true},
		{name: "EmptySecret", secret: "", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewStaticToken(tt.secret).Authorize(context.Background(), tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnauthorized)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequireBearer(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/admin", RequireBearer(NewStaticToken("s3cr3t")), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	tests := []struct {
		name    string
		header  string
		want    int
		wantMsg string
	}{
		{name: "Valid", header: "Bearer s3cr3t", want: fiber.StatusNoContent},
		{name: "Missing", header: "", want: fiber.StatusUnauthorized, wantMsg: "missing bearer token"},
		{name: "WrongScheme", header: "Basic s3cr3t", want: fiber.StatusUnauthorized, wantMsg: "missing bearer token"},
		{name: "SchemeOnly", header: "Bearer", want: fiber.StatusUnauthorized, wantMsg: "missing bearer token"},
		{name: "WrongToken", header: "Bearer nope", want: fiber.StatusUnauthorized, wantMsg: "invalid token"},
		{name: "BlankToken", header: "Bearer   ", want: fiber.StatusUnauthorized, wantMsg: "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.wantMsg == "" {
				return
			}

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, "test-ray-id", body.RayID)
		})
	}
}
