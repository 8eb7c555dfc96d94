package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

// ErrUnauthorized is returned when a caller presents a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// Authorizer decides whether a bearer credential may call the admin operations.
// Implementations may delegate to an external identity provider.
type Authorizer interface {
	Authorize(ctx context.Context, token string) error
}

// StaticToken accepts exactly one shared secret.
type StaticToken struct {
	secret []byte
}

// NewStaticToken creates an Authorizer for a single shared secret.
func NewStaticToken(secret string) *StaticToken {
	return &StaticToken{secret: []byte(secret)}
}

// Authorize compares the token in constant time. An empty secret rejects everything.
func (s *StaticToken) Authorize(_ context.Context, token string) error {
	if len(s.secret) == 0 || subtle.ConstantTimeCompare([]byte(token), s.secret) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// ErrorResponse is the body returned for rejected requests.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id,omitempty"`
}

// RequireBearer rejects requests whose Authorization header does not carry a bearer
// token accepted by a.
func RequireBearer(a Authorizer) fiber.Handler {
	return keyauth.New(keyauth.Config{
		KeyLookup:  "header:" + fiber.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(c *fiber.Ctx, token string) (bool, error) {
			if err := a.Authorize(c.UserContext(), token); err != nil {
				return false, err
			}
			return true, nil
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			rayID, _ := c.Locals("requestid").(string)
			msg := "invalid token"
			if errors.Is(err, keyauth.ErrMissingOrMalformedAPIKey) {
				msg = "missing bearer token"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Message: msg,
				RayID:   rayID,
			})
		},
	})
}
