package http

import (
	"errors"
	"net/http"
	"strings"

	"mainbridge/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Actor roles carried in the JWT "role" claim.
const (
	RoleSupplier = "supplier"
	RoleCourier  = "courier"
)

const actorContextKey = "actor"

var errActorMissing = errors.New("no actor in request context")

// Actor is the authenticated caller, resolved from the verified bearer
// token. Handlers derive supplier and courier identity from here, never
// from the request body.
type Actor struct {
	ID   kernel.UUID
	Role string
}

// NewAuthMiddleware returns middleware that verifies the Authorization
// bearer token and stores the resulting Actor in the request context.
// Tokens must be HMAC-signed with the shared secret and carry "sub"
// (actor id) and "role" claims.
func NewAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return unauthorized(c, "Missing bearer token")
			}

			token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return unauthorized(c, "Invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "Invalid token claims")
			}

			subject, err := claims.GetSubject()
			if err != nil {
				return unauthorized(c, "Invalid token subject")
			}

			actorID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return unauthorized(c, "Invalid token subject")
			}

			role, _ := claims["role"].(string)
			if role != RoleSupplier && role != RoleCourier {
				return unauthorized(c, "Invalid token role")
			}

			c.Set(actorContextKey, Actor{ID: actorID, Role: role})
			return next(c)
		}
	}
}

// RequireRole returns middleware that rejects requests whose actor does not
// carry the given role. Must run after NewAuthMiddleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := actorFromContext(c)
			if err != nil {
				return unauthorized(c, "Missing bearer token")
			}
			if actor.Role != role {
				return c.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "Insufficient role for this operation",
				})
			}
			return next(c)
		}
	}
}

func actorFromContext(c echo.Context) (Actor, error) {
	actor, ok := c.Get(actorContextKey).(Actor)
	if !ok {
		return Actor{}, errActorMissing
	}
	return actor, nil
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
