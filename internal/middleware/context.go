package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims pulls the claims map out of the verified JWT placed in
// context by JWTProtected.
func tokenClaims(c *fiber.Ctx) jwt.MapClaims {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

// Role returns the authenticated caller's role, embedded in the token at
// login so no user lookup is needed per request.
func Role(c *fiber.Ctx) string {
	claims := tokenClaims(c)
	if claims == nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// Username returns the authenticated caller's username.
func Username(c *fiber.Ctx) string {
	claims := tokenClaims(c)
	if claims == nil {
		return ""
	}
	username, _ := claims["username"].(string)
	return username
}
