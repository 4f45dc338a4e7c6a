package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/healthtrackplus/healthtrack-backend/internal/models"
	"gorm.io/gorm"
)

var ErrNoIdentity = errors.New("no authenticated identity in request context")

// CurrentUserID extracts the user UUID from the JWT claims the auth
// middleware stored in the request context.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}

	return uuid.Parse(sub)
}

// ClaimString returns a string claim from the request's JWT, or "".
func ClaimString(c *fiber.Ctx, key string) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	val, _ := claims[key].(string)
	return val
}

// CurrentUser loads the authenticated user's row. Role checks go through
// this rather than trusting token claims, so demotions take effect on the
// next request instead of at token expiry.
func CurrentUser(c *fiber.Ctx, db *gorm.DB) (*models.User, error) {
	userID, err := CurrentUserID(c)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
