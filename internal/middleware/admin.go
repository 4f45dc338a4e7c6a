package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/healthtrackplus/healthtrack-backend/internal/auth"
	"github.com/healthtrackplus/healthtrack-backend/internal/config"
	"github.com/healthtrackplus/healthtrack-backend/internal/dto"
	"github.com/healthtrackplus/healthtrack-backend/internal/models"
	"gorm.io/gorm"
)

// AdminRequired gates the admin panel. Access is granted for:
// 1. the ops admin token header,
// 2. a config-based admin email allowlist,
// 3. an account whose stored role is admin or whose superuser flag is set.
// The role check reads the DB row rather than token claims so revocation is
// immediate. Handlers behind this middleware still re-check the predicate
// themselves.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			if c.Get("X-Admin-Token") == cfg.AdminToken {
				return c.Next()
			}
		}

		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if email := auth.ClaimString(c, "email"); contains(adminEmails, email) {
			return c.Next()
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil && user.IsAdmin() {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	if val == "" {
		return false
	}
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
