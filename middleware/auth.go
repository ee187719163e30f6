package middleware

import (
	"errors"
	"log"

	"match-prediction-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserContextMiddleware resolves the caller to a user record and attaches it
// to the request context. Identity comes from the X-User-ID header (or a
// userId query fallback for browser calls). There is no credential behind it:
// this is an explicit per-request context object, not a security boundary.
func UserContextMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			userID = c.Query("userId")
		}
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Identification requise (X-User-ID)",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Utilisateur inconnu",
				})
			}
			log.Printf("[USER_CTX] lookup failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur interne",
			})
		}

		c.Locals("user", &user)
		return c.Next()
	}
}

// AdminOnlyMiddleware guards match-administration routes. Requires a user
// already resolved by UserContextMiddleware.
func AdminOnlyMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := c.Locals("user").(*models.User)
		if user == nil || !user.IsAdmin {
			log.Printf("[ADMIN] refused %s for non-admin", c.Path())
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Réservé aux administrateurs",
			})
		}
		return c.Next()
	}
}
