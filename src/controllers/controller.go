package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// tenantFromCtx reads the tenant set by the auth middleware.
func tenantFromCtx(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals("tenantId").(string)
	tenantID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, "missing tenant")
	}
	return tenantID, nil
}
