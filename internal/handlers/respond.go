package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"inventory/internal/models"
)

// formValue accepts either a JSON string or a bare JSON number and keeps the
// raw text, so numeric fields reach the input rules exactly as submitted.
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	*v = formValue(data)
	return nil
}

// respondError maps a service error to a status code. Validation errors name
// the offending field; anything else is reported as a storage failure.
func respondError(c *fiber.Ctx, err error, message string) error {
	if ve, ok := models.AsValidationError(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"field":   ve.Field,
			"kind":    ve.Kind,
			"error":   ve.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}
