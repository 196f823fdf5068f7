package handlers

import (
	"github.com/gofiber/fiber/v2"

	"inventory/internal/services"
	"inventory/internal/validation"
)

// BuyerHandler handles HTTP requests for buyers.
type BuyerHandler struct {
	service *services.BuyerService
}

// NewBuyerHandler creates a new BuyerHandler.
func NewBuyerHandler(service *services.BuyerService) *BuyerHandler {
	return &BuyerHandler{
		service: service,
	}
}

// RegisterRoutes registers the buyer routes with the Fiber app.
func (h *BuyerHandler) RegisterRoutes(router fiber.Router) {
	buyerRoutes := router.Group("/buyers")
	buyerRoutes.Get("/", h.HandleGetBuyers)
	buyerRoutes.Post("/", h.HandleCreateBuyer)
	buyerRoutes.Delete("/:id", h.HandleDeleteBuyer)
}

// CreateBuyerRequest is the body of POST /buyers.
type CreateBuyerRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
}

func (h *BuyerHandler) HandleGetBuyers(c *fiber.Ctx) error {
	buyers, err := h.service.ListBuyers(c.UserContext())
	if err != nil {
		return respondError(c, err, "Could not retrieve buyers")
	}
	return c.JSON(buyers)
}

func (h *BuyerHandler) HandleCreateBuyer(c *fiber.Ctx) error {
	var req CreateBuyerRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	buyer, err := h.service.AddBuyer(c.UserContext(), validation.BuyerInput(req))
	if err != nil {
		return respondError(c, err, "Could not add buyer")
	}
	return c.Status(fiber.StatusCreated).JSON(buyer)
}

func (h *BuyerHandler) HandleDeleteBuyer(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "")
	}

	removed, err := h.service.DeleteBuyer(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Could not delete buyer")
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Buyer not found or already deleted",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Buyer deleted successfully",
	})
}
