package handlers

import (
	"github.com/gofiber/fiber/v2"

	"inventory/internal/services"
	"inventory/internal/validation"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name        formValue `json:"name" form:"name"`
	Category    formValue `json:"category" form:"category"`
	Price       formValue `json:"price" form:"price"`
	Quantity    formValue `json:"quantity" form:"quantity"`
	Description formValue `json:"description" form:"description"`
}

// HandleGetProducts lists all products, or those matching ?q= when given.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	query := c.Query("q")
	products, err := h.service.SearchProducts(c.UserContext(), query)
	if err != nil {
		return respondError(c, err, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleCreateProduct validates the submitted fields and stores the product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	product, err := h.service.AddProduct(c.UserContext(), validation.ProductInput{
		Name:        string(req.Name),
		Category:    string(req.Category),
		Price:       string(req.Price),
		Quantity:    string(req.Quantity),
		Description: string(req.Description),
	})
	if err != nil {
		return respondError(c, err, "Could not add product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "")
	}

	removed, err := h.service.DeleteProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Could not delete product")
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found or already deleted",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
