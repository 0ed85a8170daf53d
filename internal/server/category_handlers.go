package server

import (
	"prayerhub/internal/models"
	"prayerhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryService.List(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(categories)
}

// GetCategory handles GET /api/categories/:id
func (s *Server) GetCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	category, err := s.categoryService.Get(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(category)
}

// CreateCategory handles POST /api/categories
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryService.Create(c.UserContext(), userID, service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory handles PUT /api/categories/:id
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryService.Update(c.UserContext(), id, userID, service.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(category)
}

// DeleteCategory handles DELETE /api/categories/:id
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	if err := s.categoryService.Delete(c.UserContext(), id, userID); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
