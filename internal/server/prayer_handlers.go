package server

import (
	"prayerhub/internal/models"
	"prayerhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPrayers handles GET /api/prayers
func (s *Server) GetPrayers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	prayers, err := s.prayerService.List(c.UserContext(), userID, page.Limit, page.Offset)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(prayers)
}

// GetPrayer handles GET /api/prayers/:id
func (s *Server) GetPrayer(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	prayer, err := s.prayerService.Get(c.UserContext(), id, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(prayer)
}

// CreatePrayer handles POST /api/prayers
func (s *Server) CreatePrayer(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title        string              `json:"title"`
		Content      string              `json:"content"`
		CategoryID   *uint               `json:"category_id"`
		Status       models.PrayerStatus `json:"status"`
		PrivacyLevel models.PrivacyLevel `json:"privacy_level"`
		GroupID      *uint               `json:"group_id"`
		IsAnonymous  bool                `json:"is_anonymous"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prayer, err := s.prayerService.Create(c.UserContext(), userID, service.CreatePrayerInput{
		Title:        req.Title,
		Content:      req.Content,
		CategoryID:   req.CategoryID,
		Status:       req.Status,
		PrivacyLevel: req.PrivacyLevel,
		GroupID:      req.GroupID,
		IsAnonymous:  req.IsAnonymous,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(prayer)
}

// UpdatePrayer handles PUT /api/prayers/:id
func (s *Server) UpdatePrayer(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	var req struct {
		Title        *string              `json:"title"`
		Content      *string              `json:"content"`
		CategoryID   *uint                `json:"category_id"`
		Status       *models.PrayerStatus `json:"status"`
		PrivacyLevel *models.PrivacyLevel `json:"privacy_level"`
		IsAnonymous  *bool                `json:"is_anonymous"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prayer, err := s.prayerService.Update(c.UserContext(), id, userID, service.UpdatePrayerInput{
		Title:        req.Title,
		Content:      req.Content,
		CategoryID:   req.CategoryID,
		Status:       req.Status,
		PrivacyLevel: req.PrivacyLevel,
		IsAnonymous:  req.IsAnonymous,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(prayer)
}

// DeletePrayer handles DELETE /api/prayers/:id
func (s *Server) DeletePrayer(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	if err := s.prayerService.Delete(c.UserContext(), id, userID); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Intercede handles POST /api/prayers/:id/pray
func (s *Server) Intercede(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	count, err := s.prayerService.Intercede(c.UserContext(), id, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"prayer_count": count,
	})
}
