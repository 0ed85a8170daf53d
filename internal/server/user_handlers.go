package server

import (
	"prayerhub/internal/models"
	"prayerhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(user)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		FullName *string `json:"full_name"`
		Phone    *string `json:"phone"`
		Bio      *string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return serviceError(c, err)
	}

	if req.FullName != nil {
		if err := validation.ValidateFullName(*req.FullName); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(user)
}

// DeleteMyAccount handles DELETE /api/users/me. Authored prayers are removed
// by the database cascade.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.userRepo.Delete(c.UserContext(), userID); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
