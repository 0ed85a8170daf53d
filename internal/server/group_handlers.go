package server

import (
	"prayerhub/internal/models"
	"prayerhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /api/groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	groups, err := s.groupService.List(c.UserContext(), userID, page.Limit, page.Offset)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(groups)
}

// GetGroup handles GET /api/groups/:id
func (s *Server) GetGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	group, err := s.groupService.Get(c.UserContext(), id, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(group)
}

// CreateGroup handles POST /api/groups
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IsPrivate   *bool  `json:"is_private"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.Create(c.UserContext(), userID, service.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

// UpdateGroup handles PUT /api/groups/:id
func (s *Server) UpdateGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		IsPrivate   *bool   `json:"is_private"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.Update(c.UserContext(), id, userID, service.UpdateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(group)
}

// DeleteGroup handles DELETE /api/groups/:id
func (s *Server) DeleteGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	if err := s.groupService.Delete(c.UserContext(), id, userID); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetGroupMembers handles GET /api/groups/:id/members
func (s *Server) GetGroupMembers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	members, err := s.groupService.Members(c.UserContext(), id, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(members)
}

// JoinGroup handles POST /api/groups/:id/join
func (s *Server) JoinGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	membership, err := s.groupService.Join(c.UserContext(), id, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(membership)
}

// RequestJoinGroup handles POST /api/groups/:id/request-join
func (s *Server) RequestJoinGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	var req struct {
		Reason string `json:"reason"`
	}
	// Body is optional; a bare POST files a request with no reason.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	request, err := s.groupService.RequestJoin(c.UserContext(), id, userID, req.Reason)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}
