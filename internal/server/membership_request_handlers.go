package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMembershipRequests handles GET /api/groups/requests
func (s *Server) GetMembershipRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	requests, err := s.groupService.ListRequests(c.UserContext(), userID, page.Limit, page.Offset)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(requests)
}

// GetMembershipRequest handles GET /api/groups/requests/:id
func (s *Server) GetMembershipRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	request, err := s.groupService.GetRequest(c.UserContext(), id, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(request)
}

// ApproveMembershipRequest handles POST /api/groups/requests/:id/approve
func (s *Server) ApproveMembershipRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	request, err := s.groupService.ApproveRequest(c.UserContext(), id, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(request)
}

// RejectMembershipRequest handles POST /api/groups/requests/:id/reject
func (s *Server) RejectMembershipRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	request, err := s.groupService.RejectRequest(c.UserContext(), id, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(request)
}
