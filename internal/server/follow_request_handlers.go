package server

import (
	"campushire/internal/models"
	"campushire/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CreateFollowRequestRequest is the payload for a student following a company.
type CreateFollowRequestRequest struct {
	Student   string `json:"student"`
	CompanyID string `json:"companyId"`
}

// UpdateFollowRequestRequest is the payload for changing a follow request's status.
type UpdateFollowRequestRequest struct {
	Status string `json:"status"`
}

// GetFollowRequests handles GET /api/follow-requests?student=&companyId=
func (s *Server) GetFollowRequests(c *fiber.Ctx) error {
	requests, err := s.followService.List(c.UserContext(), repository.FollowRequestFilter{
		Student:   c.Query("student"),
		CompanyID: c.Query("companyId"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// GetFollowRequest handles GET /api/follow-requests/:id
func (s *Server) GetFollowRequest(c *fiber.Ctx) error {
	request, err := s.followService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(request)
}

// CreateFollowRequest handles POST /api/follow-requests
func (s *Server) CreateFollowRequest(c *fiber.Ctx) error {
	var req CreateFollowRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	request, err := s.followService.Create(c.UserContext(), req.Student, req.CompanyID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// UpdateFollowRequest handles PUT /api/follow-requests/:id
func (s *Server) UpdateFollowRequest(c *fiber.Ctx) error {
	var req UpdateFollowRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	request, err := s.followService.UpdateStatus(c.UserContext(), c.Params("id"),
		models.FollowRequestStatus(req.Status))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(request)
}

// DeleteFollowRequest handles DELETE /api/follow-requests/:id
func (s *Server) DeleteFollowRequest(c *fiber.Ctx) error {
	if err := s.followService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(deletedResponse("Follow request"))
}
