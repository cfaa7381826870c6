package server

import (
	"campushire/internal/models"
	"campushire/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UpsertUserRequest is the identity payload pushed by the auth provider.
type UpsertUserRequest struct {
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// UpsertUser handles POST /api/users. It creates the user on first sight of
// the externalId and updates the profile fields on every call after that.
func (s *Server) UpsertUser(c *fiber.Ctx) error {
	var req UpsertUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Upsert(c.UserContext(), service.UpsertUserInput{
		ExternalID: req.ExternalID,
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
