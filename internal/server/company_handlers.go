package server

import (
	"campushire/internal/models"
	"campushire/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateCompanyRequest is the payload for creating a company.
type CreateCompanyRequest struct {
	Name  string `json:"name"`
	About string `json:"about"`
}

// UpdateCompanyRequest is the payload for partially updating a company.
type UpdateCompanyRequest struct {
	Name  *string `json:"name"`
	About *string `json:"about"`
}

// GetCompanies handles GET /api/companies
func (s *Server) GetCompanies(c *fiber.Ctx) error {
	companies, err := s.companyService.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(companies)
}

// GetCompany handles GET /api/companies/:id
func (s *Server) GetCompany(c *fiber.Ctx) error {
	company, err := s.companyService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(company)
}

// CreateCompany handles POST /api/companies
func (s *Server) CreateCompany(c *fiber.Ctx) error {
	var req CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	company, err := s.companyService.Create(c.UserContext(), req.Name, req.About)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// UpdateCompany handles PUT /api/companies/:id
func (s *Server) UpdateCompany(c *fiber.Ctx) error {
	var req UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	company, err := s.companyService.Update(c.UserContext(), c.Params("id"), service.UpdateCompanyInput{
		Name:  req.Name,
		About: req.About,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(company)
}

// DeleteCompany handles DELETE /api/companies/:id. Jobs and follow
// requests referencing the company are intentionally left in place.
func (s *Server) DeleteCompany(c *fiber.Ctx) error {
	if err := s.companyService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(deletedResponse("Company"))
}
