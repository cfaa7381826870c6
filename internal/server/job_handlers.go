package server

import (
	"campushire/internal/models"
	"campushire/internal/repository"
	"campushire/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateJobRequest is the payload for posting a job. Either CompanyID or
// Company (a name to resolve or create) must be supplied.
type CreateJobRequest struct {
	CompanyID    string  `json:"companyId"`
	Company      string  `json:"company"`
	RecruiterID  *string `json:"recruiterId"`
	Title        string  `json:"title"`
	Location     string  `json:"location"`
	Type         string  `json:"type"`
	Description  string  `json:"description"`
	SalaryRange  *string `json:"salary_range"`
	Requirements *string `json:"requirements"`
}

// UpdateJobRequest is the payload for partially updating a job.
type UpdateJobRequest struct {
	Title       *string `json:"title"`
	Location    *string `json:"location"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

// GetJobs handles GET /api/jobs?companyId=&recruiterId=
func (s *Server) GetJobs(c *fiber.Ctx) error {
	jobs, err := s.jobService.List(c.UserContext(), repository.JobFilter{
		CompanyID:   c.Query("companyId"),
		RecruiterID: c.Query("recruiterId"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(jobs)
}

// GetJob handles GET /api/jobs/:id
func (s *Server) GetJob(c *fiber.Ctx) error {
	job, err := s.jobService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(job)
}

// CreateJob handles POST /api/jobs
func (s *Server) CreateJob(c *fiber.Ctx) error {
	var req CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	job, err := s.jobService.Create(c.UserContext(), service.CreateJobInput{
		CompanyID:    req.CompanyID,
		CompanyName:  req.Company,
		RecruiterID:  req.RecruiterID,
		Title:        req.Title,
		Location:     req.Location,
		Type:         models.JobType(req.Type),
		Description:  req.Description,
		SalaryRange:  req.SalaryRange,
		Requirements: req.Requirements,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// UpdateJob handles PUT /api/jobs/:id
func (s *Server) UpdateJob(c *fiber.Ctx) error {
	var req UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.UpdateJobInput{
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
	}
	if req.Type != nil {
		jobType := models.JobType(*req.Type)
		in.Type = &jobType
	}

	job, err := s.jobService.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(job)
}

// DeleteJob handles DELETE /api/jobs/:id. Applications referencing the job
// are intentionally left in place.
func (s *Server) DeleteJob(c *fiber.Ctx) error {
	if err := s.jobService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(deletedResponse("Job"))
}
