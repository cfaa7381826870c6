package server

import (
	"io"

	"campushire/internal/models"
	"campushire/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UpdateApplicationRequest is the payload for changing an application's status.
type UpdateApplicationRequest struct {
	Status string `json:"status"`
}

// GetApplications handles GET /api/applications?jobId=&student=&jobIds=
func (s *Server) GetApplications(c *fiber.Ctx) error {
	apps, err := s.applicationService.List(c.UserContext(), service.ListApplicationsInput{
		JobID:   c.Query("jobId"),
		Student: c.Query("student"),
		JobIDs:  c.Query("jobIds"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(apps)
}

// GetApplication handles GET /api/applications/:id
func (s *Server) GetApplication(c *fiber.Ctx) error {
	app, err := s.applicationService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(app)
}

// CreateApplication handles POST /api/applications. The request is
// multipart/form-data with fields jobId, studentId, cover_letter and an
// optional "resume" file part.
func (s *Server) CreateApplication(c *fiber.Ctx) error {
	in := service.CreateApplicationInput{
		JobID:       c.FormValue("jobId"),
		StudentID:   c.FormValue("studentId"),
		CoverLetter: c.FormValue("cover_letter"),
	}

	if file, err := c.FormFile("resume"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Unable to read resume file"))
		}
		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Unable to read resume file"))
		}
		in.Resume = &service.ResumeUpload{
			Filename: file.Filename,
			Content:  content,
		}
	}

	app, err := s.applicationService.Create(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

// UpdateApplication handles PUT /api/applications/:id
func (s *Server) UpdateApplication(c *fiber.Ctx) error {
	var req UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	app, err := s.applicationService.UpdateStatus(c.UserContext(), c.Params("id"),
		models.ApplicationStatus(req.Status))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(app)
}

// DeleteApplication handles DELETE /api/applications/:id
func (s *Server) DeleteApplication(c *fiber.Ctx) error {
	if err := s.applicationService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(deletedResponse("Application"))
}
