package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/app/models/dto"
	"github.com/yigit/mentorhub/internal/app/services"
	"github.com/yigit/mentorhub/internal/middleware"
)

// MentorController handles mentor-related endpoints
type MentorController struct {
	mentorService *services.MentorService
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService *services.MentorService) *MentorController {
	return &MentorController{
		mentorService: mentorService,
	}
}

// Register handles mentor registration
// @Summary Register a new mentor
// @Description Creates a new mentor account with a hashed password
// @Tags mentors
// @Accept json
// @Produce json
// @Param request body dto.RegisterMentorRequest true "Mentor information"
// @Success 200 {object} dto.APIResponse{data=models.Mentor} "Mentor registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors [post]
func (c *MentorController) Register(ctx *gin.Context) {
	var req dto.RegisterMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	mentor := &models.Mentor{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		CalendlyLink: req.CalendlyLink,
	}

	if err := c.mentorService.Register(ctx, mentor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      mentor,
		Timestamp: time.Now(),
	})
}

// Login handles mentor login
// @Summary Mentor login
// @Description Verifies credentials and returns an identity descriptor
// @Tags mentors
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors/login [post]
func (c *MentorController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	mentor, err := c.mentorService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.LoginResponse{
			Message:  "Login successful",
			UserType: "mentor",
			Email:    mentor.Email,
			Name:     mentor.Name,
			ID:       mentor.ID,
		},
		Timestamp: time.Now(),
	})
}

// GetAll retrieves all mentors with their skills
// @Summary Get all mentors
// @Tags mentors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Mentor}
// @Success 204 "No mentors found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors [get]
func (c *MentorController) GetAll(ctx *gin.Context) {
	mentors, err := c.mentorService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(mentors) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      mentors,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves a mentor by ID
// @Summary Get mentor by ID
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=models.Mentor}
// @Failure 400 {object} dto.ErrorResponse "Invalid mentor ID"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors/{id} [get]
func (c *MentorController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	mentor, err := c.mentorService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      mentor,
		Timestamp: time.Now(),
	})
}

// GetByEmail retrieves a mentor by email
// @Summary Get mentor by email
// @Tags mentors
// @Produce json
// @Param email path string true "Mentor email"
// @Success 200 {object} dto.APIResponse{data=models.Mentor}
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors/email/{email} [get]
func (c *MentorController) GetByEmail(ctx *gin.Context) {
	email := ctx.Param("email")

	mentor, err := c.mentorService.GetByEmail(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      mentor,
		Timestamp: time.Now(),
	})
}

// Update updates an existing mentor
// @Summary Update a mentor
// @Description Overwrites non-empty fields of an existing mentor
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path int true "Mentor ID"
// @Param request body dto.UpdateMentorRequest true "Updated mentor information"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors/{id} [put]
func (c *MentorController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	updated := &models.Mentor{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		CalendlyLink: req.CalendlyLink,
	}

	if err := c.mentorService.Update(ctx, id, updated); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Mentor updated successfully"},
		Timestamp: time.Now(),
	})
}

// Delete deletes a mentor
// @Summary Delete a mentor
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid mentor ID"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors/{id} [delete]
func (c *MentorController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.mentorService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Mentor deleted successfully"},
		Timestamp: time.Now(),
	})
}

// GetCalendlyLink retrieves a mentor's scheduling link
// @Summary Get mentor calendly link
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=string}
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors/{id}/calendly-link [get]
func (c *MentorController) GetCalendlyLink(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	link, err := c.mentorService.GetCalendlyLink(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"calendlyLink": link},
		Timestamp: time.Now(),
	})
}

// UpdateCalendlyLink replaces a mentor's scheduling link
// @Summary Update mentor calendly link
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path int true "Mentor ID"
// @Param request body dto.UpdateCalendlyLinkRequest true "New calendly link"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors/{id}/calendly-link [put]
func (c *MentorController) UpdateCalendlyLink(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCalendlyLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.mentorService.UpdateCalendlyLink(ctx, id, req.CalendlyLink); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Calendly link updated successfully"},
		Timestamp: time.Now(),
	})
}
