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

// SkillController handles the skill catalog and mentor skill tagging endpoints
type SkillController struct {
	skillService *services.SkillService
}

// NewSkillController creates a new SkillController
func NewSkillController(skillService *services.SkillService) *SkillController {
	return &SkillController{
		skillService: skillService,
	}
}

// Create adds a new skill to the catalog
// @Summary Create a new skill
// @Tags skills
// @Accept json
// @Produce json
// @Param request body dto.CreateSkillRequest true "Skill information"
// @Success 200 {object} dto.APIResponse{data=models.Skill}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Skill already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /skills [post]
func (c *SkillController) Create(ctx *gin.Context) {
	var req dto.CreateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	skill := &models.Skill{Name: req.Name}
	if err := c.skillService.Create(ctx, skill); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skill,
		Timestamp: time.Now(),
	})
}

// GetAll retrieves the full skill catalog
// @Summary Get all skills
// @Tags skills
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Skill}
// @Success 204 "No skills found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /skills [get]
func (c *SkillController) GetAll(ctx *gin.Context) {
	skills, err := c.skillService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(skills) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skills,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves a skill by ID
// @Summary Get skill by ID
// @Tags skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} dto.APIResponse{data=models.Skill}
// @Failure 400 {object} dto.ErrorResponse "Invalid skill ID"
// @Failure 404 {object} dto.ErrorResponse "Skill not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /skills/{id} [get]
func (c *SkillController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	skill, err := c.skillService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skill,
		Timestamp: time.Now(),
	})
}

// Update renames an existing skill
// @Summary Update a skill
// @Tags skills
// @Accept json
// @Produce json
// @Param id path int true "Skill ID"
// @Param request body dto.UpdateSkillRequest true "New skill name"
// @Success 200 {object} dto.APIResponse{data=models.Skill}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Skill not found"
// @Failure 409 {object} dto.ErrorResponse "Skill name already taken"
// @Failure 500 {object} dto.ErrorResponse
// @Router /skills/{id} [put]
func (c *SkillController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	skill, err := c.skillService.Update(ctx, id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skill,
		Timestamp: time.Now(),
	})
}

// Delete removes a skill from the catalog
// @Summary Delete a skill
// @Description Deletes a skill; fails while any mentor still holds it
// @Tags skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid skill ID"
// @Failure 404 {object} dto.ErrorResponse "Skill not found"
// @Failure 409 {object} dto.ErrorResponse "Skill still attached to mentors"
// @Failure 500 {object} dto.ErrorResponse
// @Router /skills/{id} [delete]
func (c *SkillController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.skillService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Skill deleted successfully"},
		Timestamp: time.Now(),
	})
}

// GetMentorSkills retrieves the skills attached to a mentor
// @Summary Get mentor skills
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Skill}
// @Success 204 "Mentor has no skills"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors/{id}/skills [get]
func (c *SkillController) GetMentorSkills(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	skills, err := c.skillService.SkillsOfMentor(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(skills) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skills,
		Timestamp: time.Now(),
	})
}

// AttachSkills attaches named skills to a mentor
// @Summary Attach skills to a mentor
// @Description Attaches the named skills, creating catalog entries for names not seen before. Already-attached skills are skipped.
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path int true "Mentor ID"
// @Param request body dto.SkillNamesRequest true "Skill names"
// @Success 200 {object} dto.APIResponse{data=[]models.Skill} "Mentor's full skill set after attaching"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors/{id}/skills [post]
func (c *SkillController) AttachSkills(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SkillNamesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	skills, err := c.skillService.AttachSkills(ctx, mentorID, req.Skills)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skills,
		Timestamp: time.Now(),
	})
}

// DetachSkill removes a single named skill from a mentor
// @Summary Detach a skill from a mentor
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Param name path string true "Skill name"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Skill not attached to this mentor"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors/{id}/skills/{name} [delete]
func (c *SkillController) DetachSkill(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.skillService.DetachSkillByName(ctx, mentorID, ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Skill removed from mentor"},
		Timestamp: time.Now(),
	})
}

// DetachSkills removes named skills from a mentor in bulk
// @Summary Detach skills from a mentor
// @Description Removes the named skills; names not attached to the mentor are skipped
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path int true "Mentor ID"
// @Param request body dto.SkillNamesRequest true "Skill names"
// @Success 200 {object} dto.APIResponse{data=[]models.Skill} "Mentor's remaining skill set"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or mentor has no skills"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentors/{id}/skills [delete]
func (c *SkillController) DetachSkills(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SkillNamesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	skills, err := c.skillService.DetachSkills(ctx, mentorID, req.Skills)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skills,
		Timestamp: time.Now(),
	})
}

// GetByName retrieves a skill by its exact name
// @Summary Get skill by name
// @Tags skills
// @Produce json
// @Param name path string true "Skill name"
// @Success 200 {object} dto.APIResponse{data=models.Skill}
// @Failure 404 {object} dto.ErrorResponse "Skill not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /skills/name/{name} [get]
func (c *SkillController) GetByName(ctx *gin.Context) {
	name := ctx.Param("name")

	skill, err := c.skillService.GetByName(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skill,
		Timestamp: time.Now(),
	})
}
