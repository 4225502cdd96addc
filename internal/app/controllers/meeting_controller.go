package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorhub/internal/app/models/dto"
	"github.com/yigit/mentorhub/internal/app/services"
	"github.com/yigit/mentorhub/internal/middleware"
)

// MeetingController handles meeting lifecycle endpoints
type MeetingController struct {
	meetingService *services.MeetingService
}

// NewMeetingController creates a new MeetingController
func NewMeetingController(meetingService *services.MeetingService) *MeetingController {
	return &MeetingController{
		meetingService: meetingService,
	}
}

// Create records a new meeting request
// @Summary Create a meeting request
// @Description Records a PENDING meeting request from a student to a mentor
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body dto.CreateMeetingRequest true "Meeting request"
// @Success 200 {object} dto.APIResponse{data=models.Meeting}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings [post]
func (c *MeetingController) Create(ctx *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	meeting, err := c.meetingService.Create(ctx, req.StudentID, req.MentorID, req.SelectedSkills, req.Question)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meeting,
		Timestamp: time.Now(),
	})
}

// GetAll retrieves all meetings
// @Summary Get all meetings
// @Tags meetings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Meeting}
// @Success 204 "No meetings found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings [get]
func (c *MeetingController) GetAll(ctx *gin.Context) {
	meetings, err := c.meetingService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(meetings) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meetings,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves a meeting by ID
// @Summary Get meeting by ID
// @Tags meetings
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {object} dto.APIResponse{data=models.Meeting}
// @Failure 400 {object} dto.ErrorResponse "Invalid meeting ID"
// @Failure 404 {object} dto.ErrorResponse "Meeting not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/{id} [get]
func (c *MeetingController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	meeting, err := c.meetingService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meeting,
		Timestamp: time.Now(),
	})
}

// GetDetails retrieves a meeting with both parties joined in
// @Summary Get meeting details
// @Tags meetings
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {object} dto.APIResponse{data=models.MeetingDetails}
// @Failure 404 {object} dto.ErrorResponse "Meeting, student or mentor not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/{id}/details [get]
func (c *MeetingController) GetDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	details, err := c.meetingService.GetDetails(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      details,
		Timestamp: time.Now(),
	})
}

// GetByStudent retrieves all meetings requested by a student
// @Summary Get meetings by student
// @Tags meetings
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Meeting}
// @Success 204 "No meetings found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/student/{id} [get]
func (c *MeetingController) GetByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	meetings, err := c.meetingService.GetByStudentID(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(meetings) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meetings,
		Timestamp: time.Now(),
	})
}

// GetByMentor retrieves all meetings addressed to a mentor
// @Summary Get meetings by mentor
// @Tags meetings
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Meeting}
// @Success 204 "No meetings found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/mentor/{id} [get]
func (c *MeetingController) GetByMentor(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	meetings, err := c.meetingService.GetByMentorID(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(meetings) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meetings,
		Timestamp: time.Now(),
	})
}

// GetByStatus retrieves all meetings in a given status
// @Summary Get meetings by status
// @Tags meetings
// @Produce json
// @Param status path string true "Meeting status" Enums(PENDING, APPROVED, REJECTED, COMPLETED, CANCELLED)
// @Success 200 {object} dto.APIResponse{data=[]models.Meeting}
// @Success 204 "No meetings found"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/status/{status} [get]
func (c *MeetingController) GetByStatus(ctx *gin.Context) {
	meetings, err := c.meetingService.GetByStatus(ctx, ctx.Param("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(meetings) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meetings,
		Timestamp: time.Now(),
	})
}

// GetPendingForMentor returns a mentor's inbox of pending requests
// @Summary Get pending meeting requests for a mentor
// @Description Returns PENDING requests with the requesting student joined in, oldest first
// @Tags meetings
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MeetingWithStudent}
// @Success 204 "No pending requests"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/mentor/{id}/pending [get]
func (c *MeetingController) GetPendingForMentor(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	requests, err := c.meetingService.GetPendingForMentor(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(requests) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// GetByMentorWithDetails retrieves all of a mentor's meetings with student details
// @Summary Get a mentor's meetings with student details
// @Description Returns all of a mentor's meetings regardless of status with the requesting student joined in
// @Tags meetings
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MeetingWithStudent}
// @Success 204 "No meetings found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/mentor/{id}/details [get]
func (c *MeetingController) GetByMentorWithDetails(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	meetings, err := c.meetingService.GetByMentorWithDetails(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(meetings) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meetings,
		Timestamp: time.Now(),
	})
}

// GetByStudentWithDetails retrieves all of a student's meetings with mentor details
// @Summary Get a student's meetings with mentor details
// @Description Returns all of a student's meetings regardless of status with the mentor joined in
// @Tags meetings
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MeetingWithMentor}
// @Success 204 "No meetings found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/student/{id}/details [get]
func (c *MeetingController) GetByStudentWithDetails(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	meetings, err := c.meetingService.GetByStudentWithDetails(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(meetings) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meetings,
		Timestamp: time.Now(),
	})
}

// GetUpcomingForStudent returns a student's pending and approved meetings
// @Summary Get upcoming meetings for a student
// @Description Returns PENDING and APPROVED meetings with the mentor joined in, oldest first
// @Tags meetings
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MeetingWithMentor}
// @Success 204 "No upcoming meetings"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/student/{id}/upcoming [get]
func (c *MeetingController) GetUpcomingForStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	meetings, err := c.meetingService.GetUpcomingForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(meetings) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meetings,
		Timestamp: time.Now(),
	})
}

// UpdateStatus moves a meeting to a new status
// @Summary Update meeting status
// @Description Moves a meeting to a new status; the transition must be legal
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Param request body dto.UpdateMeetingStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Meeting}
// @Failure 400 {object} dto.ErrorResponse "Unknown status or illegal transition"
// @Failure 404 {object} dto.ErrorResponse "Meeting not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/{id}/status [put]
func (c *MeetingController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMeetingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	meeting, err := c.meetingService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meeting,
		Timestamp: time.Now(),
	})
}

// Cancel cancels a meeting on behalf of one of its parties
// @Summary Cancel a meeting
// @Description Cancels a meeting; the caller must be the meeting's student or mentor
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Param request body dto.CancelMeetingRequest true "Cancelling party"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Not the meeting owner or meeting not cancellable"
// @Failure 404 {object} dto.ErrorResponse "Meeting not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/{id}/cancel [put]
func (c *MeetingController) Cancel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CancelMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.meetingService.Cancel(ctx, id, req.Role, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Meeting cancelled successfully"},
		Timestamp: time.Now(),
	})
}

// Delete hard-deletes a meeting
// @Summary Delete a meeting
// @Tags meetings
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid meeting ID"
// @Failure 404 {object} dto.ErrorResponse "Meeting not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /meetings/{id} [delete]
func (c *MeetingController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.meetingService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Meeting deleted successfully"},
		Timestamp: time.Now(),
	})
}
