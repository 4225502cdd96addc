package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorhub/internal/app/models/dto"
	"github.com/yigit/mentorhub/internal/app/services"
	"github.com/yigit/mentorhub/internal/middleware"
)

// ConnectionController handles student-mentor connection endpoints
type ConnectionController struct {
	connectionService *services.ConnectionService
}

// NewConnectionController creates a new ConnectionController
func NewConnectionController(connectionService *services.ConnectionService) *ConnectionController {
	return &ConnectionController{
		connectionService: connectionService,
	}
}

// Create records a new connection request
// @Summary Create a connection request
// @Description Records a PENDING connection between a student and a mentor. The pair must not already be connected.
// @Tags connections
// @Accept json
// @Produce json
// @Param request body dto.CreateConnectionRequest true "Connection request"
// @Success 200 {object} dto.APIResponse{data=models.StudentMentorConnection}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or mentor not found"
// @Failure 409 {object} dto.ErrorResponse "Connection already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections [post]
func (c *ConnectionController) Create(ctx *gin.Context) {
	var req dto.CreateConnectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	connection, err := c.connectionService.Create(ctx, req.StudentID, req.MentorID, req.SelectedSkills)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connection,
		Timestamp: time.Now(),
	})
}

// GetAll retrieves all connections
// @Summary Get all connections
// @Tags connections
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.StudentMentorConnection}
// @Success 204 "No connections found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections [get]
func (c *ConnectionController) GetAll(ctx *gin.Context) {
	connections, err := c.connectionService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(connections) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connections,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves a connection by ID
// @Summary Get connection by ID
// @Tags connections
// @Produce json
// @Param id path int true "Connection ID"
// @Success 200 {object} dto.APIResponse{data=models.StudentMentorConnection}
// @Failure 400 {object} dto.ErrorResponse "Invalid connection ID"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections/{id} [get]
func (c *ConnectionController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	connection, err := c.connectionService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connection,
		Timestamp: time.Now(),
	})
}

// GetByStudent retrieves all connections for a student
// @Summary Get connections by student
// @Tags connections
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentMentorConnection}
// @Success 204 "No connections found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections/student/{id} [get]
func (c *ConnectionController) GetByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	connections, err := c.connectionService.GetByStudentID(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(connections) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connections,
		Timestamp: time.Now(),
	})
}

// GetByMentor retrieves all connections for a mentor
// @Summary Get connections by mentor
// @Tags connections
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentMentorConnection}
// @Success 204 "No connections found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections/mentor/{id} [get]
func (c *ConnectionController) GetByMentor(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	connections, err := c.connectionService.GetByMentorID(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(connections) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connections,
		Timestamp: time.Now(),
	})
}

// GetByStudentEmail retrieves all connections for a student email
// @Summary Get connections by student email
// @Tags connections
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentMentorConnection}
// @Success 204 "No connections found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections/student/email/{email} [get]
func (c *ConnectionController) GetByStudentEmail(ctx *gin.Context) {
	connections, err := c.connectionService.GetByStudentEmail(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(connections) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connections,
		Timestamp: time.Now(),
	})
}

// GetByMentorEmail retrieves all connections for a mentor email
// @Summary Get connections by mentor email
// @Tags connections
// @Produce json
// @Param email path string true "Mentor email"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentMentorConnection}
// @Success 204 "No connections found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections/mentor/email/{email} [get]
func (c *ConnectionController) GetByMentorEmail(ctx *gin.Context) {
	connections, err := c.connectionService.GetByMentorEmail(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(connections) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connections,
		Timestamp: time.Now(),
	})
}

// GetByStatus retrieves all connections in a given status
// @Summary Get connections by status
// @Tags connections
// @Produce json
// @Param status path string true "Connection status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {object} dto.APIResponse{data=[]models.StudentMentorConnection}
// @Success 204 "No connections found"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections/status/{status} [get]
func (c *ConnectionController) GetByStatus(ctx *gin.Context) {
	connections, err := c.connectionService.GetByStatus(ctx, ctx.Param("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(connections) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connections,
		Timestamp: time.Now(),
	})
}

// GetPendingForMentor returns a mentor's inbox of pending connection requests
// @Summary Get pending connections for a mentor
// @Tags connections
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentMentorConnection}
// @Success 204 "No pending connections"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections/mentor/{id}/pending [get]
func (c *ConnectionController) GetPendingForMentor(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	connections, err := c.connectionService.GetPendingForMentor(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(connections) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connections,
		Timestamp: time.Now(),
	})
}

// GetApprovedForStudent returns a student's approved connections
// @Summary Get approved connections for a student
// @Tags connections
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentMentorConnection}
// @Success 204 "No approved connections"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections/student/{id}/approved [get]
func (c *ConnectionController) GetApprovedForStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	connections, err := c.connectionService.GetApprovedForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(connections) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connections,
		Timestamp: time.Now(),
	})
}

// UpdateStatus moves a connection to a new status
// @Summary Update connection status
// @Description Moves a connection to a new status; the transition must be legal
// @Tags connections
// @Accept json
// @Produce json
// @Param id path int true "Connection ID"
// @Param request body dto.UpdateConnectionStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.StudentMentorConnection}
// @Failure 400 {object} dto.ErrorResponse "Unknown status or illegal transition"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections/{id}/status [put]
func (c *ConnectionController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateConnectionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	connection, err := c.connectionService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      connection,
		Timestamp: time.Now(),
	})
}

// Delete hard-deletes a connection
// @Summary Delete a connection
// @Tags connections
// @Produce json
// @Param id path int true "Connection ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid connection ID"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /connections/{id} [delete]
func (c *ConnectionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.connectionService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Connection deleted successfully"},
		Timestamp: time.Now(),
	})
}
