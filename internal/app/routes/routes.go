package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorhub/internal/app/controllers"
	"github.com/yigit/mentorhub/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	mentorController *controllers.MentorController,
	skillController *controllers.SkillController,
	meetingController *controllers.MeetingController,
	connectionController *controllers.ConnectionController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.Register)
		students.POST("/login", studentController.Login)
		students.GET("", studentController.GetAll)
		students.GET("/:id", studentController.GetByID)
		students.GET("/email/:email", studentController.GetByEmail)
		students.PUT("/:id", studentController.Update)
		students.DELETE("/:id", studentController.Delete)
	}

	// Mentor routes, including skill tagging and the calendly link
	mentors := v1.Group("/mentors")
	{
		mentors.POST("", mentorController.Register)
		mentors.POST("/login", mentorController.Login)
		mentors.GET("", mentorController.GetAll)
		mentors.GET("/:id", mentorController.GetByID)
		mentors.GET("/email/:email", mentorController.GetByEmail)
		mentors.PUT("/:id", mentorController.Update)
		mentors.DELETE("/:id", mentorController.Delete)

		mentors.GET("/:id/skills", skillController.GetMentorSkills)
		mentors.POST("/:id/skills", skillController.AttachSkills)
		mentors.DELETE("/:id/skills", skillController.DetachSkills)
		mentors.DELETE("/:id/skills/:name", skillController.DetachSkill)

		mentors.GET("/:id/calendly-link", mentorController.GetCalendlyLink)
		mentors.PUT("/:id/calendly-link", mentorController.UpdateCalendlyLink)
	}

	// Skill catalog routes
	skills := v1.Group("/skills")
	{
		skills.POST("", skillController.Create)
		skills.GET("", skillController.GetAll)
		skills.GET("/:id", skillController.GetByID)
		skills.GET("/name/:name", skillController.GetByName)
		skills.PUT("/:id", skillController.Update)
		skills.DELETE("/:id", skillController.Delete)
	}

	// Meeting lifecycle routes
	meetings := v1.Group("/meetings")
	{
		meetings.POST("", meetingController.Create)
		meetings.POST("/request", meetingController.Create) // legacy alias
		meetings.GET("", meetingController.GetAll)
		meetings.GET("/:id", meetingController.GetByID)
		meetings.GET("/:id/details", meetingController.GetDetails)
		meetings.GET("/student/:id", meetingController.GetByStudent)
		meetings.GET("/student/:id/details", meetingController.GetByStudentWithDetails)
		meetings.GET("/student/:id/upcoming", meetingController.GetUpcomingForStudent)
		meetings.GET("/mentor/:id", meetingController.GetByMentor)
		meetings.GET("/mentor/:id/details", meetingController.GetByMentorWithDetails)
		meetings.GET("/mentor/:id/pending", meetingController.GetPendingForMentor)
		meetings.GET("/mentor/:id/requests", meetingController.GetByMentorWithDetails) // legacy alias
		meetings.GET("/status/:status", meetingController.GetByStatus)
		meetings.PUT("/:id", meetingController.UpdateStatus) // legacy alias
		meetings.PUT("/:id/status", meetingController.UpdateStatus)
		meetings.PUT("/:id/cancel", meetingController.Cancel)
		meetings.DELETE("/:id", meetingController.Delete)
	}

	// Connection lifecycle routes, also served under the long-form path
	registerConnectionRoutes(v1.Group("/connections"), connectionController)
	registerConnectionRoutes(v1.Group("/student-mentor-connections"), connectionController) // legacy alias

	// Health check endpoint
	registerHealth(v1)
}

func registerConnectionRoutes(connections *gin.RouterGroup, connectionController *controllers.ConnectionController) {
	connections.POST("", connectionController.Create)
	connections.GET("", connectionController.GetAll)
	connections.GET("/:id", connectionController.GetByID)
	connections.GET("/student/:id", connectionController.GetByStudent)
	connections.GET("/student/:id/approved", connectionController.GetApprovedForStudent)
	connections.GET("/student/email/:email", connectionController.GetByStudentEmail)
	connections.GET("/mentor/:id", connectionController.GetByMentor)
	connections.GET("/mentor/:id/pending", connectionController.GetPendingForMentor)
	connections.GET("/mentor/email/:email", connectionController.GetByMentorEmail)
	connections.GET("/status/:status", connectionController.GetByStatus)
	connections.PUT("/:id/status", connectionController.UpdateStatus)
	connections.DELETE("/:id", connectionController.Delete)
}

func registerHealth(v1 *gin.RouterGroup) {
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
