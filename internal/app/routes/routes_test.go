package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/mentorhub/internal/app/controllers"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(router,
		controllers.NewStudentController(nil),
		controllers.NewMentorController(nil),
		controllers.NewSkillController(nil),
		controllers.NewMeetingController(nil),
		controllers.NewConnectionController(nil),
	)
	return router
}

func registeredRoutes(router *gin.Engine) map[string]bool {
	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestMeetingDetailRoutesRegistered(t *testing.T) {
	routes := registeredRoutes(newTestRouter())

	assert.True(t, routes["GET /api/v1/meetings/student/:id/details"])
	assert.True(t, routes["GET /api/v1/meetings/mentor/:id/details"])
	assert.True(t, routes["GET /api/v1/meetings/mentor/:id/requests"])
}

func TestConnectionRoutesServedUnderBothPaths(t *testing.T) {
	routes := registeredRoutes(newTestRouter())

	for _, path := range []string{"/connections", "/student-mentor-connections"} {
		assert.True(t, routes["POST /api/v1"+path], path)
		assert.True(t, routes["GET /api/v1"+path+"/mentor/:id/pending"], path)
		assert.True(t, routes["PUT /api/v1"+path+"/:id/status"], path)
	}
}
