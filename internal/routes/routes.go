package routes

import (
	"clinic-backend/internal/handlers"
	"clinic-backend/internal/middleware"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, secret string, auth *handlers.AuthHandler, doctors *handlers.DoctorHandler, patients *handlers.PatientHandler) {

	r.GET("/", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Patient Management System API", nil)
	})
	r.GET("/about", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Fully functional API for managing your patients", nil)
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/login", auth.Login)
	}

	// Everything below requires a valid bearer token
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(secret))
	{
		protected.GET("/doctor", doctors.List)
		protected.GET("/doctor/:id", doctors.Get)
		protected.DELETE("/doctor/:id", doctors.Delete)

		protected.GET("/view", patients.View)
		protected.GET("/patient/:id", patients.Get)
		protected.GET("/sort", patients.Sort)
		protected.POST("/create", patients.Create)
		protected.PUT("/edit/:id", patients.Edit)
		protected.DELETE("/delete/:id", patients.Delete)
	}
}
