package routes

import (
	"github.com/gecwayanad/admission-go/internal/api/handlers"
	"github.com/gecwayanad/admission-go/internal/api/middleware"
	"github.com/gecwayanad/admission-go/internal/application"
	"github.com/gecwayanad/admission-go/internal/config/db"
	"github.com/gecwayanad/admission-go/internal/repository"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine) {
	// init
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos)
	h := handlers.New(services, r)

	// public
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/admin/login", h.Auth.AdminLogin)
		auth.POST("/seed-admin", h.Auth.SeedAdmin)
	}

	chatbot := r.Group("/chatbot")
	{
		chatbot.POST("/query", h.Chatbot.Query)
		chatbot.POST("/seed", h.Chatbot.Seed)
	}

	// uploaded documents are served back by opaque object name
	r.GET("/uploads/*file", h.Student.Download)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// applicant routes
	studentGroup := r.Group("/student")
	studentGroup.Use(middleware.JWTAuthMiddleware(), middleware.StudentOnly())
	{
		studentGroup.GET("/profile", h.Student.Profile)
		studentGroup.PUT("/update", h.Student.Update)
		studentGroup.POST("/upload", h.Student.Upload)
	}

	// admin routes (branch scope enforced in the application layer)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnly())
	{
		adminGroup.GET("/students", h.Admin.GetStudents)
		adminGroup.POST("/verify", h.Admin.VerifyDocument)
		adminGroup.POST("/update-status", h.Admin.UpdateStatus)
		adminGroup.POST("/update-remarks", h.Admin.UpdateRemarks)
	}
}
