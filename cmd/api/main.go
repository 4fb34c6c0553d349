package main

import (
	"log"

	_ "github.com/gecwayanad/admission-go/docs"
	"github.com/gecwayanad/admission-go/internal/api/middleware"
	"github.com/gecwayanad/admission-go/internal/api/routes"
	"github.com/gecwayanad/admission-go/internal/application"
	"github.com/gecwayanad/admission-go/internal/config"
	"github.com/gecwayanad/admission-go/internal/config/db"
	"github.com/gecwayanad/admission-go/internal/domain/admin"
	"github.com/gecwayanad/admission-go/internal/domain/knowledge"
	"github.com/gecwayanad/admission-go/internal/domain/student"
	"github.com/gecwayanad/admission-go/internal/repository"
	"github.com/gecwayanad/admission-go/internal/seed"
	"github.com/gecwayanad/admission-go/minio"
	"github.com/gin-gonic/gin"
)

// @title GECW Admission Management API
// @version 1.0
// @description REST backend for the GEC Wayanad college admission system.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and object storage
	db.Init()
	minio.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&student.Student{},
		&student.Document{},
		&admin.Admin{},
		&knowledge.Entry{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos)

	// Make sure a fresh deployment is usable without manual provisioning
	if err := services.Auth.SeedDefaultAdmin(); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}
	if empty, err := services.Knowledge.IsEmpty(); err == nil && empty {
		entries, err := seed.KnowledgeEntries()
		if err != nil {
			log.Fatalf("Failed to load knowledge seed: %v", err)
		}
		if err := services.Knowledge.Seed(entries); err != nil {
			log.Fatalf("Failed to seed knowledge base: %v", err)
		}
		log.Println("Knowledge base seeded")
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
