package main

import (
	"log"

	"clinic-backend/internal/config"
	"clinic-backend/internal/handlers"
	"clinic-backend/internal/mailer"
	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/internal/routes"
	"clinic-backend/internal/storage"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Connect DB (doctors always live here)
	db, err := cfg.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	gormStore := storage.NewGormStore(db)
	if err := gormStore.Migrate(); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// 3. Pick the patient backend
	var patientStore storage.PatientStore = gormStore
	if cfg.StorageDriver == config.DriverJSON {
		patientStore = storage.NewJSONStore(cfg.DataFile)
		log.Println("Using flat-file patient storage:", cfg.DataFile)
	}

	// 4. Background mailer
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	mail.Start()

	// 5. Custom validation rules
	models.RegisterValidators()

	// 6. Init Router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(5, 10))

	authHandler := handlers.NewAuthHandler(gormStore, cfg.JWTSecret, cfg.TokenTTL)
	doctorHandler := handlers.NewDoctorHandler(gormStore)
	patientHandler := handlers.NewPatientHandler(patientStore, gormStore, mail)

	routes.SetupRoutes(r, cfg.JWTSecret, authHandler, doctorHandler, patientHandler)

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})

	// 7. Run Server
	log.Println("Server listening on port " + cfg.Port)
	r.Run(":" + cfg.Port)
}
