package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/config"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/repository"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/routes"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	db := config.InitDB(cfg)

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Invoice{},
		&models.Expense{},
		&models.ChangeLog{},
	); err != nil {
		log.Fatal("migration failed:", err)
	}

	seedDB(db)

	tokens := auth.NewTokenService(cfg.JWTKey, cfg.JWTIssuer, cfg.JWTAudience)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, tokens)

	r.Run(cfg.Addr)
}

// seedDB ensures the two system roles exist and creates the bootstrap
// admin account on first run.
func seedDB(db *gorm.DB) {
	users := repository.NewUserRepository(db)

	adminRole, err := users.EnsureRole(models.RoleAdmin)
	if err != nil {
		log.Fatal("failed to seed roles:", err)
	}
	if _, err := users.EnsureRole(models.RoleUser); err != nil {
		log.Fatal("failed to seed roles:", err)
	}

	adminEmail := "admin@example.com"
	if _, err := users.FindByEmail(adminEmail); err == nil {
		return
	}

	hash, err := auth.HashPassword("Admin@123")
	if err != nil {
		log.Fatal("failed to hash admin password:", err)
	}
	admin := models.User{
		ID:           uuid.New(),
		Username:     adminEmail,
		Email:        adminEmail,
		PasswordHash: hash,
		FirstName:    "System",
		LastName:     "Admin",
		Roles:        []models.Role{*adminRole},
	}
	if err := users.Create(&admin); err != nil {
		log.Printf("failed to seed admin user: %v", err)
		return
	}
	slog.Info("seeded admin user", "component", "app", "email", adminEmail)
}
