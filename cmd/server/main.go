package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/balaios/fast-zero-madr/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/balaios/fast-zero-madr/internal/auth"
	"github.com/balaios/fast-zero-madr/internal/cache"
	"github.com/balaios/fast-zero-madr/internal/config"
	"github.com/balaios/fast-zero-madr/internal/db"
	"github.com/balaios/fast-zero-madr/internal/handler"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/repository"
	"github.com/balaios/fast-zero-madr/internal/router"
	"github.com/balaios/fast-zero-madr/internal/service"
)

// @title MADR API
// @version 1.0
// @description Meu Acervo de Dicas e Romances: a bibliographic catalog of users, novelists and books with JWT authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Book{},
			&model.Novelist{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Novelist{},
		&model.Book{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	novelistRepo := repository.NewNovelistRepository(gormDB)
	bookRepo := repository.NewBookRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTAlgorithm)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cfg.AccessTokenExpiry(), cfg.RefreshTokenExpiry())
	userService := service.NewUserService(userRepo)
	novelistService := service.NewNovelistService(novelistRepo, cacheClient)
	bookService := service.NewBookService(bookRepo, novelistRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	novelistHandler := handler.NewNovelistHandler(novelistService)
	bookHandler := handler.NewBookHandler(bookService)
	romancistaHandler := handler.NewRomancistaHandler(novelistService)
	livroHandler := handler.NewLivroHandler(bookService)

	// Register routes
	router.Register(
		e,
		jwtService,
		userRepo,
		authHandler,
		userHandler,
		novelistHandler,
		bookHandler,
		romancistaHandler,
		livroHandler,
	)

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
