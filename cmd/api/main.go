package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"fitsync/internal/config"
	"fitsync/internal/database"
	"fitsync/internal/middleware"
	"fitsync/internal/modules/auth"
	"fitsync/internal/modules/catalog"
	"fitsync/internal/modules/feed"
	"fitsync/internal/modules/schedule"
	jwtsvc "fitsync/internal/pkg/jwt"
	"fitsync/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := feed.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(locationRepo, trainerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	engine := schedule.NewService(sessionRepo, locationRepo, trainerRepo, hub)
	scheduleHandler := schedule.NewHandler(engine)

	feedHandler := feed.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		feedHandler.RegisterRoutes(v1)

		// any authenticated role: reads and seat booking
		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))
		{
			scheduleHandler.RegisterRoutes(authed)
		}

		// admin/reception: session lifecycle and catalog management
		staff := v1.Group("/")
		staff.Use(middleware.Auth(j), middleware.StaffOnly())
		{
			scheduleHandler.RegisterAdminRoutes(staff)
			catalogHandler.RegisterAdminRoutes(staff)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
