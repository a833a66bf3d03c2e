package main

import (
	"context"
	"log"
	"time"

	"fitsync/internal/config"
	"fitsync/internal/database"
	"fitsync/internal/domain"
	"fitsync/internal/modules/catalog"
	"fitsync/internal/modules/schedule"
	"fitsync/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM class_sessions")
	db.Exec("DELETE FROM trainers")
	db.Exec("DELETE FROM locations")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	log.Println("Creating users...")
	seedUser(ctx, userRepo, "admin@fitsync.io", "admin123", domain.RoleAdmin, "Admin")
	seedUser(ctx, userRepo, "frontdesk@fitsync.io", "desk1234", domain.RoleReception, "Front Desk")
	seedUser(ctx, userRepo, "member@fitsync.io", "member123", domain.RoleMember, "First Member")

	log.Println("Creating locations and trainers...")
	catalogSvc := catalog.NewService(locationRepo, trainerRepo)

	weekHours := domain.OperatingHours{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		weekHours[day] = domain.DayHours{Open: "06:00", Close: "22:00"}
	}
	weekHours["saturday"] = domain.DayHours{Open: "08:00", Close: "18:00"}

	downtown, err := catalogSvc.CreateLocation(ctx, catalog.CreateLocationRequest{
		Name: "Downtown", Address: "12 Main St", Hours: weekHours,
	})
	if err != nil {
		log.Fatal(err)
	}
	riverside, err := catalogSvc.CreateLocation(ctx, catalog.CreateLocationRequest{
		Name: "Riverside", Address: "3 River Walk", Hours: weekHours,
	})
	if err != nil {
		log.Fatal(err)
	}

	trainers := make([]*domain.Trainer, 0, 3)
	for _, spec := range []catalog.CreateTrainerRequest{
		{Name: "Maya Ortiz", Qualifications: []string{"yoga", "pilates"}},
		{Name: "Dan Kovac", Qualifications: []string{"strength", "crossfit"}},
		{Name: "Lena Park", Qualifications: []string{"spin"}},
	} {
		tr, err := catalogSvc.CreateTrainer(ctx, spec)
		if err != nil {
			log.Fatal(err)
		}
		trainers = append(trainers, tr)
	}

	log.Println("Creating a week of sessions...")
	engine := schedule.NewService(sessionRepo, locationRepo, trainerRepo, nil)

	monday := nextMonday(time.Now())
	classes := []struct {
		location *domain.Location
		trainer  *domain.Trainer
		title    string
		hour     int
		capacity int
	}{
		{downtown, trainers[0], "Morning Yoga", 7, 20},
		{downtown, trainers[1], "Strength Basics", 9, 12},
		{riverside, trainers[2], "Spin 45", 18, 15},
		{riverside, trainers[0], "Evening Pilates", 19, 18},
	}

	created := 0
	for dayOffset := 0; dayOffset < 5; dayOffset++ {
		day := monday.AddDate(0, 0, dayOffset)
		for _, cl := range classes {
			start := time.Date(day.Year(), day.Month(), day.Day(), cl.hour, 0, 0, 0, time.Local)
			_, err := engine.CreateSession(ctx, schedule.CreateSessionRequest{
				LocationID:      cl.location.ID,
				TrainerID:       cl.trainer.ID,
				Title:           cl.title,
				Start:           start,
				DurationMinutes: 60,
				Capacity:        cl.capacity,
			})
			if err != nil {
				log.Fatalf("seed session %q on %s: %v", cl.title, day.Format("2006-01-02"), err)
			}
			created++
		}
	}

	log.Printf("Seed complete: 2 locations, %d trainers, %d sessions", len(trainers), created)
	log.Println("Admin login: admin@fitsync.io / admin123")
}

func seedUser(ctx context.Context, users *repository.UserRepository, email, password string, role domain.UserRole, name string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal(err)
	}
}

func nextMonday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return t.AddDate(0, 0, 7)
}
