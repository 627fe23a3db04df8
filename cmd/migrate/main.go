// One-time import of the legacy JSON export into the database. Users
// arrive with plaintext passwords and are hashed on the way in;
// settings and availabilities upsert on their natural keys so the tool
// can be re-run safely.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"starhaven/internal/controller"
	"starhaven/internal/core/config"
	"starhaven/internal/core/database"
	"starhaven/internal/core/logger"
	"starhaven/internal/domain"
	"starhaven/internal/repo"
)

type seedFile struct {
	Users []struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Status   string `json:"status"`
	} `json:"users"`
	Settings []struct {
		Key         string          `json:"key"`
		Value       json.RawMessage `json:"value"`
		Description string          `json:"description"`
	} `json:"settings"`
	Availabilities []struct {
		Type   string   `json:"type"`
		UserID string   `json:"userId"`
		Dates  []string `json:"dates"`
		Role   string   `json:"role"`
	} `json:"availabilities"`
	Bookings []domain.Booking `json:"bookings"`
}

func main() {
	var seedPath string
	flag.StringVar(&seedPath, "seed", "./data/seed.json", "path to the JSON export")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&domain.User{}, &domain.Setting{},
		&domain.Availability{}, &domain.Booking{},
	); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	raw, err := os.ReadFile(seedPath)
	if err != nil {
		log.Fatal("read seed", zap.String("path", seedPath), zap.Error(err))
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatal("parse seed", zap.Error(err))
	}

	settings := controller.NewSettings(repo.NewSettingRepo(db), repo.NewAvailabilityRepo(db))
	bookings := controller.NewBooking(repo.NewBookingRepo(db))
	users := controller.NewUser(repo.NewUserRepo(db))

	var imported, skipped int

	for _, u := range seed.Users {
		_, err := users.CreateUser(domain.User{
			Name: u.Name, Email: u.Email, Role: u.Role, Status: u.Status,
		}, u.Password)
		if err != nil {
			if controller.IsValidation(err) {
				// duplicate email or missing fields: skip, keep going
				log.Warn("user skipped", zap.String("email", u.Email), zap.Error(err))
				skipped++
				continue
			}
			log.Fatal("import user", zap.String("email", u.Email), zap.Error(err))
		}
		imported++
	}

	for _, s := range seed.Settings {
		if _, err := settings.CreateOrUpdateSetting(s.Key, domain.JSON(s.Value), s.Description); err != nil {
			if controller.IsValidation(err) {
				log.Warn("setting skipped", zap.String("key", s.Key), zap.Error(err))
				skipped++
				continue
			}
			log.Fatal("import setting", zap.String("key", s.Key), zap.Error(err))
		}
		imported++
	}

	for _, a := range seed.Availabilities {
		if _, err := settings.CreateOrUpdateAvailability(a.Type, a.UserID, a.Dates, a.Role); err != nil {
			if controller.IsValidation(err) {
				log.Warn("availability skipped",
					zap.String("type", a.Type), zap.String("userId", a.UserID), zap.Error(err))
				skipped++
				continue
			}
			log.Fatal("import availability", zap.Error(err))
		}
		imported++
	}

	for _, b := range seed.Bookings {
		if _, err := bookings.CreateBooking(b); err != nil {
			if controller.IsValidation(err) {
				log.Warn("booking skipped", zap.String("group", b.GroupName), zap.Error(err))
				skipped++
				continue
			}
			log.Fatal("import booking", zap.Error(err))
		}
		imported++
	}

	log.Info("import finished", zap.Int("imported", imported), zap.Int("skipped", skipped))
}
