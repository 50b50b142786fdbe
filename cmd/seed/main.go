package main

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/f1store-next/internal/config"
	"github.com/f1store-next/internal/logger"
	"github.com/f1store-next/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	seedUsers(stdLog.Printf)
	seedProducts(stdLog.Printf)

	stdLog.Printf("Seed finished")
}

func seedUsers(logf func(format string, v ...interface{})) {
	users := []struct {
		Email       string
		DisplayName string
		Password    string
	}{
		{Email: "demo@f1store.dev", DisplayName: "Demo User", Password: "demo123456"},
		{Email: "alex@f1store.dev", DisplayName: "Alex", Password: "demo123456"},
	}

	for _, seed := range users {
		var existing models.User
		if err := models.DB.Where("email = ?", seed.Email).First(&existing).Error; err == nil {
			logf("User already exists: %s", seed.Email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			logf("Failed to hash password for %s: %v", seed.Email, err)
			continue
		}
		user := models.User{
			Email:        seed.Email,
			DisplayName:  seed.DisplayName,
			PasswordHash: string(hash),
		}
		if err := models.DB.Create(&user).Error; err != nil {
			logf("Failed to create user %s: %v", seed.Email, err)
			continue
		}
		logf("Created user: %s", seed.Email)
	}
}

func seedProducts(logf func(format string, v ...interface{})) {
	products := []models.Product{
		{
			Name:        "Scuderia Ferrari Team Polo",
			Description: "Official team polo in Rosso Corsa.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(54.99)),
			Team:        "Scuderia Ferrari",
			Driver:      "Charles Leclerc",
			Size:        "M",
			ImagePath:   "/uploads/ferrari-polo.jpg",
		},
		{
			Name:        "McLaren Papaya Cap",
			Description: "Papaya orange cap with embroidered logo.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(34.99)),
			Team:        "McLaren",
			Driver:      "Lando Norris",
			Size:        "One Size",
			ImagePath:   "/uploads/mclaren-cap.jpg",
		},
		{
			Name:        "Red Bull Racing Softshell Jacket",
			Description: "Windproof softshell with team branding.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(119.99)),
			Team:        "Red Bull Racing",
			Driver:      "Max Verstappen",
			Size:        "L",
			ImagePath:   "/uploads/redbull-jacket.jpg",
		},
		{
			Name:        "Mercedes-AMG Petronas Tee",
			Description: "Cotton tee with Silver Arrows print.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(39.99)),
			Team:        "Mercedes-AMG Petronas",
			Driver:      "George Russell",
			Size:        "S",
			ImagePath:   "/uploads/mercedes-tee.jpg",
		},
		{
			Name:        "Aston Martin Team Scarf",
			Description: "Green knitted scarf for race day.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(24.99)),
			Team:        "Aston Martin",
			Driver:      "Fernando Alonso",
			Size:        "One Size",
			ImagePath:   "/uploads/astonmartin-scarf.jpg",
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err == nil {
			logf("Product already exists: %s", product.Name)
			continue
		}
		if err := models.DB.Create(&product).Error; err != nil {
			logf("Failed to create product %s: %v", product.Name, err)
			continue
		}
		logf("Created product: %s", product.Name)
	}
}
