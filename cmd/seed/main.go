// Seeds a local database with a demo account, default settings, a spread of
// leads across statuses and months, and one goal for the current month.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"hotleads/internal/database"
	"hotleads/internal/domain"
	"hotleads/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("hotleads.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM goals")
	db.Exec("DELETE FROM settings")
	db.Exec("DELETE FROM reset_tokens")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	leads := repository.NewLeadRepository(db)
	goals := repository.NewGoalRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	demo := &domain.User{Email: "demo@hotleads.app", PasswordHash: string(hash)}
	if err := users.Create(ctx, demo); err != nil {
		log.Fatal("seed user failed:", err)
	}

	defaults, err := settingsRepo.GetOrCreate(ctx, demo.ID)
	if err != nil {
		log.Fatal("seed settings failed:", err)
	}

	now := time.Now()
	names := []string{
		"Ana Souza", "Bruno Lima", "Carla Mendes", "Diego Rocha", "Elisa Castro",
		"Fábio Nunes", "Gabriela Dias", "Henrique Alves", "Isabela Pinto", "João Ferreira",
		"Karina Lopes", "Lucas Martins", "Mariana Costa", "Nelson Prado", "Olívia Ramos",
	}

	for i, name := range names {
		entry := domain.NewDate(now.Year(), now.Month(), 1+rand.Intn(27))
		if i%4 == 0 {
			// Spread some entries into the previous month.
			prev := now.AddDate(0, -1, 0)
			entry = domain.NewDate(prev.Year(), prev.Month(), 1+rand.Intn(27))
		}

		l := &domain.Lead{
			UserID:      demo.ID,
			FullName:    name,
			Phone:       fmt.Sprintf("+55 11 9%04d-%04d", rand.Intn(10000), rand.Intn(10000)),
			Email:       fmt.Sprintf("lead%d@example.com", i+1),
			CityState:   "São Paulo/SP",
			Source:      defaults.Sources[rand.Intn(len(defaults.Sources))],
			Product:     defaults.Products[rand.Intn(len(defaults.Products))],
			Status:      defaults.Statuses[rand.Intn(len(defaults.Statuses))],
			Temperature: defaults.Temperatures[rand.Intn(len(defaults.Temperatures))],
			Owner:       defaults.Owners[0],
			EntryDate:   entry,
		}

		if l.IsWon() {
			value := 500 + rand.Float64()*4500
			sale := domain.NewDate(now.Year(), now.Month(), 1+rand.Intn(27))
			l.SaleValue = &value
			l.SaleDate = &sale
		}
		if l.Status == domain.StatusLost {
			l.LossReason = defaults.LossReasons[rand.Intn(len(defaults.LossReasons))]
		}

		if err := leads.Create(ctx, l); err != nil {
			log.Fatal("seed lead failed:", err)
		}
	}

	g := &domain.Goal{
		UserID:           demo.ID,
		Month:            now.Format("2006-01"),
		LeadTarget:       20,
		RevenueTarget:    10000,
		ConversionTarget: 30,
	}
	if err := goals.Create(ctx, g); err != nil {
		log.Fatal("seed goal failed:", err)
	}

	log.Printf("Seeded %d leads and 1 goal for %s (password: demo123)", len(names), demo.Email)
}
