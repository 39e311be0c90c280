package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"busline/internal/admins"
	"busline/internal/busroutes"
	"busline/internal/fleet"
	"busline/internal/shared/config"
	"busline/internal/shared/database"
	"busline/internal/trips"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Busline Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"reservations",
		"trips",
		"buses",
		"routes",
		"admin_users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	// Seed admins first (no dependencies)
	if err := s.SeedAdmins(); err != nil {
		return fmt.Errorf("failed to seed admins: %w", err)
	}

	// Seed routes (no dependencies)
	routeIDs, err := s.SeedRoutes()
	if err != nil {
		return fmt.Errorf("failed to seed routes: %w", err)
	}

	// Seed buses (no dependencies)
	busIDs, err := s.SeedBuses()
	if err != nil {
		return fmt.Errorf("failed to seed buses: %w", err)
	}

	// Seed trips (depends on routes and buses)
	if err := s.SeedTrips(routeIDs, busIDs); err != nil {
		return fmt.Errorf("failed to seed trips: %w", err)
	}

	// Clear Redis rate limit state to ensure fresh start
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis: %v", err)
	}

	return nil
}

// SeedAdmins creates a single operator account
func (s *Seeder) SeedAdmins() error {
	fmt.Println("  👤 Seeding admins...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := admins.Admin{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.db.PostgreSQL.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin %s: %w", admin.Username, err)
	}

	fmt.Printf("    ✅ Created admin: %s\n", admin.Username)
	return nil
}

// SeedRoutes creates a small route catalog
func (s *Seeder) SeedRoutes() (map[string]uuid.UUID, error) {
	fmt.Println("  🗺️  Seeding routes...")

	routeIDs := make(map[string]uuid.UUID)

	routesData := []struct {
		key      string
		fromCity string
		toCity   string
	}{
		{"mum-pune", "Mumbai", "Pune"},
		{"pune-goa", "Pune", "Goa"},
		{"mum-nashik", "Mumbai", "Nashik"},
	}

	for _, routeData := range routesData {
		route := busroutes.Route{
			ID:        uuid.New(),
			FromCity:  routeData.fromCity,
			ToCity:    routeData.toCity,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&route).Error; err != nil {
			return nil, fmt.Errorf("failed to create route %s-%s: %w", route.FromCity, route.ToCity, err)
		}

		routeIDs[routeData.key] = route.ID
		fmt.Printf("    ✅ Created route: %s → %s\n", route.FromCity, route.ToCity)
	}

	return routeIDs, nil
}

// SeedBuses creates the demo fleet
func (s *Seeder) SeedBuses() (map[string]uuid.UUID, error) {
	fmt.Println("  🚌 Seeding buses...")

	busIDs := make(map[string]uuid.UUID)

	busesData := []struct {
		key         string
		busName     string
		plateNumber string
		totalSeats  int
	}{
		{"volvo", "Volvo AC Sleeper", "MH-12-AB-1234", 40},
		{"mini", "Mini Express", "MH-14-CD-5678", 20},
		{"deluxe", "Deluxe Seater", "MH-01-EF-9012", 50},
	}

	for _, busData := range busesData {
		bus := fleet.Bus{
			ID:          uuid.New(),
			BusName:     busData.busName,
			PlateNumber: busData.plateNumber,
			TotalSeats:  busData.totalSeats,
			LayoutType:  "2x3",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&bus).Error; err != nil {
			return nil, fmt.Errorf("failed to create bus %s: %w", bus.PlateNumber, err)
		}

		busIDs[busData.key] = bus.ID
		fmt.Printf("    ✅ Created bus: %s (%s, %d seats)\n", bus.BusName, bus.PlateNumber, bus.TotalSeats)
	}

	return busIDs, nil
}

// SeedTrips creates upcoming departures for the next few days
func (s *Seeder) SeedTrips(routeIDs, busIDs map[string]uuid.UUID) error {
	fmt.Println("  🕑 Seeding trips...")

	tripsData := []struct {
		routeKey   string
		busKey     string
		daysAhead  int
		travelTime string
	}{
		{"mum-pune", "volvo", 1, "08:00"},
		{"mum-pune", "mini", 1, "14:30"},
		{"pune-goa", "deluxe", 2, "21:00"},
		{"mum-nashik", "mini", 3, "06:45"},
	}

	for _, tripData := range tripsData {
		trip := trips.Trip{
			ID:         uuid.New(),
			RouteID:    routeIDs[tripData.routeKey],
			BusID:      busIDs[tripData.busKey],
			TravelDate: time.Now().AddDate(0, 0, tripData.daysAhead).Truncate(24 * time.Hour),
			TravelTime: tripData.travelTime,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&trip).Error; err != nil {
			return fmt.Errorf("failed to create trip %s at %s: %w", tripData.routeKey, tripData.travelTime, err)
		}

		fmt.Printf("    ✅ Created trip: %s on %s at %s\n",
			tripData.routeKey, trip.TravelDate.Format("2006-01-02"), trip.TravelTime)
	}

	return nil
}
