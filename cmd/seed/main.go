package main

import (
	"context"
	"log"

	"carsline/internal/config"
	"carsline/internal/database"
	"carsline/internal/domain"
	"carsline/internal/repository"
)

// Seeds reference data for a fresh installation: the five fixed roles,
// one user per role, a couple of demo customers with vehicles, the
// service-type catalog and a starter parts inventory.
func main() {
	cfg := config.Load()

	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = "carsline.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	customers := repository.NewCustomerRepository(db)
	vehicles := repository.NewVehicleRepository(db)
	serviceTypes := repository.NewServiceTypeRepository(db)
	parts := repository.NewPartRepository(db)

	log.Println("Creating roles...")
	roles := []domain.Role{
		{ID: domain.RoleAdmin, Name: "admin", Description: "Full access"},
		{ID: domain.RoleAdvisor, Name: "advisor", Description: "Service advisor, owns orders"},
		{ID: domain.RoleReceptionist, Name: "receptionist", Description: "Front desk, customer intake"},
		{ID: domain.RoleForeman, Name: "foreman", Description: "Assigns jobs to technicians"},
		{ID: domain.RoleTechnician, Name: "technician", Description: "Executes assigned jobs"},
	}
	for i := range roles {
		if err := users.CreateRole(ctx, &roles[i]); err != nil {
			log.Fatal("role seed failed: ", err)
		}
	}

	log.Println("Creating users...")
	seedUsers := []domain.User{
		{FullName: "System Administrator", Username: "admin", RoleID: domain.RoleAdmin, Active: true},
		{FullName: "Carlos Mendoza", Username: "cmendoza", RoleID: domain.RoleAdvisor, Active: true},
		{FullName: "Ana Torres", Username: "atorres", RoleID: domain.RoleReceptionist, Active: true},
		{FullName: "Miguel Herrera", Username: "mherrera", RoleID: domain.RoleForeman, Active: true},
		{FullName: "Jorge Ramirez", Username: "jramirez", RoleID: domain.RoleTechnician, Active: true},
		{FullName: "Luis Castillo", Username: "lcastillo", RoleID: domain.RoleTechnician, Active: true},
	}
	for i := range seedUsers {
		if err := users.Create(ctx, &seedUsers[i]); err != nil {
			log.Fatal("user seed failed: ", err)
		}
	}

	log.Println("Creating customers and vehicles...")
	seedCustomers := []domain.Customer{
		{FullName: "Laura Espinoza", TaxID: "EISL850101AA1", MobilePhone: "5551234567", Email: "laura@example.com", Municipality: "Monterrey", State: "NL", Country: "MX", Active: true},
		{FullName: "Roberto Salinas", TaxID: "SARO790322BB2", MobilePhone: "5559876543", Email: "roberto@example.com", Municipality: "Guadalupe", State: "NL", Country: "MX", Active: true},
	}
	for i := range seedCustomers {
		if err := customers.Create(ctx, &seedCustomers[i]); err != nil {
			log.Fatal("customer seed failed: ", err)
		}
	}

	year1, year2 := 2019, 2022
	seedVehicles := []domain.Vehicle{
		{CustomerID: seedCustomers[0].ID, VIN: "1HGCM82633A004352", Make: "Honda", Model: "Accord", Year: &year1, Color: "Silver", Plates: "ABC1234", InitialKm: 48000, Active: true},
		{CustomerID: seedCustomers[1].ID, VIN: "3VWFE21C04M000784", Make: "Volkswagen", Model: "Jetta", Year: &year2, Color: "White", Plates: "XYZ9876", InitialKm: 12500, Active: true},
	}
	for i := range seedVehicles {
		if err := vehicles.Create(ctx, &seedVehicles[i]); err != nil {
			log.Fatal("vehicle seed failed: ", err)
		}
	}

	log.Println("Creating service types...")
	seedTypes := []domain.ServiceType{
		{Name: "Minor service", Description: "Oil, filters, inspection", BasePrice: 1800, Active: true},
		{Name: "Major service", Description: "Full scheduled maintenance", BasePrice: 3500, Active: true},
		{Name: "Brake service", Description: "Pads, discs and fluid", BasePrice: 2400, Active: true},
	}
	for i := range seedTypes {
		if err := serviceTypes.Create(ctx, &seedTypes[i]); err != nil {
			log.Fatal("service type seed failed: ", err)
		}
	}

	log.Println("Creating parts inventory...")
	seedParts := []domain.Part{
		{PartNumber: "OF-9018", Type: "Oil filter", Location: "A1-03", Make: "Honda", Model: "Accord", Year: &year1, Quantity: 24, Active: true},
		{PartNumber: "BP-5521", Type: "Brake pads", Location: "B2-11", Make: "Volkswagen", Model: "Jetta", Year: &year2, Quantity: 8, Active: true},
		{PartNumber: "AF-1200", Type: "Air filter", Location: "A1-07", Quantity: 15, Active: true},
	}
	for i := range seedParts {
		if err := parts.Create(ctx, &seedParts[i]); err != nil {
			log.Fatal("part seed failed: ", err)
		}
	}

	log.Println("Seed completed")
	log.Println("Identities: pass the user id in the X-User-Id header")
	for _, u := range seedUsers {
		log.Printf("  %d  %-20s role=%d", u.ID, u.Username, u.RoleID)
	}
}
