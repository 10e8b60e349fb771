package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"carsline/internal/config"
	"carsline/internal/database"
	"carsline/internal/middleware"
	"carsline/internal/modules/catalog"
	"carsline/internal/modules/checklist"
	"carsline/internal/modules/evidence"
	"carsline/internal/modules/history"
	"carsline/internal/modules/inventory"
	"carsline/internal/modules/job"
	"carsline/internal/modules/order"
	"carsline/internal/modules/partline"
	"carsline/internal/modules/search"
	"carsline/internal/pkg/storage"
	"carsline/internal/repository"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	files, err := storage.NewLocalStore(cfg.EvidenceDir)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	serviceTypeRepo := repository.NewServiceTypeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	jobRepo := repository.NewJobRepository(db)
	partLineRepo := repository.NewPartLineRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	evidenceRepo := repository.NewEvidenceRepository(db)
	partRepo := repository.NewPartRepository(db)

	orderHandler := order.NewHandler(order.NewService(orderRepo, customerRepo, vehicleRepo))
	jobHandler := job.NewHandler(job.NewService(jobRepo, orderRepo, userRepo))
	partLineHandler := partline.NewHandler(partline.NewService(partLineRepo, jobRepo))
	checklistHandler := checklist.NewHandler(checklist.NewService(checklistRepo, jobRepo))
	evidenceHandler := evidence.NewHandler(evidence.NewService(evidenceRepo, orderRepo, files))
	inventoryHandler := inventory.NewHandler(inventory.NewService(partRepo))
	searchHandler := search.NewHandler(search.NewService(orderRepo, vehicleRepo, customerRepo))
	historyHandler := history.NewHandler(history.NewService(orderRepo, vehicleRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(customerRepo, vehicleRepo, serviceTypeRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Identity(userRepo))
	{
		orderHandler.RegisterRoutes(v1)
		jobHandler.RegisterRoutes(v1)
		partLineHandler.RegisterRoutes(v1)
		checklistHandler.RegisterRoutes(v1)
		evidenceHandler.RegisterRoutes(v1)
		inventoryHandler.RegisterRoutes(v1)
		searchHandler.RegisterRoutes(v1)
		historyHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
