package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/pastesytony/pos-api/internal/application/service"
	"github.com/pastesytony/pos-api/internal/config"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	domainRepo "github.com/pastesytony/pos-api/internal/domain/repository"
	"github.com/pastesytony/pos-api/internal/infrastructure/database"
	"github.com/pastesytony/pos-api/internal/infrastructure/repository"
	"github.com/pastesytony/pos-api/internal/infrastructure/repository/memory"
	"github.com/pastesytony/pos-api/internal/presentation/http/handler"
	"github.com/pastesytony/pos-api/internal/presentation/http/routes"
	"github.com/pastesytony/pos-api/pkg/utils"
)

// repositories bundles every store implementation behind the domain
// interfaces, so the rest of main never knows which backend is live.
type repositories struct {
	Product     domainRepo.ProductRepository
	Order       domainRepo.OrderRepository
	Sale        domainRepo.SaleRepository
	Employee    domainRepo.EmployeeRepository
	Branch      domainRepo.BranchRepository
	Counter     domainRepo.CounterRepository
	Idempotency domainRepo.IdempotencyRepository
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var repos *repositories
	if cfg.Database.UseMockStore() {
		log.Println("No database configured, running on the in-memory store")
		repos = newMemoryRepositories()
	} else {
		var err error
		repos, err = newPostgresRepositories(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize services
	authService := service.NewAuthService(repos.Employee, jwtManager)
	productService := service.NewProductService(repos.Product)
	cartService := service.NewCartService(repos.Product)
	orderService := service.NewOrderService(repos.Order, repos.Sale, repos.Counter)
	saleService := service.NewSaleService(repos.Sale)
	reportService := service.NewReportService(repos.Sale, repos.Order, repos.Counter)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService, cartService),
		Product: handler.NewProductHandler(productService),
		Cart:    handler.NewCartHandler(cartService),
		Order:   handler.NewOrderHandler(orderService, cartService),
		Sale:    handler.NewSaleHandler(saleService, cartService),
		Report:  handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: repos.Idempotency,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newPostgresRepositories(cfg *config.Config) (*repositories, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	return &repositories{
		Product:     repository.NewProductRepository(db),
		Order:       repository.NewOrderRepository(db),
		Sale:        repository.NewSaleRepository(db),
		Employee:    repository.NewEmployeeRepository(db),
		Branch:      repository.NewBranchRepository(db),
		Counter:     repository.NewCounterRepository(db),
		Idempotency: repository.NewIdempotencyRepository(db),
	}, nil
}

// newMemoryRepositories builds the in-memory store and seeds the same
// default data the database path does.
func newMemoryRepositories() *repositories {
	branchRepo := memory.NewBranchRepository()
	employeeRepo := memory.NewEmployeeRepository(branchRepo)
	productRepo := memory.NewProductRepository()

	ctx := context.Background()

	branches := database.DefaultBranches()
	for i := range branches {
		if err := branchRepo.Create(ctx, &branches[i]); err != nil {
			log.Printf("Warning: failed to seed branch %s: %v", branches[i].Name, err)
		}
	}

	for _, seed := range database.DefaultEmployees() {
		hash, err := utils.HashPIN(seed.PIN)
		if err != nil {
			log.Printf("Warning: failed to hash PIN for %s: %v", seed.Name, err)
			continue
		}
		employee := entity.Employee{
			Name:     seed.Name,
			PINHash:  hash,
			Role:     seed.Role,
			BranchID: branches[0].ID,
			IsActive: true,
		}
		if err := employeeRepo.Create(ctx, &employee); err != nil {
			log.Printf("Warning: failed to seed employee %s: %v", seed.Name, err)
		}
	}

	if err := productRepo.CreateBatch(ctx, database.DefaultProducts()); err != nil {
		log.Printf("Warning: failed to seed catalog: %v", err)
	}

	return &repositories{
		Product:     productRepo,
		Order:       memory.NewOrderRepository(),
		Sale:        memory.NewSaleRepository(),
		Employee:    employeeRepo,
		Branch:      branchRepo,
		Counter:     memory.NewCounterRepository(),
		Idempotency: memory.NewIdempotencyRepository(),
	}
}
