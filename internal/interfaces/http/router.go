package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	appanalytics "github.com/jhoicas/stock-ledger/internal/application/analytics"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	LocationUC  *usecase.LocationUseCase
	MovementUC  *inventory.MovementUseCase
	ReportUC    *appanalytics.ReportUseCase
	Logger      *logger.Logger
	ServiceName string
	CORSOrigins string // lista separada por comas; vacío = "*"
	// JWTSecret vacío deja el API abierto; si está definido las escrituras requieren Bearer Token
	// y los DELETE requieren rol admin.
	JWTSecret string
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))
	app.Use(RequestLogger(log.Named("http")))
	// recover va dentro del logger: un panic se registra como 500 con su request_id.
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(deps.CORSOrigins)))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	write := []fiber.Handler{}
	remove := []fiber.Handler{}
	if deps.JWTSecret != "" {
		write = append(write, AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin, RoleOperator))
		remove = append(remove, AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin))
	}

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", with(write, productHandler.Create)...)
	products.Put("/:id", with(write, productHandler.Update)...)
	products.Delete("/:id", with(remove, productHandler.Delete)...)

	// Locations
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", with(write, locationHandler.Create)...)
	locations.Put("/:id", with(write, locationHandler.Update)...)
	locations.Delete("/:id", with(remove, locationHandler.Delete)...)

	// Movements (ledger)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", with(write, movementHandler.Create)...)
	movements.Delete("/:id", with(remove, movementHandler.Delete)...)

	// Reports y dashboard
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/inventory", reportHandler.InventoryReport)
	api.Get("/reports/inventory/pdf", reportHandler.InventoryPDF)
	api.Get("/dashboard/stats", reportHandler.Stats)
}

func with(middlewares []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(middlewares)+1)
	out = append(out, middlewares...)
	return append(out, h)
}

func corsConfig(origins string) cors.Config {
	cfg := cors.ConfigDefault
	if origins = strings.TrimSpace(origins); origins != "" {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = "Origin, Content-Type, Accept, Authorization"
	return cfg
}
