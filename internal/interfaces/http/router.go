package http

import (
	"net/http"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	Recorder      MovementRecorder
	Movements     MovementLister
	Reports       MovementReporter
	Products      ProductReader
	MasterCatalog MasterCatalog
	JWTSecret     string

	// Opcionales: si son nil la ruta no se registra.
	Metrics   http.Handler
	StockFeed func(*websocket.Conn)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}
	if deps.StockFeed != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws/stock", websocket.New(deps.StockFeed))
	}

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Recorder, deps.Movements, deps.Reports)
	invGroup.Post("/inputs", inventoryHandler.RegisterInput)
	invGroup.Post("/outputs", inventoryHandler.RegisterOutput)
	invGroup.Post("/adjustments", inventoryHandler.RegisterAdjustment)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/report", inventoryHandler.DownloadReport)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Products)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	masters := api.Group("/master-products")
	masterHandler := NewMasterProductHandler(deps.MasterCatalog)
	masters.Post("/", masterHandler.Create)
	masters.Get("/", masterHandler.List)
	masters.Get("/:id", masterHandler.GetByID)
}
