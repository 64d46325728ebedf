package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rustock/internal/application/auth"
	"github.com/jhoicas/rustock/internal/application/inventory"
	"github.com/jhoicas/rustock/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *inventory.ProductUseCase
	SaleUC     *inventory.SaleUseCase
	PurchaseUC *inventory.PurchaseUseCase
	ManagerUC  *auth.ManagerUseCase
	Login      *auth.ThrottledLogin
	Reports    *report.Service
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Login)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (Bearer Token de un manager activo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireActiveManager(deps.ManagerUC))
	protected.Get("/auth/me", authHandler.Me)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)

	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Restock)
	purchases.Post("/new-product", purchaseHandler.NewProduct)
	purchases.Get("/", purchaseHandler.List)

	managers := protected.Group("/managers")
	managerHandler := NewManagerHandler(deps.ManagerUC)
	managers.Post("/", managerHandler.Create)
	managers.Get("/", managerHandler.List)
	managers.Get("/by-username/:username", managerHandler.GetByUsername)
	managers.Patch("/:id/status", managerHandler.UpdateStatus)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/summary/pdf", reportHandler.SummaryPDF)
	reports.Get("/replenishment", reportHandler.Replenishment)
}
