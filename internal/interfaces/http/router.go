package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-funeraria/internal/application/customers"
	"github.com/tu-usuario/pos-funeraria/internal/application/reports"
	"github.com/tu-usuario/pos-funeraria/internal/application/sales"
	"github.com/tu-usuario/pos-funeraria/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SaleUC     *sales.UseCase
	CustomerUC *customers.UseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	ReportUC   *reports.UseCase
	Location   *time.Location
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ventas
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Location)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Patch("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Clientes de mayoreo
	customersGroup := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customersGroup.Get("/", customerHandler.List)
	customersGroup.Post("/", customerHandler.Create)
	customersGroup.Patch("/:id", customerHandler.Update)
	customersGroup.Delete("/:id", customerHandler.Delete)

	// Catálogo
	productsGroup := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	productsGroup.Get("/", productHandler.List)
	productsGroup.Post("/", productHandler.Create)
	productsGroup.Put("/:id", productHandler.Update)
	productsGroup.Delete("/:id", productHandler.Delete)

	categoriesGroup := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categoriesGroup.Get("/", categoryHandler.List)
	categoriesGroup.Post("/", categoryHandler.Create)
	categoriesGroup.Put("/:id", categoryHandler.Update)
	categoriesGroup.Delete("/:id", categoryHandler.Delete)

	// Reportes
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Location)
	reportsGroup.Get("/corte", reportHandler.Corte)
	reportsGroup.Get("/ganancias", reportHandler.Ganancias)
}
