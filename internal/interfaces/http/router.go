package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-sync/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	ReferenceUC *usecase.ReferenceUseCase
	HintUC      *usecase.HintUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	refHandler := NewReferenceHandler(deps.ReferenceUC, deps.HintUC)
	api.Get("/categories", refHandler.Categories)
	api.Get("/statuses", refHandler.Statuses)
	api.Get("/hint", refHandler.Hint)
}
