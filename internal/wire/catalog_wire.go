package wire

import (
	"hustlehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// Catalog reads are public
	r.Get("/services", catalogHandler.ListServices)
	r.Get("/services/{id}", catalogHandler.GetService)
	r.Get("/categories", catalogHandler.ListCategories)
	r.Get("/categories/{id}", catalogHandler.GetCategory)
}
