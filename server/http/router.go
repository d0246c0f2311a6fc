package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"price-analyzer/internal/middleware"
	"price-analyzer/internal/prices/handler"
	"price-analyzer/internal/prices/model"
)

// NewRouter — только чтение: датасет загружен до старта и дальше не меняется.
func NewRouter(ds *model.Dataset, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))

	r.Get("/health", handler.Health(ds))
	r.Get("/search", handler.Search(ds, logger))
	r.Get("/report", handler.Report(ds, logger))

	return r
}
