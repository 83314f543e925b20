package rest

import (
	"errors"
	"net/http"

	"liquidator/core"
	"liquidator/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(scanner core.IScanner, liquidationStore core.ILiquidationStore) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/liquidatable", liquidatableHandler(scanner, liquidationStore))
	router.Get("/liquidations", liquidationsHandler(liquidationStore))
	router.Get("/liquidations/{collateral}/{token_id}", liquidationHandler(liquidationStore))

	return router
}
