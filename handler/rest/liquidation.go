package rest

import (
	"errors"
	"net/http"

	"liquidator/core"
	"liquidator/handler/param"
	"liquidator/handler/render"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
)

// scan for liquidatable positions, persist them and respond with the scan result
func liquidatableHandler(scanner core.IScanner, liquidationStore core.ILiquidationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		items, err := scanner.Liquidatable(ctx)
		if err != nil {
			log.WithError(err).Errorln("scan liquidatable positions")
			render.InternalError(w, "failed to fetch liquidatable positions", err)
			return
		}

		if err := liquidationStore.UpsertAll(ctx, core.NewLiquidations(items)); err != nil {
			log.WithError(err).Errorln("upsert liquidations")
			render.InternalError(w, "failed to fetch liquidatable positions", err)
			return
		}

		render.JSON(w, items)
	}
}

func liquidationsHandler(liquidationStore core.ILiquidationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var query core.LiquidationQuery
		if err := param.Binding(r, &query); err != nil {
			render.BadRequest(w, err)
			return
		}

		liquidations, err := liquidationStore.List(r.Context(), query)
		if err != nil {
			render.InternalError(w, "failed to list liquidations", err)
			return
		}

		render.JSON(w, liquidations)
	}
}

func liquidationHandler(liquidationStore core.ILiquidationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collateral := chi.URLParam(r, "collateral")
		tokenID := chi.URLParam(r, "token_id")

		liquidation, err := liquidationStore.Find(r.Context(), collateral, tokenID)
		if errors.Is(err, core.ErrLiquidationNotFound) {
			render.NotFoundRequest(w, err)
			return
		}

		if err != nil {
			render.InternalError(w, "failed to find liquidation", err)
			return
		}

		render.JSON(w, liquidation)
	}
}
