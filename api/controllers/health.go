package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/ruachlabs/telafome-backend/api/responses"
	"github.com/ruachlabs/telafome-backend/pkg/config"
	pkgerrors "github.com/ruachlabs/telafome-backend/pkg/errors"
	"github.com/ruachlabs/telafome-backend/pkg/logger"
)

type sheetsPinger interface {
	Ping(ctx context.Context, spreadsheetID string) error
}

type redisPinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-TelaFome-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks the dependencies the storefront cannot serve without:
// the master spreadsheet, and Redis when rate limiting is configured. Pings
// run in parallel and every failure is reported, not just the first.
func HealthReady(cfg *config.Config, sheets sheetsPinger, store redisPinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-TelaFome-Env", cfg.App.Env)

		var g errgroup.Group
		var sheetsErr, storeErr error
		if sheets != nil {
			g.Go(func() error {
				sheetsErr = sheets.Ping(r.Context(), cfg.Sheets.MasterSheetID)
				return nil
			})
		}
		if store != nil {
			g.Go(func() error {
				storeErr = store.Ping(r.Context())
				return nil
			})
		}
		_ = g.Wait()

		if err := multierr.Combine(sheetsErr, storeErr); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "readiness check"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
