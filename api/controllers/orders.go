package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruachlabs/telafome-backend/api/responses"
	"github.com/ruachlabs/telafome-backend/api/validators"
	ordersvc "github.com/ruachlabs/telafome-backend/internal/orders"
	"github.com/ruachlabs/telafome-backend/internal/tenants"
	pkgerrors "github.com/ruachlabs/telafome-backend/pkg/errors"
	"github.com/ruachlabs/telafome-backend/pkg/logger"
)

// SubmitOrder accepts an order for a tenant, reprices it server-side and
// records it on the merchant's spreadsheet.
func SubmitOrder(tenantSvc tenants.Service, orderSvc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if tenantSvc == nil || orderSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		ctx := r.Context()
		slug := chi.URLParam(r, "slug")
		if logg != nil {
			ctx = logg.WithSlug(ctx, slug)
		}

		var payload ordersvc.Submission
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		tenant, err := tenantSvc.Resolve(ctx, slug)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		receipt, err := orderSvc.Submit(ctx, tenant, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}
