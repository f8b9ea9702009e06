package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ruachlabs/telafome-backend/api/responses"
	"github.com/ruachlabs/telafome-backend/internal/catalog"
	"github.com/ruachlabs/telafome-backend/internal/schedule"
	"github.com/ruachlabs/telafome-backend/internal/tenants"
	"github.com/ruachlabs/telafome-backend/pkg/config"
	pkgerrors "github.com/ruachlabs/telafome-backend/pkg/errors"
	"github.com/ruachlabs/telafome-backend/pkg/logger"
)

const merchantTimeZone = "America/Sao_Paulo"

// maxLeadHours bounds the lead_hours query override to the slot lookahead.
const maxLeadHours = 24 * 30

func merchantLocation() *time.Location {
	loc, err := time.LoadLocation(merchantTimeZone)
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

func loadStorefront(ctx context.Context, tenantSvc tenants.Service, catalogSvc catalog.Service, slug string) (*tenants.Tenant, *catalog.Storefront, error) {
	tenant, err := tenantSvc.Resolve(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	sf, err := catalogSvc.Storefront(ctx, tenant.SpreadsheetID)
	if err != nil {
		return nil, nil, err
	}
	return tenant, sf, nil
}

// Storefront serves the full menu payload for one tenant.
func Storefront(tenantSvc tenants.Service, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if tenantSvc == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront service unavailable"))
			return
		}

		ctx := r.Context()
		slug := chi.URLParam(r, "slug")
		if logg != nil {
			ctx = logg.WithSlug(ctx, slug)
		}

		_, sf, err := loadStorefront(ctx, tenantSvc, catalogSvc, slug)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, sf)
	}
}

type statusResponse struct {
	Open      bool   `json:"open"`
	Label     string `json:"label"`
	Days      string `json:"days"`
	Hours     string `json:"hours"`
	CheckedAt string `json:"checkedAt"`
}

// StorefrontStatus reports whether the store is currently accepting orders,
// evaluated against the merchant's configured days and hours in local time.
func StorefrontStatus(tenantSvc tenants.Service, catalogSvc catalog.Service, logg *logger.Logger, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	loc := merchantLocation()

	return func(w http.ResponseWriter, r *http.Request) {
		if tenantSvc == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront service unavailable"))
			return
		}

		ctx := r.Context()
		slug := chi.URLParam(r, "slug")
		if logg != nil {
			ctx = logg.WithSlug(ctx, slug)
		}

		_, sf, err := loadStorefront(ctx, tenantSvc, catalogSvc, slug)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		days := sf.Customizations.Get(catalog.KeyDays)
		hours := sf.Customizations.Get(catalog.KeyHours)
		localNow := now().In(loc)
		open := schedule.Parse(days, hours).IsOpenAt(localNow)

		label := "Fechado"
		if open {
			label = "Aberto"
		}

		responses.WriteSuccess(w, statusResponse{
			Open:      open,
			Label:     label,
			Days:      days,
			Hours:     hours,
			CheckedAt: localNow.Format(time.RFC3339),
		})
	}
}

// StorefrontSlots lists the scheduling windows available for pre-orders.
func StorefrontSlots(tenantSvc tenants.Service, catalogSvc catalog.Service, booking config.BookingConfig, logg *logger.Logger, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	loc := merchantLocation()
	defaults := schedule.SlotOptions{
		MinLeadTime:   time.Duration(booking.MinLeadTimeHours) * time.Hour,
		Step:          booking.SlotStep,
		LookaheadDays: booking.LookaheadDays,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if tenantSvc == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront service unavailable"))
			return
		}

		ctx := r.Context()
		slug := chi.URLParam(r, "slug")
		if logg != nil {
			ctx = logg.WithSlug(ctx, slug)
		}

		opts := defaults
		if raw := r.URL.Query().Get("lead_hours"); raw != "" {
			hours, err := strconv.Atoi(raw)
			if err != nil || hours < 1 || hours > maxLeadHours {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid lead_hours"))
				return
			}
			opts.MinLeadTime = time.Duration(hours) * time.Hour
		}

		_, sf, err := loadStorefront(ctx, tenantSvc, catalogSvc, slug)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sched := schedule.Parse(sf.Customizations.Get(catalog.KeyDays), sf.Customizations.Get(catalog.KeyHours))
		slots := sched.Slots(now().In(loc), opts)
		if slots == nil {
			slots = []schedule.DaySlots{}
		}

		responses.WriteSuccess(w, slots)
	}
}
