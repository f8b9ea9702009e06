package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ruachlabs/telafome-backend/internal/catalog"
	"github.com/ruachlabs/telafome-backend/internal/seo"
	"github.com/ruachlabs/telafome-backend/internal/tenants"
	"github.com/ruachlabs/telafome-backend/pkg/logger"
)

// ServeIndex renders the single-page app shell with per-tenant meta tags so
// link previews and crawlers see the merchant's own branding. Lookup
// failures fall back to the generic shell rather than a 404; the SPA decides
// what to show for unknown slugs.
func ServeIndex(tenantSvc tenants.Service, catalogSvc catalog.Service, rewriter *seo.Rewriter, defaultSlug string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		slug := chi.URLParam(r, "slug")
		if slug == "" {
			slug = defaultSlug
		}
		if logg != nil {
			ctx = logg.WithSlug(ctx, slug)
		}

		var cust catalog.Customizations
		if tenantSvc != nil && catalogSvc != nil {
			if _, sf, err := loadStorefront(ctx, tenantSvc, catalogSvc, slug); err == nil {
				cust = sf.Customizations
			} else if logg != nil {
				logg.Warn(logg.WithField(ctx, "reason", err.Error()), "seo.fallback")
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write([]byte(rewriter.Render(cust, pageURL(r))))
	}
}

func pageURL(r *http.Request) string {
	host := r.Host
	if forwarded := r.Header.Get("X-Forwarded-Host"); forwarded != "" {
		host = forwarded
	}
	if host == "" {
		return ""
	}

	scheme := "https"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS == nil {
		scheme = "http"
	}

	path := r.URL.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return scheme + "://" + host + path
}
