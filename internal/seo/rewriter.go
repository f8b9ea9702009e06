// Package seo rewrites the static index.html per tenant so link
// previews show the store's own name, description and logo instead of
// the SPA defaults.
package seo

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ruachlabs/telafome-backend/internal/catalog"
)

// defaultLogoURL is the placeholder logo baked into the built SPA.
const defaultLogoURL = "https://i.ibb.co/gZJHQ96G/Gemini-Generated-Image-9ttzu89ttzu89ttz.png"

var (
	titleRe       = regexp.MustCompile(`<title>.*?</title>`)
	defaultLogoRe = regexp.MustCompile(`https?://i\.ibb\.co/gZJHQ96G/Gemini-Generated-Image-9ttzu89ttzu89ttz\.png`)

	metaRes = map[string]*regexp.Regexp{
		"og:title":            metaRe("property", "og:title"),
		"twitter:title":       metaRe("name", "twitter:title"),
		"description":         metaRe("name", "description"),
		"og:description":      metaRe("property", "og:description"),
		"twitter:description": metaRe("name", "twitter:description"),
		"og:url":              metaRe("property", "og:url"),
		"og:site_name":        metaRe("property", "og:site_name"),
	}
)

func metaRe(attr, key string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`<meta %s="%s" content=".*?"\s*/?>`, attr, regexp.QuoteMeta(key)))
}

func metaTag(attr, key, content string) string {
	return fmt.Sprintf(`<meta %s="%s" content="%s" />`, attr, key, content)
}

// Rewriter holds the index.html template loaded at startup.
type Rewriter struct {
	template string
}

// NewRewriter wraps the raw index.html contents.
func NewRewriter(indexHTML string) (*Rewriter, error) {
	if strings.TrimSpace(indexHTML) == "" {
		return nil, fmt.Errorf("index html is empty")
	}
	return &Rewriter{template: indexHTML}, nil
}

// Render produces the tenant-specific page. Without a store name the
// shell keeps its built-in title and description; a tenant's values
// never leak into another tenant's page.
func (r *Rewriter) Render(cust catalog.Customizations, pageURL string) string {
	out := r.template

	replacements := map[string]string{}
	if name := html.EscapeString(strings.TrimSpace(cust.Get(catalog.KeyStoreName))); name != "" {
		title := name + " | Cardápio Digital"
		description := html.EscapeString(fmt.Sprintf(
			"Confira o cardápio digital completo de %s! Faça seu pedido online de forma rápida e segura.", name))

		out = titleRe.ReplaceAllLiteralString(out, "<title>"+title+"</title>")
		replacements["og:title"] = metaTag("property", "og:title", title)
		replacements["twitter:title"] = metaTag("name", "twitter:title", title)
		replacements["description"] = metaTag("name", "description", description)
		replacements["og:description"] = metaTag("property", "og:description", description)
		replacements["twitter:description"] = metaTag("name", "twitter:description", description)
		replacements["og:site_name"] = metaTag("property", "og:site_name", name)
	}
	if pageURL != "" {
		replacements["og:url"] = metaTag("property", "og:url", html.EscapeString(pageURL))
	}
	for key, replacement := range replacements {
		out = metaRes[key].ReplaceAllLiteralString(out, replacement)
	}

	if logo := strings.TrimSpace(cust.Get(catalog.KeyLogoURL)); logo != "" {
		out = defaultLogoRe.ReplaceAllLiteralString(out, html.EscapeString(logo))
	}

	return out
}
