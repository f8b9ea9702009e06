// Package tenants resolves storefront slugs against the master
// spreadsheet. Each row of the master sheet maps a public slug to the
// merchant's own catalog spreadsheet.
package tenants

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/ruachlabs/telafome-backend/pkg/errors"
	"github.com/ruachlabs/telafome-backend/pkg/sheets"
)

const (
	colSlug      = "URL Empresa"
	colSheetLink = "Link Planilha"
	colWhatsApp  = "WhatsApp"
)

type sheetReader interface {
	Values(ctx context.Context, spreadsheetID, readRange string) ([][]any, error)
}

// Tenant is a resolved merchant.
type Tenant struct {
	Slug          string
	SpreadsheetID string
	WhatsApp      string
}

// Service resolves slugs to tenants.
type Service interface {
	Resolve(ctx context.Context, slug string) (*Tenant, error)
}

type service struct {
	reader        sheetReader
	masterSheetID string
	masterTab     string
}

// NewService builds a tenant resolver over the master spreadsheet.
func NewService(reader sheetReader, masterSheetID, masterTab string) (Service, error) {
	if reader == nil {
		return nil, fmt.Errorf("sheet reader required")
	}
	if strings.TrimSpace(masterSheetID) == "" {
		return nil, fmt.Errorf("master sheet id required")
	}
	if strings.TrimSpace(masterTab) == "" {
		return nil, fmt.Errorf("master tab required")
	}
	return &service{
		reader:        reader,
		masterSheetID: masterSheetID,
		masterTab:     masterTab,
	}, nil
}

// Resolve finds the tenant whose slug matches exactly. Rows without a
// linked spreadsheet are treated as absent.
func (s *service) Resolve(ctx context.Context, slug string) (*Tenant, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storefront slug is required")
	}

	rows, err := s.reader.Values(ctx, s.masterSheetID, s.masterTab)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading master spreadsheet")
	}

	for _, rec := range sheets.RowsToRecords(rows) {
		if rec.Get(colSlug) != slug {
			continue
		}
		link := strings.TrimSpace(rec.Get(colSheetLink))
		if link == "" {
			break
		}
		sheetID, err := sheets.SpreadsheetIDFromURL(link)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "parsing tenant spreadsheet link")
		}
		return &Tenant{
			Slug:          slug,
			SpreadsheetID: sheetID,
			WhatsApp:      strings.TrimSpace(rec.Get(colWhatsApp)),
		}, nil
	}

	return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("storefront %q not found", slug))
}
