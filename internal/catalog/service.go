package catalog

import (
	"context"
	"fmt"

	"github.com/ruachlabs/telafome-backend/internal/pricing"
	pkgerrors "github.com/ruachlabs/telafome-backend/pkg/errors"
	"github.com/ruachlabs/telafome-backend/pkg/sheets"
)

type sheetReader interface {
	BatchValues(ctx context.Context, spreadsheetID string, ranges []string) (map[string][][]any, error)
}

// Storefront is everything the menu page needs for one tenant.
type Storefront struct {
	Products       []Product        `json:"products"`
	AddOns         []AddOn          `json:"addOns"`
	Coupons        []pricing.Coupon `json:"coupons"`
	Customizations Customizations   `json:"customizations"`
}

// Service loads storefront catalogs.
type Service interface {
	Storefront(ctx context.Context, spreadsheetID string) (*Storefront, error)
}

// Options tunes catalog loading.
type Options struct {
	// IncludeInactive keeps rows whose status column is not "Ativo".
	IncludeInactive bool
}

type service struct {
	reader sheetReader
	opts   Options
}

// NewService builds a catalog loader over a sheet reader.
func NewService(reader sheetReader, opts Options) (Service, error) {
	if reader == nil {
		return nil, fmt.Errorf("sheet reader required")
	}
	return &service{reader: reader, opts: opts}, nil
}

// Storefront reads the four catalog tabs in a single batch call and
// maps them to domain types. Missing tabs surface as dependency errors;
// merchants copy a template so all four are expected to exist.
func (s *service) Storefront(ctx context.Context, spreadsheetID string) (*Storefront, error) {
	tabs := []string{TabProducts, TabAddOns, TabCoupons, TabCustomizations}
	byTab, err := s.reader.BatchValues(ctx, spreadsheetID, tabs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading catalog spreadsheet")
	}

	sf := &Storefront{
		Products:       make([]Product, 0),
		AddOns:         make([]AddOn, 0),
		Coupons:        make([]pricing.Coupon, 0),
		Customizations: sheets.PairsToMap(byTab[TabCustomizations]),
	}

	for _, rec := range sheets.RowsToRecords(byTab[TabProducts]) {
		p := productFromRecord(rec)
		if !p.Active && !s.opts.IncludeInactive {
			continue
		}
		sf.Products = append(sf.Products, p)
	}
	for _, rec := range sheets.RowsToRecords(byTab[TabAddOns]) {
		a := addOnFromRecord(rec)
		if !a.Active && !s.opts.IncludeInactive {
			continue
		}
		sf.AddOns = append(sf.AddOns, a)
	}
	for _, rec := range sheets.RowsToRecords(byTab[TabCoupons]) {
		if c := couponFromRecord(rec); c.Code != "" {
			sf.Coupons = append(sf.Coupons, c)
		}
	}

	return sf, nil
}

// ProductByID finds a product in the loaded storefront.
func (sf *Storefront) ProductByID(id string) (Product, bool) {
	for _, p := range sf.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// AddOnByID finds an add-on in the loaded storefront.
func (sf *Storefront) AddOnByID(id string) (AddOn, bool) {
	for _, a := range sf.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}
