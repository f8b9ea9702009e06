// Package sheets wraps the Google Sheets API for use as the storefront
// data plane. Every merchant catalog lives in a spreadsheet, and orders
// are appended as rows.
package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/ruachlabs/telafome-backend/pkg/config"
	"github.com/ruachlabs/telafome-backend/pkg/logger"
)

var (
	errCredentialsRequired  = errors.New("sheets credentials are required")
	errSpreadsheetRequired  = errors.New("spreadsheet id is required")
	errRangeRequired        = errors.New("sheet range is required")
	errClientNotInitialized = errors.New("sheets client not initialized")
)

type Client struct {
	svc     *sheetsapi.Service
	timeout time.Duration
}

// NewClient creates a Sheets client and verifies it can reach the
// configured master spreadsheet.
func NewClient(ctx context.Context, cfg config.SheetsConfig, logg *logger.Logger) (*Client, error) {
	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	client := &Client{svc: svc, timeout: cfg.RequestTimeout}

	if err := client.Ping(ctx, cfg.MasterSheetID); err != nil {
		return nil, fmt.Errorf("verifying master spreadsheet: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "sheets client initialized")
	}

	return client, nil
}

func clientOptions(cfg config.SheetsConfig) ([]option.ClientOption, error) {
	if strings.TrimSpace(cfg.CredentialsJSON) != "" {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.CredentialsJSON))}, nil
	}
	if strings.TrimSpace(cfg.ClientEmail) != "" && strings.TrimSpace(cfg.PrivateKey) != "" {
		blob, err := json.Marshal(map[string]string{
			"type":         "service_account",
			"client_email": strings.TrimSpace(cfg.ClientEmail),
			"private_key":  cfg.NormalizedPrivateKey(),
			"token_uri":    "https://oauth2.googleapis.com/token",
		})
		if err != nil {
			return nil, fmt.Errorf("building service account credentials: %w", err)
		}
		return []option.ClientOption{option.WithCredentialsJSON(blob)}, nil
	}
	return nil, errCredentialsRequired
}

// Ping verifies the given spreadsheet is reachable with the configured
// credentials.
func (c *Client) Ping(ctx context.Context, spreadsheetID string) error {
	if c == nil || c.svc == nil {
		return errClientNotInitialized
	}
	if strings.TrimSpace(spreadsheetID) == "" {
		return errSpreadsheetRequired
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	_, err := c.svc.Spreadsheets.Get(spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	return err
}

// Values reads a single range, e.g. "Produtos!A:Z".
func (c *Client) Values(ctx context.Context, spreadsheetID, readRange string) ([][]any, error) {
	if c == nil || c.svc == nil {
		return nil, errClientNotInitialized
	}
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errSpreadsheetRequired
	}
	if strings.TrimSpace(readRange) == "" {
		return nil, errRangeRequired
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading range %q: %w", readRange, err)
	}
	return resp.Values, nil
}

// BatchValues reads several ranges in one API call and returns them
// keyed by the requested range string.
func (c *Client) BatchValues(ctx context.Context, spreadsheetID string, ranges []string) (map[string][][]any, error) {
	if c == nil || c.svc == nil {
		return nil, errClientNotInitialized
	}
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errSpreadsheetRequired
	}
	if len(ranges) == 0 {
		return nil, errRangeRequired
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.BatchGet(spreadsheetID).Ranges(ranges...).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("batch reading %d ranges: %w", len(ranges), err)
	}

	out := make(map[string][][]any, len(resp.ValueRanges))
	for i, vr := range resp.ValueRanges {
		if i < len(ranges) {
			out[ranges[i]] = vr.Values
		}
	}
	return out, nil
}

// AppendRow appends a single row below the given range using
// user-entered semantics, matching what a human typing into the sheet
// would produce.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, appendRange string, row []any) error {
	if c == nil || c.svc == nil {
		return errClientNotInitialized
	}
	if strings.TrimSpace(spreadsheetID) == "" {
		return errSpreadsheetRequired
	}
	if strings.TrimSpace(appendRange) == "" {
		return errRangeRequired
	}
	if len(row) == 0 {
		return nil
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	body := &sheetsapi.ValueRange{Values: [][]any{row}}
	_, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, appendRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("appending to %q: %w", appendRange, err)
	}
	return nil
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// IsNotFound reports whether the error is a Sheets API 404.
func IsNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr.Code == http.StatusNotFound
	}
	return false
}

// IsPermissionDenied reports whether the service account lacks access
// to the spreadsheet.
func IsPermissionDenied(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr.Code == http.StatusForbidden
	}
	return false
}

var spreadsheetURLRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9\-_]+)`)

// SpreadsheetIDFromURL extracts the document id from a full sheet URL.
// A bare id passes through unchanged.
func SpreadsheetIDFromURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errSpreadsheetRequired
	}
	if m := spreadsheetURLRe.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	if strings.Contains(raw, "/") {
		return "", fmt.Errorf("unrecognized spreadsheet url %q", raw)
	}
	return raw, nil
}
