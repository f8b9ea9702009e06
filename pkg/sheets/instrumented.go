package sheets

import (
	"context"
	"time"

	"github.com/ruachlabs/telafome-backend/pkg/metrics"
)

// Instrumented decorates a Client with per-call Prometheus metrics.
type Instrumented struct {
	client  *Client
	metrics *metrics.SheetsMetrics
}

// Instrument wraps the client. A nil metrics sink records nothing.
func Instrument(client *Client, m *metrics.SheetsMetrics) *Instrumented {
	return &Instrumented{client: client, metrics: m}
}

func (i *Instrumented) Values(ctx context.Context, spreadsheetID, readRange string) ([][]any, error) {
	start := time.Now()
	rows, err := i.client.Values(ctx, spreadsheetID, readRange)
	i.metrics.ObserveCall("values_get", err, time.Since(start))
	return rows, err
}

func (i *Instrumented) BatchValues(ctx context.Context, spreadsheetID string, ranges []string) (map[string][][]any, error) {
	start := time.Now()
	out, err := i.client.BatchValues(ctx, spreadsheetID, ranges)
	i.metrics.ObserveCall("values_batch_get", err, time.Since(start))
	return out, err
}

func (i *Instrumented) AppendRow(ctx context.Context, spreadsheetID, appendRange string, row []any) error {
	start := time.Now()
	err := i.client.AppendRow(ctx, spreadsheetID, appendRange, row)
	i.metrics.ObserveCall("values_append", err, time.Since(start))
	return err
}

func (i *Instrumented) Ping(ctx context.Context, spreadsheetID string) error {
	return i.client.Ping(ctx, spreadsheetID)
}
