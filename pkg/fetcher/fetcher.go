// Package fetcher retrieves raw sheet data: CSV export first, falling back
// across URL variants, then to the structured Sheets API when configured.
package fetcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/anandaputra/ngsdash/pkg/config"
)

// ErrAllAttemptsFailed is returned when no candidate URL produced a usable
// body and no request-level error was captured.
var ErrAllAttemptsFailed = errors.New("all csv fetch attempts failed")

// Fetcher pulls CSV exports of spreadsheet tabs with multi-URL fallback and
// a short-lived cache, plus a Sheets API escape hatch for when the export
// endpoints misbehave.
type Fetcher struct {
	client        *resty.Client
	cache         *Cache
	logger        *log.Logger
	spreadsheetID string
	apiKey        string
}

func New(cfg *config.Config, logger *log.Logger) *Fetcher {
	client := resty.New().
		SetTimeout(cfg.HTTPTimeout).
		SetHeader("Accept", "text/csv,text/plain,*/*").
		SetHeader("Cache-Control", "no-cache").
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	return &Fetcher{
		client:        client,
		cache:         NewCache(cfg.CacheTTL, cfg.CacheSize),
		logger:        logger,
		spreadsheetID: cfg.SpreadsheetID,
		apiKey:        cfg.APIKey,
	}
}

// candidateURLs lists the export-format variants of one tab, in the order
// they tend to succeed.
func candidateURLs(spreadsheetID, gid string) []string {
	return []string{
		fmt.Sprintf("https://docs.google.com/spreadsheets/u/0/d/%s/export?format=csv&gid=%s", spreadsheetID, gid),
		fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", spreadsheetID, gid),
		fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&gid=%s", spreadsheetID, gid),
	}
}

// CSV fetches the raw CSV text of one tab. Each candidate URL is tried in
// order; the first HTTP-success response with a non-empty body wins. The
// result is cached for the freshness window.
func (f *Fetcher) CSV(ctx context.Context, gid string) (string, error) {
	key := f.spreadsheetID + ":" + gid
	if body, ok := f.cache.Get(key); ok {
		f.logger.Debug("csv cache hit", "gid", gid)
		return body, nil
	}

	urls := candidateURLs(f.spreadsheetID, gid)
	var lastErr error

	for i, url := range urls {
		resp, err := f.client.R().SetContext(ctx).Get(url)
		if err != nil {
			f.logger.Debug("csv fetch attempt failed", "attempt", i+1, "url", url, "err", err)
			lastErr = err
			continue
		}
		if !resp.IsSuccess() {
			f.logger.Debug("csv fetch attempt rejected", "attempt", i+1, "status", resp.StatusCode())
			lastErr = fmt.Errorf("csv fetch failed: status %d", resp.StatusCode())
			continue
		}
		body := string(resp.Body())
		if body == "" {
			lastErr = fmt.Errorf("csv fetch returned empty body")
			continue
		}

		f.logger.Debug("csv fetched", "gid", gid, "attempt", i+1, "bytes", len(body))
		f.cache.Put(key, body)
		return body, nil
	}

	if lastErr == nil {
		lastErr = ErrAllAttemptsFailed
	}
	return "", lastErr
}

// Values reads a tab through the Sheets API and returns its cells as string
// rows, the same shape the CSV tokenizer produces.
func (f *Fetcher) Values(ctx context.Context, readRange string) ([][]string, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("sheets api fallback disabled: no api key configured")
	}

	svc, err := sheetsapi.NewService(ctx, option.WithAPIKey(f.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(f.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
