// Package service wires fetching, tokenizing and parsing into per-kind
// pipelines and a concurrent whole-dashboard refresh.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anandaputra/ngsdash/pkg/config"
	"github.com/anandaputra/ngsdash/pkg/datefilter"
	"github.com/anandaputra/ngsdash/pkg/fetcher"
	"github.com/anandaputra/ngsdash/pkg/models"
	"github.com/anandaputra/ngsdash/pkg/parser"
)

// SheetSource supplies raw sheet data. *fetcher.Fetcher is the production
// implementation; tests substitute stubs.
type SheetSource interface {
	CSV(ctx context.Context, gid string) (string, error)
	Values(ctx context.Context, readRange string) ([][]string, error)
}

// Service owns the fetch-tokenize-parse pipeline for every data kind.
type Service struct {
	source SheetSource
	parser *parser.Parser
	cfg    *config.Config
	logger *log.Logger
	now    func() time.Time
}

func New(cfg *config.Config, source SheetSource, logger *log.Logger) *Service {
	return &Service{
		source: source,
		parser: parser.New(logger),
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// rows fetches and tokenizes one tab: CSV export first, then the structured
// Sheets API when the export path fails entirely.
func (s *Service) rows(ctx context.Context, kind parser.Kind) ([][]string, error) {
	gid := s.cfg.GID(string(kind))

	text, err := s.source.CSV(ctx, gid)
	if err == nil {
		return parser.Tokenize(text), nil
	}
	s.logger.Warn("csv fetch failed, trying sheets api", "kind", kind, "err", err)

	rows, apiErr := s.source.Values(ctx, s.cfg.Range(string(kind)))
	if apiErr != nil {
		s.logger.Warn("sheets api fallback failed", "kind", kind, "err", apiErr)
		return nil, err
	}
	return rows, nil
}

// Debts returns the current debt collection. On total fetch failure the
// static fallback substitutes when configured for this kind.
func (s *Service) Debts(ctx context.Context) ([]models.Debt, error) {
	rows, err := s.rows(ctx, parser.KindDebt)
	if err != nil || len(rows) <= 1 {
		if s.cfg.UseStaticFallback(string(parser.KindDebt)) {
			s.logger.Warn("using static debt fallback", "err", err)
			return fetcher.FallbackDebts(), nil
		}
		return nil, err
	}
	return s.parser.ParseDebts(rows), nil
}

// Sales returns the current sales collection, with the same fallback policy.
func (s *Service) Sales(ctx context.Context) ([]models.Sale, error) {
	rows, err := s.rows(ctx, parser.KindSales)
	if err != nil || len(rows) <= 1 {
		if s.cfg.UseStaticFallback(string(parser.KindSales)) {
			s.logger.Warn("using static sales fallback", "err", err)
			return fetcher.FallbackSales(), nil
		}
		return nil, err
	}
	return s.parser.ParseSales(rows), nil
}

// Transactions returns the current transaction collection. There is no
// static fallback for this kind by default; failures surface to the caller.
func (s *Service) Transactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.rows(ctx, parser.KindTransaction)
	if err != nil {
		return nil, err
	}
	return s.parser.ParseTransactions(rows), nil
}

// SoldItems returns the current sold-items collection.
func (s *Service) SoldItems(ctx context.Context) ([]models.SoldItem, error) {
	rows, err := s.rows(ctx, parser.KindSoldItems)
	if err != nil || len(rows) <= 1 {
		if s.cfg.UseStaticFallback(string(parser.KindSoldItems)) {
			s.logger.Warn("using static sold-items fallback", "err", err)
			return fetcher.FallbackSoldItems(), nil
		}
		return nil, err
	}
	return s.parser.ParseSoldItems(rows, s.now()), nil
}

// CategorySales returns the per-platform aggregates, optionally restricted to
// a symbolic date range.
func (s *Service) CategorySales(ctx context.Context, sel datefilter.Selector) ([]models.CategorySales, error) {
	rows, err := s.rows(ctx, parser.KindCategorySales)
	if err != nil {
		return nil, err
	}
	if sel != "" {
		if r, ok := datefilter.RangeFor(sel, s.now()); ok {
			return s.parser.ParseCategorySalesInRange(rows, r.Start, r.End), nil
		}
	}
	return s.parser.ParseCategorySales(rows), nil
}

// Snapshot is one complete refresh of every data kind. A failed kind holds
// an empty collection and its error; the others are unaffected.
type Snapshot struct {
	Debts         []models.Debt          `json:"debts"`
	Sales         []models.Sale          `json:"sales"`
	Transactions  []models.Transaction   `json:"transactions"`
	SoldItems     []models.SoldItem      `json:"soldItems"`
	CategorySales []models.CategorySales `json:"categorySales"`

	Errors map[parser.Kind]error `json:"-"`
}

// Refresh fetches all five kinds concurrently with an all-settled join: each
// kind succeeds or fails on its own, and the snapshot atomically replaces
// whatever the caller held before.
func (s *Service) Refresh(ctx context.Context) *Snapshot {
	snap := &Snapshot{Errors: make(map[parser.Kind]error)}

	var (
		wg   sync.WaitGroup
		errs [5]error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		snap.Debts, errs[0] = s.Debts(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Sales, errs[1] = s.Sales(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Transactions, errs[2] = s.Transactions(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.SoldItems, errs[3] = s.SoldItems(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.CategorySales, errs[4] = s.CategorySales(ctx, "")
	}()
	wg.Wait()

	for i, kind := range parser.Kinds {
		if errs[i] != nil {
			s.logger.Warn("refresh kind failed", "kind", kind, "err", errs[i])
			snap.Errors[kind] = errs[i]
		}
	}
	return snap
}
