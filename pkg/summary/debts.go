package summary

import (
	"strings"

	"github.com/anandaputra/ngsdash/pkg/models"
)

// DebtSummary partitions outstanding balances by status bucket. The buckets
// use the same substring rules as record classification, so a record always
// lands where its table row displays it.
type DebtSummary struct {
	Total  float64 `json:"total"`
	Hutang float64 `json:"hutang"`
	Nitip  float64 `json:"nitip"`
	Lunas  float64 `json:"lunas"`
}

// Debts sums SisaPembayaran per bucket plus a grand total over all records.
func Debts(debts []models.Debt) DebtSummary {
	var s DebtSummary
	for _, d := range debts {
		s.Total += d.SisaPembayaran
		if isHutang(d) {
			s.Hutang += d.SisaPembayaran
		}
		if isNitip(d) {
			s.Nitip += d.SisaPembayaran
		}
		if isLunas(d) {
			s.Lunas += d.SisaPembayaran
		}
	}
	return s
}

// DebtStatusCounts holds record counts per filterable status.
type DebtStatusCounts struct {
	All     int `json:"all"`
	Pending int `json:"pending"`
	Paid    int `json:"paid"`
	Nitip   int `json:"nitip"`
}

// CountDebtStatuses tallies how many records each status filter would show.
func CountDebtStatuses(debts []models.Debt) DebtStatusCounts {
	counts := DebtStatusCounts{All: len(debts)}
	for _, d := range debts {
		switch {
		case isHutang(d):
			counts.Pending++
		case isLunas(d):
			counts.Paid++
		case isNitip(d):
			counts.Nitip++
		}
	}
	return counts
}

// FilterDebtsByStatus keeps records matching the given status filter; "all"
// (or anything unrecognized) keeps everything.
func FilterDebtsByStatus(debts []models.Debt, filter string) []models.Debt {
	var pred func(models.Debt) bool
	switch filter {
	case "pending":
		pred = isHutang
	case "paid":
		pred = isLunas
	case "nitip":
		pred = isNitip
	default:
		return debts
	}

	out := make([]models.Debt, 0, len(debts))
	for _, d := range debts {
		if pred(d) {
			out = append(out, d)
		}
	}
	return out
}

func isHutang(d models.Debt) bool {
	return strings.Contains(strings.ToLower(d.StatusTagihan), "hutang") ||
		d.Status == models.DebtPending || d.Status == models.DebtOverdue
}

func isNitip(d models.Debt) bool {
	lower := strings.ToLower(d.StatusTagihan)
	return strings.Contains(lower, "nitip") || strings.Contains(lower, "titip") ||
		d.Status == models.DebtNitip
}

func isLunas(d models.Debt) bool {
	return strings.Contains(strings.ToLower(d.StatusTagihan), "lunas") ||
		d.Status == models.DebtPaid
}
