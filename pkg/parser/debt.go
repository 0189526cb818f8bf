package parser

import (
	"fmt"
	"strings"

	"github.com/anandaputra/ngsdash/pkg/models"
)

// Debt sheet layout:
// Player | Member ID | Waktu Input | Tanggal Hutang | HUTANG | SETOR | Sisa Pembayaran | StatusTagihan
const (
	debtColPlayer = iota
	debtColMemberID
	debtColInputTime
	debtColDebtDate
	debtColHutang
	debtColSetor
	debtColSisa
	debtColStatus
)

// ParseDebts maps tokenized debt-sheet rows to Debt records. Row 0 is the
// header. Rows whose player or member cells are empty or echo the header
// labels are dropped.
func (p *Parser) ParseDebts(rows [][]string) []models.Debt {
	if len(rows) <= 1 {
		p.logger.Debug("no debt data rows to parse", "rows", len(rows))
		return nil
	}

	debts := make([]models.Debt, 0, len(rows)-1)
	for i, row := range rows[1:] {
		idx := i + 1

		playerName := cellOr(row, debtColPlayer, fmt.Sprintf("Player_%d", idx))
		memberID := cellOr(row, debtColMemberID, fmt.Sprintf("ID_%d", idx))
		statusTagihan := cellOr(row, debtColStatus, "Hutang")

		// Sisa Pembayaran may carry an embedded minus sign the number
		// parser would otherwise swallow.
		sisaStr := cell(row, debtColSisa)
		sisa := ParseLocaleNumber(strings.Replace(sisaStr, "-", "", 1))
		if strings.Contains(sisaStr, "-") {
			sisa = -sisa
		}

		debt := models.Debt{
			ID:             fmt.Sprintf("debt_%d", idx),
			PlayerName:     playerName,
			MemberID:       memberID,
			InputTime:      cell(row, debtColInputTime),
			DebtDate:       cell(row, debtColDebtDate),
			Hutang:         ParseLocaleNumber(cell(row, debtColHutang)),
			Setor:          ParseLocaleNumber(cell(row, debtColSetor)),
			SisaPembayaran: sisa,
			StatusTagihan:  statusTagihan,
			Status:         models.ClassifyDebtStatus(statusTagihan),
		}

		if !validDebtRow(debt) {
			p.logger.Debug("dropping invalid debt row", "row", idx, "player", debt.PlayerName, "member", debt.MemberID)
			continue
		}
		debts = append(debts, debt)
	}

	p.logger.Debug("parsed debt rows", "total", len(rows)-1, "kept", len(debts))
	return debts
}

// validDebtRow guards against partial or duplicate header rows embedded in
// the data section.
func validDebtRow(d models.Debt) bool {
	return d.PlayerName != "" &&
		d.PlayerName != "Player" &&
		d.MemberID != "" &&
		d.MemberID != "Member ID"
}
