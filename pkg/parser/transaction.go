package parser

import (
	"fmt"

	"github.com/anandaputra/ngsdash/pkg/models"
)

// Transaction sheet layout:
// Member ID | Player | Date of entry | Time | Day | ID Game | Nick Game | Masuk Akun | Coin | Rate Coin | Room | Note | Payout | ID Censored | ID Transaksi
const (
	txColMemberID = iota
	txColPlayer
	txColDateOfEntry
	txColTime
	txColDay
	txColIDGame
	txColNickGame
	txColMasukAkun
	txColCoin
	txColRateCoin
	txColRoom
	txColNote
	txColPayout
	txColIDCensored
	txColIDTransaksi
)

// ParseTransactions maps tokenized transaction-sheet rows to Transaction
// records. Payout is kept as the raw currency string; ParseLocaleNumber runs
// on it downstream when a numeric value is needed.
func (p *Parser) ParseTransactions(rows [][]string) []models.Transaction {
	if len(rows) <= 1 {
		p.logger.Debug("no transaction data rows to parse", "rows", len(rows))
		return nil
	}

	txs := make([]models.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		idx := i + 1

		tx := models.Transaction{
			ID:          fmt.Sprintf("transaction_%d", idx),
			MemberID:    cell(row, txColMemberID),
			PlayerName:  cell(row, txColPlayer),
			DateOfEntry: cell(row, txColDateOfEntry),
			Time:        cell(row, txColTime),
			Day:         cell(row, txColDay),
			IDGame:      cell(row, txColIDGame),
			NickGame:    cell(row, txColNickGame),
			MasukAkun:   cell(row, txColMasukAkun),
			Coin:        leadingInt(cell(row, txColCoin)),
			RateCoin:    cell(row, txColRateCoin),
			Room:        cell(row, txColRoom),
			Note:        cell(row, txColNote),
			Payout:      cell(row, txColPayout),
			IDCensored:  cell(row, txColIDCensored),
			IDTransaksi: cell(row, txColIDTransaksi),
		}

		if tx.PlayerName == "" || tx.PlayerName == "Player" || tx.MemberID == "" || tx.MemberID == "Member ID" {
			p.logger.Debug("dropping invalid transaction row", "row", idx, "player", tx.PlayerName, "member", tx.MemberID)
			continue
		}
		txs = append(txs, tx)
	}

	p.logger.Debug("parsed transaction rows", "total", len(rows)-1, "kept", len(txs))
	return txs
}
