package parser

import (
	"testing"

	"github.com/charmbracelet/log"

	"github.com/anandaputra/ngsdash/pkg/models"
)

const debtCSV = `Player,Member ID,Waktu Input,Tanggal Hutang,HUTANG,SETOR,Sisa Pembayaran,StatusTagihan
Djoy,X_NGS_038,15/07/2025 15.13.18,26/08/2023,15.000.000,12.000.000,3.000.000,Hutang
ayahe Nindy,X_NGS_001,16/09/2023 23.22.11,26/08/2023,8.500.000,8.500.000,0,Sudah Lunas
Budi,X_NGS_012,01/02/2024 09.00.00,01/02/2024,5.000.000,6.000.000,-1.000.000,Nitip dulu ya
`

func TestParseDebts(t *testing.T) {
	p := New(log.Default())
	debts := p.ParseDebts(Tokenize(debtCSV))

	if len(debts) != 3 {
		t.Fatalf("expected 3 debts, got %d", len(debts))
	}

	first := debts[0]
	if first.PlayerName != "Djoy" || first.MemberID != "X_NGS_038" {
		t.Errorf("unexpected identity: %+v", first)
	}
	if first.Hutang != 15000000 || first.Setor != 12000000 || first.SisaPembayaran != 3000000 {
		t.Errorf("unexpected amounts: hutang=%v setor=%v sisa=%v", first.Hutang, first.Setor, first.SisaPembayaran)
	}
	if first.Status != models.DebtPending {
		t.Errorf("expected pending status, got %s", first.Status)
	}

	if debts[1].Status != models.DebtPaid {
		t.Errorf("'Sudah Lunas' should classify as paid, got %s", debts[1].Status)
	}
	if debts[2].Status != models.DebtNitip {
		t.Errorf("'Nitip dulu ya' should classify as nitip, got %s", debts[2].Status)
	}
	if debts[2].SisaPembayaran != -1000000 {
		t.Errorf("negative sisa should survive parsing, got %v", debts[2].SisaPembayaran)
	}
}

func TestParseDebtsDropsHeaderEcho(t *testing.T) {
	csv := `Player,Member ID,Waktu Input,Tanggal Hutang,HUTANG,SETOR,Sisa Pembayaran,StatusTagihan
Player,Member ID,,,,,,
Djoy,X_NGS_038,,,1.000,0,1.000,Hutang
`
	p := New(log.Default())
	debts := p.ParseDebts(Tokenize(csv))

	if len(debts) != 1 {
		t.Fatalf("expected 1 debt after dropping header echo, got %d", len(debts))
	}
	if debts[0].PlayerName != "Djoy" {
		t.Errorf("unexpected record kept: %+v", debts[0])
	}
}

func TestParseDebtsEmptyInput(t *testing.T) {
	p := New(log.Default())
	if got := p.ParseDebts(nil); len(got) != 0 {
		t.Errorf("expected no debts from nil rows, got %d", len(got))
	}
	if got := p.ParseDebts([][]string{{"Player", "Member ID"}}); len(got) != 0 {
		t.Errorf("expected no debts from header-only rows, got %d", len(got))
	}
}

func TestClassifyDebtStatus(t *testing.T) {
	cases := []struct {
		label string
		want  models.DebtStatus
	}{
		{"Sudah Lunas", models.DebtPaid},
		{"PAID", models.DebtPaid},
		{"Nitip dulu ya", models.DebtNitip},
		{"titip", models.DebtNitip},
		{"terlambat bayar", models.DebtOverdue},
		{"Hutang", models.DebtPending},
		{"", models.DebtPending},
	}
	for _, c := range cases {
		if got := models.ClassifyDebtStatus(c.label); got != c.want {
			t.Errorf("ClassifyDebtStatus(%q) = %s, want %s", c.label, got, c.want)
		}
	}
}
