package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = "Date,Amount,Business,Category,TransactionID,Account,Status"

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"plain fields", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"fields are trimmed", " a , b ,c ", []string{"a", "b", "c"}},
		{"empty fields kept", "a,,c", []string{"a", "", "c"}},
		{"quotes stripped", `"hello"`, []string{"hello"}},
		{"single field", "only", []string{"only"}},
		{"trailing comma yields empty field", "a,b,", []string{"a", "b", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitLine(tt.line))
		})
	}
}

func TestParse(t *testing.T) {
	p := New(nil)

	csv := sampleHeader + "\n" +
		"2025-01-15,1200.00,Venda Gol,Vendas,TX1,Caixa,Fixa\n" +
		`2025-01-16,"(350,00)","Pecas, Oficina",Manutencao,TX2,Caixa,Variavel`

	records, skipped := p.Parse(csv)
	require.Len(t, records, 2)
	assert.Zero(t, skipped)

	assert.Equal(t, "2025-01-15", records[0].Date)
	assert.Equal(t, "1200.00", records[0].Amount)
	assert.Equal(t, "Venda Gol", records[0].Business)
	assert.Equal(t, "Vendas", records[0].Category)
	assert.Equal(t, "TX1", records[0].TransactionID)
	assert.Equal(t, "Caixa", records[0].Account)
	assert.Equal(t, "Fixa", records[0].Status)

	// Quoted fields survive embedded commas.
	assert.Equal(t, "(350,00)", records[1].Amount)
	assert.Equal(t, "Pecas, Oficina", records[1].Business)
}

func TestParse_SkipsRowsWithWrongFieldCount(t *testing.T) {
	p := New(nil)

	csv := sampleHeader + "\n" +
		"2025-01-15,1200.00,Venda Gol,Vendas,TX1,Caixa,Fixa\n" +
		"too,few,fields\n" +
		"a,b,c,d,e,f,g,extra\n" +
		"2025-01-16,300.00,Troca de oleo,Servicos,TX2,Caixa,Variavel"

	records, skipped := p.Parse(csv)

	// Mismatched rows are dropped whole: no error, no partial record.
	require.Len(t, records, 2)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, "TX1", records[0].TransactionID)
	assert.Equal(t, "TX2", records[1].TransactionID)
}

func TestParse_IgnoresBlankLines(t *testing.T) {
	p := New(nil)

	csv := sampleHeader + "\n\n" +
		"2025-01-15,1200.00,Venda Gol,Vendas,TX1,Caixa,Fixa\n" +
		"   \n"

	records, skipped := p.Parse(csv)
	assert.Len(t, records, 1)
	assert.Zero(t, skipped)
}

func TestParse_HeaderOnly(t *testing.T) {
	p := New(nil)

	records, skipped := p.Parse(sampleHeader)
	assert.Empty(t, records)
	assert.Zero(t, skipped)
}
