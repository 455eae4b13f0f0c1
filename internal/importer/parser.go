// Package importer implements the cash-flow CSV import pipeline: line
// tokenizing, locale-aware monetary normalization, per-row validation and
// income/expense classification. Everything here is pure computation on the
// input text; persistence of the resulting records belongs to the caller.
package importer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

// Column order of the import schema. Header names are ignored; only position
// matters.
const (
	colDate = iota
	colAmount
	colBusiness
	colCategory
	colTransactionID
	colAccount
	colStatus
)

// Pipeline parses raw CSV text into import records.
type Pipeline struct {
	log *zap.Logger
}

// New creates a Pipeline. A nil logger disables diagnostics.
func New(log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{log: log}
}

// SplitLine tokenizes one CSV line. Commas inside double-quote spans do not
// split; a quote character always toggles the quoted state, so escaped quotes
// are not supported. Fields are trimmed and quotes are not part of the output.
func SplitLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))

	return fields
}

// Parse splits text into lines, treats the first line as the header and maps
// every remaining non-blank line onto an ImportRecord. Rows whose field count
// differs from the header's are skipped with a warning and counted in the
// second return value; no partial records are emitted. Blank lines are
// ignored silently.
func (p *Pipeline) Parse(text string) ([]domain.ImportRecord, int) {
	lines := strings.Split(text, "\n")
	header := SplitLine(lines[0])
	want := len(header)

	var records []domain.ImportRecord
	skipped := 0

	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := SplitLine(line)
		if len(fields) != want {
			skipped++
			p.log.Warn("skipping row with unexpected field count",
				zap.Int("line", i+2),
				zap.Int("fields", len(fields)),
				zap.Int("expected", want),
			)
			continue
		}

		records = append(records, domain.ImportRecord{
			Date:          fieldAt(fields, colDate),
			Amount:        fieldAt(fields, colAmount),
			Business:      fieldAt(fields, colBusiness),
			Category:      fieldAt(fields, colCategory),
			TransactionID: fieldAt(fields, colTransactionID),
			Account:       fieldAt(fields, colAccount),
			Status:        fieldAt(fields, colStatus),
		})
	}

	return records, skipped
}

// fieldAt returns fields[i], or "" when the header had fewer than 7 columns.
func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
