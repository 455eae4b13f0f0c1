package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks every record against the import schema and collects all
// violations instead of stopping at the first one. Line numbers follow the
// source file: the header is line 1, so records[0] reports as line 2. An
// empty result means the batch is acceptable.
func Validate(records []domain.ImportRecord) []domain.ValidationError {
	var errs []domain.ValidationError

	add := func(line int, format string, args ...interface{}) {
		errs = append(errs, domain.ValidationError{
			Line:    line,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for i, rec := range records {
		line := i + 2

		if !datePattern.MatchString(rec.Date) {
			add(line, "date must be in yyyy-mm-dd format, got %q", rec.Date)
		}

		if strings.TrimSpace(rec.Amount) == "" {
			add(line, "amount is required")
		} else if ParseAmount(rec.Amount).IsZero() {
			add(line, "amount %q is not a valid non-zero number", rec.Amount)
		}

		if strings.TrimSpace(rec.Business) == "" {
			add(line, "business description is required")
		}

		if rec.Status != domain.ImportStatusFixed && rec.Status != domain.ImportStatusVariable {
			add(line, "status must be %q or %q, got %q",
				domain.ImportStatusFixed, domain.ImportStatusVariable, rec.Status)
		}
	}

	return errs
}
