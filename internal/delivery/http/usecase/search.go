package usecase

import (
	"strings"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"golang.org/x/text/cases"
)

// FilterWords keeps the records whose term or definition contains query,
// ignoring case. Order is preserved; an empty query returns records as is.
func FilterWords(records []entity.WordRecord, query string) []entity.WordRecord {
	if query == "" {
		return records
	}

	// cases.Caser is stateful, one per call
	fold := cases.Fold()
	needle := fold.String(query)

	matched := make([]entity.WordRecord, 0)
	for _, r := range records {
		if strings.Contains(fold.String(r.Term), needle) || strings.Contains(fold.String(r.Definition), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}
