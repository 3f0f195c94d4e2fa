package usecase

import (
	"testing"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/stretchr/testify/assert"
)

func TestFilterWords(t *testing.T) {
	t.Parallel()

	records := []entity.WordRecord{
		{ID: 1, Term: "abcd", Definition: "first"},
		{ID: 2, Term: "zzz", Definition: "xABCx"},
		{ID: 3, Term: "Straße", Definition: "길"},
		{ID: 4, Term: "dog", Definition: "개"},
	}

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty query returns all", "", []int{1, 2, 3, 4}},
		{"term or definition, any case", "abc", []int{1, 2}},
		{"upper case query", "ABC", []int{1, 2}},
		{"korean definition", "개", []int{4}},
		{"unicode folding", "STRASSE", []int{3}},
		{"no match", "qqq", []int{}},
		{"query is not trimmed", " dog", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FilterWords(records, tt.query)
			ids := make([]int, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterWords_EmptyQueryIsUnchanged(t *testing.T) {
	t.Parallel()

	records := words(5)
	assert.Equal(t, records, FilterWords(records, ""))
	assert.Empty(t, FilterWords(nil, "a"))
}
