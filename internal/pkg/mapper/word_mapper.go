package mapper

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
)

var (
	ErrInvalidID    = errors.New("invalid word id")
	ErrMissingField = errors.New("missing word field")
)

// ConvertRowToWordRecord - Convert one CSV row (already split by header) to a WordRecord
func ConvertRowToWordRecord(header []string, row []string, cols entity.WordColumns) (entity.WordRecord, error) {
	rec := entity.WordRecord{}
	var rawID string
	for i, name := range header {
		if i >= len(row) {
			break
		}
		value := row[i]
		switch name {
		case cols.ID:
			rawID = value
		case cols.Term:
			rec.Term = value
		case cols.Definition:
			rec.Definition = value
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[name] = value
		}
	}

	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return entity.WordRecord{}, fmt.Errorf("%w: %q", ErrInvalidID, rawID)
	}
	rec.ID = id

	if strings.TrimSpace(rec.Term) == "" {
		return entity.WordRecord{}, fmt.Errorf("%w: %s", ErrMissingField, cols.Term)
	}
	if strings.TrimSpace(rec.Definition) == "" {
		return entity.WordRecord{}, fmt.Errorf("%w: %s", ErrMissingField, cols.Definition)
	}

	return rec, nil
}

// storedWord - Bentuk favorit di storage. ID bisa number atau string numerik.
type storedWord struct {
	ID         json.RawMessage   `json:"id"`
	Term       string            `json:"term"`
	Definition string            `json:"definition"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// EncodeFavorites - Serialize favorites as a flat JSON array of records
func EncodeFavorites(records []entity.WordRecord) (string, error) {
	if records == nil {
		records = []entity.WordRecord{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeFavorites - Parse the stored favorites array. An unreadable payload is
// an error; individual malformed entries are dropped and counted.
func DecodeFavorites(raw string) ([]entity.WordRecord, int, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, 0, fmt.Errorf("decode favorites: %w", err)
	}

	records := make([]entity.WordRecord, 0, len(items))
	dropped := 0
	for _, item := range items {
		var sw storedWord
		if err := json.Unmarshal(item, &sw); err != nil {
			dropped++
			continue
		}
		id, ok := parseStoredID(sw.ID)
		if !ok || sw.Term == "" || sw.Definition == "" {
			dropped++
			continue
		}
		records = append(records, entity.WordRecord{
			ID:         id,
			Term:       sw.Term,
			Definition: sw.Definition,
			Extra:      sw.Extra,
		})
	}
	return records, dropped, nil
}

func parseStoredID(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
