package entity

// WordRecord is one vocabulary entry. Identity is ID only.
type WordRecord struct {
	ID         int               `json:"id"`
	Term       string            `json:"term"`
	Definition string            `json:"definition"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Column names recognised by the CSV loader
type WordColumns struct {
	ID         string
	Term       string
	Definition string
}

// VocabularySet describes one configured word list
type VocabularySet struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	WordCount int    `json:"word_count"`
	Loaded    bool   `json:"loaded"`
}

// Word as rendered on a set listing
type WordItem struct {
	WordRecord
	Favorite bool `json:"favorite"`
}

// Request untuk toggle favorite
type ToggleFavoriteRequest struct {
	Set string `json:"set" validate:"required"`
	// pointer so that id 0 is distinguishable from a missing id
	ID *int `json:"id" validate:"required"`
}

// Response untuk toggle favorite
type ToggleFavoriteResponse struct {
	ID       int  `json:"id"`
	Favorite bool `json:"favorite"`
	Total    int  `json:"total"`
}
