package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// HintGenerator is satisfied by llm.Client.
type HintGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

const (
	HintSourceAI       = "ai"
	HintSourceFallback = "fallback"
)

const defaultHintPromptTemplate = `You are helping a student who is practising vocabulary.
The student sees this definition: "%s"
The answer they must type is: "%s" (%d letters)

Write ONE short hint (max 20 words) that helps them recall the answer.
Rules:
1. NEVER write the answer itself or any word containing it
2. You may describe usage, a synonym, or the first letter
3. Answer in the same language as the definition

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"hint":"..."}
`

type hintReply struct {
	Hint string `json:"hint"`
}

// parseHint accepts the model reply only if it is well formed and does not
// give the term away.
func parseHint(raw string, term string) (string, bool) {
	var reply hintReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &reply); err != nil {
		return "", false
	}
	hint := strings.TrimSpace(reply.Hint)
	if hint == "" {
		return "", false
	}
	fold := cases.Fold()
	if strings.Contains(fold.String(hint), fold.String(strings.TrimSpace(term))) {
		return "", false
	}
	return hint, true
}

// fallbackHint shows the first letter and masks the remaining letters,
// keeping spaces and punctuation visible.
func fallbackHint(term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(term)
	var b strings.Builder
	b.WriteRune(first)
	letters := 1
	for _, r := range term[size:] {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune('_')
			letters++
			continue
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s (%d letters)", b.String(), letters)
}

func buildHintPrompt(template, definition, term string) string {
	return fmt.Sprintf(template, definition, term, utf8.RuneCountInString(term))
}
