package gemini

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/estudai/api/internal/generation"
)

// arrayPattern matches the first bracketed array in a completion:
// non-greedy start (first '['), greedy end (last ']'), spanning newlines.
var arrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ExtractCards extracts a list of question/answer drafts from a raw
// model completion.
//
// The tolerance is deliberate and must be preserved: strip a leading
// code-fence marker if present, strip a trailing one if present, then
// scan the remainder for the first bracketed array and parse it as JSON.
// Feeding an array wrapped in fences yields the same result as feeding
// the bare array.
//
// Returns generation.ErrMalformedResponse, carrying the parse detail,
// when no array is found, the JSON does not parse, or any element is
// missing a non-empty question or answer.
func ExtractCards(raw string) ([]generation.CardDraft, error) {
	content := raw

	if strings.HasPrefix(content, "```json") {
		content = content[len("```json"):]
	} else if strings.HasPrefix(content, "```") {
		content = content[len("```"):]
	}

	if strings.HasSuffix(content, "```") {
		content = content[:len(content)-len("```")]
	}

	match := arrayPattern.FindString(content)
	if match == "" {
		return nil, fmt.Errorf("%w: no JSON array found in completion",
			generation.ErrMalformedResponse)
	}

	var cards []generation.CardDraft
	if err := json.Unmarshal([]byte(match), &cards); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrMalformedResponse, err)
	}

	for i, card := range cards {
		if card.Question == "" {
			return nil, fmt.Errorf("%w: card %d missing question field",
				generation.ErrMalformedResponse, i)
		}
		if card.Answer == "" {
			return nil, fmt.Errorf("%w: card %d missing answer field",
				generation.ErrMalformedResponse, i)
		}
	}

	return cards, nil
}
