package faq

import "strings"

// Entry is one FAQ record: a question the bot can answer, its canonical
// answer, and the keyword list that triggers it. Entries are reference
// data; the matcher never mutates them.
type Entry struct {
	// ID is an opaque identifier, unique within the catalog.
	ID string

	// Question is the canonical phrasing, used for display and as match input.
	Question string

	// Answer is the canonical reply text.
	Answer string

	// Category is a free-text grouping label (tickets, refunds, ...).
	// Not consulted by matching.
	Category string

	// Keywords is a comma-separated list of trigger phrases. Tokens are
	// trimmed and compared case-insensitively. May be empty, in which case
	// only the fuzzy phase can match this entry.
	Keywords string

	// EmotionAnswers optionally maps an emotion label to a pre-written
	// answer that replaces the generic empathetic wrapping entirely.
	EmotionAnswers map[string]string
}

// KeywordList returns the entry's trigger phrases, trimmed, lowercased,
// with empty tokens dropped.
func (e *Entry) KeywordList() []string {
	if e.Keywords == "" {
		return nil
	}
	parts := strings.Split(e.Keywords, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		kw := strings.ToLower(strings.TrimSpace(p))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// Match is the result of checking one utterance against a catalog.
type Match struct {
	// Entry is the best candidate, nil when the catalog is empty or
	// nothing scored above zero.
	Entry *Entry

	// Score is 1.0 for an exact-phase hit, otherwise the fuzzy-phase
	// blend in [0,1]. Callers decide what score is usable.
	Score float64
}

// Matched reports whether any candidate was found at all. It says nothing
// about whether the score clears the caller's threshold.
func (m Match) Matched() bool {
	return m.Entry != nil
}
