package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical strings", a: "ticket prices", b: "ticket prices", want: 1.0},
		{name: "empty left", a: "", b: "refund", want: 0},
		{name: "empty right", a: "refund", b: "", want: 0},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "single edit", a: "seat", b: "seats", want: 1 - 1.0/5.0},
		{name: "disjoint", a: "ab", b: "xy", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"what are the ticket prices", "how do i get a refund"},
		{"a", "abcdef"},
		{"popcorn", "popcorn 🍿"},
		{"", "nonempty"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "similarity(%q,%q)", p[0], p[1])
	}
}

func TestTokenOverlap(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "ticket price", b: "ticket price", want: 1.0},
		{name: "partial", a: "ticket price today", b: "ticket price", want: 2.0 / 3.0},
		{name: "no shared tokens", a: "refund", b: "seats", want: 0},
		{name: "punctuation only side", a: "?!...", b: "refund", want: 0},
		{name: "empty side", a: "", b: "refund", want: 0},
		{name: "punctuation delimiters", a: "refund, please!", b: "please refund", want: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TokenOverlap(tt.a, tt.b), 1e-9)
		})
	}
}

func TestFindBestMatchExactPhase(t *testing.T) {
	catalog := []Entry{
		{ID: "prices", Question: "What are the ticket prices?", Answer: "Tickets are $12.", Keywords: "ticket price,price,cost"},
		{ID: "refunds", Question: "How do I get a refund?", Answer: "Use My Orders.", Keywords: "refund,cancel"},
	}

	tests := []struct {
		name      string
		utterance string
		wantID    string
	}{
		{name: "keyword substring", utterance: "What are the ticket prices?", wantID: "prices"},
		{name: "keyword case-insensitive", utterance: "REFUND ME NOW", wantID: "refunds"},
		{name: "keyword mid-sentence", utterance: "hi, can I cancel my order please", wantID: "refunds"},
		{name: "question text as substring", utterance: "quick one: how do i get a refund? thanks", wantID: "refunds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := FindBestMatch(tt.utterance, catalog)
			require.True(t, match.Matched())
			assert.Equal(t, tt.wantID, match.Entry.ID)
			assert.Equal(t, 1.0, match.Score)
		})
	}
}

func TestFindBestMatchExactPhaseOrderSensitive(t *testing.T) {
	// Both entries trigger on "price"; the first registered wins even
	// though the second's question is a better fit.
	catalog := []Entry{
		{ID: "first", Question: "Do you offer discounts?", Keywords: "discount,price"},
		{ID: "second", Question: "What are the ticket prices?", Keywords: "price,ticket price"},
	}

	match := FindBestMatch("what are the ticket prices", catalog)
	require.True(t, match.Matched())
	assert.Equal(t, "first", match.Entry.ID)
	assert.Equal(t, 1.0, match.Score)
}

func TestFindBestMatchKeywordTrimming(t *testing.T) {
	catalog := []Entry{
		{ID: "prices", Question: "What are the ticket prices?", Keywords: " Ticket Price , , COST "},
	}

	match := FindBestMatch("how much does a ticket price run", catalog)
	require.True(t, match.Matched())
	assert.Equal(t, 1.0, match.Score)
}

func TestFindBestMatchFuzzyPhase(t *testing.T) {
	catalog := []Entry{
		{ID: "showtimes", Question: "How do I find showtimes?", Answer: "Pick a movie on the home page.", Keywords: "showtime,schedule"},
		{ID: "refunds", Question: "How do I get a refund?", Answer: "Use My Orders.", Keywords: "refund"},
	}

	// No keyword is a substring ("show times" is split), so this has to
	// come out of the fuzzy phase.
	match := FindBestMatch("how do i find show times", catalog)
	require.True(t, match.Matched())
	assert.Equal(t, "showtimes", match.Entry.ID)
	assert.Less(t, match.Score, 1.0)
	assert.GreaterOrEqual(t, match.Score, DefaultMatchThreshold)
}

func TestFindBestMatchFuzzyTieKeepsFirst(t *testing.T) {
	catalog := []Entry{
		{ID: "a", Question: "Can I pick my row?", Answer: "Yes."},
		{ID: "b", Question: "Can I pick my row?", Answer: "Yes."},
	}

	match := FindBestMatch("can i pick a row", catalog)
	require.True(t, match.Matched())
	assert.Equal(t, "a", match.Entry.ID)
}

func TestFindBestMatchGibberishStaysBelowThreshold(t *testing.T) {
	match := FindBestMatch("asdkjasdkj random gibberish", DefaultCatalog())
	if match.Matched() {
		assert.Less(t, match.Score, DefaultMatchThreshold)
	}
}

func TestFindBestMatchDegenerateInputs(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		match := FindBestMatch("anything at all", nil)
		assert.False(t, match.Matched())
		assert.Equal(t, 0.0, match.Score)
	})

	t.Run("empty utterance", func(t *testing.T) {
		match := FindBestMatch("", DefaultCatalog())
		assert.False(t, match.Matched())
		assert.Equal(t, 0.0, match.Score)
	})

	t.Run("punctuation-only utterance", func(t *testing.T) {
		match := FindBestMatch("?!...", DefaultCatalog())
		if match.Matched() {
			assert.Less(t, match.Score, DefaultMatchThreshold)
		}
	})

	t.Run("entry without keywords still fuzzy-matches", func(t *testing.T) {
		catalog := []Entry{{ID: "bare", Question: "Where is the theater located?", Answer: "Downtown."}}
		match := FindBestMatch("where is the theater located", catalog)
		require.True(t, match.Matched())
		assert.GreaterOrEqual(t, match.Score, DefaultMatchThreshold)
	})
}

func TestFindBestMatchIdempotent(t *testing.T) {
	catalog := DefaultCatalog()
	first := FindBestMatch("do you take paypal", catalog)
	second := FindBestMatch("do you take paypal", catalog)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Entry, second.Entry)
}
