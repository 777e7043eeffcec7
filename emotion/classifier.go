package emotion

import (
	"math"
	"strings"
)

const (
	keywordWeight = 2
	phraseWeight  = 3

	// Punctuation carries weak signal on its own: a question mark leans
	// confused, an exclamation mark leans excited or angry.
	questionMarkBonus = 1
	exclamationBonus  = 0.5

	// DefaultConfidenceDivisor normalizes raw lexicon scores into [0,1].
	// Picked so 2-3 strong keyword/phrase hits saturate confidence.
	// A tunable, not a law.
	DefaultConfidenceDivisor = 10
)

// Result is the classifier's verdict for one utterance.
type Result struct {
	// Emotion is the single highest-scoring label; Neutral when no rule
	// contributed any score.
	Emotion Emotion

	// Confidence is in [0,1]. Neutral always reports 1.0.
	Confidence float64

	// MatchedKeywords lists the literal lexicon entries that triggered
	// the winning emotion, in lexicon order. Empty for Neutral.
	MatchedKeywords []string
}

// Classifier scores utterances against the per-emotion lexicons. It is
// stateless and safe for concurrent use.
type Classifier struct {
	divisor float64
}

// NewClassifier creates a classifier with the given confidence divisor.
// A non-positive divisor falls back to the default.
func NewClassifier(divisor float64) *Classifier {
	if divisor <= 0 {
		divisor = DefaultConfidenceDivisor
	}
	return &Classifier{divisor: divisor}
}

var defaultClassifier = NewClassifier(DefaultConfidenceDivisor)

// Classify runs the default classifier.
func Classify(utterance string) Result {
	return defaultClassifier.Classify(utterance)
}

// Classify scores the utterance against every emotion's lexicon and
// returns the winner. Scoring is additive substring containment: each
// keyword hit adds 2, each phrase hit adds 3, then punctuation bonuses
// apply. Ties break toward the emotion listed earlier in the fixed
// enumeration order. A message can score on several emotions at once;
// only the maximum is reported.
func (c *Classifier) Classify(utterance string) Result {
	text := strings.ToLower(strings.TrimSpace(utterance))

	scores := make(map[Emotion]float64, len(scoredOrder))
	matched := make(map[Emotion][]string, len(scoredOrder))

	for _, emo := range scoredOrder {
		lex := lexicons[emo]
		for _, kw := range lex.keywords {
			if strings.Contains(text, kw) {
				scores[emo] += keywordWeight
				matched[emo] = append(matched[emo], kw)
			}
		}
		for _, phrase := range lex.phrases {
			if strings.Contains(text, phrase) {
				scores[emo] += phraseWeight
				matched[emo] = append(matched[emo], phrase)
			}
		}
	}

	if strings.Contains(text, "?") {
		scores[Confused] += questionMarkBonus
	}
	if strings.Contains(text, "!") {
		scores[Excited] += exclamationBonus
		scores[Angry] += exclamationBonus
	}

	winner := Neutral
	var top float64
	for _, emo := range scoredOrder {
		if scores[emo] > top {
			top = scores[emo]
			winner = emo
		}
	}

	if top == 0 {
		return Result{Emotion: Neutral, Confidence: 1.0}
	}

	return Result{
		Emotion:         winner,
		Confidence:      math.Min(top/c.divisor, 1.0),
		MatchedKeywords: matched[winner],
	}
}
