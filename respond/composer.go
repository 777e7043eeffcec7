package respond

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/cinetix/support-bot/emotion"
	"github.com/cinetix/support-bot/faq"
)

// DefaultWrapMinConfidence is the minimum emotion confidence before an
// answer gets empathetic wrapping. A weak signal should not trigger
// performative empathy.
const DefaultWrapMinConfidence = 0.3

// Selector picks an index in [0, n). Injected so tests can pin the phrase
// choice; production draws uniformly at random. The choice carries no
// semantic weight, it only keeps phrasing from repeating across turns.
type Selector func(n int) int

// Composer assembles the final reply from the matcher's and classifier's
// verdicts. Stateless across calls and safe for concurrent use; the
// selector is the only nondeterminism.
type Composer struct {
	classifier        *emotion.Classifier
	selector          Selector
	matchThreshold    float64
	wrapMinConfidence float64
}

// Option configures a Composer.
type Option func(*Composer)

// WithClassifier replaces the default emotion classifier.
func WithClassifier(c *emotion.Classifier) Option {
	return func(composer *Composer) {
		if c != nil {
			composer.classifier = c
		}
	}
}

// WithSelector replaces the random phrase selection strategy.
func WithSelector(s Selector) Option {
	return func(composer *Composer) {
		if s != nil {
			composer.selector = s
		}
	}
}

// WithMatchThreshold overrides the minimum usable fuzzy-match score.
func WithMatchThreshold(threshold float64) Option {
	return func(composer *Composer) {
		if threshold > 0 && threshold <= 1 {
			composer.matchThreshold = threshold
		}
	}
}

// WithWrapMinConfidence overrides the minimum emotion confidence for
// empathetic wrapping.
func WithWrapMinConfidence(confidence float64) Option {
	return func(composer *Composer) {
		if confidence >= 0 && confidence <= 1 {
			composer.wrapMinConfidence = confidence
		}
	}
}

// NewComposer creates a composer with default tuning.
func NewComposer(opts ...Option) *Composer {
	composer := &Composer{
		classifier:        emotion.NewClassifier(emotion.DefaultConfidenceDivisor),
		selector:          rand.Intn,
		matchThreshold:    faq.DefaultMatchThreshold,
		wrapMinConfidence: DefaultWrapMinConfidence,
	}
	for _, opt := range opts {
		opt(composer)
	}
	return composer
}

// Reply is the assembled response for one utterance.
type Reply struct {
	// Emotion, Confidence and MatchedKeywords carry the classifier's
	// verdict through to the caller for badges and analytics.
	Emotion         emotion.Emotion
	Confidence      float64
	MatchedKeywords []string

	// FAQ is the matched entry, nil when nothing cleared the threshold.
	FAQ *faq.Entry

	// MatchScore is the raw matcher score, kept even when unusable.
	MatchScore float64

	// BaseAnswer is the answer text before wrapping; empty on no match.
	BaseAnswer string

	// Text is the final reply shown to the visitor.
	Text string
}

// Answered reports whether the reply carries a real FAQ answer rather
// than the suggested-topics fallback.
func (r Reply) Answered() bool {
	return r.FAQ != nil
}

// Compose classifies the utterance, matches it against the catalog, and
// assembles the reply. Total over its inputs; an empty catalog produces
// the no-answer reply with an empty topic list.
func (c *Composer) Compose(utterance string, catalog []faq.Entry) Reply {
	verdict := c.classifier.Classify(utterance)
	match := faq.FindBestMatch(utterance, catalog)

	reply := Reply{
		Emotion:         verdict.Emotion,
		Confidence:      verdict.Confidence,
		MatchedKeywords: verdict.MatchedKeywords,
		MatchScore:      match.Score,
	}

	if match.Entry == nil || match.Score < c.matchThreshold {
		reply.Text = c.noAnswer(verdict.Emotion, catalog)
		return reply
	}

	reply.FAQ = match.Entry

	// A pre-written per-emotion answer is assumed already tonally
	// appropriate and is used verbatim.
	if override, ok := match.Entry.EmotionAnswers[verdict.Emotion.String()]; ok && override != "" {
		reply.BaseAnswer = override
		reply.Text = override
		return reply
	}

	reply.BaseAnswer = match.Entry.Answer
	reply.Text = c.wrap(match.Entry.Answer, verdict.Emotion, verdict.Confidence)
	return reply
}

// wrap surrounds an answer with an acknowledgment, transition, and
// closing drawn from the detected emotion's pools. Neutral or
// low-confidence verdicts return the answer unmodified.
func (c *Composer) wrap(answer string, emo emotion.Emotion, confidence float64) string {
	if emo == emotion.Neutral || confidence < c.wrapMinConfidence {
		return answer
	}

	tpl, ok := wrapTemplates[emo]
	if !ok {
		return answer
	}

	pair := tpl.acks[c.pick(len(tpl.acks))]
	closing := tpl.closings[c.pick(len(tpl.closings))]

	return fmt.Sprintf("%s %s\n\n%s\n\n%s", pair.ack, pair.transition, answer, closing)
}

// noAnswer builds the fallback reply: a per-emotion intro, every catalog
// question as a suggested topic, and a per-emotion outro.
func (c *Composer) noAnswer(emo emotion.Emotion, catalog []faq.Entry) string {
	tpl, ok := noAnswerTemplates[emo]
	if !ok {
		tpl = noAnswerTemplates[emotion.Neutral]
	}

	var topics strings.Builder
	topics.WriteString("Here are some topics I can help with:")
	for i := range catalog {
		topics.WriteString("\n• ")
		topics.WriteString(catalog[i].Question)
	}

	return fmt.Sprintf("%s %s\n\n%s", tpl.intro, topics.String(), tpl.outro)
}

// pick clamps selector output so a misbehaving strategy can't panic the
// composer.
func (c *Composer) pick(n int) int {
	idx := c.selector(n)
	if idx < 0 || idx >= n {
		return 0
	}
	return idx
}
