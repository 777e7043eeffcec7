package emotion

// lexicon holds the trigger vocabulary for one emotion. Keywords are
// single words or short tokens (including emoji) scored at weight 2 per
// occurrence; phrases are multi-word strings scored at weight 3. Entries
// are slices, not sets, so matched-keyword output stays deterministic.
type lexicon struct {
	keywords []string
	phrases  []string
}

var lexicons = map[Emotion]lexicon{
	Happy: {
		keywords: []string{"happy", "glad", "great", "awesome", "wonderful", "perfect", "thanks", "thank", "appreciate", "😊", "😄", "🙂"},
		phrases:  []string{"thank you so much", "love it", "made my day", "works great"},
	},
	Sad: {
		keywords: []string{"sad", "unhappy", "disappointed", "disappointing", "upset", "unfortunate", "😢", "😞"},
		phrases:  []string{"feeling down", "let down", "really bummed", "missed the show"},
	},
	Angry: {
		keywords: []string{"angry", "furious", "terrible", "awful", "horrible", "worst", "unacceptable", "ridiculous", "scam", "😡", "🤬"},
		phrases:  []string{"fed up", "waste of money", "sick of this", "never again"},
	},
	Frustrated: {
		keywords: []string{"frustrated", "frustrating", "annoying", "annoyed", "stuck", "broken", "useless"},
		phrases:  []string{"nothing works", "doesn't work", "doesnt work", "not working", "keeps failing", "tried everything", "over and over"},
	},
	Confused: {
		keywords: []string{"confused", "confusing", "unclear", "unsure", "puzzled", "🤔"},
		phrases:  []string{"don't understand", "dont understand", "not sure what", "what does", "makes no sense", "where do i"},
	},
	Anxious: {
		keywords: []string{"worried", "anxious", "nervous", "urgent", "urgently", "asap", "afraid", "😰", "😟"},
		phrases:  []string{"running out of time", "as soon as possible", "in a hurry", "what if", "starts soon"},
	},
	Excited: {
		keywords: []string{"excited", "amazing", "incredible", "stoked", "yay", "woohoo", "🎉", "😍", "🤩"},
		phrases:  []string{"can't wait", "cant wait", "so excited", "looking forward", "finally out"},
	},
}
