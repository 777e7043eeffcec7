package emotion

// Emotion is one of the eight discrete emotional states the classifier
// can report. Neutral is the catch-all when no lexicon rule fires.
type Emotion int

const (
	Neutral Emotion = iota
	Happy
	Sad
	Angry
	Frustrated
	Confused
	Anxious
	Excited
)

// scoredOrder is the fixed enumeration order used both for scoring and
// for tie-breaks: when two emotions accumulate the same score, the one
// listed earlier wins. Neutral is never scored.
var scoredOrder = [...]Emotion{Happy, Sad, Angry, Frustrated, Confused, Anxious, Excited}

var labels = map[Emotion]string{
	Neutral:    "neutral",
	Happy:      "happy",
	Sad:        "sad",
	Angry:      "angry",
	Frustrated: "frustrated",
	Confused:   "confused",
	Anxious:    "anxious",
	Excited:    "excited",
}

func (e Emotion) String() string {
	if label, ok := labels[e]; ok {
		return label
	}
	return "neutral"
}

// Parse maps a label back to its Emotion. Unknown labels report ok=false.
func Parse(label string) (Emotion, bool) {
	for emo, l := range labels {
		if l == label {
			return emo, true
		}
	}
	return Neutral, false
}

// Badge is the emoji shown next to the reply in the chat UI.
func (e Emotion) Badge() string {
	switch e {
	case Happy:
		return "😊"
	case Sad:
		return "😢"
	case Angry:
		return "😠"
	case Frustrated:
		return "😤"
	case Confused:
		return "😕"
	case Anxious:
		return "😟"
	case Excited:
		return "🤩"
	default:
		return ""
	}
}

// Color is the badge accent color as a hex string.
func (e Emotion) Color() string {
	switch e {
	case Happy:
		return "#4caf50"
	case Sad:
		return "#5c6bc0"
	case Angry:
		return "#e53935"
	case Frustrated:
		return "#fb8c00"
	case Confused:
		return "#8d6e63"
	case Anxious:
		return "#9575cd"
	case Excited:
		return "#fdd835"
	default:
		return "#9e9e9e"
	}
}
