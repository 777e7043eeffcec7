package respond

import "github.com/cinetix/support-bot/emotion"

// ackPair is one acknowledgment plus the transition that leads into the
// answer text.
type ackPair struct {
	ack        string
	transition string
}

// wrapTemplate holds the pools for one emotion. Three alternatives each;
// selection only exists to avoid repetitive phrasing across turns.
type wrapTemplate struct {
	acks     []ackPair
	closings []string
}

var wrapTemplates = map[emotion.Emotion]wrapTemplate{
	emotion.Happy: {
		acks: []ackPair{
			{"Love the enthusiasm!", "Here's what you need:"},
			{"Glad to hear it!", "Here's the scoop:"},
			{"That's great!", "Happy to help with this one:"},
		},
		closings: []string{
			"Enjoy the movie! 🍿",
			"Anything else, just ask!",
			"Have a great time at the show!",
		},
	},
	emotion.Sad: {
		acks: []ackPair{
			{"I'm sorry to hear that.", "Hopefully this helps:"},
			{"That's no fun at all.", "Let me share what I know:"},
			{"Sorry things aren't going well.", "Here's something that might help:"},
		},
		closings: []string{
			"I hope that makes things a little easier.",
			"We're here if you need anything else.",
			"Hang in there — let me know if I can do more.",
		},
	},
	emotion.Angry: {
		acks: []ackPair{
			{"I completely understand your frustration, and I'm sorry about that.", "Let's get this sorted out:"},
			{"You're right to be upset — that shouldn't happen.", "Here's how we fix it:"},
			{"I'm really sorry about the experience.", "This should set things straight:"},
		},
		closings: []string{
			"If this doesn't resolve it, our support team will make it right.",
			"Thanks for bearing with us — we'll get you taken care of.",
			"Again, apologies for the trouble.",
		},
	},
	emotion.Frustrated: {
		acks: []ackPair{
			{"I know this has been a hassle.", "Let's make it simple:"},
			{"Sorry you've had to wrestle with this.", "Here's the quickest way through:"},
			{"That does sound frustrating.", "This should clear it up:"},
		},
		closings: []string{
			"If it's still stuck after that, reply here and we'll dig in.",
			"Hopefully that saves you some back-and-forth.",
			"Thanks for your patience while we sort this.",
		},
	},
	emotion.Confused: {
		acks: []ackPair{
			{"No worries, this trips people up.", "Here's how it works:"},
			{"Good question — it's not obvious.", "Let me break it down:"},
			{"Happy to clear that up.", "The short version:"},
		},
		closings: []string{
			"Still unclear? Ask away and I'll explain differently.",
			"Hope that clears things up!",
			"Let me know if any step needs more detail.",
		},
	},
	emotion.Anxious: {
		acks: []ackPair{
			{"Don't worry, you've got time.", "Here's exactly what to do:"},
			{"Take a breath — this is quick to sort.", "Here's the fastest route:"},
			{"I understand the urgency.", "Let's handle it right away:"},
		},
		closings: []string{
			"You're all set — nothing else needed on your end.",
			"If you're ever in doubt, the box office can help on the spot.",
			"That should have you covered well before showtime.",
		},
	},
	emotion.Excited: {
		acks: []ackPair{
			{"Yes! Great choice.", "Here's everything you need:"},
			{"Love it — big screen time!", "Quick rundown:"},
			{"That's the spirit!", "Here you go:"},
		},
		closings: []string{
			"Enjoy every minute! 🎬",
			"Grab the good seats early — have fun!",
			"See you at the movies!",
		},
	},
}

// noAnswerTemplate is the single intro/outro pair used when no FAQ
// matched. Unlike the empathetic pools these are not varied.
type noAnswerTemplate struct {
	intro string
	outro string
}

var noAnswerTemplates = map[emotion.Emotion]noAnswerTemplate{
	emotion.Neutral: {
		intro: "I couldn't find an answer for that one.",
		outro: "You can also reach our support team through the Contact page.",
	},
	emotion.Happy: {
		intro: "Glad you're having a good time! I don't have an answer for that one, though.",
		outro: "Ask me about any of these and I'll fill you in!",
	},
	emotion.Sad: {
		intro: "I'm sorry, I don't have an answer for that.",
		outro: "If none of these cover it, our support team would love to help.",
	},
	emotion.Angry: {
		intro: "I'm sorry — I don't have an answer for that, and I know that's not what you want to hear.",
		outro: "For anything beyond these, our support team will step in directly.",
	},
	emotion.Frustrated: {
		intro: "I know hitting a dead end is the last thing you need, but I don't have an answer for that.",
		outro: "If it's not on the list, our support team can pick it up from here.",
	},
	emotion.Confused: {
		intro: "Hmm, I'm not sure about that one either.",
		outro: "Pick any of these and I'll walk you through it.",
	},
	emotion.Anxious: {
		intro: "I don't have an answer for that, but let's not lose time.",
		outro: "For anything urgent, the box office phone line is the fastest route.",
	},
	emotion.Excited: {
		intro: "I wish I had an answer to match the energy, but that one's outside my list.",
		outro: "Ask about any of these and we'll keep the hype going!",
	},
}
