package emotion

import (
	"strings"
	"unicode"
)

// Label is one of the six moods the companion recognizes.
type Label string

const (
	Happy    Label = "Happy"
	Sad      Label = "Sad"
	Angry    Label = "Angry"
	Fear     Label = "Fear"
	Surprise Label = "Surprise"
	Neutral  Label = "Neutral"
)

// scoredLabels fixes the iteration order of the five affect labels. Neutral is
// never scored directly; it is the fallback. On a score tie the first label
// in this list wins — an arbitrary but stable choice callers can rely on.
var scoredLabels = []Label{Happy, Sad, Angry, Fear, Surprise}

var keywordBuckets = map[Label][]string{
	Happy: {
		"happy", "happiness", "joy", "joyful", "glad", "delighted", "cheerful",
		"great", "wonderful", "amazing", "awesome", "fantastic", "love", "loved",
		"lovely", "adore", "smile", "smiling", "laugh", "laughing", "fun", "yay",
		"excellent", "thrilled", "grateful", "thankful", "sweet", "nice", "enjoy",
		"enjoyed", "haha", "lol", "best",
	},
	Sad: {
		"sad", "sadness", "unhappy", "depressed", "depressing", "miserable",
		"cry", "crying", "cried", "tears", "tearful", "lonely", "alone",
		"heartbroken", "hurt", "hurting", "miss", "missing", "missed", "lost",
		"grief", "grieving", "sorrow", "down", "upset", "gloomy", "hopeless",
		"disappointed", "regret", "sorry", "sigh",
	},
	Angry: {
		"angry", "anger", "mad", "furious", "fury", "rage", "raging", "hate",
		"hated", "hateful", "annoyed", "annoying", "irritated", "irritating",
		"frustrated", "frustrating", "pissed", "outraged", "resent", "disgusted",
		"disgusting", "fedup", "livid", "bitter",
	},
	Fear: {
		"afraid", "scared", "scary", "fear", "fearful", "terrified", "terrifying",
		"anxious", "anxiety", "worried", "worry", "worrying", "nervous", "panic",
		"panicking", "frightened", "frightening", "dread", "horror", "horrified",
		"insecure", "unsafe", "threatened",
	},
	Surprise: {
		"surprised", "surprise", "surprising", "shocked", "shocking", "shock",
		"unexpected", "sudden", "suddenly", "wow", "whoa", "woah", "unbelievable",
		"astonished", "astonishing", "amazed", "startled", "stunned", "speechless",
		"incredible",
	},
}

// Classify maps free text to exactly one of the six labels. It never fails:
// empty input, no keyword hits, or an all-zero score all resolve to Neutral.
func Classify(text string) Label {
	scores := scoreText(text)

	best := Neutral
	bestScore := 0
	for _, label := range scoredLabels {
		if s := scores[label]; s > bestScore {
			best = label
			bestScore = s
		}
	}
	if bestScore == 0 {
		return Neutral
	}
	return best
}

// scoreText is a bag-of-words pass: one point per keyword occurrence per
// label. Zero-valued labels are simply absent from the result.
func scoreText(text string) map[Label]int {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return nil
	}

	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[strings.Trim(w, "'")]++
	}

	scores := make(map[Label]int)
	for _, label := range scoredLabels {
		for _, keyword := range keywordBuckets[label] {
			if n := counts[keyword]; n > 0 {
				scores[label] += n
			}
		}
	}
	return scores
}
