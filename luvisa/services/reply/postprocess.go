package reply

import (
	"regexp"
	"strings"

	"luvisa/luvisa/persona"
)

// emojiKeywords is the ordered keyword→glyph table. Order is part of the
// contract: keywords are applied in this sequence, and each keyword gets at
// most one insertion, after its first whole-word match in the text.
var emojiKeywords = []struct {
	keyword string
	emoji   string
}{
	{"love", "❤️"}, {"happy", "😊"}, {"sad", "😥"}, {"laugh", "😂"},
	{"smile", "😄"}, {"cry", "😢"}, {"miss you", "🥺"}, {"kiss", "😘"},
	{"hug", "🤗"}, {"think", "🤔"}, {"sweet", "🥰"}, {"blush", "😊"},
	{"heart", "❤️"}, {"star", "⭐"}, {"yay", "🎉"}, {"oh no", "😟"},
	{"sorry", "😔"}, {"please", "🙏"}, {"hi", "👋"}, {"hello", "👋"},
	{"bye", "👋"}, {"good night", "😴"}, {"sleep", "😴"}, {"dream", "💭"},
}

// emojiAliases resolves colon-delimited shorthand names the model sometimes
// emits instead of glyphs. Unknown aliases are left untouched.
var emojiAliases = map[string]string{
	"heart":                    "❤️",
	"red_heart":                "❤️",
	"broken_heart":             "💔",
	"two_hearts":               "💕",
	"sparkling_heart":          "💖",
	"smile":                    "😄",
	"blush":                    "😊",
	"joy":                      "😂",
	"wink":                     "😉",
	"cry":                      "😢",
	"sob":                      "😭",
	"pleading_face":            "🥺",
	"kissing_heart":            "😘",
	"hugging_face":             "🤗",
	"thinking_face":            "🤔",
	"smiling_face_with_hearts": "🥰",
	"sparkles":                 "✨",
	"star":                     "⭐",
	"tada":                     "🎉",
	"wave":                     "👋",
	"pray":                     "🙏",
	"folded_hands":             "🙏",
	"sleeping":                 "😴",
	"thought_balloon":          "💭",
}

var aliasPattern = regexp.MustCompile(`:([a-z0-9_+-]+):`)

type keywordRule struct {
	pattern *regexp.Regexp
	emoji   string
}

// Processor applies the deterministic reply transforms: persona
// normalization first, then emoji augmentation. Safe for concurrent use.
type Processor struct {
	personaName  string
	tokenPattern *regexp.Regexp
	keywordRules []keywordRule
}

func NewProcessor(p persona.Persona) *Processor {
	rules := make([]keywordRule, 0, len(emojiKeywords))
	for _, entry := range emojiKeywords {
		rules = append(rules, keywordRule{
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(entry.keyword) + `\b`),
			emoji:   entry.emoji,
		})
	}
	return &Processor{
		personaName:  p.Name,
		tokenPattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p.ModelToken) + `\b`),
		keywordRules: rules,
	}
}

// Process runs both passes in order. Normalization must come first so that
// keyword matching never fires inside the persona token itself.
func (p *Processor) Process(raw string) string {
	return p.AddEmojis(p.NormalizePersona(raw))
}

// NormalizePersona rewrites the model's self-reference token to the persona
// name and trims surrounding whitespace. Idempotent.
func (p *Processor) NormalizePersona(text string) string {
	return strings.TrimSpace(p.tokenPattern.ReplaceAllString(text, p.personaName))
}

// AddEmojis inserts each keyword's glyph after that keyword's first match,
// scanning the whole string per keyword, then resolves alias shorthand.
func (p *Processor) AddEmojis(text string) string {
	for _, rule := range p.keywordRules {
		loc := rule.pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		text = text[:loc[1]] + " " + rule.emoji + text[loc[1]:]
	}
	return aliasPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.Trim(match, ":")
		if glyph, ok := emojiAliases[name]; ok {
			return glyph
		}
		return match
	})
}
