package emotion

// toneDirectives maps each label to the directive interpolated into the
// system prompt. Declared as an ordered pair list: the order is part of the
// contract, matching scoredLabels plus the Neutral fallback at the end.
var toneDirectives = []struct {
	label     Label
	directive string
}{
	{Happy, "playfully teasing and cheerful"},
	{Sad, "extra gentle, comforting, and nurturing"},
	{Angry, "calm, validating, and deeply reassuring"},
	{Fear, "protective, soothing, and very present"},
	{Surprise, "curious, excited, and engaging"},
	{Neutral, "warm, attentive, and softly romantic"},
}

// Tone returns the tone directive for a label. Labels outside the closed set
// fall back to the Neutral directive.
func Tone(label Label) string {
	neutral := ""
	for _, entry := range toneDirectives {
		if entry.label == label {
			return entry.directive
		}
		if entry.label == Neutral {
			neutral = entry.directive
		}
	}
	return neutral
}
