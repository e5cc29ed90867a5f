package emotion

import "testing"

func TestToneHappy(t *testing.T) {
	got := Tone(Happy)
	if got != "playfully teasing and cheerful" {
		t.Errorf("unexpected Happy directive: %q", got)
	}
}

func TestToneEveryLabelHasDirective(t *testing.T) {
	for _, label := range []Label{Happy, Sad, Angry, Fear, Surprise, Neutral} {
		if Tone(label) == "" {
			t.Errorf("empty directive for %s", label)
		}
	}
}

func TestToneUnknownFallsBackToNeutral(t *testing.T) {
	got := Tone(Label("Melancholy"))
	if got != Tone(Neutral) {
		t.Errorf("expected Neutral directive for unknown label, got %q", got)
	}
}
