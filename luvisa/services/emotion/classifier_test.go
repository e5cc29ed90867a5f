package emotion

import (
	"testing"
)

func TestClassifyHappy(t *testing.T) {
	got := Classify("I am so happy today")
	if got != Happy {
		t.Errorf("expected Happy, got %s", got)
	}
}

func TestClassifyNeutralFallback(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"the weather report for tuesday",
		"12345 !!! ???",
	}
	for _, input := range inputs {
		if got := Classify(input); got != Neutral {
			t.Errorf("Classify(%q) = %s, expected Neutral", input, got)
		}
	}
}

func TestClassifyAlwaysInLabelSet(t *testing.T) {
	valid := map[Label]bool{
		Happy: true, Sad: true, Angry: true, Fear: true, Surprise: true, Neutral: true,
	}
	inputs := []string{
		"I am so happy today",
		"i feel sad and lonely",
		"this makes me furious",
		"I'm scared of the dark",
		"wow that was unexpected",
		"hello there",
		"",
		"mixed happy sad angry scared shocked words",
	}
	for _, input := range inputs {
		got := Classify(input)
		if !valid[got] {
			t.Errorf("Classify(%q) = %q, not in the label set", input, got)
		}
	}
}

func TestClassifyDominantLabelWins(t *testing.T) {
	got := Classify("I'm sad, so sad, crying, though a little happy")
	if got != Sad {
		t.Errorf("expected Sad to dominate, got %s", got)
	}
}

func TestClassifyTieBreakDeclarationOrder(t *testing.T) {
	// One Happy keyword, one Sad keyword: Happy is declared first.
	got := Classify("happy and sad at once")
	if got != Happy {
		t.Errorf("expected tie to resolve to Happy, got %s", got)
	}
}

func TestClassifyIgnoresSubstrings(t *testing.T) {
	// "madrid" must not count as "mad".
	got := Classify("we flew to madrid for the weekend")
	if got != Neutral {
		t.Errorf("expected Neutral, got %s", got)
	}
}
