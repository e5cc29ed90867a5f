package persona

import "testing"

func TestLoadFileMissingFallsBackToDefaults(t *testing.T) {
	p := LoadFile("does/not/exist.properties")
	def := Default()
	if p != def {
		t.Errorf("expected defaults for missing file, got %+v", p)
	}
}

func TestDefaults(t *testing.T) {
	p := Default()
	if p.Name == "" || p.ModelToken == "" || p.FallbackReply == "" {
		t.Errorf("defaults must be complete: %+v", p)
	}
	if p.ModelToken == p.Name {
		t.Error("model token and persona name must differ, or normalization loops")
	}
}
