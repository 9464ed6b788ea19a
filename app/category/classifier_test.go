package category

import (
	"testing"
)

func TestClassifier_Run_BackendLabelWins(t *testing.T) {
	classifier := NewClassifier(nil)

	slug := classifier.Run("testshop", Input{
		BackendLabel:    "sport",
		Title:           "Bosch mosógép", // keyword would say haztartasi_gepek
		DefaultCategory: "otthon",
	})

	if slug != "sport" {
		t.Errorf("Backend label should win over everything, got %q", slug)
	}
}

func TestClassifier_Run_BackendLabelSynonym(t *testing.T) {
	classifier := NewClassifier(nil)

	slug := classifier.Run("testshop", Input{BackendLabel: "Mobiltelefon"})

	if slug != "mobil" {
		t.Errorf("Expected synonym to map to mobil, got %q", slug)
	}
}

func TestClassifier_Run_PatternRule(t *testing.T) {
	rules := RuleMap{
		"testshop": {
			{Pattern: "játék", CatID: "jatekok"},
		},
	}
	classifier := NewClassifier(rules)

	slug := classifier.Run("testshop", Input{
		CategoryPath: "Gyerek > Játékok > Társas",
		Title:        "Monopoly",
	})

	if slug != "jatekok" {
		t.Errorf("Expected pattern rule match, got %q", slug)
	}
}

func TestClassifier_Run_EmptyPatternIsUnconditionalFallback(t *testing.T) {
	rules := RuleMap{
		"testshop": {
			{Pattern: "kert", CatID: "kert"},
			{Pattern: "", CatID: "divat"},
		},
	}
	classifier := NewClassifier(rules)

	slug := classifier.Run("testshop", Input{Title: "Valami más"})

	if slug != "divat" {
		t.Errorf("Expected unconditional rule fallback, got %q", slug)
	}
}

func TestClassifier_Run_InvalidRuleTargetSkipped(t *testing.T) {
	rules := RuleMap{
		"testshop": {
			{Pattern: "cipő", CatID: "nonexistent_category"},
		},
	}
	classifier := NewClassifier(rules)

	slug := classifier.Run("testshop", Input{Title: "Futócipő", DefaultCategory: "sport"})

	if slug != "sport" {
		t.Errorf("Rule with invalid target should be skipped, got %q", slug)
	}
}

func TestClassifier_Run_PartnerDefault(t *testing.T) {
	classifier := NewClassifier(nil)

	slug := classifier.Run("testshop", Input{
		Title:           "Valamilyen termék",
		DefaultCategory: "latas",
	})

	if slug != "latas" {
		t.Errorf("Expected partner default, got %q", slug)
	}
}

func TestClassifier_Run_GroupFallback(t *testing.T) {
	classifier := NewClassifier(nil)

	slug := classifier.Run("testshop", Input{
		Title: "Valamilyen termék",
		Group: "games",
	})

	if slug != "jatekok" {
		t.Errorf("Expected group tag fallback, got %q", slug)
	}
}

func TestClassifier_Run_KeywordRefinesBroadDefault(t *testing.T) {
	classifier := NewClassifier(nil)

	// a home-tier partner still sells appliances
	slug := classifier.Run("testshop", Input{
		Title:           "Bosch mosógép elöltöltős",
		DefaultCategory: "otthon",
	})

	if slug != "haztartasi_gepek" {
		t.Errorf("Expected keyword refinement of broad default, got %q", slug)
	}
}

func TestClassifier_Run_KeywordDoesNotOverrideNarrowDefault(t *testing.T) {
	classifier := NewClassifier(nil)

	slug := classifier.Run("testshop", Input{
		Title:           "Bosch mosógép",
		DefaultCategory: "sport",
	})

	if slug != "sport" {
		t.Errorf("Keyword heuristic must not override a narrow default, got %q", slug)
	}
}

func TestClassifier_Run_CatchAll(t *testing.T) {
	classifier := NewClassifier(nil)

	slug := classifier.Run("testshop", Input{Title: "xyzzy"})

	if slug != CatchAll {
		t.Errorf("Expected catch-all, got %q", slug)
	}
}

func TestClassifier_Run_AlwaysReturnsValidSlug(t *testing.T) {
	classifier := NewClassifier(nil)

	inputs := []Input{
		{},
		{Title: "????"},
		{BackendLabel: "unknown_label_42"},
		{DefaultCategory: "not_a_slug", Group: "not_a_group"},
	}

	for i, in := range inputs {
		slug := classifier.Run("testshop", in)
		if !IsValid(slug) {
			t.Errorf("Input %d: classifier returned invalid slug %q", i, slug)
		}
	}
}

func TestClassifier_Run_Idempotent(t *testing.T) {
	classifier := NewClassifier(RuleMap{
		"testshop": {{Pattern: "könyv", CatID: "konyv"}},
	})

	in := Input{Title: "Szakácskönyv kezdőknek", DefaultCategory: "otthon"}

	first := classifier.Run("testshop", in)
	for i := 0; i < 3; i++ {
		if got := classifier.Run("testshop", in); got != first {
			t.Fatalf("Classification not deterministic: %q then %q", first, got)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Háztartási Gépek", "haztartasi gepek"},
		{"  sok   szóköz  ", "sok szokoz"},
		{"MOSÓGÉP", "mosogep"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.input); got != tt.expected {
			t.Errorf("NormalizeText(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical("sport"); got != "sport" {
		t.Errorf("Valid slug should pass through, got %q", got)
	}
	if got := Canonical("mobiltelefon"); got != "mobil" {
		t.Errorf("Expected synonym mapping, got %q", got)
	}
	if got := Canonical("no such label"); got != "" {
		t.Errorf("Unknown label should map to empty, got %q", got)
	}
}
