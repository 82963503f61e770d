package analysis

import (
	"testing"

	"github.com/BlakeDanielson/CrowdWork/internal/model"
)

func TestClassify_AudienceQuestionIsCrowdwork(t *testing.T) {
	c := NewClassifier(DefaultRuleSet())

	seg := c.Classify(model.Segment{Start: 0, Duration: 5, Text: "What's your name, sir?"})

	if seg.Label != model.LabelCrowdwork {
		t.Fatalf("label = %q, want %q", seg.Label, model.LabelCrowdwork)
	}
	// Only crowdwork evidence fires, so confidence is ~1.
	if !almostEqual(seg.Confidence, 1.0, 1e-6) {
		t.Errorf("confidence = %.9f, want ~1.0", seg.Confidence)
	}
	found := false
	for _, m := range seg.MatchedPatterns {
		if m.PatternID == "cw-your-name" {
			found = true
		}
	}
	if !found {
		t.Errorf("cw-your-name not in matched patterns: %+v", seg.MatchedPatterns)
	}
}

func TestClassify_NoMatchesDefaultsToMaterial(t *testing.T) {
	c := NewClassifier(DefaultRuleSet())

	seg := c.Classify(model.Segment{Text: "the quick brown fox jumps over the lazy dog"})

	if seg.Label != model.LabelMaterial {
		t.Errorf("label = %q, want %q (no evidence defaults to material)", seg.Label, model.LabelMaterial)
	}
	if !almostEqual(seg.Confidence, DefaultBaselineConfidence, 1e-9) {
		t.Errorf("confidence = %.3f, want baseline %.3f", seg.Confidence, DefaultBaselineConfidence)
	}
	if len(seg.MatchedPatterns) != 0 {
		t.Errorf("expected no matched patterns, got %+v", seg.MatchedPatterns)
	}
}

func TestClassify_TieResolvesToMaterial(t *testing.T) {
	rules := RuleSet{
		rule("cw-test", model.LabelCrowdwork, 1.0, `\bhello\b`),
		rule("mat-test", model.LabelMaterial, 1.0, `\bworld\b`),
	}
	c := NewClassifier(rules)

	seg := c.Classify(model.Segment{Text: "hello world"})

	if seg.Label != model.LabelMaterial {
		t.Errorf("label = %q, want %q (ties resolve to material)", seg.Label, model.LabelMaterial)
	}
	if !almostEqual(seg.Confidence, 0, 1e-6) {
		t.Errorf("confidence = %.9f, want ~0 for an even split", seg.Confidence)
	}
	if len(seg.MatchedPatterns) != 2 {
		t.Errorf("got %d matched patterns, want 2", len(seg.MatchedPatterns))
	}
}

func TestClassify_RecordsLosingCategoryMatches(t *testing.T) {
	c := NewClassifier(DefaultRuleSet())

	// Crowdwork wins on weight, but the material match must still be
	// reported.
	seg := c.Classify(model.Segment{Text: "Where are you from? So I was just wondering"})

	if seg.Label != model.LabelCrowdwork {
		t.Fatalf("label = %q, want %q", seg.Label, model.LabelCrowdwork)
	}
	var sawMaterial bool
	for _, m := range seg.MatchedPatterns {
		if m.Category == model.LabelMaterial {
			sawMaterial = true
		}
	}
	if !sawMaterial {
		t.Errorf("losing-category match missing from %+v", seg.MatchedPatterns)
	}
}

func TestClassify_ConfidenceBounds(t *testing.T) {
	c := NewClassifier(DefaultRuleSet())

	texts := []string{
		"What's your name? Where are you from? Anyone here from Ohio?",
		"So I was at the airport the other day, true story.",
		"Growing up my dad would say looks like rain",
	}
	for _, text := range texts {
		seg := c.Classify(model.Segment{Text: text})
		if seg.Confidence < 0 || seg.Confidence > 1 {
			t.Errorf("confidence %.4f out of [0,1] for %q", seg.Confidence, text)
		}
	}
}

func TestRuleSet_WordBoundary(t *testing.T) {
	rules := RuleSet{
		rule("cw-test", model.LabelCrowdwork, 1.0, `\bset\b`),
	}

	if got := rules.Match("sunset boulevard settings"); got != nil {
		t.Errorf("substring inside larger words matched: %+v", got)
	}
	if got := rules.Match("the set list"); len(got) != 1 {
		t.Errorf("standalone word did not match: %+v", got)
	}
}

func TestRuleSet_MatchCaseInsensitive(t *testing.T) {
	rs := DefaultRuleSet()

	lower := rs.Match("what's your name")
	upper := rs.Match("WHAT'S YOUR NAME")

	if len(lower) == 0 || len(upper) == 0 {
		t.Fatalf("case variants should both match: lower=%d upper=%d", len(lower), len(upper))
	}
	if lower[0].PatternID != upper[0].PatternID {
		t.Errorf("pattern IDs differ across case: %q vs %q", lower[0].PatternID, upper[0].PatternID)
	}
}

func TestRuleSet_MatchOrderStable(t *testing.T) {
	rs := DefaultRuleSet()
	text := "Anyone here? What's your name? Where are you from, sir?"

	first := rs.Match(text)
	second := rs.Match(text)

	if len(first) != len(second) {
		t.Fatalf("match counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].PatternID != second[i].PatternID {
			t.Errorf("match %d differs across runs: %q vs %q", i, first[i].PatternID, second[i].PatternID)
		}
	}
}
