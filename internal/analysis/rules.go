package analysis

import (
	"regexp"

	"github.com/BlakeDanielson/CrowdWork/internal/model"
)

// PatternRule is one weighted classification pattern. Patterns are
// case-insensitive and word-boundary anchored, so a substring inside a
// larger word never counts as a match.
type PatternRule struct {
	ID       string
	Category string
	Weight   float64
	Pattern  *regexp.Regexp
}

// RuleSet is an ordered, immutable table of classification rules, loaded
// once and shared read-only across all analyses.
type RuleSet []PatternRule

func rule(id, category string, weight float64, expr string) PatternRule {
	return PatternRule{
		ID:       id,
		Category: category,
		Weight:   weight,
		Pattern:  regexp.MustCompile(`(?i)` + expr),
	}
}

// DefaultRuleSet returns the built-in rule table. Crowdwork rules mark
// performer-audience interaction: direct questions to audience members,
// references to people in the room, and reactions to unplanned moments.
// Material rules mark storytelling openers typical of rehearsed bits.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		// Direct questions to audience members
		rule("cw-where-from", model.LabelCrowdwork, 1.0, `\bwhere (?:are|is|you) .+ from\b`),
		rule("cw-your-name", model.LabelCrowdwork, 1.0, `\bwhat(?:'s| is) your name\b`),
		rule("cw-what-do-you-do", model.LabelCrowdwork, 1.0, `\bwhat do you do\b`),
		rule("cw-how-old", model.LabelCrowdwork, 1.0, `\bhow old are you\b`),
		rule("cw-what-brings-you", model.LabelCrowdwork, 1.0, `\bwhat brings you\b`),
		rule("cw-anyone-here", model.LabelCrowdwork, 0.9, `\banyone (?:here|from)\b`),
		rule("cw-whos-here", model.LabelCrowdwork, 0.9, `\bwho(?:'s| is) (?:here|from)\b`),
		rule("cw-how-many", model.LabelCrowdwork, 0.9, `\bhow many (?:of you|people|folks)\b`),
		rule("cw-how-are-you", model.LabelCrowdwork, 0.7, `\bhow are you doing\b`),
		rule("cw-front-back", model.LabelCrowdwork, 0.8, `\bguys in the (?:front|back)\b`),
		rule("cw-give-it-up", model.LabelCrowdwork, 0.9, `\bgive it up for\b`),

		// References to specific audience members
		rule("cw-this-person", model.LabelCrowdwork, 0.5, `\bthis (?:guy|lady|woman|man|person)\b`),
		rule("cw-you-in-the", model.LabelCrowdwork, 0.8, `\byou in the\b`),
		rule("cw-you-right-there", model.LabelCrowdwork, 0.9, `\byou right there\b`),
		rule("cw-you-with-the", model.LabelCrowdwork, 0.8, `\byou with the\b`),

		// Describing or addressing the room
		rule("cw-looks-like", model.LabelCrowdwork, 0.4, `\blooks like\b`),
		rule("cw-i-see-a", model.LabelCrowdwork, 0.4, `\bi see a\b`),
		rule("cw-you-guys", model.LabelCrowdwork, 0.6, `\byou guys (?:are|seem)\b`),

		// Reactions to unplanned audience moments
		rule("cw-thanks-for", model.LabelCrowdwork, 0.8, `\b(?:thanks|thank you) for (?:that|laughing|the)\b`),
		rule("cw-didnt-expect", model.LabelCrowdwork, 0.8, `\bdidn't expect that\b`),
		rule("cw-not-planned", model.LabelCrowdwork, 0.9, `\bthat wasn't planned\b`),
		rule("cw-distracted", model.LabelCrowdwork, 0.8, `\bi'm getting distracted\b`),
		rule("cw-off-script", model.LabelCrowdwork, 0.9, `\bthat'?s? not (?:in|part of) (?:the|my) (?:script|act|show)\b`),
		rule("cw-whats-happening", model.LabelCrowdwork, 0.9, `\bwhat's happening (?:over|back) there\b`),

		// Rehearsed-bit indicators: storytelling openers and setups
		rule("mat-so-i-was", model.LabelMaterial, 0.5, `\bso i was\b`),
		rule("mat-other-day", model.LabelMaterial, 0.6, `\bthe other day\b`),
		rule("mat-when-i-was", model.LabelMaterial, 0.6, `\bwhen i was (?:a kid|young|little)\b`),
		rule("mat-growing-up", model.LabelMaterial, 0.5, `\bgrowing up\b`),
		rule("mat-family", model.LabelMaterial, 0.5, `\bmy (?:wife|husband|girlfriend|boyfriend|mom|dad|kids?)\b`),
		rule("mat-true-story", model.LabelMaterial, 0.7, `\btrue story\b`),
		rule("mat-ever-notice", model.LabelMaterial, 0.6, `\b(?:you )?ever notice\b`),
	}
}

// Match evaluates every rule against text and returns the ones that fire,
// in rule-table order, with the substring each rule matched. Pure function:
// no state, same input always yields the same matches.
func (rs RuleSet) Match(text string) []model.PatternMatch {
	var matches []model.PatternMatch
	for _, r := range rs {
		if m := r.Pattern.FindString(text); m != "" {
			matches = append(matches, model.PatternMatch{
				PatternID:   r.ID,
				MatchedText: m,
				Category:    r.Category,
			})
		}
	}
	return matches
}
