package analysis

import "github.com/BlakeDanielson/CrowdWork/internal/model"

const (
	// DefaultBaselineConfidence is reported when no rule fires: no
	// evidence either way.
	DefaultBaselineConfidence = 0.5

	// scoreEpsilon keeps the confidence ratio defined when scores are tiny.
	scoreEpsilon = 1e-9
)

// Classifier labels segments against a shared read-only rule set.
type Classifier struct {
	Rules              RuleSet
	BaselineConfidence float64
}

// NewClassifier returns a classifier over the given rules with the default
// baseline confidence.
func NewClassifier(rules RuleSet) *Classifier {
	return &Classifier{
		Rules:              rules,
		BaselineConfidence: DefaultBaselineConfidence,
	}
}

// Classify scores a segment's text against every rule and returns the
// segment with Label, Confidence and MatchedPatterns filled in.
//
// Crowdwork wins only when its summed weight is strictly greater than the
// material sum. Ties and the zero-score case both resolve to material: most
// performance time is scripted, so absence of evidence defaults that way.
// The tie-break is deliberate, not an artifact of rule order.
func (c *Classifier) Classify(seg model.Segment) model.Segment {
	var scoreCrowdwork, scoreMaterial float64
	var matches []model.PatternMatch

	for _, r := range c.Rules {
		m := r.Pattern.FindString(seg.Text)
		if m == "" {
			continue
		}
		switch r.Category {
		case model.LabelCrowdwork:
			scoreCrowdwork += r.Weight
		case model.LabelMaterial:
			scoreMaterial += r.Weight
		}
		// Losing-category matches are recorded too, for explainability.
		matches = append(matches, model.PatternMatch{
			PatternID:   r.ID,
			MatchedText: m,
			Category:    r.Category,
		})
	}

	if scoreCrowdwork > scoreMaterial {
		seg.Label = model.LabelCrowdwork
	} else {
		seg.Label = model.LabelMaterial
	}

	if len(matches) == 0 {
		seg.Confidence = c.BaselineConfidence
	} else {
		diff := scoreCrowdwork - scoreMaterial
		if diff < 0 {
			diff = -diff
		}
		conf := diff / (scoreCrowdwork + scoreMaterial + scoreEpsilon)
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		seg.Confidence = conf
	}

	seg.MatchedPatterns = matches
	return seg
}
