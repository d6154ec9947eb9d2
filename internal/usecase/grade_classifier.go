package usecase

import "github.com/greenscan/backend/internal/domain"

// verdictTiers is the fixed grade-to-verdict policy. Grades b and c collapse
// to the same yellow tier, d and e to the same red tier; only a earns green.
var verdictTiers = map[domain.EcoGrade]domain.VerdictTier{
	domain.GradeA: {Badge: "Verified Eco-Friendly", Severity: domain.SeverityGreen, ScoreLabel: "Green (Eco-Friendly)"},
	domain.GradeB: {Badge: "Partially Green", Severity: domain.SeverityYellow, ScoreLabel: "Yellow (Partially Sustainable)"},
	domain.GradeC: {Badge: "Partially Green", Severity: domain.SeverityYellow, ScoreLabel: "Yellow (Partially Sustainable)"},
	domain.GradeD: {Badge: "Not Eco-Friendly", Severity: domain.SeverityRed, ScoreLabel: "Red (Not Sustainable)"},
	domain.GradeE: {Badge: "Not Eco-Friendly", Severity: domain.SeverityRed, ScoreLabel: "Red (Not Sustainable)"},
}

// GradeClassifier maps eco-grades to user-facing verdict tiers
type GradeClassifier struct{}

// NewGradeClassifier creates a new grade classifier
func NewGradeClassifier() *GradeClassifier {
	return &GradeClassifier{}
}

// Classify returns the verdict tier for a grade. It is total: any input
// outside a-e degrades to the worst tier, so classification never fails.
func (c *GradeClassifier) Classify(grade domain.EcoGrade) domain.VerdictTier {
	if tier, ok := verdictTiers[grade]; ok {
		return tier
	}
	return verdictTiers[domain.GradeE]
}
