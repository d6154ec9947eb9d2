package domain

import "strings"

// EcoGrade is the single-letter sustainability rating from Open Food Facts,
// ordered from best (a) to worst (e).
type EcoGrade string

const (
	GradeA EcoGrade = "a"
	GradeB EcoGrade = "b"
	GradeC EcoGrade = "c"
	GradeD EcoGrade = "d"
	GradeE EcoGrade = "e"
)

// ParseEcoGrade normalizes a raw grade string. Anything outside a-e,
// including the empty string, collapses to GradeE: a product is assumed
// not eco-friendly unless proven otherwise.
func ParseEcoGrade(raw string) EcoGrade {
	switch EcoGrade(strings.ToLower(strings.TrimSpace(raw))) {
	case GradeA:
		return GradeA
	case GradeB:
		return GradeB
	case GradeC:
		return GradeC
	case GradeD:
		return GradeD
	default:
		return GradeE
	}
}

// LabelTag is a normalized certification identifier such as "organic" or
// "fair-trade". Tags the label catalog does not recognize stay on the
// product and are dropped at display time.
type LabelTag string

// Severity is the three-level user-facing classification of an eco-grade.
type Severity string

const (
	SeverityGreen  Severity = "green"
	SeverityYellow Severity = "yellow"
	SeverityRed    Severity = "red"
)

// VerdictTier is the user-facing verdict derived from an eco-grade.
type VerdictTier struct {
	Badge      string   `json:"badge"`
	Severity   Severity `json:"severity"`
	ScoreLabel string   `json:"scoreLabel"`
}

// Product is the fully-defaulted record produced by a lookup. All optionality
// in the remote response is resolved before construction; downstream
// components never re-check for missing fields.
type Product struct {
	Barcode            string     `json:"barcode"`
	Name               string     `json:"name"`
	Brand              string     `json:"brand"`
	Grade              EcoGrade   `json:"grade"`
	Labels             []LabelTag `json:"labels"`
	IngredientsSummary string     `json:"ingredientsSummary"`
}
