package usecase

import "github.com/greenscan/backend/internal/domain"

// knownLabels maps normalized certification tags to their emoji-annotated
// display strings. Tags outside this table are silently dropped from display.
var knownLabels = map[domain.LabelTag]string{
	"organic":             "🌿 Organic",
	"bio":                 "🌱 Organic (Bio)",
	"fair-trade":          "🤝 Fair Trade",
	"eu-organic":          "🇪🇺 EU Organic",
	"vegan":               "🌻 Vegan",
	"vegetarian":          "🥦 Vegetarian",
	"gluten-free":         "🚫🌾 Gluten-Free",
	"sustainable-fishing": "🐟 Sustainable Fishing",
	"rainforest-alliance": "🌳 Rainforest Alliance",
}

// gradeExplanations maps each eco-grade to a plain-language rationale
var gradeExplanations = map[domain.EcoGrade]string{
	domain.GradeA: "Product meets the highest standards for environmental sustainability and verified certifications.",
	domain.GradeB: "Product is generally eco-friendly but may have one or more minor caveats.",
	domain.GradeC: "Product is partially sustainable but improvements are possible in sourcing or labeling.",
	domain.GradeD: "Product sustainability is questionable or limited.",
	domain.GradeE: "This product is likely not eco-friendly; major environmental issues are flagged.",
}

// LabelCatalog resolves certification tags to display strings
type LabelCatalog struct{}

// NewLabelCatalog creates a new label catalog
func NewLabelCatalog() *LabelCatalog {
	return &LabelCatalog{}
}

// Display returns the display string for a tag, or false when the tag is not
// in the catalog and its chip should be omitted.
func (c *LabelCatalog) Display(tag domain.LabelTag) (string, bool) {
	display, ok := knownLabels[tag]
	return display, ok
}

// GradeExplanationCatalog resolves eco-grades to rationale text
type GradeExplanationCatalog struct{}

// NewGradeExplanationCatalog creates a new explanation catalog
func NewGradeExplanationCatalog() *GradeExplanationCatalog {
	return &GradeExplanationCatalog{}
}

// Explain returns the rationale for a grade, falling back to the worst
// grade's text for anything it does not recognize.
func (c *GradeExplanationCatalog) Explain(grade domain.EcoGrade) string {
	if text, ok := gradeExplanations[grade]; ok {
		return text
	}
	return gradeExplanations[domain.GradeE]
}
