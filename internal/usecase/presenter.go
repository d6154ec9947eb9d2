package usecase

import (
	"fmt"
	"strings"

	"github.com/greenscan/backend/internal/domain"
)

// placeholderChip is shown when a product carries no recognized certification
const placeholderChip = "No certifications found"

// ViewModel is the renderable form of an eco-check result. It carries no
// framework dependency; any surface can render it directly.
type ViewModel struct {
	Badge       string          `json:"badge"`
	Severity    domain.Severity `json:"severity"`
	ScoreLabel  string          `json:"scoreLabel"`
	Details     []string        `json:"details"`
	Chips       []string        `json:"chips"`
	Explanation string          `json:"explanation"`
}

// ResultPresenter builds view models from products and lookup failures
type ResultPresenter struct {
	classifier   *GradeClassifier
	labels       *LabelCatalog
	explanations *GradeExplanationCatalog
}

// NewResultPresenter creates a presenter with its catalogs as constructed
// collaborators, so tests can substitute the surrounding pipeline freely.
func NewResultPresenter(classifier *GradeClassifier, labels *LabelCatalog, explanations *GradeExplanationCatalog) *ResultPresenter {
	return &ResultPresenter{
		classifier:   classifier,
		labels:       labels,
		explanations: explanations,
	}
}

// Present converts a fully-defaulted product into its view model. Chips
// follow the order labels appear on the product, not catalog order; if no
// label is recognized the single placeholder chip is shown instead.
func (p *ResultPresenter) Present(product *domain.Product) ViewModel {
	tier := p.classifier.Classify(product.Grade)

	chips := make([]string, 0, len(product.Labels))
	for _, tag := range product.Labels {
		if display, ok := p.labels.Display(tag); ok {
			chips = append(chips, display)
		}
	}
	if len(chips) == 0 {
		chips = []string{placeholderChip}
	}

	return ViewModel{
		Badge:      tier.Badge,
		Severity:   tier.Severity,
		ScoreLabel: tier.ScoreLabel,
		Details: []string{
			fmt.Sprintf("Product: %s", product.Name),
			fmt.Sprintf("Brand: %s", product.Brand),
			fmt.Sprintf("Eco-Score: %s", strings.ToUpper(string(product.Grade))),
			fmt.Sprintf("Ingredients: %s", product.IngredientsSummary),
		},
		Chips:       chips,
		Explanation: p.explanations.Explain(product.Grade),
	}
}

// PresentError returns the fixed failure view model. Not-found and transport
// failures produce the same output on purpose: the distinction isn't
// actionable for the user, "try another barcode" is. Raw error detail never
// reaches the view.
func (p *ResultPresenter) PresentError() ViewModel {
	return ViewModel{
		Badge:       "Error",
		Severity:    domain.SeverityRed,
		ScoreLabel:  "Fetch Failed",
		Details:     []string{"Could not load product data."},
		Chips:       []string{},
		Explanation: "Try another barcode.",
	}
}
