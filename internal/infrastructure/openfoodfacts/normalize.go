package openfoodfacts

import (
	"encoding/json"
	"strings"

	"github.com/greenscan/backend/internal/domain"
)

// ingredientsPrefixLen is the fixed prefix length for the ingredients summary
const ingredientsPrefixLen = 60

const unknownField = "Unknown"

// normalizeProduct converts a raw Open Food Facts payload into a
// fully-defaulted domain Product. Missing or malformed fields never fail a
// lookup; they degrade to safe defaults so partial data can't surface a
// blank or crashing result.
func normalizeProduct(barcode string, p *productPayload) *domain.Product {
	return &domain.Product{
		Barcode:            barcode,
		Name:               defaultString(p.ProductName, unknownField),
		Brand:              defaultString(p.Brands, unknownField),
		Grade:              domain.ParseEcoGrade(p.EcoscoreGrade),
		Labels:             normalizeLabels(p.LabelsTags),
		IngredientsSummary: summarizeIngredients(p.IngredientsText),
	}
}

func defaultString(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// normalizeLabels decodes labels_tags tolerantly: absent or not a JSON array
// of strings means no labels, not an error.
func normalizeLabels(raw json.RawMessage) []domain.LabelTag {
	if len(raw) == 0 {
		return []domain.LabelTag{}
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return []domain.LabelTag{}
	}

	labels := make([]domain.LabelTag, 0, len(tags))
	for _, tag := range tags {
		labels = append(labels, domain.LabelTag(tag))
	}
	return labels
}

// summarizeIngredients truncates the ingredients text to a fixed prefix with
// an ellipsis marker, or reports it as unavailable.
func summarizeIngredients(text string) string {
	if text == "" {
		return "N/A"
	}
	runes := []rune(text)
	if len(runes) > ingredientsPrefixLen {
		runes = runes[:ingredientsPrefixLen]
	}
	return string(runes) + "..."
}
