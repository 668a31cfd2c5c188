package usecase

import (
	"fmt"
	"strings"

	"github.com/fridgehero/backend/internal/domain"
)

// Placeholder substitution estimates. The advisor does not grade individual
// swaps yet; every suggestion carries the same confidence and taste impact.
const (
	substitutionConfidence  = 0.8
	substitutionTasteImpact = domain.TasteImpactSlight
)

// SubstitutionAdvisor proposes on-hand replacements for missing recipe
// ingredients using the relationship table
type SubstitutionAdvisor struct {
	tables *IngredientTables
}

// NewSubstitutionAdvisor creates an advisor backed by the given tables
func NewSubstitutionAdvisor(tables *IngredientTables) *SubstitutionAdvisor {
	return &SubstitutionAdvisor{tables: tables}
}

// Suggest walks each missing ingredient's related names in table order and
// takes the first pantry item whose normalized name contains the related
// name. At most one suggestion per missing ingredient.
func (a *SubstitutionAdvisor) Suggest(missing []domain.IngredientEntry, pantry []domain.HouseholdItem) []domain.SubstitutionSuggestion {
	var suggestions []domain.SubstitutionSuggestion

	for _, entry := range missing {
		if sub, ok := a.suggestOne(entry, pantry); ok {
			suggestions = append(suggestions, sub)
		}
	}

	return suggestions
}

func (a *SubstitutionAdvisor) suggestOne(entry domain.IngredientEntry, pantry []domain.HouseholdItem) (domain.SubstitutionSuggestion, bool) {
	for _, related := range a.tables.Related(strings.ToLower(entry.Name)) {
		relatedLower := strings.ToLower(related)
		for i := range pantry {
			if strings.Contains(Normalize(pantry[i].Name), relatedLower) {
				return domain.SubstitutionSuggestion{
					Original:    entry.Name,
					Substitute:  pantry[i].Name,
					Confidence:  substitutionConfidence,
					TasteImpact: substitutionTasteImpact,
					Explanation: fmt.Sprintf("%s works in place of %s in most preparations", pantry[i].Name, entry.Name),
				}, true
			}
		}
	}
	return domain.SubstitutionSuggestion{}, false
}
