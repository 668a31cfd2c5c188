package usecase

import (
	"strings"

	"github.com/fridgehero/backend/internal/domain"
)

// Match confidences by tier. Exact name hits beat relational hits beat
// broad category hits.
const (
	confidenceExact      = 1.0
	confidenceRelational = 0.8
	confidenceCategory   = 0.6
)

// AvailableIngredient is a recipe ingredient resolved against the pantry,
// carrying the pantry item that satisfied it and the tier confidence
type AvailableIngredient struct {
	Entry      domain.IngredientEntry
	Item       *domain.HouseholdItem
	Confidence float64
}

// MatchOutcome partitions a recipe's ingredient list into three disjoint
// buckets. Ignored holds optional/garnish-level ingredients that were not
// found on hand; they count against neither availability nor urgency.
type MatchOutcome struct {
	Available []AvailableIngredient
	Missing   []domain.IngredientEntry
	Ignored   []domain.IngredientEntry
}

// AvailabilityMatcher classifies recipe ingredients against a household's
// on-hand items using the static relationship tables
type AvailabilityMatcher struct {
	tables *IngredientTables
}

// NewAvailabilityMatcher creates a matcher backed by the given tables
func NewAvailabilityMatcher(tables *IngredientTables) *AvailabilityMatcher {
	return &AvailabilityMatcher{tables: tables}
}

// Match classifies each recipe ingredient, first hit wins:
// exact normalized-name equality, then relational lookup with a
// bidirectional substring test, then case-insensitive category equality.
// Unfound ingredients flagged optional (or with optional importance) are
// ignored rather than reported missing, so garnish-level ingredients never
// penalize a recipe.
func (m *AvailabilityMatcher) Match(ingredients []domain.IngredientEntry, pantry []domain.HouseholdItem) MatchOutcome {
	outcome := MatchOutcome{}

	for _, entry := range ingredients {
		if avail, ok := m.resolve(entry, pantry); ok {
			outcome.Available = append(outcome.Available, avail)
			continue
		}
		if entry.Optional || entry.Importance == domain.ImportanceOptional {
			outcome.Ignored = append(outcome.Ignored, entry)
			continue
		}
		outcome.Missing = append(outcome.Missing, entry)
	}

	return outcome
}

func (m *AvailabilityMatcher) resolve(entry domain.IngredientEntry, pantry []domain.HouseholdItem) (AvailableIngredient, bool) {
	normalized := Normalize(entry.Name)

	// Tier 1: exact normalized name match
	for i := range pantry {
		if Normalize(pantry[i].Name) == normalized {
			return AvailableIngredient{Entry: entry, Item: &pantry[i], Confidence: confidenceExact}, true
		}
	}

	// Tier 2: relational match. The table is keyed by the lower-cased raw
	// name, not the fully normalized form.
	for _, related := range m.tables.Related(strings.ToLower(entry.Name)) {
		relatedLower := strings.ToLower(related)
		for i := range pantry {
			itemName := Normalize(pantry[i].Name)
			if strings.Contains(itemName, relatedLower) || strings.Contains(relatedLower, itemName) {
				return AvailableIngredient{Entry: entry, Item: &pantry[i], Confidence: confidenceRelational}, true
			}
		}
	}

	// Tier 3: shared broad category. Over-permissive on purpose: any
	// vegetable satisfies any other vegetable ingredient.
	for i := range pantry {
		if strings.EqualFold(pantry[i].Category, string(entry.Category)) {
			return AvailableIngredient{Entry: entry, Item: &pantry[i], Confidence: confidenceCategory}, true
		}
	}

	return AvailableIngredient{}, false
}
