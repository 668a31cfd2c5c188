package domain

// TasteImpact estimates how much a substitution changes the dish
type TasteImpact string

const (
	TasteImpactMinimal     TasteImpact = "minimal"
	TasteImpactSlight      TasteImpact = "slight"
	TasteImpactModerate    TasteImpact = "moderate"
	TasteImpactSignificant TasteImpact = "significant"
)

// SubstitutionSuggestion proposes an on-hand replacement for a missing
// recipe ingredient
type SubstitutionSuggestion struct {
	Original    string      `json:"original"`
	Substitute  string      `json:"substitute"`
	Confidence  float64     `json:"confidence"`
	TasteImpact TasteImpact `json:"tasteImpact"`
	Explanation string      `json:"explanation"`
}

// MatchResult is the scored outcome of matching one recipe against a
// household's pantry. Built fresh per recommendation call, never persisted.
type MatchResult struct {
	Recipe               *Recipe                  `json:"recipe"`
	MatchScore           float64                  `json:"matchScore"`
	AvailabilityScore    float64                  `json:"availabilityScore"`
	UrgencyScore         float64                  `json:"urgencyScore"`
	CreativityScore      float64                  `json:"creativityScore"`
	PersonalizedScore    float64                  `json:"personalizedScore"`
	AvailableIngredients []IngredientEntry        `json:"availableIngredients"`
	MissingIngredients   []IngredientEntry        `json:"missingIngredients"`
	Substitutions        []SubstitutionSuggestion `json:"substitutions,omitempty"`
	WasteReductionImpact float64                  `json:"wasteReductionImpact"`
	EstimatedCost        float64                  `json:"estimatedCost"`
	ReasonsToMake        []string                 `json:"reasonsToMake,omitempty"`
}

// RecommendOptions are the caller-supplied knobs for a recommendation call
type RecommendOptions struct {
	MaxResults          int      `json:"maxResults,omitempty"`
	MinMatchScore       float64  `json:"minMatchScore,omitempty"`
	UrgencyFocus        bool     `json:"urgencyFocus,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
}

// Default option values applied by the orchestrator when unset
const (
	DefaultMaxResults    = 20
	DefaultMinMatchScore = 0.2
)
