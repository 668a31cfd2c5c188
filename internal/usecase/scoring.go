package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fridgehero/backend/internal/domain"
)

// Fixed weights of the overall match score. Rankings are only reproducible
// if these stay exactly as shipped.
const (
	weightAvailability    = 0.40
	weightUrgency         = 0.25
	weightPersonalization = 0.20
	weightCreativity      = 0.15
)

// Urgency thresholds in days-until-expiry
const (
	urgentExpiryDays = 3
	soonExpiryDays   = 7
)

// Scores within this band of each other are treated as tied and broken by
// the secondary key.
const rankToleranceBand = 0.1

// Each personalization check contributes this much, five checks total.
const personalizationStep = 0.2

// estimatedCostPlaceholder is the flat per-recipe cost estimate. The cost
// model is not built yet; callers get a well-typed stand-in value.
const estimatedCostPlaceholder = 12.0

// ScoringEngine computes the four sub-scores and the combined match score
// for a recipe against a match outcome and user profile
type ScoringEngine struct{}

// NewScoringEngine creates a scoring engine
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// Scores bundles the sub-scores and combined score for one recipe
type Scores struct {
	Availability    float64
	Urgency         float64
	Personalization float64
	Creativity      float64
	Match           float64
}

// Score computes all sub-scores and the weighted combination
func (e *ScoringEngine) Score(
	recipe *domain.Recipe,
	outcome MatchOutcome,
	profile *domain.UserProfile,
	now time.Time,
) Scores {
	s := Scores{
		Availability:    e.availabilityScore(outcome),
		Urgency:         e.urgencyScore(outcome, now),
		Personalization: e.personalizationScore(recipe, profile),
		Creativity:      e.creativityScore(recipe, outcome),
	}
	s.Match = weightAvailability*s.Availability +
		weightUrgency*s.Urgency +
		weightPersonalization*s.Personalization +
		weightCreativity*s.Creativity
	return s
}

// availabilityScore is the fraction of trackable ingredients on hand.
// Ignored ingredients are out of the denominator. Zero when the recipe has
// no trackable ingredients at all.
func (e *ScoringEngine) availabilityScore(outcome MatchOutcome) float64 {
	total := len(outcome.Available) + len(outcome.Missing)
	if total == 0 {
		return 0
	}
	return float64(len(outcome.Available)) / float64(total)
}

// urgencyScore rewards recipes whose resolved pantry items are close to
// expiry: full credit inside 3 days, half credit inside 7, none beyond.
func (e *ScoringEngine) urgencyScore(outcome MatchOutcome, now time.Time) float64 {
	sum := 0.0
	resolved := 0
	for _, avail := range outcome.Available {
		if avail.Item == nil {
			continue
		}
		resolved++
		days := avail.Item.DaysUntilExpiry(now)
		switch {
		case days <= urgentExpiryDays:
			sum += 1.0
		case days <= soonExpiryDays:
			sum += 0.5
		}
	}
	if resolved == 0 {
		return 0
	}
	return sum / float64(resolved)
}

// personalizationScore adds 0.2 for each satisfied preference check:
// cuisine taste, skill-to-difficulty fit, total time budget, a favorite
// ingredient present, and full dietary compliance.
func (e *ScoringEngine) personalizationScore(recipe *domain.Recipe, profile *domain.UserProfile) float64 {
	if profile == nil {
		return 0
	}
	score := 0.0

	if containsFold(profile.CuisinePreferences, recipe.Cuisine) {
		score += personalizationStep
	}
	if skillMatchesDifficulty(profile.SkillLevel, recipe.Difficulty) {
		score += personalizationStep
	}
	if profile.MaxCookingTime > 0 && recipe.TotalTime() <= profile.MaxCookingTime {
		score += personalizationStep
	}
	if hasFavoriteIngredient(recipe, profile.FavoriteIngredients) {
		score += personalizationStep
	}
	if meetsDietaryRestrictions(recipe, profile.DietaryRestrictions) {
		score += personalizationStep
	}

	return score
}

// creativityScore favors variety: broad category spread, fusion cuisines
// and recipes largely cookable from what is on hand. Clamped to 1.
func (e *ScoringEngine) creativityScore(recipe *domain.Recipe, outcome MatchOutcome) float64 {
	score := 0.0

	categories := map[domain.IngredientCategory]bool{}
	for _, entry := range recipe.Ingredients {
		categories[entry.Category] = true
	}
	if len(categories) >= 4 {
		score += 0.3
	}
	if strings.Contains(strings.ToLower(recipe.Cuisine), "fusion") {
		score += 0.4
	}
	if len(outcome.Available) >= 3 {
		score += 0.3
	}

	return math.Min(score, 1.0)
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func skillMatchesDifficulty(skill domain.SkillLevel, difficulty domain.Difficulty) bool {
	switch skill {
	case domain.SkillBeginner:
		return difficulty == domain.DifficultyEasy
	case domain.SkillIntermediate:
		return difficulty == domain.DifficultyMedium
	case domain.SkillAdvanced:
		return difficulty == domain.DifficultyHard
	}
	return false
}

func hasFavoriteIngredient(recipe *domain.Recipe, favorites []string) bool {
	for _, fav := range favorites {
		favLower := strings.ToLower(fav)
		if favLower == "" {
			continue
		}
		for _, entry := range recipe.Ingredients {
			if strings.Contains(strings.ToLower(entry.Name), favLower) {
				return true
			}
		}
	}
	return false
}

// meetsDietaryRestrictions requires every restriction to appear in the
// recipe's diet-tag list. No restrictions means trivially compliant.
func meetsDietaryRestrictions(recipe *domain.Recipe, restrictions []string) bool {
	for _, restriction := range restrictions {
		if !containsFold(recipe.DietTags, restriction) {
			return false
		}
	}
	return true
}

// RankLess is the three-level ranking comparator: match score descending,
// but scores within the tolerance band count as tied and fall through to
// urgency (when the caller asked for urgency focus) or personalization,
// both descending. Kept as an explicit comparator rather than a composite
// sort key so the band semantics survive.
func RankLess(a, b *domain.MatchResult, urgencyFocus bool) bool {
	if math.Abs(a.MatchScore-b.MatchScore) > rankToleranceBand {
		return a.MatchScore > b.MatchScore
	}
	if urgencyFocus {
		if a.UrgencyScore != b.UrgencyScore {
			return a.UrgencyScore > b.UrgencyScore
		}
	} else if a.PersonalizedScore != b.PersonalizedScore {
		return a.PersonalizedScore > b.PersonalizedScore
	}
	return a.MatchScore > b.MatchScore
}

// ContainsAllergen reports whether any user allergy appears as a
// case-insensitive substring of any recipe ingredient name
func ContainsAllergen(recipe *domain.Recipe, allergies []string) bool {
	for _, allergy := range allergies {
		allergyLower := strings.ToLower(strings.TrimSpace(allergy))
		if allergyLower == "" {
			continue
		}
		for _, entry := range recipe.Ingredients {
			if strings.Contains(strings.ToLower(entry.Name), allergyLower) {
				return true
			}
		}
	}
	return false
}

// wasteReductionImpact estimates how much of the household's at-risk food
// the recipe would rescue: the average staleness (1 - freshness) of the
// pantry items it uses. Zero when nothing resolved.
func wasteReductionImpact(outcome MatchOutcome, now time.Time) float64 {
	sum := 0.0
	resolved := 0
	for _, avail := range outcome.Available {
		if avail.Item == nil {
			continue
		}
		resolved++
		sum += 1.0 - avail.Item.FreshnessScore(now)
	}
	if resolved == 0 {
		return 0
	}
	return sum / float64(resolved)
}

// reasonsToMake builds the short human-readable strings shown next to a
// recommendation card
func reasonsToMake(recipe *domain.Recipe, outcome MatchOutcome, scores Scores, now time.Time) []string {
	var reasons []string

	if n := len(outcome.Available); n > 0 {
		reasons = append(reasons, fmt.Sprintf("Uses %d ingredient(s) you already have", n))
	}
	for _, avail := range outcome.Available {
		if avail.Item != nil && avail.Item.DaysUntilExpiry(now) <= urgentExpiryDays {
			reasons = append(reasons, fmt.Sprintf("Helps use your %s before it expires", avail.Item.Name))
			break
		}
	}
	if scores.Personalization >= 0.6 {
		reasons = append(reasons, "Closely matches your preferences")
	}
	if total := recipe.TotalTime(); total > 0 && total <= 30 {
		reasons = append(reasons, fmt.Sprintf("Ready in %d minutes", total))
	}

	return reasons
}
