package domain

import (
	"math"
	"time"
)

// HouseholdItem is a single on-hand grocery item, read from the hosted
// data platform. Read-only to this service.
type HouseholdItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	ExpiryDate time.Time `json:"expiryDate"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit,omitempty"`
}

// DaysUntilExpiry returns whole days between now and the expiry date.
// Floored, so any item already expired reports a negative value even when
// it expired less than a day ago.
func (i *HouseholdItem) DaysUntilExpiry(now time.Time) int {
	return int(math.Floor(i.ExpiryDate.Sub(now).Hours() / 24))
}

// FreshnessScore maps days-until-expiry onto [0,1]: 0 once expired, then a
// step function that rewards items with more shelf life left.
func (i *HouseholdItem) FreshnessScore(now time.Time) float64 {
	days := i.DaysUntilExpiry(now)
	switch {
	case days < 0:
		return 0
	case days <= 2:
		return 0.3
	case days <= 5:
		return 0.6
	case days <= 10:
		return 0.8
	default:
		return 1.0
	}
}

// SkillLevel is the user's self-reported cooking ability
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// UserProfile holds the preferences used for personalization and filtering.
// Read-only to this service.
type UserProfile struct {
	DietaryRestrictions []string   `json:"dietaryRestrictions,omitempty"`
	Allergies           []string   `json:"allergies,omitempty"`
	CuisinePreferences  []string   `json:"cuisinePreferences,omitempty"`
	SkillLevel          SkillLevel `json:"skillLevel,omitempty"`
	Equipment           []string   `json:"equipment,omitempty"`
	FavoriteIngredients []string   `json:"favoriteIngredients,omitempty"`
	DislikedIngredients []string   `json:"dislikedIngredients,omitempty"`
	MaxCookingTime      int        `json:"maxCookingTime,omitempty"` // minutes
	BudgetPreference    CostLevel  `json:"budgetPreference,omitempty"`
	SpiceTolerance      string     `json:"spiceTolerance,omitempty"`
}
