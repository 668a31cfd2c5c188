package supabase

import (
	"fmt"
	"time"

	"github.com/fridgehero/backend/internal/domain"
	"github.com/fridgehero/backend/internal/pkg/ingest"
)

// expiryDateLayout is the calendar-date format used by the platform
const expiryDateLayout = "2006-01-02"

// householdItemRecord is the wire shape of a household_items row
type householdItemRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	ExpiryDate string  `json:"expiry_date"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

func (r householdItemRecord) toDomain() (domain.HouseholdItem, error) {
	if r.Name == "" {
		return domain.HouseholdItem{}, fmt.Errorf("item %s has no name", r.ID)
	}
	expiry, err := time.Parse(expiryDateLayout, r.ExpiryDate)
	if err != nil {
		return domain.HouseholdItem{}, fmt.Errorf("item %s has bad expiry date %q: %w", r.ID, r.ExpiryDate, err)
	}
	return domain.HouseholdItem{
		ID:         r.ID,
		Name:       r.Name,
		Category:   r.Category,
		ExpiryDate: expiry,
		Quantity:   r.Quantity,
		Unit:       r.Unit,
	}, nil
}

// profileRecord is the wire shape of a profiles row
type profileRecord struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
	SkillLevel          string   `json:"skill_level"`
	Equipment           []string `json:"equipment"`
	FavoriteIngredients []string `json:"favorite_ingredients"`
	DislikedIngredients []string `json:"disliked_ingredients"`
	MaxCookingTime      int      `json:"max_cooking_time"`
	BudgetPreference    string   `json:"budget_preference"`
	SpiceTolerance      string   `json:"spice_tolerance"`
}

func (r profileRecord) toDomain() domain.UserProfile {
	return domain.UserProfile{
		DietaryRestrictions: r.DietaryRestrictions,
		Allergies:           r.Allergies,
		CuisinePreferences:  r.CuisinePreferences,
		SkillLevel:          domain.SkillLevel(r.SkillLevel),
		Equipment:           r.Equipment,
		FavoriteIngredients: r.FavoriteIngredients,
		DislikedIngredients: r.DislikedIngredients,
		MaxCookingTime:      r.MaxCookingTime,
		BudgetPreference:    domain.CostLevel(r.BudgetPreference),
		SpiceTolerance:      r.SpiceTolerance,
	}
}

// ingredientRecord is one entry of a recipe's ingredient list. Older
// catalog rows carry only Raw text; structure is inferred at ingestion.
type ingredientRecord struct {
	Raw         string   `json:"raw,omitempty"`
	Name        string   `json:"name,omitempty"`
	Quantity    string   `json:"quantity,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Category    string   `json:"category,omitempty"`
	Optional    bool     `json:"optional,omitempty"`
	Substitutes []string `json:"substitutes,omitempty"`
	Importance  string   `json:"importance,omitempty"`
}

func (r ingredientRecord) toDomain() domain.IngredientEntry {
	if r.Name == "" {
		// Raw-text row: parse quantity/unit and infer the rest
		return ingest.ParseIngredient(r.Raw)
	}

	entry := domain.IngredientEntry{
		Name:        r.Name,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		Category:    domain.IngredientCategory(r.Category),
		Optional:    r.Optional,
		Substitutes: r.Substitutes,
		Importance:  domain.Importance(r.Importance),
	}
	if entry.Category == "" {
		entry.Category = ingest.InferCategory(entry.Name)
	}
	if entry.Importance == "" {
		entry.Importance = ingest.InferImportance(entry.Name, entry.Category, entry.Optional)
	}
	return entry
}

// recipeRecord is the wire shape of a recipes row
type recipeRecord struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Description  string                   `json:"description"`
	Ingredients  []ingredientRecord       `json:"ingredients"`
	Instructions []string                 `json:"instructions"`
	PrepTime     int                      `json:"prep_time"`
	CookTime     int                      `json:"cook_time"`
	Servings     int                      `json:"servings"`
	Difficulty   string                   `json:"difficulty"`
	Cuisine      string                   `json:"cuisine"`
	DietTags     []string                 `json:"diet_tags"`
	MealType     string                   `json:"meal_type"`
	Rating       float64                  `json:"rating"`
	Nutrition    *domain.NutritionSummary `json:"nutrition"`
	Tags         []string                 `json:"tags"`
	Seasons      []string                 `json:"seasons"`
	Skills       []string                 `json:"skills"`
	Equipment    []string                 `json:"equipment"`
	CostLevel    string                   `json:"cost_level"`
}

func (r recipeRecord) toDomain() domain.Recipe {
	ingredients := make([]domain.IngredientEntry, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, ing.toDomain())
	}
	return domain.Recipe{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Difficulty:   domain.Difficulty(r.Difficulty),
		Cuisine:      r.Cuisine,
		DietTags:     r.DietTags,
		MealType:     r.MealType,
		Rating:       r.Rating,
		Nutrition:    r.Nutrition,
		Tags:         r.Tags,
		Seasons:      r.Seasons,
		Skills:       r.Skills,
		Equipment:    r.Equipment,
		CostLevel:    domain.CostLevel(r.CostLevel),
	}
}
