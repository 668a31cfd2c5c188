package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fridgehero/backend/internal/domain"
)

// Fallback generation kicks in when catalog matches are sparse or weak
const (
	fallbackMinResults = 3
	fallbackTopScore   = 0.6
)

// fallbackTemplate describes one synthetic recipe shape built from on-hand
// categories
type fallbackTemplate struct {
	name         string
	description  string
	needs        []domain.IngredientCategory
	instructions []string
	prepTime     int
	cookTime     int
}

var fallbackTemplates = []fallbackTemplate{
	{
		name:        "Stir-Fry",
		description: "A quick stir-fry built from what is already in your fridge",
		needs:       []domain.IngredientCategory{domain.CategoryProtein, domain.CategoryVegetable},
		instructions: []string{
			"Cut the protein and vegetables into bite-sized pieces",
			"Heat oil in a wok or large pan over high heat",
			"Stir-fry the protein until nearly cooked through, then add the vegetables",
			"Season and toss for another 2-3 minutes, serve hot",
		},
		prepTime: 10,
		cookTime: 10,
	},
	{
		name:        "Fresh Salad",
		description: "A simple salad using your fresh produce",
		needs:       []domain.IngredientCategory{domain.CategoryVegetable},
		instructions: []string{
			"Wash and chop the vegetables",
			"Toss everything in a large bowl",
			"Dress with oil, acid and seasoning to taste",
		},
		prepTime: 10,
		cookTime: 0,
	},
	{
		name:        "Grain Bowl",
		description: "A hearty bowl over a cooked grain base",
		needs:       []domain.IngredientCategory{domain.CategoryGrain, domain.CategoryVegetable},
		instructions: []string{
			"Cook the grain according to package directions",
			"Prepare the toppings while the grain cooks",
			"Assemble the bowl and finish with a drizzle of dressing",
		},
		prepTime: 10,
		cookTime: 20,
	},
}

// FallbackGenerator builds synthetic template recipes from pantry contents
// when the catalog does not yield enough strong matches
type FallbackGenerator struct{}

// NewFallbackGenerator creates a fallback generator
func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{}
}

// NeedsFallback reports whether the ranked results are too few or too weak
// to stand on their own
func (g *FallbackGenerator) NeedsFallback(results []*domain.MatchResult) bool {
	if len(results) < fallbackMinResults {
		return true
	}
	return results[0].MatchScore <= fallbackTopScore
}

// Generate builds template recipes from the pantry items grouped by
// category. Best effort: templates whose required categories are not on
// hand are skipped, so the result may be empty.
func (g *FallbackGenerator) Generate(pantry []domain.HouseholdItem) []domain.Recipe {
	byCategory := map[domain.IngredientCategory][]domain.HouseholdItem{}
	for _, item := range pantry {
		cat := domain.IngredientCategory(strings.ToLower(item.Category))
		byCategory[cat] = append(byCategory[cat], item)
	}

	var recipes []domain.Recipe
	for _, tmpl := range fallbackTemplates {
		if recipe, ok := g.build(tmpl, byCategory); ok {
			recipes = append(recipes, recipe)
		}
	}
	return recipes
}

func (g *FallbackGenerator) build(tmpl fallbackTemplate, byCategory map[domain.IngredientCategory][]domain.HouseholdItem) (domain.Recipe, bool) {
	var ingredients []domain.IngredientEntry
	var featured []string

	for _, need := range tmpl.needs {
		items := byCategory[need]
		if len(items) == 0 {
			return domain.Recipe{}, false
		}
		// Two items per category at most keeps the template readable
		for i, item := range items {
			if i >= 2 {
				break
			}
			ingredients = append(ingredients, domain.IngredientEntry{
				Name:       item.Name,
				Quantity:   "1",
				Category:   need,
				Importance: domain.ImportanceImportant,
			})
			featured = append(featured, item.Name)
		}
	}

	name := fmt.Sprintf("%s %s", capitalize(featured[0]), tmpl.name)
	return domain.Recipe{
		ID:           "fallback-" + uuid.NewString(),
		Name:         name,
		Description:  tmpl.description,
		Ingredients:  ingredients,
		Instructions: tmpl.instructions,
		PrepTime:     tmpl.prepTime,
		CookTime:     tmpl.cookTime,
		Servings:     2,
		Difficulty:   domain.DifficultyEasy,
		Cuisine:      "home",
		Tags:         []string{"fallback", "pantry"},
	}, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
