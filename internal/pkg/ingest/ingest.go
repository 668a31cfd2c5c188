// Package ingest parses raw catalog ingredient text into structured
// entries. Pure functions shared by the data-platform mapper; the
// recommendation core only ever sees the structured form.
package ingest

import (
	"regexp"
	"strings"

	"github.com/fridgehero/backend/internal/domain"
)

// leadingQuantityPattern matches a leading numeral, fraction or decimal
// quantity like "2", "1/2", "1.5", "2-3"
var leadingQuantityPattern = regexp.MustCompile(`^\s*(\d+\s*/\s*\d+|\d+\.?\d*(\s*-\s*\d+\.?\d*)?)\s*`)

// knownUnits are the measurement tokens recognized right after a quantity
var knownUnits = map[string]bool{
	"cup": true, "cups": true, "tbsp": true, "tablespoon": true, "tablespoons": true,
	"tsp": true, "teaspoon": true, "teaspoons": true,
	"g": true, "gram": true, "grams": true, "kg": true,
	"oz": true, "ounce": true, "ounces": true, "lb": true, "lbs": true, "pound": true, "pounds": true,
	"ml": true, "l": true, "liter": true, "liters": true,
	"clove": true, "cloves": true, "slice": true, "slices": true,
	"piece": true, "pieces": true, "can": true, "cans": true,
	"bunch": true, "pinch": true, "dash": true, "handful": true,
}

// categoryKeywords drives category inference from the ingredient name.
// Checked in declaration order within each category; first keyword hit wins.
var categoryKeywords = []struct {
	category domain.IngredientCategory
	keywords []string
}{
	{domain.CategoryProtein, []string{
		"chicken", "beef", "pork", "lamb", "turkey", "fish", "salmon", "tuna", "cod",
		"shrimp", "prawn", "tofu", "tempeh", "egg", "bacon", "sausage", "lentil",
		"chickpea", "bean", "steak", "mince",
	}},
	{domain.CategoryDairy, []string{
		"milk", "cheese", "cheddar", "mozzarella", "parmesan", "yogurt", "butter",
		"cream", "feta", "ricotta", "paneer",
	}},
	{domain.CategoryGrain, []string{
		"rice", "pasta", "noodle", "bread", "flour", "quinoa", "couscous", "oat",
		"barley", "bulgur", "tortilla", "breadcrumb",
	}},
	{domain.CategoryHerb, []string{
		"basil", "cilantro", "parsley", "mint", "thyme", "rosemary", "oregano",
		"sage", "dill", "chive",
	}},
	{domain.CategorySpice, []string{
		"salt", "black pepper", "peppercorn", "cumin", "paprika", "turmeric", "cinnamon", "chili flake",
		"cayenne", "coriander", "nutmeg", "curry powder", "garam masala",
	}},
	{domain.CategoryOil, []string{
		"oil", "ghee", "lard", "shortening",
	}},
	{domain.CategoryCondiment, []string{
		"soy sauce", "ketchup", "mustard", "mayonnaise", "vinegar", "hot sauce",
		"fish sauce", "honey", "maple syrup", "sriracha", "salsa", "dressing",
	}},
	{domain.CategoryFruit, []string{
		"apple", "banana", "orange", "lemon", "lime", "berry", "strawberry",
		"blueberry", "mango", "peach", "pear", "grape", "pineapple", "avocado",
	}},
	{domain.CategoryVegetable, []string{
		"onion", "garlic", "tomato", "potato", "carrot", "broccoli", "spinach",
		"pepper", "zucchini", "mushroom", "cabbage", "kale", "lettuce", "cucumber",
		"celery", "corn", "pea", "cauliflower", "squash", "eggplant", "leek",
	}},
}

// optionalKeywords mark garnish or to-taste ingredients
var optionalKeywords = []string{
	"garnish", "to taste", "optional", "for serving", "sprinkle", "drizzle",
}

// ParseIngredient turns a raw catalog ingredient string like
// "2 cups basmati rice" into a structured entry. Quantity and unit come
// from leading-numeral and known-unit-token matching; category and
// importance are inferred from keyword membership.
func ParseIngredient(raw string) domain.IngredientEntry {
	text := strings.TrimSpace(raw)

	quantity := ""
	if loc := leadingQuantityPattern.FindStringIndex(text); loc != nil {
		quantity = strings.TrimSpace(text[loc[0]:loc[1]])
		text = strings.TrimSpace(text[loc[1]:])
	}

	unit := ""
	if fields := strings.Fields(text); len(fields) > 1 {
		if knownUnits[strings.ToLower(strings.Trim(fields[0], "."))] {
			unit = strings.ToLower(strings.Trim(fields[0], "."))
			text = strings.TrimSpace(strings.TrimPrefix(text, fields[0]))
		}
	}

	name := strings.TrimSpace(strings.TrimPrefix(text, "of "))
	category := InferCategory(name)
	optional := isOptionalText(raw)

	return domain.IngredientEntry{
		Name:       name,
		Quantity:   quantity,
		Unit:       unit,
		Category:   category,
		Optional:   optional,
		Importance: InferImportance(name, category, optional),
	}
}

// InferCategory maps an ingredient name onto its broad grocery category via
// keyword membership, falling back to pantry
func InferCategory(name string) domain.IngredientCategory {
	nameLower := strings.ToLower(name)
	for _, group := range categoryKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(nameLower, keyword) {
				return group.category
			}
		}
	}
	return domain.CategoryPantry
}

// InferImportance grades an ingredient: garnish-level text and seasoning
// categories are optional, proteins are critical, the rest important
func InferImportance(name string, category domain.IngredientCategory, optional bool) domain.Importance {
	if optional {
		return domain.ImportanceOptional
	}
	switch category {
	case domain.CategorySpice, domain.CategoryHerb, domain.CategoryCondiment, domain.CategoryOil:
		return domain.ImportanceOptional
	case domain.CategoryProtein:
		return domain.ImportanceCritical
	default:
		return domain.ImportanceImportant
	}
}

func isOptionalText(raw string) bool {
	rawLower := strings.ToLower(raw)
	for _, keyword := range optionalKeywords {
		if strings.Contains(rawLower, keyword) {
			return true
		}
	}
	return false
}
