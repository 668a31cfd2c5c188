package domain

// Difficulty describes how hard a recipe is to cook
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// CostLevel describes the expected grocery cost of a recipe
type CostLevel string

const (
	CostBudget   CostLevel = "budget"
	CostModerate CostLevel = "moderate"
	CostPremium  CostLevel = "premium"
)

// IngredientCategory is the broad grocery category of an ingredient
type IngredientCategory string

const (
	CategoryProtein   IngredientCategory = "protein"
	CategoryVegetable IngredientCategory = "vegetable"
	CategoryFruit     IngredientCategory = "fruit"
	CategoryGrain     IngredientCategory = "grain"
	CategoryDairy     IngredientCategory = "dairy"
	CategorySpice     IngredientCategory = "spice"
	CategoryOil       IngredientCategory = "oil"
	CategoryCondiment IngredientCategory = "condiment"
	CategoryHerb      IngredientCategory = "herb"
	CategoryPantry    IngredientCategory = "pantry"
)

// Importance describes how essential an ingredient is to a recipe
type Importance string

const (
	ImportanceCritical  Importance = "critical"
	ImportanceImportant Importance = "important"
	ImportanceOptional  Importance = "optional"
)

// IngredientEntry is a single entry in a recipe's ingredient list.
// Category and Importance are inferred once at catalog ingestion when the
// source record only carries raw text.
type IngredientEntry struct {
	Name        string             `json:"name"`
	Quantity    string             `json:"quantity"`
	Unit        string             `json:"unit,omitempty"`
	Category    IngredientCategory `json:"category"`
	Optional    bool               `json:"optional"`
	Substitutes []string           `json:"substitutes,omitempty"`
	Importance  Importance         `json:"importance"`
}

// NutritionSummary is the optional per-serving nutrition block on a recipe
type NutritionSummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"` // grams
	Carbs    float64 `json:"carbs"`   // grams
	Fat      float64 `json:"fat"`     // grams
	Fiber    float64 `json:"fiber"`   // grams
	Sodium   float64 `json:"sodium"`  // grams
}

// Recipe is a read-only catalog record.
// Invariant: Ingredients is non-empty; PrepTime, CookTime and Servings >= 0.
type Recipe struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Ingredients  []IngredientEntry `json:"ingredients"`
	Instructions []string          `json:"instructions"`
	PrepTime     int               `json:"prepTime"` // minutes
	CookTime     int               `json:"cookTime"` // minutes
	Servings     int               `json:"servings"`
	Difficulty   Difficulty        `json:"difficulty"`
	Cuisine      string            `json:"cuisine"`
	DietTags     []string          `json:"dietTags,omitempty"`
	MealType     string            `json:"mealType,omitempty"`
	Rating       float64           `json:"rating,omitempty"`
	Nutrition    *NutritionSummary `json:"nutrition,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	Seasons      []string          `json:"seasons,omitempty"`
	Skills       []string          `json:"skills,omitempty"`
	Equipment    []string          `json:"equipment,omitempty"`
	CostLevel    CostLevel         `json:"costLevel,omitempty"`
}

// TotalTime returns combined prep and cook time in minutes
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}
