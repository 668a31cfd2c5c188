package usecase

// IngredientTables holds the static lookup data driving relational matching,
// seasonal hints and cuisine profiles. Built once at startup and injected,
// never mutated afterwards. The relationship entries are curated
// one-directional suggestions; do not symmetrize them.
type IngredientTables struct {
	relationships   map[string][]string
	seasonality     map[string][]string
	cuisineProfiles map[string][]string
}

// NewIngredientTables builds tables from explicit data. Intended for tests
// that need a small controlled table.
func NewIngredientTables(
	relationships map[string][]string,
	seasonality map[string][]string,
	cuisineProfiles map[string][]string,
) *IngredientTables {
	if relationships == nil {
		relationships = map[string][]string{}
	}
	if seasonality == nil {
		seasonality = map[string][]string{}
	}
	if cuisineProfiles == nil {
		cuisineProfiles = map[string][]string{}
	}
	return &IngredientTables{
		relationships:   relationships,
		seasonality:     seasonality,
		cuisineProfiles: cuisineProfiles,
	}
}

// NewDefaultIngredientTables returns the curated production tables
func NewDefaultIngredientTables() *IngredientTables {
	return NewIngredientTables(defaultRelationships, defaultSeasonality, defaultCuisineProfiles)
}

// Related returns the curated related names for a lower-cased ingredient
// name, or nil when none are known
func (t *IngredientTables) Related(name string) []string {
	return t.relationships[name]
}

// InSeason returns the ingredient names typically in season
func (t *IngredientTables) InSeason(season string) []string {
	return t.seasonality[season]
}

// CuisineProfile returns the characteristic ingredients of a cuisine.
// Currently unused by scoring; kept for extension.
func (t *IngredientTables) CuisineProfile(cuisine string) []string {
	return t.cuisineProfiles[cuisine]
}

// defaultRelationships maps an ingredient to acceptable substitutes and
// close relatives. Deliberately asymmetric: "chicken" suggesting "turkey"
// does not imply the reverse.
var defaultRelationships = map[string][]string{
	// Proteins
	"chicken":        {"turkey", "chicken thigh", "chicken breast", "tofu", "tempeh"},
	"chicken breast": {"chicken", "chicken thigh", "turkey breast", "tofu"},
	"beef":           {"ground turkey", "lamb", "pork", "mushroom", "lentils"},
	"ground beef":    {"ground turkey", "ground pork", "ground chicken", "lentils"},
	"pork":           {"chicken", "turkey", "tofu"},
	"fish":           {"salmon", "cod", "tilapia", "shrimp", "tofu"},
	"salmon":         {"trout", "cod", "tuna"},
	"shrimp":         {"prawns", "scallops", "chicken", "tofu"},
	"tofu":           {"tempeh", "chickpeas", "paneer", "mushroom"},
	"eggs":           {"egg", "tofu", "chickpea flour"},
	"bacon":          {"pancetta", "turkey bacon", "smoked paprika"},

	// Dairy
	"milk":       {"oat milk", "almond milk", "soy milk", "cream"},
	"butter":     {"olive oil", "coconut oil", "margarine", "ghee"},
	"cream":      {"coconut cream", "milk", "yogurt", "creme fraiche"},
	"yogurt":     {"greek yogurt", "sour cream", "coconut yogurt"},
	"cheese":     {"cheddar", "mozzarella", "parmesan", "nutritional yeast"},
	"parmesan":   {"pecorino", "grana padano", "nutritional yeast"},
	"sour cream": {"yogurt", "greek yogurt", "creme fraiche"},

	// Vegetables
	"onion":        {"shallot", "leek", "scallion", "red onion"},
	"garlic":       {"garlic powder", "shallot", "garlic scapes"},
	"broccoli":     {"cauliflower", "broccolini", "green beans"},
	"spinach":      {"kale", "chard", "arugula"},
	"zucchini":     {"summer squash", "eggplant", "cucumber"},
	"bell pepper":  {"poblano", "sweet pepper", "carrot"},
	"carrot":       {"parsnip", "sweet potato", "butternut squash"},
	"tomato":       {"canned tomato", "passata", "red pepper"},
	"mushroom":     {"portobello", "shiitake", "eggplant", "tofu"},
	"potato":       {"sweet potato", "parsnip", "cauliflower"},
	"sweet potato": {"potato", "butternut squash", "carrot", "pumpkin"},
	"cauliflower":  {"broccoli", "cabbage", "potato"},

	// Grains and starches
	"rice":       {"quinoa", "couscous", "bulgur", "cauliflower rice", "brown rice"},
	"pasta":      {"noodles", "spaghetti", "zucchini noodles", "rice noodles"},
	"quinoa":     {"rice", "couscous", "bulgur", "millet"},
	"bread":      {"tortilla", "pita", "naan", "crackers"},
	"flour":      {"almond flour", "oat flour", "whole wheat flour"},
	"breadcrumb": {"panko", "crushed crackers", "oats"},

	// Aromatics, acids and condiments
	"lemon":         {"lime", "white vinegar", "lemon juice"},
	"lime":          {"lemon", "rice vinegar"},
	"soy sauce":     {"tamari", "coconut aminos", "fish sauce", "worcestershire"},
	"vinegar":       {"lemon juice", "lime juice", "white wine"},
	"honey":         {"maple syrup", "agave", "sugar"},
	"olive oil":     {"vegetable oil", "avocado oil", "butter"},
	"basil":         {"oregano", "parsley", "spinach"},
	"cilantro":      {"parsley", "basil", "mint"},
	"ginger":        {"ground ginger", "galangal"},
	"chili":         {"chili flakes", "cayenne", "hot sauce", "jalapeno"},
	"stock":         {"broth", "bouillon", "water"},
	"chicken stock": {"vegetable stock", "chicken broth", "bouillon"},
}

// defaultSeasonality lists ingredients typically in season, keyed by season
var defaultSeasonality = map[string][]string{
	"spring": {"asparagus", "peas", "radish", "spinach", "artichoke", "strawberry", "rhubarb", "spring onion"},
	"summer": {"tomato", "zucchini", "corn", "bell pepper", "eggplant", "cucumber", "peach", "berries", "basil", "watermelon"},
	"autumn": {"pumpkin", "butternut squash", "sweet potato", "apple", "pear", "brussels sprouts", "mushroom", "cauliflower"},
	"winter": {"kale", "cabbage", "leek", "parsnip", "potato", "citrus", "beetroot", "carrot", "winter squash"},
}

// defaultCuisineProfiles lists characteristic ingredients per cuisine label
var defaultCuisineProfiles = map[string][]string{
	"italian":       {"tomato", "basil", "olive oil", "garlic", "parmesan", "pasta", "oregano", "mozzarella"},
	"mexican":       {"cumin", "chili", "lime", "cilantro", "corn", "black beans", "avocado", "tortilla"},
	"indian":        {"cumin", "turmeric", "garam masala", "ginger", "garlic", "lentils", "yogurt", "coriander"},
	"thai":          {"fish sauce", "lime", "lemongrass", "coconut milk", "chili", "basil", "ginger"},
	"japanese":      {"soy sauce", "mirin", "miso", "rice", "seaweed", "sesame", "ginger"},
	"chinese":       {"soy sauce", "ginger", "garlic", "scallion", "sesame oil", "rice wine", "five spice"},
	"french":        {"butter", "cream", "shallot", "white wine", "thyme", "dijon mustard"},
	"mediterranean": {"olive oil", "lemon", "feta", "chickpeas", "cucumber", "oregano", "tomato"},
	"american":      {"ground beef", "cheddar", "barbecue sauce", "corn", "potato"},
}
