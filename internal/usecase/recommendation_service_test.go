package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fridgehero/backend/internal/domain"
)

type stubPantry struct {
	items []domain.HouseholdItem
	err   error
}

func (s *stubPantry) ActiveItems(ctx context.Context, householdID string) ([]domain.HouseholdItem, error) {
	return s.items, s.err
}

type stubProfiles struct {
	profile *domain.UserProfile
	err     error
}

func (s *stubProfiles) Profile(ctx context.Context, householdID string) (*domain.UserProfile, error) {
	return s.profile, s.err
}

type stubCatalog struct {
	recipes []domain.Recipe
	err     error
}

func (s *stubCatalog) Recipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipes, s.err
}

func newTestService(pantry *stubPantry, profiles *stubProfiles, catalog *stubCatalog) *RecommendationService {
	return NewRecommendationService(pantry, profiles, catalog, testTables(), nil, RecommendationServiceConfig{})
}

func chickenRiceRecipe() domain.Recipe {
	return domain.Recipe{
		ID:   "r-chicken-rice",
		Name: "Chicken and Rice",
		Ingredients: []domain.IngredientEntry{
			{Name: "Chicken Breast", Category: domain.CategoryProtein, Importance: domain.ImportanceCritical},
			{Name: "rice", Category: domain.CategoryGrain, Importance: domain.ImportanceImportant},
			{Name: "salt", Category: domain.CategorySpice, Importance: domain.ImportanceOptional},
		},
		PrepTime:   10,
		CookTime:   20,
		Difficulty: domain.DifficultyEasy,
		Cuisine:    "american",
	}
}

func TestRecommend_EmptyHouseholdID(t *testing.T) {
	svc := newTestService(&stubPantry{}, &stubProfiles{profile: &domain.UserProfile{}}, &stubCatalog{})

	_, err := svc.Recommend(context.Background(), "", domain.RecommendOptions{})
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestRecommend_FetchFailurePropagated(t *testing.T) {
	sentinel := errors.New("collaborator down")
	profile := &domain.UserProfile{}

	tests := []struct {
		name     string
		pantry   *stubPantry
		profiles *stubProfiles
		catalog  *stubCatalog
	}{
		{"pantry fails", &stubPantry{err: sentinel}, &stubProfiles{profile: profile}, &stubCatalog{}},
		{"profile fails", &stubPantry{}, &stubProfiles{err: sentinel}, &stubCatalog{}},
		{"catalog fails", &stubPantry{}, &stubProfiles{profile: profile}, &stubCatalog{err: sentinel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.pantry, tt.profiles, tt.catalog)
			results, err := svc.Recommend(context.Background(), "hh-1", domain.RecommendOptions{})
			if !errors.Is(err, sentinel) {
				t.Fatalf("err = %v, want the collaborator error unchanged", err)
			}
			if results != nil {
				t.Errorf("got partial results %v on failure, want none", results)
			}
		})
	}
}

func TestRecommend_RanksAndFilters(t *testing.T) {
	pantry := &stubPantry{items: []domain.HouseholdItem{
		pantryItem("chicken", "protein", 2),
		pantryItem("rice", "grain", 10),
	}}
	profiles := &stubProfiles{profile: &domain.UserProfile{
		Allergies: []string{"peanut"},
	}}
	catalog := &stubCatalog{recipes: []domain.Recipe{
		chickenRiceRecipe(),
		{
			ID:   "r-satay",
			Name: "Peanut Satay",
			Ingredients: []domain.IngredientEntry{
				{Name: "peanut sauce", Category: domain.CategoryCondiment},
				{Name: "chicken", Category: domain.CategoryProtein},
			},
		},
		{ID: "r-broken", Name: "Broken Recipe"},
	}}

	svc := newTestService(pantry, profiles, catalog)
	results, err := svc.Recommend(context.Background(), "hh-1", domain.RecommendOptions{MaxResults: 1})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	top := results[0]
	if top.Recipe.ID != "r-chicken-rice" {
		t.Fatalf("top recipe = %q, want r-chicken-rice", top.Recipe.ID)
	}
	if top.AvailabilityScore != 1.0 {
		t.Errorf("AvailabilityScore = %v, want 1.0 with salt out of the denominator", top.AvailabilityScore)
	}
	if len(top.AvailableIngredients) != 2 {
		t.Errorf("got %d available ingredients, want 2", len(top.AvailableIngredients))
	}
	if len(top.MissingIngredients) != 0 {
		t.Errorf("got %d missing ingredients, want 0", len(top.MissingIngredients))
	}
	if len(top.ReasonsToMake) == 0 {
		t.Error("expected at least one reason to make")
	}
}

func TestRecommend_LowScoresFilteredOut(t *testing.T) {
	pantry := &stubPantry{items: []domain.HouseholdItem{pantryItem("rice", "grain", 10)}}
	profiles := &stubProfiles{profile: &domain.UserProfile{}}
	catalog := &stubCatalog{recipes: []domain.Recipe{{
		ID:   "r-souffle",
		Name: "Cheese Souffle",
		Ingredients: []domain.IngredientEntry{
			{Name: "gruyere", Category: domain.CategoryDairy, Importance: domain.ImportanceCritical},
			{Name: "egg", Category: domain.CategoryProtein, Importance: domain.ImportanceCritical},
		},
	}}}

	svc := newTestService(pantry, profiles, catalog)
	results, err := svc.Recommend(context.Background(), "hh-1", domain.RecommendOptions{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, r := range results {
		if r.Recipe.ID == "r-souffle" {
			t.Errorf("zero-availability recipe survived the minimum score filter (match %v)", r.MatchScore)
		}
	}
}

func TestRecommend_FallbackWhenSparse(t *testing.T) {
	pantry := &stubPantry{items: []domain.HouseholdItem{
		pantryItem("lettuce", "vegetable", 2),
		pantryItem("tomato", "vegetable", 3),
	}}
	profiles := &stubProfiles{profile: &domain.UserProfile{}}
	catalog := &stubCatalog{}

	svc := newTestService(pantry, profiles, catalog)
	results, err := svc.Recommend(context.Background(), "hh-1", domain.RecommendOptions{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected template recipes when the catalog yields nothing")
	}
	for _, r := range results {
		if !strings.HasPrefix(r.Recipe.ID, "fallback-") {
			t.Errorf("recipe %q is not a fallback template", r.Recipe.ID)
		}
	}
}

func TestRecommend_FallbackRespectsAllergies(t *testing.T) {
	pantry := &stubPantry{items: []domain.HouseholdItem{
		pantryItem("peanut", "protein", 2),
		pantryItem("lettuce", "vegetable", 3),
	}}
	profiles := &stubProfiles{profile: &domain.UserProfile{Allergies: []string{"peanut"}}}
	catalog := &stubCatalog{}

	svc := newTestService(pantry, profiles, catalog)
	results, err := svc.Recommend(context.Background(), "hh-1", domain.RecommendOptions{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, r := range results {
		if ContainsAllergen(r.Recipe, []string{"peanut"}) {
			t.Errorf("fallback recipe %q contains the allergen", r.Recipe.Name)
		}
	}
}

func TestRecommend_DietaryOverride(t *testing.T) {
	recipe := chickenRiceRecipe()
	recipe.DietTags = []string{"gluten-free"}

	pantry := &stubPantry{items: []domain.HouseholdItem{
		pantryItem("chicken", "protein", 2),
		pantryItem("rice", "grain", 10),
	}}
	profiles := &stubProfiles{profile: &domain.UserProfile{
		DietaryRestrictions: []string{"vegan"},
	}}
	catalog := &stubCatalog{recipes: []domain.Recipe{recipe}}

	svc := newTestService(pantry, profiles, catalog)

	base, err := svc.Recommend(context.Background(), "hh-1", domain.RecommendOptions{MaxResults: 1})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	overridden, err := svc.Recommend(context.Background(), "hh-1", domain.RecommendOptions{
		MaxResults:          1,
		DietaryRestrictions: []string{"gluten-free"},
	})
	if err != nil {
		t.Fatalf("Recommend with override: %v", err)
	}

	if overridden[0].PersonalizedScore <= base[0].PersonalizedScore {
		t.Errorf("override personalization %v should beat stored-profile %v when the override matches the diet tags",
			overridden[0].PersonalizedScore, base[0].PersonalizedScore)
	}
}

func TestRecommend_TruncatesToMaxResults(t *testing.T) {
	recipes := make([]domain.Recipe, 0, 5)
	for i := 0; i < 5; i++ {
		r := chickenRiceRecipe()
		r.ID = r.ID + "-" + string(rune('a'+i))
		recipes = append(recipes, r)
	}

	pantry := &stubPantry{items: []domain.HouseholdItem{
		pantryItem("chicken", "protein", 2),
		pantryItem("rice", "grain", 10),
	}}
	profiles := &stubProfiles{profile: &domain.UserProfile{}}
	catalog := &stubCatalog{recipes: recipes}

	svc := newTestService(pantry, profiles, catalog)
	results, err := svc.Recommend(context.Background(), "hh-1", domain.RecommendOptions{MaxResults: 2})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}
