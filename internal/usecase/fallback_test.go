package usecase

import (
	"strings"
	"testing"

	"github.com/fridgehero/backend/internal/domain"
)

func TestNeedsFallback(t *testing.T) {
	gen := NewFallbackGenerator()

	tests := []struct {
		name    string
		results []*domain.MatchResult
		want    bool
	}{
		{"no results", nil, true},
		{"too few results", []*domain.MatchResult{{MatchScore: 0.9}, {MatchScore: 0.8}}, true},
		{
			"enough but weak top score",
			[]*domain.MatchResult{{MatchScore: 0.6}, {MatchScore: 0.5}, {MatchScore: 0.4}},
			true,
		},
		{
			"enough strong results",
			[]*domain.MatchResult{{MatchScore: 0.61}, {MatchScore: 0.5}, {MatchScore: 0.4}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gen.NeedsFallback(tt.results); got != tt.want {
				t.Errorf("NeedsFallback = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerate_FullPantry(t *testing.T) {
	gen := NewFallbackGenerator()
	pantry := []domain.HouseholdItem{
		pantryItem("chicken", "protein", 2),
		pantryItem("broccoli", "vegetable", 3),
		pantryItem("carrot", "vegetable", 5),
		pantryItem("spinach", "vegetable", 2),
		pantryItem("rice", "grain", 30),
	}

	recipes := gen.Generate(pantry)
	if len(recipes) != 3 {
		t.Fatalf("got %d recipes, want all 3 templates", len(recipes))
	}

	for _, r := range recipes {
		if !strings.HasPrefix(r.ID, "fallback-") {
			t.Errorf("recipe ID %q missing fallback prefix", r.ID)
		}
		if len(r.Ingredients) == 0 {
			t.Errorf("recipe %q has no ingredients", r.Name)
		}
		if len(r.Instructions) == 0 {
			t.Errorf("recipe %q has no instructions", r.Name)
		}
		if r.Difficulty != domain.DifficultyEasy {
			t.Errorf("recipe %q difficulty = %q, want easy", r.Name, r.Difficulty)
		}
	}

	// The stir-fry leads with the protein it features.
	if !strings.Contains(recipes[0].Name, "Stir-Fry") || !strings.HasPrefix(recipes[0].Name, "Chicken") {
		t.Errorf("first recipe name = %q, want a chicken stir-fry", recipes[0].Name)
	}
}

func TestGenerate_SkipsTemplatesMissingCategories(t *testing.T) {
	gen := NewFallbackGenerator()
	pantry := []domain.HouseholdItem{
		pantryItem("lettuce", "vegetable", 2),
		pantryItem("tomato", "vegetable", 4),
	}

	recipes := gen.Generate(pantry)
	if len(recipes) != 1 {
		t.Fatalf("got %d recipes, want only the salad", len(recipes))
	}
	if !strings.Contains(recipes[0].Name, "Salad") {
		t.Errorf("recipe name = %q, want a salad", recipes[0].Name)
	}
}

func TestGenerate_CapsItemsPerCategory(t *testing.T) {
	gen := NewFallbackGenerator()
	pantry := []domain.HouseholdItem{
		pantryItem("lettuce", "vegetable", 2),
		pantryItem("tomato", "vegetable", 2),
		pantryItem("cucumber", "vegetable", 2),
		pantryItem("kale", "vegetable", 2),
	}

	recipes := gen.Generate(pantry)
	if len(recipes) != 1 {
		t.Fatalf("got %d recipes, want 1", len(recipes))
	}
	if len(recipes[0].Ingredients) != 2 {
		t.Errorf("got %d ingredients, want cap of 2 per category", len(recipes[0].Ingredients))
	}
}

func TestGenerate_EmptyPantry(t *testing.T) {
	gen := NewFallbackGenerator()
	if recipes := gen.Generate(nil); len(recipes) != 0 {
		t.Fatalf("got %d recipes from an empty pantry, want 0", len(recipes))
	}
}
