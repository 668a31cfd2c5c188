package supabase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgehero/backend/internal/domain"
)

func TestHouseholdItemRecord_ToDomain(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		rec := householdItemRecord{
			ID:         "i-1",
			Name:       "Spinach",
			Category:   "vegetable",
			ExpiryDate: "2026-09-03",
			Quantity:   1,
			Unit:       "bunch",
		}
		item, err := rec.toDomain()
		require.NoError(t, err)
		assert.Equal(t, "Spinach", item.Name)
		assert.Equal(t, "2026-09-03", item.ExpiryDate.Format(expiryDateLayout))
	})

	t.Run("missing name", func(t *testing.T) {
		rec := householdItemRecord{ID: "i-2", ExpiryDate: "2026-09-03"}
		_, err := rec.toDomain()
		assert.Error(t, err)
	})

	t.Run("bad expiry date", func(t *testing.T) {
		rec := householdItemRecord{ID: "i-3", Name: "Milk", ExpiryDate: "03/09/2026"}
		_, err := rec.toDomain()
		assert.Error(t, err)
	})
}

func TestIngredientRecord_ToDomain(t *testing.T) {
	t.Run("structured row passes through", func(t *testing.T) {
		rec := ingredientRecord{
			Name:       "chicken breast",
			Quantity:   "2",
			Unit:       "pieces",
			Category:   "protein",
			Importance: "critical",
		}
		entry := rec.toDomain()
		assert.Equal(t, domain.CategoryProtein, entry.Category)
		assert.Equal(t, domain.ImportanceCritical, entry.Importance)
	})

	t.Run("missing category and importance are inferred", func(t *testing.T) {
		rec := ingredientRecord{Name: "basil"}
		entry := rec.toDomain()
		assert.Equal(t, domain.CategoryHerb, entry.Category)
		assert.Equal(t, domain.ImportanceOptional, entry.Importance)
	})

	t.Run("raw text row is parsed", func(t *testing.T) {
		rec := ingredientRecord{Raw: "1/2 cup grated parmesan"}
		entry := rec.toDomain()
		assert.Equal(t, "grated parmesan", entry.Name)
		assert.Equal(t, "1/2", entry.Quantity)
		assert.Equal(t, "cup", entry.Unit)
		assert.Equal(t, domain.CategoryDairy, entry.Category)
	})
}

func TestRecipeRecord_ToDomain(t *testing.T) {
	rec := recipeRecord{
		ID:         "r-1",
		Name:       "Margherita Pizza",
		Difficulty: "medium",
		Cuisine:    "italian",
		CostLevel:  "budget",
		Ingredients: []ingredientRecord{
			{Name: "mozzarella", Category: "dairy"},
			{Raw: "fresh basil for garnish"},
		},
	}

	recipe := rec.toDomain()
	assert.Equal(t, domain.DifficultyMedium, recipe.Difficulty)
	require.Len(t, recipe.Ingredients, 2)
	assert.True(t, recipe.Ingredients[1].Optional, "garnish text marks the ingredient optional")
}
