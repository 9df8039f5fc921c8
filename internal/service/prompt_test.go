package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRecipePrompt(t *testing.T) {
	ingredients := []string{"egg", "onion"}
	dietary := []string{"vegetarian"}
	allergies := []string{"peanuts"}

	prompt := BuildRecipePrompt(ingredients, 2, dietary, allergies)

	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, prompt, BuildRecipePrompt(ingredients, 2, dietary, allergies))
	})

	t.Run("embeds persona and template sections", func(t *testing.T) {
		assert.Contains(t, prompt, "master chef")
		assert.Contains(t, prompt, "**Recipe Name**")
		assert.Contains(t, prompt, "**Ingredients**")
		assert.Contains(t, prompt, "**Instructions**")
		assert.Contains(t, prompt, "**Nutritional value**")
	})

	t.Run("embeds the request values", func(t *testing.T) {
		assert.Contains(t, prompt, "egg, onion")
		assert.Contains(t, prompt, "Number of people to cook for 2")
		assert.Contains(t, prompt, "allergic to peanuts")
		assert.Contains(t, prompt, "dietary restrictions that include: vegetarian")
	})

	t.Run("restricts additions to the fixed whitelist", func(t *testing.T) {
		assert.Contains(t, prompt, "oil, water, and salt")
	})

	t.Run("requests a visualization prompt and a length target", func(t *testing.T) {
		assert.Contains(t, prompt, "Visualization Prompt")
		assert.Contains(t, prompt, "within 500 tokens")
	})
}
