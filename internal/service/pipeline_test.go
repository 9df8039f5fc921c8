package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTextGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeTextGenerator) GenerateRecipeText(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

type fakeImageGenerator struct {
	generateErr  error
	publishErr   error
	imagePrompts []string
	published    []string
}

func (f *fakeImageGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.imagePrompts = append(f.imagePrompts, prompt)
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return "https://ephemeral.example/img.png", nil
}

func (f *fakeImageGenerator) PublishImage(ctx context.Context, imageURL string) (string, error) {
	f.published = append(f.published, imageURL)
	if f.publishErr != nil {
		return "", f.publishErr
	}
	return "https://test-bucket.s3.amazonaws.com/images/generated.png", nil
}

const generatedRecipe = "**Recipe Name**\nGolden Onion Omelette\n\n" +
	"**Ingredients**\n- 4 eggs\n- 1 onion\n\n" +
	"**Instructions**\n1. Beat the eggs.\n2. Fry the onion.\n\n" +
	"**Nutritional Value**\nCalories: 250\n\n" +
	"**Visualization Prompt**\nA golden omelette on a white plate"

func validRequest() *RecipeRequest {
	return &RecipeRequest{
		Ingredients: []string{"egg", "onion"},
		NumPeople:   2,
	}
}

func TestPipelineService_GenerateRecipeAndImage(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path assembles one image URL and a clean recipe", func(t *testing.T) {
		text := &fakeTextGenerator{text: generatedRecipe}
		image := &fakeImageGenerator{}
		pipeline := NewPipelineService(text, image)

		result, err := pipeline.GenerateRecipeAndImage(ctx, validRequest())
		require.NoError(t, err)

		assert.Equal(t, "Golden Onion Omelette", result.Name)
		require.Len(t, result.ImageURLs, 1)
		assert.True(t, strings.HasPrefix(result.ImageURLs[0], "https://test-bucket.s3.amazonaws.com/"))
		assert.NotContains(t, result.Recipe, "Nutritional")
		assert.NotContains(t, result.Recipe, "Visualization")

		// The found visualization prompt drives the image, wrapped with the
		// fixed instruction.
		require.Len(t, image.imagePrompts, 1)
		assert.Contains(t, image.imagePrompts[0], "Generate a realistic image of the prepared recipe according to the following: A golden omelette on a white plate")
		assert.Contains(t, image.imagePrompts[0], "appetizing and well-presented")
		assert.NotContains(t, image.imagePrompts[0], "Nutritional information printed")

		require.Len(t, image.published, 1)
		assert.Equal(t, "https://ephemeral.example/img.png", image.published[0])
	})

	t.Run("missing visualization prompt falls back to the cleaned body", func(t *testing.T) {
		text := &fakeTextGenerator{
			text: "**Recipe Name**\nPlain Omelette\n\n**Instructions**\n1. Beat the eggs.\n\n**Nutritional Value**\nCalories: 200",
		}
		image := &fakeImageGenerator{}
		pipeline := NewPipelineService(text, image)

		result, err := pipeline.GenerateRecipeAndImage(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, "Plain Omelette", result.Name)

		require.Len(t, image.imagePrompts, 1)
		assert.Contains(t, image.imagePrompts[0], "Beat the eggs.")
		assert.NotContains(t, image.imagePrompts[0], "Calories")
		assert.Contains(t, image.imagePrompts[0], "should not contain any Nutritional information printed")
	})

	t.Run("dietary conflict short-circuits before any generation call", func(t *testing.T) {
		text := &fakeTextGenerator{text: generatedRecipe}
		image := &fakeImageGenerator{}
		pipeline := NewPipelineService(text, image)

		_, err := pipeline.GenerateRecipeAndImage(ctx, &RecipeRequest{
			Ingredients: []string{"chicken breast"},
			NumPeople:   2,
			Dietary:     []string{"vegetarian"},
		})

		assert.ErrorIs(t, err, ErrDietaryConflict)
		assert.Empty(t, text.prompts)
		assert.Empty(t, image.imagePrompts)
	})

	t.Run("refusal text maps to infeasible and skips image generation", func(t *testing.T) {
		text := &fakeTextGenerator{text: "I'm sorry, unable to generate a recipe with these constraints."}
		image := &fakeImageGenerator{}
		pipeline := NewPipelineService(text, image)

		_, err := pipeline.GenerateRecipeAndImage(ctx, validRequest())

		assert.ErrorIs(t, err, ErrRecipeInfeasible)
		assert.Empty(t, image.imagePrompts)
	})

	t.Run("text generation failure propagates", func(t *testing.T) {
		text := &fakeTextGenerator{err: ErrGenerationFailed}
		image := &fakeImageGenerator{}
		pipeline := NewPipelineService(text, image)

		_, err := pipeline.GenerateRecipeAndImage(ctx, validRequest())

		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.Empty(t, image.imagePrompts)
	})

	t.Run("image generation failure propagates without publishing", func(t *testing.T) {
		text := &fakeTextGenerator{text: generatedRecipe}
		image := &fakeImageGenerator{generateErr: ErrImageGeneration}
		pipeline := NewPipelineService(text, image)

		_, err := pipeline.GenerateRecipeAndImage(ctx, validRequest())

		assert.ErrorIs(t, err, ErrImageGeneration)
		assert.Empty(t, image.published)
	})

	t.Run("publish failure propagates", func(t *testing.T) {
		text := &fakeTextGenerator{text: generatedRecipe}
		image := &fakeImageGenerator{publishErr: errors.New("wrapped: " + ErrImageUpload.Error())}
		pipeline := NewPipelineService(text, image)

		_, err := pipeline.GenerateRecipeAndImage(ctx, validRequest())
		assert.Error(t, err)
	})

	t.Run("compiled prompt carries the request values", func(t *testing.T) {
		text := &fakeTextGenerator{text: generatedRecipe}
		pipeline := NewPipelineService(text, &fakeImageGenerator{})

		_, err := pipeline.GenerateRecipeAndImage(ctx, &RecipeRequest{
			Ingredients: []string{"tofu", "spinach"},
			NumPeople:   4,
			Dietary:     []string{"vegan"},
			Allergies:   []string{"nuts"},
		})
		require.NoError(t, err)

		require.Len(t, text.prompts, 1)
		assert.Contains(t, text.prompts[0], "tofu, spinach")
		assert.Contains(t, text.prompts[0], "Number of people to cook for 4")
		assert.Contains(t, text.prompts[0], "vegan")
		assert.Contains(t, text.prompts[0], "nuts")
	})
}
