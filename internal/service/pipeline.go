package service

import (
	"context"
	"fmt"
	"log"
)

// RecipeRequest is one validated generation request. It is constructed
// once per HTTP call and not mutated afterwards.
type RecipeRequest struct {
	Ingredients []string
	NumPeople   int
	Dietary     []string
	Allergies   []string
}

// PipelineResult is the terminal success payload: exactly one durable
// image URL and the cleaned recipe body.
type PipelineResult struct {
	Name      string   `json:"name"`
	ImageURLs []string `json:"imageUrls"`
	Recipe    string   `json:"recipe"`
}

// PipelineService sequences the stages of one generation request:
// validate, compile prompt, generate text, extract, generate image,
// publish. It owns the request lifecycle end to end; any stage failure
// short-circuits with a typed error and no stage runs before its
// predecessor's result is available.
type PipelineService struct {
	text  TextGenerator
	image ImageGenerator
}

// NewPipelineService creates a new PipelineService instance
func NewPipelineService(text TextGenerator, image ImageGenerator) *PipelineService {
	return &PipelineService{
		text:  text,
		image: image,
	}
}

// GenerateRecipeAndImage runs the full pipeline for one request.
func (s *PipelineService) GenerateRecipeAndImage(ctx context.Context, req *RecipeRequest) (*PipelineResult, error) {
	if err := ValidateConstraints(req.Ingredients, req.Dietary); err != nil {
		return nil, err
	}

	prompt := BuildRecipePrompt(req.Ingredients, req.NumPeople, req.Dietary, req.Allergies)

	rawText, err := s.text.GenerateRecipeText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if IsRefusal(rawText) {
		log.Printf("[Pipeline] Generated text classified as refusal")
		return nil, ErrRecipeInfeasible
	}

	extracted := ExtractRecipe(rawText)
	log.Printf("[Pipeline] Extracted recipe name: %s", extracted.Name)

	imageURL, err := s.image.GenerateImage(ctx, buildImagePrompt(extracted))
	if err != nil {
		return nil, err
	}

	publicURL, err := s.image.PublishImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	return &PipelineResult{
		Name:      extracted.Name,
		ImageURLs: []string{publicURL},
		Recipe:    extracted.Body,
	}, nil
}

// buildImagePrompt wraps either the extracted visualization prompt or,
// when none was found, the entire cleaned recipe body. The fallback
// variant additionally forbids nutritional text in the rendered image.
func buildImagePrompt(extracted ExtractedRecipe) string {
	if extracted.VisualizationFound {
		return fmt.Sprintf(
			"Generate a realistic image of the prepared recipe according to the following: %s. Ensure the image is appetizing and well-presented.",
			extracted.VisualizationPrompt,
		)
	}
	return fmt.Sprintf(
		"Generate a realistic image of the prepared recipe according to the following: %s. Ensure the image is appetizing and well-presented and should not contain any Nutritional information printed.",
		extracted.Body,
	)
}
