package service

import "errors"

// Pipeline errors. Handlers map these onto HTTP statuses with errors.Is;
// anything unrecognized is reported as a generic 500.
var (
	// ErrUnauthorized is returned when the API key is missing or unknown.
	ErrUnauthorized = errors.New("invalid or missing API key")

	// ErrRateLimited is returned when a key has exhausted its window quota.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrDietaryConflict is returned when selected ingredients contradict
	// the vegetarian dietary choice.
	ErrDietaryConflict = errors.New("non-vegetarian ingredients selected with vegetarian dietary choice. Please remove non-vegetarian ingredients")

	// ErrRecipeInfeasible is returned when the generated text trips the
	// refusal heuristic.
	ErrRecipeInfeasible = errors.New("recipe cannot be generated with provided combination of ingredients, allergens, and dietary restrictions")

	// ErrGenerationFailed is returned when the text model produces no output.
	ErrGenerationFailed = errors.New("failed to generate recipe")

	// ErrImageGeneration is returned when the image model call fails.
	ErrImageGeneration = errors.New("failed to generate image")

	// ErrImageDownload is returned when the ephemeral image URL cannot be fetched.
	ErrImageDownload = errors.New("failed to download image")

	// ErrImageUpload is returned when the image cannot be persisted to storage.
	ErrImageUpload = errors.New("failed to store image")
)
