package service

import "context"

// TextGenerator invokes the remote text-generation capability.
type TextGenerator interface {
	GenerateRecipeText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator invokes the remote image-generation capability and
// publishes the result to durable storage.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
	PublishImage(ctx context.Context, imageURL string) (string, error)
}

// Authorizer validates an API key and enforces its quota.
type Authorizer interface {
	Authorize(ctx context.Context, key string) error
}

// Subscriber creates subscription records and issues API keys.
type Subscriber interface {
	Subscribe(ctx context.Context, uniqueID, plan string) (string, error)
}

// RecipePipeline turns one validated request into one recipe-and-image result.
type RecipePipeline interface {
	GenerateRecipeAndImage(ctx context.Context, req *RecipeRequest) (*PipelineResult, error)
}
